package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clip-cast/cmd/api/dto"
)

func TestNewPaginationWindow(t *testing.T) {
	data := []string{"a", "b", "c", "d", "e"}

	env, err := dto.NewPagination(data, 45, 5, 5, 1)
	require.NoError(t, err)

	assert.Equal(t, 5, env.Page)
	assert.Equal(t, 5, env.PageSize)
	assert.Equal(t, int64(45), env.Total)
	assert.Equal(t, 9, env.TotalPages)
	assert.True(t, env.HasNext)
	assert.True(t, env.HasPrev)

	// 1 … 4 [5] 6 … 9
	require.Len(t, env.Pages, 7)
	assert.Equal(t, dto.PageItem{Page: 1}, env.Pages[0])
	assert.Equal(t, dto.PageItem{Gap: true}, env.Pages[1])
	assert.Equal(t, dto.PageItem{Page: 4}, env.Pages[2])
	assert.Equal(t, dto.PageItem{Page: 5, Current: true}, env.Pages[3])
	assert.Equal(t, dto.PageItem{Page: 6}, env.Pages[4])
	assert.Equal(t, dto.PageItem{Gap: true}, env.Pages[5])
	assert.Equal(t, dto.PageItem{Page: 9}, env.Pages[6])
}

func TestNewPaginationFirstPage(t *testing.T) {
	env, err := dto.NewPagination([]int{1, 2, 3}, 45, 1, 5, 1)
	require.NoError(t, err)

	assert.False(t, env.HasPrev)
	assert.True(t, env.HasNext)

	// 선두 페이지 윈도우: 1 2 3 4 5 … 9
	require.Len(t, env.Pages, 7)
	assert.Equal(t, dto.PageItem{Page: 1, Current: true}, env.Pages[0])
	assert.Equal(t, dto.PageItem{Page: 5}, env.Pages[4])
	assert.Equal(t, dto.PageItem{Gap: true}, env.Pages[5])
	assert.Equal(t, dto.PageItem{Page: 9}, env.Pages[6])
}

func TestNewPaginationShortRange(t *testing.T) {
	env, err := dto.NewPagination([]int{1}, 20, 1, 5, 1)
	require.NoError(t, err)

	assert.Equal(t, 4, env.TotalPages)
	require.Len(t, env.Pages, 4)
	for i, item := range env.Pages {
		assert.False(t, item.Gap)
		assert.Equal(t, i+1, item.Page)
	}
}

func TestNewPaginationEmpty(t *testing.T) {
	env, err := dto.NewPagination([]string{}, 0, 1, 10, 1)
	require.NoError(t, err)

	assert.Equal(t, 0, env.TotalPages)
	assert.Empty(t, env.Pages)
	assert.False(t, env.HasNext)
	assert.False(t, env.HasPrev)
}

func TestNewPaginationPageBeyondEnd(t *testing.T) {
	// 목록 조회는 관대하게 요청 페이지를 그대로 보고하되,
	// 윈도우와 current 표시는 마지막 페이지로 클램프된다.
	env, err := dto.NewPagination([]string{}, 45, 999, 5, 1)
	require.NoError(t, err)

	assert.Equal(t, 999, env.Page)
	assert.False(t, env.HasNext)
	assert.True(t, env.HasPrev)

	var current int
	for _, item := range env.Pages {
		if item.Current {
			current = item.Page
		}
	}
	assert.Equal(t, 9, current)
}

func TestNewPaginationInvalidPageSize(t *testing.T) {
	_, err := dto.NewPagination([]string{}, 45, 1, 0, 1)
	assert.Error(t, err)
}

func TestPagingQuerySetDefaults(t *testing.T) {
	tests := []struct {
		name string
		in   dto.PagingQuery
		want dto.PagingQuery
	}{
		{"zero values", dto.PagingQuery{}, dto.PagingQuery{Page: 1, PageSize: 20, SiblingCount: 0}},
		{"valid passthrough", dto.PagingQuery{Page: 3, PageSize: 50, SiblingCount: 2}, dto.PagingQuery{Page: 3, PageSize: 50, SiblingCount: 2}},
		{"negative page", dto.PagingQuery{Page: -1, PageSize: 10, SiblingCount: 1}, dto.PagingQuery{Page: 1, PageSize: 10, SiblingCount: 1}},
		{"oversized page size", dto.PagingQuery{Page: 1, PageSize: 500, SiblingCount: 1}, dto.PagingQuery{Page: 1, PageSize: 20, SiblingCount: 1}},
		{"sibling count clamped", dto.PagingQuery{Page: 1, PageSize: 20, SiblingCount: 9}, dto.PagingQuery{Page: 1, PageSize: 20, SiblingCount: 4}},
		{"negative sibling count", dto.PagingQuery{Page: 1, PageSize: 20, SiblingCount: -3}, dto.PagingQuery{Page: 1, PageSize: 20, SiblingCount: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := tt.in
			q.SetDefaults()
			assert.Equal(t, tt.want, q)
		})
	}
}

func TestCreateCommentRequestValidate(t *testing.T) {
	valid := dto.CreateCommentRequest{Author: "dev", Body: "좋은 영상이네요"}
	assert.NoError(t, valid.Validate())

	missingAuthor := dto.CreateCommentRequest{Body: "body"}
	assert.Error(t, missingAuthor.Validate())

	missingBody := dto.CreateCommentRequest{Author: "dev"}
	assert.Error(t, missingBody.Validate())
}
