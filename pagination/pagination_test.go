package pagination_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clip-cast/pagination"
)

func page(n int) pagination.Token { return pagination.Token{Page: n} }
func gap() pagination.Token       { return pagination.Token{Gap: true} }

func TestTotalPages(t *testing.T) {
	cases := []struct {
		totalCount int
		pageSize   int
		want       int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{45, 5, 9},
		{20, 5, 4},
		{-3, 10, 0},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, pagination.TotalPages(c.totalCount, c.pageSize),
			"TotalPages(%d, %d)", c.totalCount, c.pageSize)
	}
}

func TestRangeWindows(t *testing.T) {
	cases := []struct {
		name         string
		totalCount   int
		pageSize     int
		currentPage  int
		siblingCount int
		want         []pagination.Token
	}{
		{
			name:       "right gap from first page",
			totalCount: 45, pageSize: 5, currentPage: 1, siblingCount: 1,
			want: []pagination.Token{page(1), page(2), page(3), page(4), page(5), gap(), page(9)},
		},
		{
			name:       "both gaps from middle page",
			totalCount: 45, pageSize: 5, currentPage: 5, siblingCount: 1,
			want: []pagination.Token{page(1), gap(), page(4), page(5), page(6), gap(), page(9)},
		},
		{
			name:       "left gap from last page",
			totalCount: 45, pageSize: 5, currentPage: 9, siblingCount: 1,
			want: []pagination.Token{page(1), gap(), page(5), page(6), page(7), page(8), page(9)},
		},
		{
			name:       "no truncation",
			totalCount: 20, pageSize: 5, currentPage: 1, siblingCount: 1,
			want: []pagination.Token{page(1), page(2), page(3), page(4)},
		},
		{
			name:       "no items",
			totalCount: 0, pageSize: 10, currentPage: 1, siblingCount: 1,
			want: []pagination.Token{},
		},
		{
			name:       "single page",
			totalCount: 3, pageSize: 10, currentPage: 1, siblingCount: 1,
			want: []pagination.Token{page(1)},
		},
		{
			name:       "exactly at the truncation threshold",
			totalCount: 30, pageSize: 5, currentPage: 3, siblingCount: 1,
			want: []pagination.Token{page(1), page(2), page(3), page(4), page(5), page(6)},
		},
		{
			// seven pages: the gap elides exactly one page (6) and is still
			// rendered as a gap
			name:       "gap for a single elided page",
			totalCount: 35, pageSize: 5, currentPage: 1, siblingCount: 1,
			want: []pagination.Token{page(1), page(2), page(3), page(4), page(5), gap(), page(7)},
		},
		{
			name:       "both gaps with two siblings",
			totalCount: 100, pageSize: 10, currentPage: 5, siblingCount: 2,
			want: []pagination.Token{page(1), gap(), page(3), page(4), page(5), page(6), page(7), gap(), page(10)},
		},
		{
			name:       "current page clamped from above",
			totalCount: 45, pageSize: 5, currentPage: 999, siblingCount: 1,
			want: []pagination.Token{page(1), gap(), page(5), page(6), page(7), page(8), page(9)},
		},
		{
			name:       "current page clamped from below",
			totalCount: 45, pageSize: 5, currentPage: -3, siblingCount: 1,
			want: []pagination.Token{page(1), page(2), page(3), page(4), page(5), gap(), page(9)},
		},
		{
			name:       "zero siblings",
			totalCount: 45, pageSize: 5, currentPage: 5, siblingCount: 0,
			want: []pagination.Token{page(1), gap(), page(5), gap(), page(9)},
		},
		{
			name:       "negative siblings treated as zero",
			totalCount: 45, pageSize: 5, currentPage: 5, siblingCount: -2,
			want: []pagination.Token{page(1), gap(), page(5), gap(), page(9)},
		},
		{
			// leftSibling hits 1 and rightSibling 7 at once, so neither
			// truncation fires and the whole range is returned
			name:       "wide siblings fall back to the full range",
			totalCount: 45, pageSize: 5, currentPage: 4, siblingCount: 3,
			want: []pagination.Token{page(1), page(2), page(3), page(4), page(5), page(6), page(7), page(8), page(9)},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := pagination.Range(c.totalCount, c.pageSize, c.currentPage, c.siblingCount)
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestRangeInvalidArguments(t *testing.T) {
	_, err := pagination.Range(10, 0, 1, 1)
	assert.ErrorIs(t, err, pagination.ErrInvalidArgument)

	_, err = pagination.Range(10, -5, 1, 1)
	assert.ErrorIs(t, err, pagination.ErrInvalidArgument)

	_, err = pagination.Range(-1, 10, 1, 1)
	assert.ErrorIs(t, err, pagination.ErrInvalidArgument)
}

func TestRangeProperties(t *testing.T) {
	pageSizes := []int{1, 3, 7, 10}
	siblingCounts := []int{0, 1, 2, 3}

	for totalCount := 0; totalCount <= 300; totalCount += 7 {
		for _, pageSize := range pageSizes {
			for _, siblingCount := range siblingCounts {
				totalPages := pagination.TotalPages(totalCount, pageSize)
				for currentPage := 0; currentPage <= totalPages+2; currentPage++ {
					tokens, err := pagination.Range(totalCount, pageSize, currentPage, siblingCount)
					require.NoError(t, err)

					if totalPages == 0 {
						assert.Empty(t, tokens)
						continue
					}

					require.NotEmpty(t, tokens)
					first, last := tokens[0], tokens[len(tokens)-1]
					assert.False(t, first.Gap, "window must start with a page")
					assert.False(t, last.Gap, "window must end with a page")
					assert.Equal(t, 1, first.Page)
					assert.Equal(t, totalPages, last.Page)

					clamped := currentPage
					if clamped < 1 {
						clamped = 1
					} else if clamped > totalPages {
						clamped = totalPages
					}

					gaps := 0
					prevPage := 0
					sawCurrent := false
					for _, tok := range tokens {
						if tok.Gap {
							gaps++
							continue
						}
						assert.Greater(t, tok.Page, prevPage, "page numbers must ascend")
						assert.GreaterOrEqual(t, tok.Page, 1)
						assert.LessOrEqual(t, tok.Page, totalPages)
						if tok.Page == clamped {
							sawCurrent = true
						}
						prevPage = tok.Page
					}
					assert.LessOrEqual(t, gaps, 2, "at most two gaps")
					assert.True(t, sawCurrent, "window must contain the current page (total=%d size=%d current=%d siblings=%d)",
						totalCount, pageSize, currentPage, siblingCount)

					if totalPages <= siblingCount+5 {
						assert.Zero(t, gaps)
						assert.Len(t, tokens, totalPages)
					}

					again, err := pagination.Range(totalCount, pageSize, currentPage, siblingCount)
					require.NoError(t, err)
					assert.Equal(t, tokens, again, "pure function must be idempotent")
				}
			}
		}
	}
}

func TestTokenString(t *testing.T) {
	assert.Equal(t, "7", page(7).String())
	assert.Equal(t, "…", gap().String())
}
