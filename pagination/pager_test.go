package pagination_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clip-cast/pagination"
)

func TestPagerNavigation(t *testing.T) {
	p, err := pagination.NewPager(45, 5, 1)
	require.NoError(t, err)

	assert.Equal(t, 9, p.TotalPages())
	assert.Equal(t, 1, p.Current())
	assert.False(t, p.CanPrev())
	assert.True(t, p.CanNext())

	assert.Equal(t, 2, p.Next())
	assert.Equal(t, 1, p.Prev())
	// prev at the lower bound stays clamped
	assert.Equal(t, 1, p.Prev())

	assert.Equal(t, 9, p.GoTo(999))
	assert.False(t, p.CanNext())
	assert.True(t, p.CanPrev())
	// next at the upper bound stays clamped
	assert.Equal(t, 9, p.Next())

	assert.Equal(t, 1, p.GoTo(-5))
	assert.Equal(t, 1, p.GoTo(0))
}

func TestPagerEmpty(t *testing.T) {
	p, err := pagination.NewPager(0, 10, 1)
	require.NoError(t, err)

	assert.Equal(t, 0, p.TotalPages())
	assert.Equal(t, 0, p.Current())
	assert.Equal(t, 0, p.GoTo(3))
	assert.Equal(t, 0, p.Next())
	assert.Equal(t, 0, p.Prev())
	assert.False(t, p.CanNext())
	assert.False(t, p.CanPrev())
	assert.Equal(t, int64(0), p.Offset())

	tokens, err := p.Tokens()
	require.NoError(t, err)
	assert.Empty(t, tokens)
}

func TestPagerOffsetLimit(t *testing.T) {
	p, err := pagination.NewPager(100, 20, 1)
	require.NoError(t, err)

	assert.Equal(t, int64(0), p.Offset())
	assert.Equal(t, int64(20), p.Limit())

	p.GoTo(3)
	assert.Equal(t, int64(40), p.Offset())
	assert.Equal(t, int64(20), p.Limit())
}

func TestPagerSetters(t *testing.T) {
	p, err := pagination.NewPager(45, 5, 1)
	require.NoError(t, err)
	p.GoTo(9)

	// shrinking the data set pulls the current page back in range
	p.SetTotalCount(12)
	assert.Equal(t, 3, p.TotalPages())
	assert.Equal(t, 3, p.Current())

	// growing the page size collapses the page count
	p.SetPageSize(50)
	assert.Equal(t, 1, p.TotalPages())
	assert.Equal(t, 1, p.Current())

	// invalid page size clamps to 1
	p.SetPageSize(0)
	assert.Equal(t, 1, p.PageSize())
	assert.Equal(t, 12, p.TotalPages())

	// an empty pager comes back to life when items appear
	empty, err := pagination.NewPager(0, 10, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Current())
	empty.SetTotalCount(25)
	assert.Equal(t, 3, empty.TotalPages())
	assert.Equal(t, 1, empty.Current())
}

func TestPagerInvalidArguments(t *testing.T) {
	_, err := pagination.NewPager(10, 0, 1)
	assert.ErrorIs(t, err, pagination.ErrInvalidArgument)

	_, err = pagination.NewPager(-1, 10, 1)
	assert.ErrorIs(t, err, pagination.ErrInvalidArgument)
}

func TestPagerTokens(t *testing.T) {
	p, err := pagination.NewPager(45, 5, 1)
	require.NoError(t, err)
	p.GoTo(5)

	tokens, err := p.Tokens()
	require.NoError(t, err)
	assert.Equal(t, []pagination.Token{
		page(1), gap(), page(4), page(5), page(6), gap(), page(9),
	}, tokens)
}
