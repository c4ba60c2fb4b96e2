package pagination

import "fmt"

// Pager owns the current-page state for one pagination control and keeps it
// clamped against the total count and page size. It is not goroutine safe;
// each consumer owns its own instance.
type Pager struct {
	totalCount   int
	pageSize     int
	siblingCount int
	current      int
}

// NewPager validates the inputs and starts at page 1 (page 0 when there are
// no items at all).
func NewPager(totalCount, pageSize, siblingCount int) (*Pager, error) {
	if pageSize <= 0 {
		return nil, fmt.Errorf("%w: page size must be >= 1, got %d", ErrInvalidArgument, pageSize)
	}
	if totalCount < 0 {
		return nil, fmt.Errorf("%w: total count must be >= 0, got %d", ErrInvalidArgument, totalCount)
	}
	if siblingCount < 0 {
		siblingCount = 0
	}
	p := &Pager{
		totalCount:   totalCount,
		pageSize:     pageSize,
		siblingCount: siblingCount,
	}
	if p.TotalPages() > 0 {
		p.current = 1
	}
	return p, nil
}

// TotalPages returns the number of pages needed for the current inputs.
func (p *Pager) TotalPages() int {
	return TotalPages(p.totalCount, p.pageSize)
}

// Current returns the current page, 0 when there are no pages.
func (p *Pager) Current() int { return p.current }

// PageSize returns the configured page size.
func (p *Pager) PageSize() int { return p.pageSize }

// TotalCount returns the configured total item count.
func (p *Pager) TotalCount() int { return p.totalCount }

// GoTo clamps n into [1, TotalPages], makes it the current page and returns
// it. With zero pages it is a no-op returning 0.
func (p *Pager) GoTo(n int) int {
	totalPages := p.TotalPages()
	if totalPages == 0 {
		p.current = 0
		return 0
	}
	if n < 1 {
		n = 1
	} else if n > totalPages {
		n = totalPages
	}
	p.current = n
	return n
}

// Next advances to the next page, clamped at the last page.
func (p *Pager) Next() int { return p.GoTo(p.current + 1) }

// Prev moves to the previous page, clamped at page 1.
func (p *Pager) Prev() int { return p.GoTo(p.current - 1) }

// CanNext reports whether a page after the current one exists.
func (p *Pager) CanNext() bool { return p.current < p.TotalPages() }

// CanPrev reports whether a page before the current one exists.
func (p *Pager) CanPrev() bool { return p.current > 1 }

// Tokens computes the page window for the pager's current state.
func (p *Pager) Tokens() ([]Token, error) {
	return Range(p.totalCount, p.pageSize, p.current, p.siblingCount)
}

// Offset returns the number of items to skip for the current page.
func (p *Pager) Offset() int64 {
	if p.current <= 1 {
		return 0
	}
	return int64(p.current-1) * int64(p.pageSize)
}

// Limit returns the page size as a storage-layer limit.
func (p *Pager) Limit() int64 { return int64(p.pageSize) }

// SetTotalCount replaces the total item count and re-clamps the current
// page. Negative counts are treated as 0.
func (p *Pager) SetTotalCount(totalCount int) {
	if totalCount < 0 {
		totalCount = 0
	}
	p.totalCount = totalCount
	p.GoTo(p.current)
}

// SetPageSize replaces the page size and re-clamps the current page.
// Sizes below 1 are clamped to 1.
func (p *Pager) SetPageSize(pageSize int) {
	if pageSize < 1 {
		pageSize = 1
	}
	p.pageSize = pageSize
	p.GoTo(p.current)
}
