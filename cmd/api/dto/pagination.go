package dto

import (
	"clip-cast/pagination"
)

// PageItem is one element of the page navigation window.
// Either Page is set (a navigable page number) or Gap is true (an elided run).
// Current marks the page the listing was resolved against.
type PageItem struct {
	Page    int  `json:"page,omitempty"`
	Gap     bool `json:"gap,omitempty"`
	Current bool `json:"current,omitempty"`
}

// Pagination is a generic pagination envelope for list results
// T is the element type of the Data slice
// Total represents the total number of items matching the filters (without pagination)
// Page is 1-based; PageSize is the requested page size
// Pages carries the page navigation window so clients render pagers without
// reimplementing the windowing rules.
//
// Example: Pagination[VideoDTO]
type Pagination[T any] struct {
	Data       []T        `json:"data"`
	Page       int        `json:"page"`
	PageSize   int        `json:"page_size"`
	Total      int64      `json:"total"`
	TotalPages int        `json:"total_pages"`
	HasNext    bool       `json:"has_next"`
	HasPrev    bool       `json:"has_prev"`
	Pages      []PageItem `json:"pages"`
}

// NewPagination assembles the envelope including the page window tokens.
// page and pageSize are expected to be already normalized (>=1).
func NewPagination[T any](data []T, total int64, page, pageSize, siblingCount int) (Pagination[T], error) {
	tokens, err := pagination.Range(int(total), pageSize, page, siblingCount)
	if err != nil {
		return Pagination[T]{}, err
	}

	totalPages := pagination.TotalPages(int(total), pageSize)

	// 토큰 윈도우는 범위를 벗어난 페이지를 경계로 클램프해 계산하므로
	// current 표시도 같은 기준을 따른다.
	effective := page
	if totalPages == 0 {
		effective = 0
	} else if effective > totalPages {
		effective = totalPages
	} else if effective < 1 {
		effective = 1
	}

	items := make([]PageItem, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Gap {
			items = append(items, PageItem{Gap: true})
			continue
		}
		items = append(items, PageItem{
			Page:    tok.Page,
			Current: tok.Page == effective,
		})
	}

	return Pagination[T]{
		Data:       data,
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    effective > 0 && effective < totalPages,
		HasPrev:    effective > 1,
		Pages:      items,
	}, nil
}
