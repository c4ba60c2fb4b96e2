package pagination

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidArgument is returned when a caller passes an input that cannot
// be corrected by clamping (non-positive page size, negative total count).
var ErrInvalidArgument = errors.New("pagination: invalid argument")

// Token is one element of a computed page window: either a concrete
// 1-based page number or a gap (ellipsis) standing for an elided run.
// Gap tokens carry Page == 0.
type Token struct {
	Page int
	Gap  bool
}

func (t Token) String() string {
	if t.Gap {
		return "…"
	}
	return strconv.Itoa(t.Page)
}

// TotalPages returns ceil(totalCount / pageSize). Inputs are not validated;
// callers needing validation go through Range or NewPager.
func TotalPages(totalCount, pageSize int) int {
	if totalCount <= 0 || pageSize <= 0 {
		return 0
	}
	return (totalCount + pageSize - 1) / pageSize
}

// Range computes the ordered window of page tokens to render for a
// pagination control: always the first and last page, the current page with
// up to siblingCount neighbors on each side, and gap tokens where runs of
// pages are elided.
//
// totalCount must be >= 0 and pageSize >= 1, otherwise ErrInvalidArgument.
// currentPage is clamped into [1, totalPages] and a negative siblingCount
// is treated as 0. A zero totalCount yields an empty window and no error.
//
// A gap is emitted purely from the truncation thresholds, so a run of
// exactly one elided page still renders as a gap rather than the page
// itself. Callers that want single pages shown must handle that case
// themselves.
func Range(totalCount, pageSize, currentPage, siblingCount int) ([]Token, error) {
	if pageSize <= 0 {
		return nil, fmt.Errorf("%w: page size must be >= 1, got %d", ErrInvalidArgument, pageSize)
	}
	if totalCount < 0 {
		return nil, fmt.Errorf("%w: total count must be >= 0, got %d", ErrInvalidArgument, totalCount)
	}
	if siblingCount < 0 {
		siblingCount = 0
	}

	totalPages := TotalPages(totalCount, pageSize)
	if totalPages == 0 {
		return []Token{}, nil
	}

	if currentPage < 1 {
		currentPage = 1
	} else if currentPage > totalPages {
		currentPage = totalPages
	}

	// first + last + current + 2 gap slots; fits without truncation when it
	// covers every page
	totalPageNumbers := siblingCount + 5
	if totalPageNumbers >= totalPages {
		return pageRun(1, totalPages), nil
	}

	leftSibling := max(currentPage-siblingCount, 1)
	rightSibling := min(currentPage+siblingCount, totalPages)

	showLeftGap := leftSibling > 2
	showRightGap := rightSibling < totalPages-2

	// width of the solid block kept on the non-truncated side
	itemCount := 3 + 2*siblingCount

	switch {
	case !showLeftGap && showRightGap:
		tokens := pageRun(1, itemCount)
		return append(tokens, Token{Gap: true}, Token{Page: totalPages}), nil
	case showLeftGap && !showRightGap:
		tokens := []Token{{Page: 1}, {Gap: true}}
		return append(tokens, pageRun(totalPages-itemCount+1, totalPages)...), nil
	case showLeftGap && showRightGap:
		tokens := []Token{{Page: 1}, {Gap: true}}
		tokens = append(tokens, pageRun(leftSibling, rightSibling)...)
		return append(tokens, Token{Gap: true}, Token{Page: totalPages}), nil
	}

	// unreachable given the cases above, kept as a safe fallback
	return pageRun(1, totalPages), nil
}

// pageRun returns page tokens for from..to inclusive.
func pageRun(from, to int) []Token {
	if to < from {
		return []Token{}
	}
	tokens := make([]Token, 0, to-from+1)
	for p := from; p <= to; p++ {
		tokens = append(tokens, Token{Page: p})
	}
	return tokens
}
