// Package pagination provides page windowing over in-memory collections for
// list surfaces.
package pagination

import "math"

// PageRequest holds pagination parameters.
type PageRequest struct {
	Page     int
	PageSize int
}

// Defaults fills in default values when page or page_size are not provided.
// Non-positive values count as not provided, so a hostile or buggy caller
// cannot drive Slice out of bounds.
func (p *PageRequest) Defaults() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = 20
	}
}

// Offset returns the index of the first item on the current page.
func (p *PageRequest) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// PageResponse wraps a paginated list of items with metadata.
type PageResponse[T any] struct {
	Data       []T   `json:"data"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalItems int64 `json:"total_items"`
	TotalPages int   `json:"total_pages"`
}

// NewPageResponse creates a PageResponse from the given data and total count.
func NewPageResponse[T any](data []T, page, pageSize int, totalItems int64) PageResponse[T] {
	totalPages := int(math.Ceil(float64(totalItems) / float64(pageSize)))
	if data == nil {
		data = []T{}
	}
	return PageResponse[T]{
		Data:       data,
		Page:       page,
		PageSize:   pageSize,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}

// Slice returns the requested page window of items along with the response
// metadata. Pages past the end yield an empty data slice.
func Slice[T any](items []T, req PageRequest) PageResponse[T] {
	req.Defaults()

	start := req.Offset()
	if start > len(items) {
		start = len(items)
	}
	end := start + req.PageSize
	if end > len(items) {
		end = len(items)
	}

	page := make([]T, end-start)
	copy(page, items[start:end])
	return NewPageResponse(page, req.Page, req.PageSize, int64(len(items)))
}
