package adapter

import (
	"math"
	"strings"

	domainerror "github.com/finance-app/backend/internal/domain/error"
)

const (
	// DefaultPage is used when the caller does not ask for a page.
	DefaultPage = 1
	// DefaultPageSize is used when the caller does not ask for a page size.
	DefaultPageSize = 10
	// MaxPageSize bounds the number of rows in one page.
	MaxPageSize = 100
)

// SortOrder is the direction of a list ordering.
type SortOrder string

const (
	SortAscending  SortOrder = "asc"
	SortDescending SortOrder = "desc"
)

// ListQuery carries the search, sort and paging options shared by every list endpoint.
// A zero Page or PageSize means "use the default".
type ListQuery struct {
	SearchTerm string
	SortColumn string
	SortOrder  string
	Page       int
	PageSize   int
}

// Normalize applies defaults and validates the query.
func (q ListQuery) Normalize() (ListQuery, error) {
	if q.Page == 0 {
		q.Page = DefaultPage
	}
	if q.PageSize == 0 {
		q.PageSize = DefaultPageSize
	}
	if q.Page < 1 {
		return q, domainerror.NewValidationError(
			domainerror.ErrCodeInvalidPagination, "page", "page must be greater than 0", domainerror.ErrInvalidPagination,
		)
	}
	if q.PageSize < 1 || q.PageSize > MaxPageSize {
		return q, domainerror.NewValidationError(
			domainerror.ErrCodeInvalidPagination, "pageSize", "pageSize must be between 1 and 100", domainerror.ErrInvalidPagination,
		)
	}
	if q.Page-1 > math.MaxInt/q.PageSize {
		return q, domainerror.NewValidationError(
			domainerror.ErrCodeInvalidPagination, "page", "page is out of range", domainerror.ErrInvalidPagination,
		)
	}

	order := strings.ToLower(strings.TrimSpace(q.SortOrder))
	if order != "" && order != string(SortAscending) && order != string(SortDescending) {
		return q, domainerror.NewValidationError(
			domainerror.ErrCodeInvalidSortOrder, "sortOrder", "sortOrder must be 'asc' or 'desc'", domainerror.ErrInvalidSortOrder,
		)
	}
	q.SortOrder = order
	q.SortColumn = strings.ToLower(strings.TrimSpace(q.SortColumn))
	q.SearchTerm = strings.TrimSpace(q.SearchTerm)
	return q, nil
}

// Descending reports whether results are ordered high to low.
func (q ListQuery) Descending() bool {
	return q.SortOrder == string(SortDescending)
}

// Offset is the number of rows skipped before the page starts.
func (q ListQuery) Offset() int {
	return (q.Page - 1) * q.PageSize
}

// PageResult is one page of a user-scoped listing.
type PageResult[T any] struct {
	Items      []T
	Page       int
	PageSize   int
	TotalCount int64
}

// NewPageResult builds a page for the given query.
func NewPageResult[T any](items []T, query ListQuery, totalCount int64) *PageResult[T] {
	if items == nil {
		items = []T{}
	}
	return &PageResult[T]{
		Items:      items,
		Page:       query.Page,
		PageSize:   query.PageSize,
		TotalCount: totalCount,
	}
}

// TotalPages is the number of pages needed for TotalCount rows.
func (p *PageResult[T]) TotalPages() int {
	if p.PageSize <= 0 {
		return 0
	}
	return int((p.TotalCount + int64(p.PageSize) - 1) / int64(p.PageSize))
}

// HasNextPage reports whether a page follows this one.
func (p *PageResult[T]) HasNextPage() bool {
	return p.Page < p.TotalPages()
}

// HasPreviousPage reports whether a page precedes this one.
func (p *PageResult[T]) HasPreviousPage() bool {
	return p.Page > 1
}

// MapPage converts the items of a page, keeping its paging metadata.
func MapPage[T, U any](page *PageResult[T], fn func(T) U) *PageResult[U] {
	items := make([]U, 0, len(page.Items))
	for _, item := range page.Items {
		items = append(items, fn(item))
	}
	return &PageResult[U]{
		Items:      items,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalCount: page.TotalCount,
	}
}
