package store

// Pagination defaults and bounds shared by every list operation.
const (
	DefaultPage    = 1
	DefaultPerPage = 10
	MaxPerPage     = 100
)

// ListParams carries pagination inputs for list operations. Zero or
// negative values fall back to the defaults via Normalize.
type ListParams struct {
	Page    int
	PerPage int
}

// Normalize returns a copy with page and per-page clamped into their
// valid ranges.
func (p ListParams) Normalize() ListParams {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.PerPage < 1 {
		p.PerPage = DefaultPerPage
	}
	if p.PerPage > MaxPerPage {
		p.PerPage = MaxPerPage
	}
	return p
}

// Offset returns the row offset for the (already normalized) params.
func (p ListParams) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// Page is one page of a filtered, ordered listing plus the pagination
// metadata every list endpoint returns.
type Page[T any] struct {
	Items       []T
	Total       int
	Pages       int
	CurrentPage int
}

// NewPage assembles a Page, computing the page count as ceil(total/perPage).
// An empty result still reports CurrentPage so clients can render paging
// controls consistently.
func NewPage[T any](items []T, total int, params ListParams) Page[T] {
	pages := 0
	if total > 0 {
		pages = (total + params.PerPage - 1) / params.PerPage
	}
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		Items:       items,
		Total:       total,
		Pages:       pages,
		CurrentPage: params.Page,
	}
}
