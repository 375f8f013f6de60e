package shasta

import (
	"net/url"
	"strconv"
)

// Sort orders accepted by list endpoints.
const (
	OrderAscending  = "ASC"
	OrderDescending = "DESC"
)

// Default list window.
const (
	DefaultOffset = 0
	DefaultLimit  = 10
)

// ListParams expresses the common list options (offset, limit, order,
// orderBy) plus an optional search filter. A zero Search is omitted from
// the request entirely rather than sent as an empty parameter.
type ListParams struct {
	Offset  int
	Limit   int
	Order   string
	OrderBy string
	Search  string
}

// NewListParams creates list params with the API defaults.
func NewListParams() *ListParams {
	return &ListParams{
		Offset: DefaultOffset,
		Limit:  DefaultLimit,
		Order:  OrderDescending,
	}
}

// WithSearch sets the search filter.
func (p *ListParams) WithSearch(query string) *ListParams {
	p.Search = query

	return p
}

// WithOrderBy sets the sort field.
func (p *ListParams) WithOrderBy(field string) *ListParams {
	p.OrderBy = field

	return p
}

// WithWindow sets the pagination window.
func (p *ListParams) WithWindow(offset, limit int) *ListParams {
	p.Offset = offset
	p.Limit = limit

	return p
}

// ToValues converts the params to URL query values.
func (p *ListParams) ToValues() url.Values {
	values := url.Values{}

	values.Set("offset", strconv.Itoa(p.Offset))

	limit := p.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	values.Set("limit", strconv.Itoa(limit))

	order := p.Order
	if order == "" {
		order = OrderDescending
	}

	values.Set("order", order)

	if p.OrderBy != "" {
		values.Set("orderBy", p.OrderBy)
	}

	if p.Search != "" {
		values.Set("search", p.Search)
	}

	return values
}
