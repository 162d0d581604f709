// internal/core/domain/criteria.go
package domain

import (
	"net/url"
	"strconv"
)

// DateBucket narrows the collection by when a component was added.
type DateBucket string

const (
	DateAnyTime   DateBucket = ""
	DateToday     DateBucket = "today"
	DateThisWeek  DateBucket = "week"
	DateThisMonth DateBucket = "month"
	DateThisYear  DateBucket = "year"
)

// ListCriteria is the client-owned filter/sort state for the component
// collection. A zero value means "unset"; unset fields are excluded from
// the outgoing query so the server never sees an empty-string wildcard.
type ListCriteria struct {
	Search       string
	Category     string
	Location     string
	StockStatus  string
	Manufacturer string
	Supplier     string
	MinQuantity  *int
	MaxQuantity  *int
	MinPrice     *float64
	MaxPrice     *float64
	DateAdded    DateBucket
	Tags         []string
	HasDatasheet *bool
	SortBy       string
	SortOrder    string
}

// CriteriaPatch carries the fields of a shallow filter merge. Nil pointers
// leave the current value untouched.
type CriteriaPatch struct {
	Search       *string
	Category     *string
	Location     *string
	StockStatus  *string
	Manufacturer *string
	Supplier     *string
	MinQuantity  **int
	MaxQuantity  **int
	MinPrice     **float64
	MaxPrice     **float64
	DateAdded    *DateBucket
	Tags         *[]string
	HasDatasheet **bool
	SortBy       *string
	SortOrder    *string
}

// Merge applies a shallow patch and returns the merged criteria.
func (c ListCriteria) Merge(p CriteriaPatch) ListCriteria {
	if p.Search != nil {
		c.Search = *p.Search
	}
	if p.Category != nil {
		c.Category = *p.Category
	}
	if p.Location != nil {
		c.Location = *p.Location
	}
	if p.StockStatus != nil {
		c.StockStatus = *p.StockStatus
	}
	if p.Manufacturer != nil {
		c.Manufacturer = *p.Manufacturer
	}
	if p.Supplier != nil {
		c.Supplier = *p.Supplier
	}
	if p.MinQuantity != nil {
		c.MinQuantity = *p.MinQuantity
	}
	if p.MaxQuantity != nil {
		c.MaxQuantity = *p.MaxQuantity
	}
	if p.MinPrice != nil {
		c.MinPrice = *p.MinPrice
	}
	if p.MaxPrice != nil {
		c.MaxPrice = *p.MaxPrice
	}
	if p.DateAdded != nil {
		c.DateAdded = *p.DateAdded
	}
	if p.Tags != nil {
		c.Tags = *p.Tags
	}
	if p.HasDatasheet != nil {
		c.HasDatasheet = *p.HasDatasheet
	}
	if p.SortBy != nil {
		c.SortBy = *p.SortBy
	}
	if p.SortOrder != nil {
		c.SortOrder = *p.SortOrder
	}
	return c
}

// QueryValues encodes the set fields as query parameters. Field names
// mirror the remote service contract.
func (c ListCriteria) QueryValues() url.Values {
	v := url.Values{}
	setStr := func(key, val string) {
		if val != "" {
			v.Set(key, val)
		}
	}
	setStr("search", c.Search)
	setStr("category", c.Category)
	setStr("location", c.Location)
	setStr("stock_status", c.StockStatus)
	setStr("manufacturer", c.Manufacturer)
	setStr("supplier", c.Supplier)
	setStr("date_added", string(c.DateAdded))
	setStr("sort", c.SortBy)
	setStr("order", c.SortOrder)
	if c.MinQuantity != nil {
		v.Set("min_quantity", strconv.Itoa(*c.MinQuantity))
	}
	if c.MaxQuantity != nil {
		v.Set("max_quantity", strconv.Itoa(*c.MaxQuantity))
	}
	if c.MinPrice != nil {
		v.Set("min_price", strconv.FormatFloat(*c.MinPrice, 'f', -1, 64))
	}
	if c.MaxPrice != nil {
		v.Set("max_price", strconv.FormatFloat(*c.MaxPrice, 'f', -1, 64))
	}
	for _, tag := range c.Tags {
		if tag != "" {
			v.Add("tags", tag)
		}
	}
	if c.HasDatasheet != nil {
		v.Set("has_datasheet", strconv.FormatBool(*c.HasDatasheet))
	}
	return v
}

// Pagination is the client-owned pagination state. Page is 1-based.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalCount int64 `json:"total_count"`
	TotalPages int   `json:"total_pages"`
}

// DefaultPageSize matches the backend's default list page size.
const DefaultPageSize = 20

// DefaultPagination returns the reset pagination state.
func DefaultPagination() Pagination {
	return Pagination{Page: 1, Limit: DefaultPageSize}
}

// PaginationPatch carries the fields of a shallow pagination merge.
type PaginationPatch struct {
	Page  *int
	Limit *int
}

// Merge applies a shallow patch and returns the merged pagination.
func (p Pagination) Merge(patch PaginationPatch) Pagination {
	if patch.Page != nil {
		p.Page = *patch.Page
	}
	if patch.Limit != nil {
		p.Limit = *patch.Limit
	}
	return p
}

// ApplyTotals folds server-reported totals into the state and clamps the
// current page into [1, totalPages] once totals are known.
func (p Pagination) ApplyTotals(totalCount int64, totalPages int) Pagination {
	p.TotalCount = totalCount
	p.TotalPages = totalPages
	if totalPages > 0 && p.Page > totalPages {
		p.Page = totalPages
	}
	if p.Page < 1 {
		p.Page = 1
	}
	return p
}

// QueryValues encodes pagination as query parameters.
func (p Pagination) QueryValues() url.Values {
	v := url.Values{}
	v.Set("page", strconv.Itoa(p.Page))
	v.Set("limit", strconv.Itoa(p.Limit))
	return v
}
