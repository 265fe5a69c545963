// Package listing translates property search parameters into bounded,
// ordered GORM queries and computes the pagination metadata the API returns
// alongside every page.
package listing

import (
	"net/url" // Query parameter access
	"strconv" // String conversion
	"strings" // String manipulation

	"gorm.io/gorm" // GORM ORM library
)

// Pagination limits shared by every listing endpoint
const (
	MaxLimit           = 100 // Upper bound on page size
	DefaultSearchLimit = 9   // Default page size for public search
	DefaultOwnerLimit  = 6   // Default page size for an owner's management view
)

// PropertyFilter holds one optional predicate per supported search parameter.
// Nil fields impose no constraint; set fields are combined with AND.
type PropertyFilter struct {
	City         *string  // Case-insensitive substring match on city
	MinPrice     *float64 // Inclusive lower bound on rent amount
	MaxPrice     *float64 // Inclusive upper bound on rent amount
	PropertyType *string  // Exact match on property type
	LeaseType    *string  // Exact match on lease type
}

// ParseFilter builds a PropertyFilter from query-string parameters.
// Unparsable numeric bounds are treated as absent.
func ParseFilter(q url.Values) PropertyFilter {
	var f PropertyFilter
	if city := q.Get("city"); city != "" {
		f.City = &city // Substring match on city
	}
	if s := q.Get("minPrice"); s != "" {
		// Only apply the bound if the value parses
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			f.MinPrice = &v
		}
	}
	if s := q.Get("maxPrice"); s != "" {
		// Only apply the bound if the value parses
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			f.MaxPrice = &v
		}
	}
	if pt := q.Get("propertyType"); pt != "" {
		f.PropertyType = &pt // Exact property type match
	}
	if lt := q.Get("leaseType"); lt != "" {
		f.LeaseType = &lt // Exact lease type match
	}
	return f
}

// Apply chains a WHERE clause onto the query for each set predicate
func (f PropertyFilter) Apply(q *gorm.DB) *gorm.DB {
	if f.City != nil {
		// LOWER on both sides keeps the substring match case-insensitive across drivers
		q = q.Where("LOWER(city) LIKE ?", "%"+strings.ToLower(*f.City)+"%")
	}
	if f.MinPrice != nil {
		q = q.Where("rent_amount >= ?", *f.MinPrice) // Inclusive lower bound
	}
	if f.MaxPrice != nil {
		q = q.Where("rent_amount <= ?", *f.MaxPrice) // Inclusive upper bound
	}
	if f.PropertyType != nil {
		q = q.Where("property_type = ?", *f.PropertyType) // Filter by property type
	}
	if f.LeaseType != nil {
		q = q.Where("lease_type = ?", *f.LeaseType) // Filter by lease type
	}
	return q
}

// PageParams holds sanitized offset-pagination controls
type PageParams struct {
	Page  int // 1-based page number
	Limit int // Page size
}

// ParsePage reads page and limit from query-string parameters, falling back
// to page 1 and the route's default limit for missing or out-of-range values
func ParsePage(q url.Values, defaultLimit int) PageParams {
	p := PageParams{Page: 1, Limit: defaultLimit} // Defaults
	if s := q.Get("page"); s != "" {
		// Convert page to integer
		if v, err := strconv.Atoi(s); err == nil && v > 0 {
			p.Page = v // Set page if valid
		}
	}
	if s := q.Get("limit"); s != "" {
		// Convert limit to integer
		if v, err := strconv.Atoi(s); err == nil && v > 0 && v <= MaxLimit {
			p.Limit = v // Set limit if valid
		}
	}
	return p
}

// Offset returns the number of rows to skip for this page
func (p PageParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Meta is the pagination metadata returned alongside every page
type Meta struct {
	CurrentPage     int   `json:"currentPage"`     // Requested page
	TotalPages      int   `json:"totalPages"`      // ceil(totalCount / limit)
	TotalCount      int64 `json:"totalCount"`      // Total matching rows
	HasNextPage     bool  `json:"hasNextPage"`     // True when currentPage < totalPages
	HasPreviousPage bool  `json:"hasPreviousPage"` // True when currentPage > 1
}

// Meta computes the pagination metadata for a total row count
func (p PageParams) Meta(totalCount int64) Meta {
	totalPages := int((totalCount + int64(p.Limit) - 1) / int64(p.Limit)) // Ceiling division
	return Meta{
		CurrentPage:     p.Page,              // Requested page
		TotalPages:      totalPages,          // Total pages
		TotalCount:      totalCount,          // Total matching rows
		HasNextPage:     p.Page < totalPages, // More pages after this one
		HasPreviousPage: p.Page > 1,          // Pages before this one
	}
}
