package listing

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func vals(pairs ...string) url.Values {
	v := url.Values{}
	for i := 0; i < len(pairs); i += 2 {
		v.Set(pairs[i], pairs[i+1])
	}
	return v
}

func TestParseFilter(t *testing.T) {
	f := ParseFilter(vals("city", "York", "minPrice", "100", "maxPrice", "2000", "propertyType", "COWORKING", "leaseType", "MONTHLY"))
	if assert.NotNil(t, f.City) {
		assert.Equal(t, "York", *f.City)
	}
	if assert.NotNil(t, f.MinPrice) {
		assert.Equal(t, 100.0, *f.MinPrice)
	}
	if assert.NotNil(t, f.MaxPrice) {
		assert.Equal(t, 2000.0, *f.MaxPrice)
	}
	if assert.NotNil(t, f.PropertyType) {
		assert.Equal(t, "COWORKING", *f.PropertyType)
	}
	if assert.NotNil(t, f.LeaseType) {
		assert.Equal(t, "MONTHLY", *f.LeaseType)
	}
}

func TestParseFilter_AbsentAndUnparsable(t *testing.T) {
	f := ParseFilter(vals())
	assert.Nil(t, f.City)
	assert.Nil(t, f.MinPrice)
	assert.Nil(t, f.MaxPrice)
	assert.Nil(t, f.PropertyType)
	assert.Nil(t, f.LeaseType)

	// Numeric bounds that do not parse are dropped, not zeroed
	f = ParseFilter(vals("minPrice", "cheap", "maxPrice", ""))
	assert.Nil(t, f.MinPrice)
	assert.Nil(t, f.MaxPrice)
}

func TestParsePage_Clamping(t *testing.T) {
	cases := []struct {
		name  string
		query url.Values
		page  int
		limit int
	}{
		{"defaults", vals(), 1, DefaultSearchLimit},
		{"explicit", vals("page", "3", "limit", "20"), 3, 20},
		{"zero page falls back", vals("page", "0"), 1, DefaultSearchLimit},
		{"negative page falls back", vals("page", "-2"), 1, DefaultSearchLimit},
		{"junk page falls back", vals("page", "x"), 1, DefaultSearchLimit},
		{"zero limit falls back", vals("limit", "0"), 1, DefaultSearchLimit},
		{"oversized limit falls back", vals("limit", "500"), 1, DefaultSearchLimit},
		{"max limit is allowed", vals("limit", "100"), 1, 100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := ParsePage(tc.query, DefaultSearchLimit)
			assert.Equal(t, tc.page, p.Page)
			assert.Equal(t, tc.limit, p.Limit)
		})
	}
}

func TestPageParams_Offset(t *testing.T) {
	assert.Equal(t, 0, PageParams{Page: 1, Limit: 9}.Offset())
	assert.Equal(t, 18, PageParams{Page: 3, Limit: 9}.Offset())
}

func TestMeta(t *testing.T) {
	// 25 rows at 9 per page is 3 pages
	m := PageParams{Page: 1, Limit: 9}.Meta(25)
	assert.Equal(t, 3, m.TotalPages)
	assert.Equal(t, int64(25), m.TotalCount)
	assert.True(t, m.HasNextPage)
	assert.False(t, m.HasPreviousPage)

	// Middle page has neighbors on both sides
	m = PageParams{Page: 2, Limit: 9}.Meta(25)
	assert.True(t, m.HasNextPage)
	assert.True(t, m.HasPreviousPage)

	// Last page has no next
	m = PageParams{Page: 3, Limit: 9}.Meta(25)
	assert.False(t, m.HasNextPage)
	assert.True(t, m.HasPreviousPage)

	// Exact multiples do not grow an extra page
	m = PageParams{Page: 1, Limit: 5}.Meta(10)
	assert.Equal(t, 2, m.TotalPages)

	// Empty result sets have zero pages and no next
	m = PageParams{Page: 1, Limit: 9}.Meta(0)
	assert.Equal(t, 0, m.TotalPages)
	assert.False(t, m.HasNextPage)
	assert.False(t, m.HasPreviousPage)
}
