// Package query turns user-selected listing filters into a matching
// predicate, a deterministic ordering and a canonical query string.
// The predicate core is total: malformed values coming off the wire
// degrade to "constraint absent", they never produce an error.
package query

import (
	"net/url"
	"strconv"
)

// Sort selects the result ordering. SortFeatured is the default and
// keeps insertion order; the other keys re-sort with a stable sort.
type Sort string

const (
	SortFeatured  Sort = "featured"
	SortPriceLow  Sort = "price-low"
	SortPriceHigh Sort = "price-high"
	SortBeds      Sort = "beds"
	SortSqft      Sort = "sqft"
)

// Criteria is the full set of listing filters a caller may apply.
// The zero value matches every record with no limit and default order.
// String fields treat "" and "all" as unconstrained; numeric bounds are
// unconstrained when nil.
type Criteria struct {
	Search   string
	Type     string
	Location string
	Status   string
	MinBeds  *int
	PriceMin *float64
	PriceMax *float64
	Featured bool
	Sort     Sort
	Limit    int
	Exclude  string
}

// ParseSort maps a wire value onto a known sort key. Unknown keys fall
// back to SortFeatured rather than failing.
func ParseSort(s string) Sort {
	switch Sort(s) {
	case SortPriceLow, SortPriceHigh, SortBeds, SortSqft:
		return Sort(s)
	default:
		return SortFeatured
	}
}

// ParseValues decodes GET query parameters into Criteria. Malformed
// numeric values and unknown sort keys are ignored, keeping the
// endpoint tolerant of hand-edited query strings.
func ParseValues(values url.Values) Criteria {
	c := Criteria{
		Search:   values.Get("search"),
		Type:     values.Get("type"),
		Location: values.Get("location"),
		Status:   values.Get("status"),
		Exclude:  values.Get("exclude"),
		Sort:     ParseSort(values.Get("sort")),
	}

	if v := values.Get("minBeds"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MinBeds = &n
		}
	}
	if v := values.Get("priceMin"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.PriceMin = &f
		}
	}
	if v := values.Get("priceMax"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.PriceMax = &f
		}
	}
	if values.Get("featured") == "true" {
		c.Featured = true
	}
	if v := values.Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Limit = n
		}
	}

	return c
}

// Values serializes Criteria for the outbound request. Unconstrained
// fields are omitted entirely: ""/"all" strings, nil bounds, the
// default sort and a false Featured are never sent. Featured only ever
// appears as the literal "true" because absence already means "no
// constraint", not "constrain to false".
func (c Criteria) Values() url.Values {
	values := url.Values{}

	setString := func(key, v string) {
		if v != "" && v != "all" {
			values.Set(key, v)
		}
	}
	setString("search", c.Search)
	setString("type", c.Type)
	setString("location", c.Location)
	setString("status", c.Status)
	setString("exclude", c.Exclude)

	if c.MinBeds != nil {
		values.Set("minBeds", strconv.Itoa(*c.MinBeds))
	}
	if c.PriceMin != nil {
		values.Set("priceMin", strconv.FormatFloat(*c.PriceMin, 'f', -1, 64))
	}
	if c.PriceMax != nil {
		values.Set("priceMax", strconv.FormatFloat(*c.PriceMax, 'f', -1, 64))
	}
	if c.Featured {
		values.Set("featured", "true")
	}
	if c.Sort != "" && c.Sort != SortFeatured {
		values.Set("sort", string(c.Sort))
	}
	if c.Limit > 0 {
		values.Set("limit", strconv.Itoa(c.Limit))
	}

	return values
}

// Encode returns the canonical query-string form of the criteria.
func (c Criteria) Encode() string {
	return c.Values().Encode()
}
