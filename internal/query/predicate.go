package query

import (
	"sort"
	"strings"

	"estates/internal/model"
)

// Matches reports whether a record satisfies every supplied clause.
// Absent clauses are vacuously true, so the zero Criteria matches all.
func (c Criteria) Matches(p model.Property) bool {
	if c.Search != "" {
		needle := strings.ToLower(c.Search)
		if !strings.Contains(strings.ToLower(p.Title), needle) &&
			!strings.Contains(strings.ToLower(p.Location), needle) {
			return false
		}
	}
	if c.Type != "" && c.Type != "all" && p.Type != c.Type {
		return false
	}
	if c.Location != "" && c.Location != "all" && p.Location != c.Location {
		return false
	}
	if c.Status != "" && c.Status != "all" && p.Status != c.Status {
		return false
	}
	if c.MinBeds != nil && p.Beds < *c.MinBeds {
		return false
	}
	if c.PriceMin != nil && p.PriceValue < *c.PriceMin {
		return false
	}
	if c.PriceMax != nil && p.PriceValue > *c.PriceMax {
		return false
	}
	if c.Featured && !p.IsFeatured {
		return false
	}
	if c.Exclude != "" && p.ID == c.Exclude {
		return false
	}
	return true
}

// Apply filters, orders and truncates a catalog snapshot in memory.
// Ordering uses a stable sort so records with equal keys keep their
// original relative order and repeated queries are deterministic.
func Apply(catalog []model.Property, c Criteria) []model.Property {
	results := make([]model.Property, 0, len(catalog))
	for _, p := range catalog {
		if c.Matches(p) {
			results = append(results, p)
		}
	}

	switch c.Sort {
	case SortPriceLow:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].PriceValue < results[j].PriceValue
		})
	case SortPriceHigh:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].PriceValue > results[j].PriceValue
		})
	case SortBeds:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Beds > results[j].Beds
		})
	case SortSqft:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].SqftValue > results[j].SqftValue
		})
	}

	if c.Limit > 0 && len(results) > c.Limit {
		results = results[:c.Limit]
	}

	return results
}
