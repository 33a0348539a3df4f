package query

import (
	"testing"

	"estates/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }
func floatPtr(v float64) *float64 { return &v }

func testCatalog() []model.Property {
	return []model.Property{
		{ID: "p-1", Title: "Lakeside Villa", Location: "Austin", Type: "Villa", Status: "For Sale", PriceValue: 300000, Beds: 4, Baths: 3, SqftValue: 3000, IsFeatured: true},
		{ID: "p-2", Title: "Downtown Loft", Location: "Dallas", Type: "Apartment", Status: "For Rent", PriceValue: 80000, Beds: 1, Baths: 1, SqftValue: 900},
		{ID: "p-3", Title: "Hillside Retreat", Location: "Austin", Type: "House", Status: "For Sale", PriceValue: 450000, Beds: 3, Baths: 2, SqftValue: 2400},
		{ID: "p-4", Title: "Marina Apartment", Location: "Houston", Type: "Apartment", Status: "For Rent", PriceValue: 95000, Beds: 2, Baths: 2, SqftValue: 1100, IsFeatured: true},
		{ID: "p-5", Title: "Garden Estate", Location: "Austin", Type: "Villa", Status: "Under Construction", PriceValue: 700000, Beds: 5, Baths: 4, SqftValue: 5200},
	}
}

func TestApply_EmptyCriteriaReturnsAllInOrder(t *testing.T) {
	catalog := testCatalog()
	results := Apply(catalog, Criteria{})
	require.Len(t, results, len(catalog))
	for i := range catalog {
		assert.Equal(t, catalog[i].ID, results[i].ID)
	}
}

func TestApply_ResultIsSubset(t *testing.T) {
	catalog := testCatalog()
	ids := make(map[string]bool)
	for _, p := range catalog {
		ids[p.ID] = true
	}

	criteria := []Criteria{
		{Search: "villa"},
		{Type: "Apartment"},
		{MinBeds: intPtr(3)},
		{PriceMin: floatPtr(100000), PriceMax: floatPtr(500000)},
		{Featured: true},
		{Status: "For Rent", Sort: SortPriceHigh},
	}
	for _, c := range criteria {
		for _, p := range Apply(catalog, c) {
			assert.True(t, ids[p.ID], "result %s not in the input catalog", p.ID)
		}
	}
}

func TestMatches_PriceRangeInclusive(t *testing.T) {
	p := model.Property{ID: "x", PriceValue: 250000}

	tests := []struct {
		name string
		c    Criteria
		want bool
	}{
		{"inside range", Criteria{PriceMin: floatPtr(100000), PriceMax: floatPtr(300000)}, true},
		{"equal to min", Criteria{PriceMin: floatPtr(250000), PriceMax: floatPtr(300000)}, true},
		{"equal to max", Criteria{PriceMin: floatPtr(100000), PriceMax: floatPtr(250000)}, true},
		{"below min", Criteria{PriceMin: floatPtr(250001)}, false},
		{"above max", Criteria{PriceMax: floatPtr(249999)}, false},
		{"min only, no upper bound", Criteria{PriceMin: floatPtr(200000)}, true},
		{"no bounds", Criteria{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.c.Matches(p))
		})
	}
}

func TestMatches_SearchIsCaseInsensitiveOverTitleAndLocation(t *testing.T) {
	p := model.Property{Title: "Lakeside Villa", Location: "Austin"}

	assert.True(t, Criteria{Search: "LAKESIDE"}.Matches(p))
	assert.True(t, Criteria{Search: "austin"}.Matches(p))
	assert.False(t, Criteria{Search: "miami"}.Matches(p))
}

func TestMatches_ExcludeAndFeatured(t *testing.T) {
	p := model.Property{ID: "p-1", IsFeatured: false}

	assert.False(t, Criteria{Exclude: "p-1"}.Matches(p))
	assert.True(t, Criteria{Exclude: "p-2"}.Matches(p))
	assert.False(t, Criteria{Featured: true}.Matches(p))
	// false means "no constraint", not "require unfeatured"
	featured := model.Property{ID: "p-2", IsFeatured: true}
	assert.True(t, Criteria{Featured: false}.Matches(featured))
}

func TestApply_SortStability(t *testing.T) {
	// Two records share a price; they must keep their original
	// relative order, and repeated runs must agree.
	catalog := []model.Property{
		{ID: "a", PriceValue: 200, Beds: 2},
		{ID: "b", PriceValue: 100, Beds: 2},
		{ID: "c", PriceValue: 200, Beds: 2},
		{ID: "d", PriceValue: 50, Beds: 2},
	}

	first := Apply(catalog, Criteria{Sort: SortPriceLow})
	second := Apply(catalog, Criteria{Sort: SortPriceLow})
	require.Equal(t, first, second)

	gotIDs := []string{first[0].ID, first[1].ID, first[2].ID, first[3].ID}
	assert.Equal(t, []string{"d", "b", "a", "c"}, gotIDs)

	// equal beds everywhere: beds sort must be a no-op reorder
	byBeds := Apply(catalog, Criteria{Sort: SortBeds})
	assert.Equal(t, []string{"a", "b", "c", "d"},
		[]string{byBeds[0].ID, byBeds[1].ID, byBeds[2].ID, byBeds[3].ID})
}

func TestApply_SortKeys(t *testing.T) {
	catalog := testCatalog()

	high := Apply(catalog, Criteria{Sort: SortPriceHigh})
	assert.Equal(t, "p-5", high[0].ID)

	beds := Apply(catalog, Criteria{Sort: SortBeds})
	assert.Equal(t, 5, beds[0].Beds)

	sqft := Apply(catalog, Criteria{Sort: SortSqft})
	assert.Equal(t, "p-5", sqft[0].ID)
}

func TestApply_Limit(t *testing.T) {
	catalog := testCatalog()

	results := Apply(catalog, Criteria{Limit: 2})
	require.Len(t, results, 2)
	assert.Equal(t, "p-1", results[0].ID)
	assert.Equal(t, "p-2", results[1].ID)

	// limit larger than the result set is harmless
	assert.Len(t, Apply(catalog, Criteria{Limit: 50}), len(catalog))
}

func TestApply_RentUnderBudgetSortedAscending(t *testing.T) {
	// Mixed-status catalog, two "For Rent" records at 80000 and 95000.
	results := Apply(testCatalog(), Criteria{
		Status:   "For Rent",
		PriceMax: floatPtr(100000),
		Sort:     SortPriceLow,
	})

	require.Len(t, results, 2)
	assert.Equal(t, 80000.0, results[0].PriceValue)
	assert.Equal(t, 95000.0, results[1].PriceValue)
}
