package query

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCriteria_Values_OmitsUnconstrained(t *testing.T) {
	// "all" strings, false booleans and nil bounds must not be sent:
	// absence means "no constraint", not "constrain to false".
	c := Criteria{Type: "all", Featured: false}
	assert.Equal(t, "", c.Encode())

	assert.Equal(t, "", Criteria{}.Encode())
}

func TestCriteria_Values_SetFields(t *testing.T) {
	minBeds := 2
	priceMax := 500000.0
	c := Criteria{
		Search:   "lake",
		Type:     "Villa",
		MinBeds:  &minBeds,
		PriceMax: &priceMax,
		Featured: true,
		Sort:     SortPriceLow,
		Limit:    10,
		Exclude:  "p-9",
	}

	values := c.Values()
	assert.Equal(t, "lake", values.Get("search"))
	assert.Equal(t, "Villa", values.Get("type"))
	assert.Equal(t, "2", values.Get("minBeds"))
	assert.Equal(t, "500000", values.Get("priceMax"))
	assert.Equal(t, "true", values.Get("featured"))
	assert.Equal(t, "price-low", values.Get("sort"))
	assert.Equal(t, "10", values.Get("limit"))
	assert.Equal(t, "p-9", values.Get("exclude"))
	// never sent at all
	assert.False(t, values.Has("location"))
	assert.False(t, values.Has("priceMin"))
}

func TestCriteria_Values_FeaturedNeverFalse(t *testing.T) {
	values := Criteria{Featured: false, Search: "x"}.Values()
	assert.False(t, values.Has("featured"))
}

func TestParseValues_RoundTrip(t *testing.T) {
	minBeds := 3
	priceMin := 100000.0
	priceMax := 900000.0
	in := Criteria{
		Search:   "marina",
		Status:   "For Rent",
		MinBeds:  &minBeds,
		PriceMin: &priceMin,
		PriceMax: &priceMax,
		Featured: true,
		Sort:     SortSqft,
		Limit:    5,
	}

	out := ParseValues(in.Values())
	assert.Equal(t, in, out)
}

func TestParseValues_MalformedInputIgnored(t *testing.T) {
	tests := []struct {
		name  string
		query string
		check func(t *testing.T, c Criteria)
	}{
		{
			name:  "non-numeric priceMin dropped",
			query: "priceMin=abc&priceMax=200000",
			check: func(t *testing.T, c Criteria) {
				assert.Nil(t, c.PriceMin)
				require.NotNil(t, c.PriceMax)
				assert.Equal(t, 200000.0, *c.PriceMax)
			},
		},
		{
			name:  "non-numeric minBeds dropped",
			query: "minBeds=two",
			check: func(t *testing.T, c Criteria) {
				assert.Nil(t, c.MinBeds)
			},
		},
		{
			name:  "unknown sort falls back to featured",
			query: "sort=alphabetical",
			check: func(t *testing.T, c Criteria) {
				assert.Equal(t, SortFeatured, c.Sort)
			},
		},
		{
			name:  "featured only honoured as literal true",
			query: "featured=false",
			check: func(t *testing.T, c Criteria) {
				assert.False(t, c.Featured)
			},
		},
		{
			name:  "non-positive limit dropped",
			query: "limit=-3",
			check: func(t *testing.T, c Criteria) {
				assert.Equal(t, 0, c.Limit)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			require.NoError(t, err)
			tt.check(t, ParseValues(values))
		})
	}
}
