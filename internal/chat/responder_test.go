package chat

import (
	"strings"
	"testing"

	"estates/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() []model.Property {
	return []model.Property{
		{ID: "1", Title: "Lakeside Villa", Location: "Austin", Type: "Villa", Status: "For Sale", PriceValue: 300000, Beds: 4, Baths: 3, SqftValue: 3000, IsFeatured: true},
		{ID: "2", Title: "Downtown Loft", Location: "Dallas", Type: "Apartment", Status: "For Rent", PriceValue: 80000, Beds: 1, Baths: 1, SqftValue: 900},
		{ID: "3", Title: "Marina Apartment", Location: "Houston", Type: "Apartment", Status: "For Rent", PriceValue: 95000, Beds: 2, Baths: 2, SqftValue: 1100},
		{ID: "4", Title: "Garden Estate Villa", Location: "Austin", Type: "Villa", Status: "For Sale", PriceValue: 700000, Beds: 5, Baths: 4, SqftValue: 5200},
		{ID: "5", Title: "Cliffside Penthouse", Location: "Miami", Type: "Penthouse", Status: "For Sale", PriceValue: 1200000, Beds: 3, Baths: 3, SqftValue: 2800},
	}
}

func TestRespond_HandoffBeatsBuy(t *testing.T) {
	// Rule order is a designed precedence: the handoff keyword wins
	// even though the message also carries buy keywords.
	r := NewResponder()
	reply := r.Respond("Can you connect me to an agent? I want to buy a villa", testCatalog())

	assert.True(t, reply.RequestHandoff)
	assert.Empty(t, reply.Properties)
	assert.Contains(t, reply.Text, "advisor")
}

func TestRespond_Scheduling(t *testing.T) {
	r := NewResponder()
	reply := r.Respond("Can I schedule a call?", testCatalog())

	assert.False(t, reply.RequestHandoff)
	assert.Empty(t, reply.Properties)
	assert.Contains(t, strings.ToLower(reply.Text), "call")

	assert.Equal(t,
		[]string{"Schedule a call", "Talk to an agent", "Show latest listings"},
		SuggestedReplies(reply))
}

func TestRespond_BuySingular(t *testing.T) {
	// "500k" bounds the price at 500000; only the Lakeside Villa has
	// 4 beds, matches the villa keyword and sits under the bound.
	catalog := []model.Property{testCatalog()[0]}
	r := NewResponder()
	reply := r.Respond("I'm looking to buy a 4 bed villa under 500k", catalog)

	require.Len(t, reply.Properties, 1)
	assert.Equal(t, "1", reply.Properties[0].ID)
	assert.Contains(t, reply.Text, "1 property")
	assert.Contains(t, reply.Text, "Here is what I found:")
}

func TestRespond_BuyPlural(t *testing.T) {
	r := NewResponder()
	reply := r.Respond("I want to buy a property", testCatalog())

	// no price bound and no keywords: the permissive sub-filter keeps
	// the whole catalog, the reply attaches at most 3
	require.Len(t, reply.Properties, 3)
	assert.Contains(t, reply.Text, "properties")
	assert.Contains(t, reply.Text, "Here are")
}

func TestRespond_BuyNoMatchAsksClarifyingQuestions(t *testing.T) {
	r := NewResponder()
	reply := r.Respond("I want to buy for 1k", testCatalog())

	assert.Empty(t, reply.Properties)
	lower := strings.ToLower(reply.Text)
	assert.Contains(t, lower, "budget")
	assert.Contains(t, lower, "bedrooms")
}

func TestRespond_ListingsByType(t *testing.T) {
	r := NewResponder()
	reply := r.Respond("Show me your latest villa listings", testCatalog())

	require.Len(t, reply.Properties, 2)
	for _, p := range reply.Properties {
		assert.Equal(t, "Villa", p.Type)
	}
	assert.Contains(t, reply.Text, "Here are")
}

func TestRespond_ListingsAvailabilityPhrasing(t *testing.T) {
	r := NewResponder()

	reply := r.Respond("Do you have any villas available?", testCatalog())
	require.Len(t, reply.Properties, 2)
	assert.Contains(t, reply.Text, "Yes, we have 2 listings available")

	single := r.Respond("Any penthouse available?", testCatalog())
	require.Len(t, single.Properties, 1)
	assert.Contains(t, single.Text, "Yes, we have 1 listing available")
	assert.Contains(t, single.Text, "Here it is:")
}

func TestRespond_ListingsCapsAtThree(t *testing.T) {
	r := NewResponder()
	reply := r.Respond("Show me the latest listings", testCatalog())

	assert.Len(t, reply.Properties, 3)
}

func TestRespond_FilteredSearchByBudget(t *testing.T) {
	r := NewResponder()
	reply := r.Respond("anything under 100k?", testCatalog())

	require.Len(t, reply.Properties, 2)
	assert.Equal(t, "2", reply.Properties[0].ID)
	assert.Equal(t, "3", reply.Properties[1].ID)
	assert.Contains(t, reply.Text, "2 properties")
}

func TestRespond_FilteredSearchNoMatchFallback(t *testing.T) {
	r := NewResponder()
	reply := r.Respond("a villa under 1k", testCatalog())

	assert.Empty(t, reply.Properties)
	assert.Contains(t, reply.Text, "Sorry")
}

func TestRespond_SellIntent(t *testing.T) {
	r := NewResponder()
	reply := r.Respond("How do I sell my house?", testCatalog())

	// "house" is not a filtered-search trigger keyword, so the sell
	// rule wins here
	assert.Empty(t, reply.Properties)
	assert.Contains(t, strings.ToLower(reply.Text), "valuation")
}

func TestRespond_InvestmentIntent(t *testing.T) {
	r := NewResponder()
	reply := r.Respond("Is real estate a good investment right now?", testCatalog())

	assert.Empty(t, reply.Properties)
	assert.Contains(t, strings.ToLower(reply.Text), "invest")

	assert.Equal(t,
		[]string{"Share top investment areas", "Expected ROI?", "Talk to an agent"},
		SuggestedReplies(reply))
}

func TestRespond_Default(t *testing.T) {
	r := NewResponder()
	reply := r.Respond("hello there", testCatalog())

	assert.Empty(t, reply.Properties)
	assert.False(t, reply.RequestHandoff)
	assert.Equal(t,
		[]string{"Show latest listings", "Talk to an agent", "What are your fees?"},
		SuggestedReplies(reply))
}

func TestRespond_EmptyCatalogIsGraceful(t *testing.T) {
	r := NewResponder()

	reply := r.Respond("I want to buy a villa", nil)
	assert.Empty(t, reply.Properties)
	assert.NotEmpty(t, reply.Text)

	listings := r.Respond("show me the latest listings", nil)
	assert.Empty(t, listings.Properties)
	assert.NotEmpty(t, listings.Text)
}

func TestMatchCatalog_NoKeywordsKeepsEverything(t *testing.T) {
	// without a type keyword, bed phrase or price bound the heuristic
	// is deliberately generous: the whole catalog passes
	matches := matchCatalog("anything nice?", testCatalog())
	assert.Len(t, matches, len(testCatalog()))
}

func TestMatchCatalog_LocationRescuesTypeMismatch(t *testing.T) {
	// "apartment" excludes the villas through the type heuristic, but
	// the location OR-branch rescues the two Austin villas
	matches := matchCatalog("an apartment in austin", testCatalog())

	ids := make([]string, len(matches))
	for i, p := range matches {
		ids[i] = p.ID
	}
	assert.Equal(t, []string{"1", "2", "3", "4"}, ids)
}

func TestMatchCatalog_PriceIsStrictAnd(t *testing.T) {
	// location and type branches match, but the price bound is a
	// strict AND and excludes every record
	matches := matchCatalog("an apartment in austin under 50k", testCatalog())
	assert.Empty(t, matches)
}
