// Package chat implements the rule-based assistant: ordered intent
// rules over free text, a permissive catalog sub-filter for
// conversational queries, follow-up suggestions and the per-session
// conversation state machine. The classifier is a pure, synchronous
// function over its inputs; it performs no I/O.
package chat

import (
	"fmt"
	"strings"

	"estates/internal/model"
)

// maxAttached caps how many properties a single reply may carry.
const maxAttached = 3

// Reply is the outcome of classifying one user message.
type Reply struct {
	Text           string
	Properties     []model.Property
	RequestHandoff bool
}

// Responder classifies free-text input against a catalog snapshot.
type Responder struct{}

// NewResponder creates a new responder
func NewResponder() *Responder {
	return &Responder{}
}

// typeKeywords drives the loose type heuristic of the catalog
// sub-filter; listingTypeKeywords is the narrower set used to detect a
// single requested type in a listings request.
var (
	typeKeywords        = []string{"apartment", "villa", "penthouse", "house", "estate", "mansion", "chalet", "contemporary"}
	listingTypeKeywords = []string{"apartment", "villa", "penthouse", "chalet", "house"}
)

// Respond evaluates the intent rules in precedence order and returns
// the reply of the first rule that matches. Order is a designed
// precedence: a handoff request wins even when the same message also
// carries buy keywords.
func (r *Responder) Respond(text string, catalog []model.Property) Reply {
	lower := strings.ToLower(text)

	switch {
	case containsAny(lower, "agent", "human", "representative", "advisor"):
		return Reply{
			Text: "Of course. I can connect you with one of our property advisors right away. " +
				"Please leave your name and contact details and an agent will reach out shortly.",
			RequestHandoff: true,
		}

	case containsAny(lower, "schedule", "call", "appointment"):
		return Reply{
			Text: "Happy to set that up. You can reach our team on +971 4 555 0120 or sales@meridianestates.com, " +
				"and our offices are open Monday to Saturday, 9:00 to 18:00. " +
				"Share a time that suits you and we will call you back.",
		}

	case containsAny(lower, "buy", "purchase", "looking for"):
		return r.buyReply(lower, catalog)

	case containsAny(lower, "latest", "listings", "available", "show me"):
		return r.listingsReply(lower, catalog)

	case hasPricePhrase(text) || containsAny(lower, "apartment", "villa", "bed", "bedroom"):
		return r.filteredSearchReply(text, lower, catalog)

	case strings.Contains(lower, "sell") || strings.Contains(lower, "rent out"):
		return Reply{
			Text: "Looking to sell or rent out your property? Our valuation team offers a free appraisal. " +
				"Send us the details through the contact page and we will get back to you within one business day.",
		}

	case containsAny(lower, "invest", "investment", "advice"):
		return Reply{
			Text: "Real estate remains one of the strongest long-term investments. " +
				"Our advisors can guide you through current investment opportunities, rental yields and expected returns. " +
				"Would you like tailored guidance?",
		}

	default:
		return Reply{
			Text: "I can help you browse our latest listings, search by budget or location, " +
				"book a viewing, or connect you with an agent. What would you like to do?",
		}
	}
}

func (r *Responder) buyReply(lower string, catalog []model.Property) Reply {
	matches := matchCatalog(lower, catalog)
	if len(matches) == 0 {
		return Reply{
			Text: "I couldn't find an exact match just yet. What budget did you have in mind, " +
				"and do you prefer a particular location, number of bedrooms or property type?",
		}
	}
	if len(matches) == 1 {
		return Reply{
			Text:       "I found 1 property matching your request. Here is what I found:",
			Properties: attach(matches),
		}
	}
	return Reply{
		Text:       fmt.Sprintf("I found %d properties matching your request. Here are the best matches:", len(matches)),
		Properties: attach(matches),
	}
}

func (r *Responder) listingsReply(lower string, catalog []model.Property) Reply {
	kw := ""
	for _, t := range listingTypeKeywords {
		if strings.Contains(lower, t) {
			kw = t
			break
		}
	}

	filtered := catalog
	if kw != "" {
		filtered = nil
		for _, p := range catalog {
			if strings.Contains(strings.ToLower(p.Type), kw) {
				filtered = append(filtered, p)
			}
		}
	}

	affirm := strings.Contains(lower, "available") || strings.Contains(lower, "availability")

	switch {
	case len(filtered) == 0:
		return Reply{
			Text: "We don't have any listings matching that right now, but new projects arrive regularly. " +
				"Feel free to broaden what you're after.",
		}
	case affirm && len(filtered) == 1:
		return Reply{Text: "Yes, we have 1 listing available right now. Here it is:", Properties: attach(filtered)}
	case affirm:
		return Reply{
			Text:       fmt.Sprintf("Yes, we have %d listings available right now. Here are a few of them:", len(filtered)),
			Properties: attach(filtered),
		}
	case len(filtered) == 1:
		return Reply{Text: "Here is the latest listing we have:", Properties: attach(filtered)}
	default:
		return Reply{Text: "Here are the latest listings we have:", Properties: attach(filtered)}
	}
}

func (r *Responder) filteredSearchReply(text, lower string, catalog []model.Property) Reply {
	matches := matchCatalog(lower, catalog)
	if len(matches) == 0 {
		return Reply{
			Text: "Sorry, I couldn't find anything that fits those details. " +
				"Try widening your budget or area and I'll take another look.",
		}
	}

	affirm := strings.Contains(lower, "available") || strings.Contains(lower, "availability")

	switch {
	case affirm && len(matches) == 1:
		return Reply{Text: "Yes, there is 1 property available that fits. Here it is:", Properties: attach(matches)}
	case affirm:
		return Reply{
			Text:       fmt.Sprintf("Yes, there are %d properties available that fit. Here are the best ones:", len(matches)),
			Properties: attach(matches),
		}
	case len(matches) == 1:
		return Reply{Text: "I found 1 property that fits those details. Here is what I found:", Properties: attach(matches)}
	default:
		return Reply{
			Text:       fmt.Sprintf("I found %d properties that fit those details. Here are the top ones:", len(matches)),
			Properties: attach(matches),
		}
	}
}

// matchCatalog is the loose sub-filter used for conversational input.
// Only the price bound is a strict AND; type, location and bedrooms
// form a permissive OR so free-text queries get generous results
// rather than narrow ones.
func matchCatalog(lower string, catalog []model.Property) []model.Property {
	maxPrice := ExtractMaxPrice(lower)
	minBeds := ExtractMinBeds(lower)

	var matches []model.Property
	for _, p := range catalog {
		if p.PriceValue > maxPrice {
			continue
		}

		keywordPresent := false
		typeHit := false
		propType := strings.ToLower(p.Type)
		for _, kw := range typeKeywords {
			if !strings.Contains(lower, kw) {
				continue
			}
			keywordPresent = true
			if strings.Contains(propType, kw) || (propType != "" && strings.Contains(lower, propType)) {
				typeHit = true
			}
		}
		typeOK := !keywordPresent || typeHit

		locOK := p.Location != "" && strings.Contains(lower, strings.ToLower(p.Location))
		bedsOK := minBeds > 0 && p.Beds >= minBeds

		if typeOK || locOK || bedsOK {
			matches = append(matches, p)
		}
	}
	return matches
}

func attach(matches []model.Property) []model.Property {
	if len(matches) > maxAttached {
		matches = matches[:maxAttached]
	}
	out := make([]model.Property, len(matches))
	copy(out, matches)
	return out
}

func hasPricePhrase(text string) bool {
	return pricePattern.MatchString(text)
}

func containsAny(lower string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}
