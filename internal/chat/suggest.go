package chat

import "strings"

// InitialSuggestions seeds a freshly opened session, before any user
// input has been classified.
var InitialSuggestions = []string{
	"Show latest listings",
	"Talk to an agent",
	"Share investment tips",
}

// SuggestedReplies derives follow-up suggestions from the reply that
// was just produced, not from the user's input. At most 4, no
// duplicates, first-seen order.
func SuggestedReplies(r Reply) []string {
	lower := strings.ToLower(r.Text)

	var options []string
	switch {
	case len(r.Properties) > 0:
		options = []string{"Show more options", "Schedule a viewing", "Talk to an agent", "Save this listing"}
	case strings.Contains(lower, "invest"):
		options = []string{"Share top investment areas", "Expected ROI?", "Talk to an agent"}
	case strings.Contains(lower, "schedule") || strings.Contains(lower, "call"):
		options = []string{"Schedule a call", "Talk to an agent", "Show latest listings"}
	default:
		options = []string{"Show latest listings", "Talk to an agent", "What are your fees?"}
	}

	seen := make(map[string]bool, len(options))
	out := make([]string, 0, 4)
	for _, opt := range options {
		if seen[opt] {
			continue
		}
		seen[opt] = true
		out = append(out, opt)
		if len(out) == 4 {
			break
		}
	}
	return out
}
