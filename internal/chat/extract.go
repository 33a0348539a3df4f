package chat

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	pricePattern = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s?(million|thousand|m|k)\b`)
	bedPattern   = regexp.MustCompile(`(?i)(\d+)\s?(?:bedroom|bed)`)
)

// ExtractMaxPrice scans free text for the first "<number><unit>" price
// phrase (unit one of million/m/k/thousand) and returns it as an upper
// bound. Without a phrase the bound is +Inf, i.e. unconstrained.
func ExtractMaxPrice(text string) float64 {
	m := pricePattern.FindStringSubmatch(text)
	if m == nil {
		return math.Inf(1)
	}
	n, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return math.Inf(1)
	}
	switch strings.ToLower(m[2]) {
	case "million", "m":
		return n * 1_000_000
	default: // k, thousand
		return n * 1_000
	}
}

// ExtractMinBeds scans for the first "<n> bed"/"<n> bedroom" phrase and
// returns the minimum bedroom count, or 0 when no phrase is present.
func ExtractMinBeds(text string) int {
	m := bedPattern.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}
