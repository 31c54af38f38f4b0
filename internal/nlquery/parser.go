// Package nlquery turns free-text housing queries into structured search
// parameters via an ordered list of independent extraction rules. Parsing is
// best-effort and never fails: a rule that doesn't fire simply leaves its
// parameter unset.
package nlquery

import (
	"regexp"
	"strconv"
	"strings"

	"housing_finder/internal/domain"
)

var (
	rentRe = regexp.MustCompile(`\$?\b(\d{3,4})\b`)
	bedsRe = regexp.MustCompile(`(\d)\s*(?:bed(?:room)?s?|br\b)`)
)

// knownCities is the fixed set of city names the city rule recognizes.
// First match wins.
var knownCities = []string{
	"atlanta", "decatur", "norcross", "chamblee", "sandy springs",
	"college park", "brookhaven", "jonesboro",
}

var lowIncomeWords = []string{"low income", "low-income", "affordable", "cheap", "subsidized"}
var transitWords = []string{"transit", "bus", "marta", "train", "public transport"}
var accessWords = []string{"wheelchair", "accessible", "accessibility", "disability", "disabled"}

// Parse extracts search parameters from q. All rules are checked against the
// whole lower-cased input; multiple rules may fire.
func Parse(q string) domain.SearchParams {
	text := strings.ToLower(q)
	var p domain.SearchParams

	if m := rentRe.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			rent := float64(n)
			p.MaxRent = &rent
		}
	}

	if m := bedsRe.FindStringSubmatch(text); m != nil {
		n, _ := strconv.Atoi(m[1])
		p.MinBedrooms = n
	}

	for _, city := range knownCities {
		if strings.Contains(text, city) {
			p.City = titleCase(city)
			break
		}
	}

	// Only Georgia is recognized; the dataset covers the Atlanta metro.
	if strings.Contains(text, " ga ") || strings.Contains(text, "georgia") || strings.HasSuffix(text, " ga") {
		p.State = "GA"
	}

	if strings.Contains(text, "section 8") || strings.Contains(text, "section8") || strings.Contains(text, "voucher") {
		p.Section8 = true
	}

	if strings.Contains(text, "hud") {
		p.HUDApproved = true
	}

	if containsAny(text, lowIncomeWords) {
		p.LowIncomeOnly = true
	}

	if containsAny(text, transitWords) {
		p.NeedsTransit = true
	}

	if strings.Contains(text, "pet") || strings.Contains(text, "dog") || strings.Contains(text, "cat") {
		p.PetsAllowed = true
	}

	if containsAny(text, accessWords) {
		p.Accessibility = true
	}

	for _, a := range languageAliases {
		if strings.Contains(text, a.Alias) {
			p.Language = a.Canonical
			break
		}
	}

	return p
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

// titleCase uppercases the first letter of each space-separated word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
