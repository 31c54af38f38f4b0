// Package search implements the filtering, scoring, and ranking pipeline
// over the in-memory listing dataset.
package search

import (
	"sort"
	"strings"

	"housing_finder/internal/dataset"
	"housing_finder/internal/domain"
	"housing_finder/internal/nlquery"
)

// DefaultTopN caps the result count when SearchParams.TopN is unset.
const DefaultTopN = 10

// Engine runs deterministic, side-effect-free searches over a shared
// read-only dataset. Safe for concurrent use.
type Engine struct {
	ds      *dataset.Dataset
	weights ScoreWeights
}

func New(ds *dataset.Dataset, w ScoreWeights) *Engine {
	return &Engine{ds: ds, weights: w}
}

func (e *Engine) Dataset() *dataset.Dataset { return e.ds }

// Search applies all set filters (AND-composed, order-insensitive), scores
// the surviving listings, and returns them ranked by score descending.
// Ties keep the original dataset order. An empty filtered set is returned
// as-is without scoring.
func (e *Engine) Search(p domain.SearchParams) []domain.ScoredListing {
	var kept []domain.Listing
	for _, l := range e.ds.Listings() {
		if matches(l, p) {
			kept = append(kept, l)
		}
	}
	if len(kept) == 0 {
		return nil
	}

	out := make([]domain.ScoredListing, len(kept))
	for i, l := range kept {
		out[i] = domain.ScoredListing{Listing: l, Score: e.weights.Score(l)}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })

	topN := p.TopN
	if topN <= 0 {
		topN = DefaultTopN
	}
	if len(out) > topN {
		out = out[:topN]
	}
	return out
}

func matches(l domain.Listing, p domain.SearchParams) bool {
	if p.MaxRent != nil {
		// Listings with unknown rent never satisfy a rent cap.
		if l.MonthlyRent == nil || *l.MonthlyRent > *p.MaxRent {
			return false
		}
	}
	if p.MinBedrooms > 0 && l.Bedrooms < p.MinBedrooms {
		return false
	}
	if p.City != "" && !strings.EqualFold(strings.TrimSpace(p.City), l.City) {
		return false
	}
	if p.State != "" && strings.ToUpper(strings.TrimSpace(p.State)) != strings.ToUpper(l.State) {
		return false
	}
	if p.ZipCode != "" && strings.TrimSpace(p.ZipCode) != l.ZipCode {
		return false
	}
	if p.Section8 && !l.Section8Accepted {
		return false
	}
	if p.HUDApproved && !l.HUDApproved {
		return false
	}
	if p.LowIncomeOnly && !l.LowIncomeEligible {
		return false
	}
	if p.NeedsTransit && !l.NearbyTransit {
		return false
	}
	if p.PetsAllowed && !l.PetsAllowed {
		return false
	}
	if p.Accessibility && !l.HasAccessibility() {
		return false
	}
	if p.AMIPercent != nil {
		if l.IncomeLimitAMI == nil || *l.IncomeLimitAMI > float64(*p.AMIPercent) {
			return false
		}
	}
	if p.Language != "" {
		canonical := nlquery.CanonicalLanguage(p.Language)
		if !containsFold(l.LanguagesSpoken, canonical) {
			return false
		}
	}
	return true
}

// containsFold is a case-insensitive substring test.
func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
