package search

import (
	"math"

	"housing_finder/internal/domain"
)

// ScoreWeights holds the composite-score coefficients. The affordability
// term was tuned around the Atlanta rental market (rent of $1,200 earns 0
// points); keeping the constants here rather than inline lets a deployment
// retune them without touching the scoring code.
type ScoreWeights struct {
	AffordabilityCeil    float64 // max points from affordability
	AffordabilityDivisor float64 // rent dollars per point deducted
	LowIncome            float64
	Section8             float64
	HUD                  float64
	Transit              float64
	Utilities            float64
	Accessibility        float64
}

// DefaultWeights mirrors the established scoring behavior.
func DefaultWeights() ScoreWeights {
	return ScoreWeights{
		AffordabilityCeil:    40,
		AffordabilityDivisor: 30,
		LowIncome:            15,
		Section8:             10,
		HUD:                  10,
		Transit:              5,
		Utilities:            5,
		Accessibility:        5,
	}
}

// Score computes the deterministic composite score for a listing, rounded to
// two decimals. Higher is better. Missing rent contributes nothing to the
// affordability term.
func (w ScoreWeights) Score(l domain.Listing) float64 {
	var s float64

	if l.MonthlyRent != nil {
		s += math.Max(0, w.AffordabilityCeil-*l.MonthlyRent/w.AffordabilityDivisor)
	}
	if l.LowIncomeEligible {
		s += w.LowIncome
	}
	if l.Section8Accepted {
		s += w.Section8
	}
	if l.HUDApproved {
		s += w.HUD
	}
	if l.NearbyTransit {
		s += w.Transit
	}
	if l.UtilitiesIncluded {
		s += w.Utilities
	}
	if l.HasAccessibility() {
		s += w.Accessibility
	}

	return math.Round(s*100) / 100
}
