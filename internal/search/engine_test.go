package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"housing_finder/internal/dataset"
	"housing_finder/internal/domain"
	"housing_finder/internal/search"
)

func rent(f float64) *float64 { return &f }
func ami(f float64) *float64  { return &f }

func testListings() []domain.Listing {
	return []domain.Listing{
		{ID: 1, Address: "123 Peachtree St", City: "Atlanta", State: "GA", ZipCode: "30303",
			MonthlyRent: rent(750), Bedrooms: 2, LanguagesSpoken: "English, Spanish",
			Section8Accepted: true, HUDApproved: true, LowIncomeEligible: true, NearbyTransit: true,
			PetsAllowed: true, AccessibilityFeatures: "Wheelchair ramp", IncomeLimitAMI: ami(60)},
		{ID: 2, Address: "88 Ashby Grove", City: "Atlanta", State: "GA", ZipCode: "30314",
			MonthlyRent: rent(680), Bedrooms: 1, LanguagesSpoken: "English, Somali",
			Section8Accepted: true, LowIncomeEligible: true, NearbyTransit: true,
			UtilitiesIncluded: true, AccessibilityFeatures: "None", IncomeLimitAMI: ami(50)},
		{ID: 3, Address: "450 Glenwood Ave", City: "Decatur", State: "GA", ZipCode: "30030",
			MonthlyRent: rent(825), Bedrooms: 2, LanguagesSpoken: "English, Chinese",
			HUDApproved: true, LowIncomeEligible: true, PetsAllowed: true,
			AccessibilityFeatures: "Elevator", IncomeLimitAMI: ami(80)},
		{ID: 4, Address: "12 Main St", City: "Jonesboro", State: "GA", ZipCode: "30236",
			MonthlyRent: nil, Bedrooms: 3, LanguagesSpoken: "English", PetsAllowed: true,
			AccessibilityFeatures: "None"},
		{ID: 5, Address: "77 Clairmont Rd", City: "Brookhaven", State: "GA", ZipCode: "30319",
			MonthlyRent: rent(1150), Bedrooms: 1, LanguagesSpoken: "English, Amharic, Arabic",
			NearbyTransit: true, AccessibilityFeatures: "None"},
	}
}

func newEngine() *search.Engine {
	return search.New(dataset.FromListings(testListings()), search.DefaultWeights())
}

func TestSearch_MaxRent(t *testing.T) {
	out := newEngine().Search(domain.SearchParams{MaxRent: rent(750)})
	require.NotEmpty(t, out)
	for _, r := range out {
		require.NotNil(t, r.MonthlyRent)
		assert.LessOrEqual(t, *r.MonthlyRent, 750.0)
		// listing 4 has no rent and must be excluded
		assert.NotEqual(t, int64(4), r.ID)
	}
}

func TestSearch_MinBedrooms(t *testing.T) {
	out := newEngine().Search(domain.SearchParams{MinBedrooms: 2})
	require.NotEmpty(t, out)
	for _, r := range out {
		assert.GreaterOrEqual(t, r.Bedrooms, 2)
	}
}

func TestSearch_CityCaseInsensitive(t *testing.T) {
	out := newEngine().Search(domain.SearchParams{City: " atLANta "})
	require.Len(t, out, 2)
	for _, r := range out {
		assert.Equal(t, "Atlanta", r.City)
	}
}

func TestSearch_StateAndZip(t *testing.T) {
	assert.Len(t, newEngine().Search(domain.SearchParams{State: "ga"}), 5)
	assert.Empty(t, newEngine().Search(domain.SearchParams{State: "NY"}))

	out := newEngine().Search(domain.SearchParams{ZipCode: " 30030 "})
	require.Len(t, out, 1)
	assert.Equal(t, int64(3), out[0].ID)
}

func TestSearch_BooleanFlags(t *testing.T) {
	e := newEngine()
	for _, r := range e.Search(domain.SearchParams{Section8: true}) {
		assert.True(t, r.Section8Accepted)
	}
	for _, r := range e.Search(domain.SearchParams{HUDApproved: true}) {
		assert.True(t, r.HUDApproved)
	}
	for _, r := range e.Search(domain.SearchParams{LowIncomeOnly: true}) {
		assert.True(t, r.LowIncomeEligible)
	}
	for _, r := range e.Search(domain.SearchParams{NeedsTransit: true}) {
		assert.True(t, r.NearbyTransit)
	}
	for _, r := range e.Search(domain.SearchParams{PetsAllowed: true}) {
		assert.True(t, r.PetsAllowed)
	}
}

func TestSearch_Accessibility(t *testing.T) {
	out := newEngine().Search(domain.SearchParams{Accessibility: true})
	require.Len(t, out, 2) // "None" and empty don't count
	for _, r := range out {
		assert.True(t, r.HasAccessibility())
	}
}

func TestSearch_AMIPercent(t *testing.T) {
	limit := 60
	out := newEngine().Search(domain.SearchParams{AMIPercent: &limit})
	require.Len(t, out, 2)
	for _, r := range out {
		require.NotNil(t, r.IncomeLimitAMI)
		assert.LessOrEqual(t, *r.IncomeLimitAMI, 60.0)
	}
}

func TestSearch_LanguageAliasEquivalence(t *testing.T) {
	e := newEngine()
	alias := e.Search(domain.SearchParams{Language: "mandarin"})
	direct := e.Search(domain.SearchParams{Language: "Chinese"})
	require.Equal(t, len(direct), len(alias))
	for i := range alias {
		assert.Equal(t, direct[i].ID, alias[i].ID)
	}
	require.NotEmpty(t, alias)
	assert.Equal(t, int64(3), alias[0].ID)
}

func TestSearch_SortedByScoreDescending(t *testing.T) {
	out := newEngine().Search(domain.SearchParams{})
	require.NotEmpty(t, out)
	for i := 1; i < len(out); i++ {
		assert.GreaterOrEqual(t, out[i-1].Score, out[i].Score)
	}
}

func TestSearch_TopN(t *testing.T) {
	out := newEngine().Search(domain.SearchParams{TopN: 3})
	assert.Len(t, out, 3)
}

func TestSearch_NoMatchReturnsEmpty(t *testing.T) {
	out := newEngine().Search(domain.SearchParams{MaxRent: rent(1), MinBedrooms: 10})
	assert.Empty(t, out)
}

func TestSearch_StableTieOrder(t *testing.T) {
	ls := []domain.Listing{
		{ID: 10, MonthlyRent: rent(600)},
		{ID: 11, MonthlyRent: rent(600)},
		{ID: 12, MonthlyRent: rent(600)},
	}
	e := search.New(dataset.FromListings(ls), search.DefaultWeights())
	out := e.Search(domain.SearchParams{})
	require.Len(t, out, 3)
	assert.Equal(t, []int64{10, 11, 12}, []int64{out[0].ID, out[1].ID, out[2].ID})
}

func TestScore_Composite(t *testing.T) {
	w := search.DefaultWeights()

	// rent 600 -> 40 - 20 = 20 affordability
	l := domain.Listing{MonthlyRent: rent(600)}
	assert.Equal(t, 20.0, w.Score(l))

	// all bonuses on top
	l.LowIncomeEligible = true
	l.Section8Accepted = true
	l.HUDApproved = true
	l.NearbyTransit = true
	l.UtilitiesIncluded = true
	l.AccessibilityFeatures = "Ramp"
	assert.Equal(t, 70.0, w.Score(l))

	// rent at or above 1200 contributes nothing
	assert.Equal(t, 0.0, w.Score(domain.Listing{MonthlyRent: rent(1200)}))
	assert.Equal(t, 0.0, w.Score(domain.Listing{MonthlyRent: rent(5000)}))

	// missing rent contributes nothing
	assert.Equal(t, 15.0, w.Score(domain.Listing{LowIncomeEligible: true}))

	// "None" accessibility earns no bonus
	assert.Equal(t, 0.0, w.Score(domain.Listing{AccessibilityFeatures: "None"}))
}

func TestScore_Deterministic(t *testing.T) {
	w := search.DefaultWeights()
	l := testListings()[0]
	first := w.Score(l)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, w.Score(l))
	}
}

func TestScore_RoundedToTwoDecimals(t *testing.T) {
	w := search.DefaultWeights()
	// 40 - 700/30 = 16.666... -> 16.67
	assert.Equal(t, 16.67, w.Score(domain.Listing{MonthlyRent: rent(700)}))
}
