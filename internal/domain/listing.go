package domain

import "strings"

// Listing is one housing unit row from the dataset. Immutable after load.
type Listing struct {
	ID                    int64    `json:"id"`
	Address               string   `json:"address"`
	City                  string   `json:"city"`
	State                 string   `json:"state"`
	ZipCode               string   `json:"zip_code"`
	MonthlyRent           *float64 `json:"monthly_rent"` // nil when unparsable/absent
	Bedrooms              int      `json:"bedrooms"`
	AgentName             string   `json:"agent_name"`
	AgentPhone            string   `json:"agent_phone"`
	AgentEmail            string   `json:"agent_email"`
	LanguagesSpoken       string   `json:"languages_spoken"` // comma-separated
	Section8Accepted      bool     `json:"section8_accepted"`
	HUDApproved           bool     `json:"hud_approved"`
	LowIncomeEligible     bool     `json:"low_income_eligible"`
	NearbyTransit         bool     `json:"nearby_transit"`
	UtilitiesIncluded     bool     `json:"utilities_included"`
	PetsAllowed           bool     `json:"pets_allowed"`
	AccessibilityFeatures string   `json:"accessibility_features"` // free text; ""/"None" = absent
	IncomeLimitAMI        *float64 `json:"income_limit_percent_ami"`
}

// HasAccessibility reports whether the listing advertises any accessibility
// features. The dataset uses the literal "None" as an empty marker.
func (l Listing) HasAccessibility() bool {
	t := strings.TrimSpace(l.AccessibilityFeatures)
	return t != "" && t != "None"
}

// ScoredListing pairs a listing with its composite search score.
type ScoredListing struct {
	Listing
	Score float64 `json:"score"`
}

// SearchParams is the typed filter bag accepted by the search engine.
// Zero values mean "no filtering on that dimension"; pointer fields
// distinguish "unset" from a legitimate zero.
type SearchParams struct {
	MaxRent       *float64 `json:"max_rent,omitempty"`
	MinBedrooms   int      `json:"min_bedrooms,omitempty"`
	City          string   `json:"city,omitempty"`
	State         string   `json:"state,omitempty"`
	ZipCode       string   `json:"zip_code,omitempty"`
	Language      string   `json:"language,omitempty"`
	Section8      bool     `json:"section8,omitempty"`
	HUDApproved   bool     `json:"hud_approved,omitempty"`
	LowIncomeOnly bool     `json:"low_income_only,omitempty"`
	NeedsTransit  bool     `json:"needs_transit,omitempty"`
	PetsAllowed   bool     `json:"pets_allowed,omitempty"`
	Accessibility bool     `json:"accessibility,omitempty"`
	AMIPercent    *int     `json:"ami_percent,omitempty"`
	TopN          int      `json:"top_n,omitempty"` // 0 = default
}

// ContactRequest identifies the housing seeker reaching out to an agent.
type ContactRequest struct {
	UserName  string `json:"user_name"`
	UserPhone string `json:"user_phone"`
	UserEmail string `json:"user_email,omitempty"`
	Language  string `json:"language,omitempty"` // preferred template language
	Method    string `json:"method,omitempty"`   // call|sms|email
}

// ContactResult is the structured outcome of an outbound transport attempt.
// Transport failures are reported here, never as Go errors to the caller.
type ContactResult struct {
	Success bool   `json:"success"`
	SID     string `json:"sid,omitempty"`
	Error   string `json:"error,omitempty"`
}
