// Package assistant composes the query parser and search engine into a
// conversational housing finder: parse the question, run the search, and
// render a human-readable summary.
package assistant

import (
	"fmt"
	"strconv"
	"strings"

	"housing_finder/internal/domain"
	"housing_finder/internal/nlquery"
	"housing_finder/internal/search"
)

// AnswerTopN caps results for conversational answers; chat replies stay
// readable at five listings.
const AnswerTopN = 5

const noMatchSummary = "I'm sorry, I couldn't find any listings that match your criteria. " +
	"Try broadening your search: increase your budget or expand to nearby cities."

type Assistant struct {
	engine *search.Engine
}

func New(engine *search.Engine) *Assistant { return &Assistant{engine: engine} }

// Response carries everything one question produced.
type Response struct {
	Params  domain.SearchParams    `json:"params"`
	Results []domain.ScoredListing `json:"results"`
	Summary string                 `json:"summary"`
}

// Answer parses a free-text query, searches, and summarizes the outcome.
func (a *Assistant) Answer(text string) Response {
	params := nlquery.Parse(text)
	params.TopN = AnswerTopN
	results := a.engine.Search(params)
	return Response{Params: params, Results: results, Summary: summarize(results)}
}

func summarize(results []domain.ScoredListing) string {
	if len(results) == 0 {
		return noMatchSummary
	}
	var b strings.Builder
	fmt.Fprintf(&b, "I found %d listing(s) that match your needs:\n", len(results))
	for _, r := range results {
		fmt.Fprintf(&b, "\n• %s, %s, %s | $%s/mo | %d bed | Section 8: %s | Agent: %s (%s)",
			r.Address, r.City, r.State,
			formatRent(r.MonthlyRent),
			r.Bedrooms,
			checkMark(r.Section8Accepted),
			r.AgentName, r.AgentPhone,
		)
	}
	return b.String()
}

func checkMark(b bool) string {
	if b {
		return "✓"
	}
	return "✗"
}

// formatRent renders a rent with thousands grouping and no decimals,
// or "N/A" when the rent is unknown.
func formatRent(rent *float64) string {
	if rent == nil {
		return "N/A"
	}
	s := strconv.FormatInt(int64(*rent+0.5), 10)
	if len(s) <= 3 {
		return s
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	return s + "," + strings.Join(parts, ",")
}
