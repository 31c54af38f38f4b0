package assistant

import (
	"fmt"
	"strings"
	"sync"

	"housing_finder/internal/domain"
)

// WelcomeMessage greets new chat users and doubles as the help text.
const WelcomeMessage = "Welcome to the Housing Finder Assistant! " +
	"I help immigrants and minorities find affordable housing in your area. " +
	"You can ask me things like:\n" +
	"  • 'Find 2-bedroom apartments under $800 in Atlanta'\n" +
	"  • 'Show me Section 8 housing in Decatur'\n" +
	"  • 'I need wheelchair-accessible housing with Spanish-speaking agents'\n" +
	"  • 'Contact agent' after a search to reach out about the top result\n\n" +
	"Type 'quit' to leave.\n"

// Session is a multi-turn conversation. It remembers the last result set so
// a follow-up "contact agent" can refer to it. Safe for concurrent turns
// (the web API shares one session across request handlers).
type Session struct {
	assistant *Assistant

	mu   sync.Mutex
	last []domain.ScoredListing
}

func NewSession(a *Assistant) *Session { return &Session{assistant: a} }

// LastResults returns the result set of the most recent search turn.
func (s *Session) LastResults() []domain.ScoredListing {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

// ProcessTurn handles one user utterance and returns the assistant's reply.
func (s *Session) ProcessTurn(input string) string {
	text := strings.TrimSpace(input)
	if text == "" {
		return "I didn't catch that. Could you please repeat?"
	}

	lower := strings.ToLower(text)

	switch lower {
	case "quit", "exit", "bye", "goodbye":
		return "Goodbye! Good luck with your housing search."
	case "help", "?", "what can you do":
		return WelcomeMessage
	}

	if strings.HasPrefix(lower, "contact") ||
		strings.Contains(lower, "call agent") || strings.Contains(lower, "email agent") {
		return s.contactReply()
	}

	resp := s.assistant.Answer(text)
	s.mu.Lock()
	s.last = resp.Results
	s.mu.Unlock()
	return resp.Summary
}

func (s *Session) contactReply() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.last) == 0 {
		return "Please search for a listing first, then say 'contact agent' " +
			"to reach out about a specific property."
	}
	top := s.last[0]
	return fmt.Sprintf(
		"I can contact %s at %s or %s about %s.\n\n"+
			"To proceed, use the /v1/contact endpoint with listing_id %d, or call %s directly.",
		top.AgentName, top.AgentPhone, top.AgentEmail, top.Address, top.ID, top.AgentPhone,
	)
}
