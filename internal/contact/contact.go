// Package contact renders localized outreach messages and dispatches them to
// an agent over the configured transport (phone call, SMS, or email).
package contact

import (
	"context"

	"github.com/rs/zerolog/log"

	"housing_finder/internal/domain"
)

// smsLimit is the longest body the SMS transport accepts.
const smsLimit = 1600

// Service contacts listing agents on behalf of a housing seeker. Transport
// failures are reported inside the ContactResult; Service itself never
// returns an error for them.
type Service struct {
	transport domain.MessageTransport
	mailer    domain.Mailer
}

func New(transport domain.MessageTransport, mailer domain.Mailer) *Service {
	return &Service{transport: transport, mailer: mailer}
}

// ContactAgent reaches the listing's agent via req.Method ("call", "sms",
// or "email"; email is the default). Each invocation is a single at-most-once
// attempt.
func (s *Service) ContactAgent(ctx context.Context, l domain.Listing, req domain.ContactRequest) domain.ContactResult {
	if req.Language == "" {
		req.Language = fallbackLanguage
	}

	var res domain.ContactResult
	switch req.Method {
	case "call":
		res = s.transport.Call(ctx, l.AgentPhone, BuildCallScript(l, req))
	case "sms":
		body := BuildCallScript(l, req)
		if r := []rune(body); len(r) > smsLimit {
			body = string(r[:smsLimit])
		}
		res = s.transport.SMS(ctx, l.AgentPhone, body)
	default: // email
		if l.AgentEmail == "" {
			return domain.ContactResult{Success: false, Error: "no agent email for this listing"}
		}
		email := BuildEmail(l, req)
		res = s.mailer.Send(ctx, l.AgentEmail, email.Subject, email.Body)
	}

	if !res.Success {
		log.Warn().
			Int64("listing", l.ID).
			Str("method", req.Method).
			Str("error", res.Error).
			Msg("agent contact failed")
	}
	return res
}
