// Package twilio is the outbound voice/SMS transport. Calls and texts are
// single at-most-once attempts: no retry, failures are reported in the
// ContactResult so the chat flow never breaks on telephony trouble.
package twilio

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"housing_finder/internal/adapters/observability"
	"housing_finder/internal/domain"
)

const DefaultBaseURL = "https://api.twilio.com/2010-04-01"

type Client struct {
	base string
	hc   *http.Client
	sid  string
	tok  string
	from string
	rl   *rate.Limiter
}

// New builds a transport client. Empty credentials are allowed: every send
// then reports a not-configured result instead of failing construction.
func New(base, sid, token, from string, rps int) *Client {
	if base == "" {
		base = DefaultBaseURL
	}
	if rps <= 0 {
		rps = 1
	}
	return &Client{
		base: base,
		hc:   &http.Client{Timeout: 20 * time.Second},
		sid:  sid,
		tok:  token,
		from: from,
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
	}
}

func (c *Client) configured() bool {
	return c.sid != "" && c.tok != "" && c.from != ""
}

// Call places an automated phone call that reads the script aloud.
func (c *Client) Call(ctx context.Context, to, script string) domain.ContactResult {
	if !c.configured() {
		return notConfigured()
	}
	twiml := fmt.Sprintf(
		"<Response><Say>%s</Say><Pause length='2'/><Say>Goodbye.</Say></Response>",
		html.EscapeString(script),
	)
	form := url.Values{}
	form.Set("Twiml", twiml)
	form.Set("To", to)
	form.Set("From", c.from)
	return c.post(ctx, "Calls", form)
}

// SMS sends a text message to the agent.
func (c *Client) SMS(ctx context.Context, to, body string) domain.ContactResult {
	if !c.configured() {
		return notConfigured()
	}
	form := url.Values{}
	form.Set("Body", body)
	form.Set("To", to)
	form.Set("From", c.from)
	return c.post(ctx, "Messages", form)
}

func notConfigured() domain.ContactResult {
	return domain.ContactResult{
		Success: false,
		Error: "twilio credentials not configured; set TWILIO_ACCOUNT_SID, " +
			"TWILIO_AUTH_TOKEN, TWILIO_PHONE_NUMBER",
	}
}

func (c *Client) post(ctx context.Context, endpoint string, form url.Values) domain.ContactResult {
	if err := c.rl.Wait(ctx); err != nil {
		return domain.ContactResult{Success: false, Error: err.Error()}
	}

	u := fmt.Sprintf("%s/Accounts/%s/%s.json", c.base, c.sid, endpoint)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, strings.NewReader(form.Encode()))
	if err != nil {
		return domain.ContactResult{Success: false, Error: err.Error()}
	}
	req.SetBasicAuth(c.sid, c.tok)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveTransport("twilio", endpoint, 0, time.Since(start))
		return domain.ContactResult{Success: false, Error: err.Error()}
	}
	defer resp.Body.Close()
	observability.ObserveTransport("twilio", endpoint, resp.StatusCode, time.Since(start))

	if resp.StatusCode >= 400 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return domain.ContactResult{
			Success: false,
			Error:   fmt.Sprintf("twilio %s failed: status %d: %s", endpoint, resp.StatusCode, strings.TrimSpace(string(b))),
		}
	}

	var out struct {
		SID string `json:"sid"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return domain.ContactResult{Success: false, Error: "decode twilio response: " + err.Error()}
	}
	return domain.ContactResult{Success: true, SID: out.SID}
}
