package domain

import (
	"context"
	"errors"
)

var (
	ErrNotFound      = errors.New("listing not found")
	ErrMissingColumn = errors.New("required column missing")
)

// ListingRepository persists listings (MySQL). The API process can source its
// in-memory dataset from here instead of the CSV file.
type ListingRepository interface {
	// Write paths (ingestor)
	UpsertListings(ctx context.Context, ls []Listing) error

	// Read paths
	GetListing(ctx context.Context, id int64) (Listing, error)
	LoadAll(ctx context.Context) ([]Listing, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// MessageTransport places calls and sends texts to agents (Twilio-shaped).
// Misconfiguration and network failures come back inside the ContactResult.
type MessageTransport interface {
	Call(ctx context.Context, to, script string) ContactResult
	SMS(ctx context.Context, to, body string) ContactResult
}

// Mailer delivers the localized inquiry email.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) ContactResult
}

// SpeechInput is the optional microphone capability. The default
// implementation always reports unavailable; text input is the fallback.
type SpeechInput interface {
	Available() bool
	Listen(ctx context.Context) (string, error)
}
