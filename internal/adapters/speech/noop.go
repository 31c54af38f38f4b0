// Package speech holds the microphone capability. Only the unavailable
// fallback is implemented; speech recognition itself is an external service.
package speech

import "context"

// Noop is the default SpeechInput: always unavailable, so callers fall back
// to keyboard input.
type Noop struct{}

func (Noop) Available() bool { return false }

func (Noop) Listen(ctx context.Context) (string, error) { return "", nil }
