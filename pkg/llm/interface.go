// Package llm defines the text generation abstraction used by the résumé
// scanner and the mentorship features.
package llm

import "context"

// Generator turns a prompt into model text. Implementations return serrors
// kinded errors: ErrUnavailable for configuration problems and upstream
// failures alike, with a message safe to show to API clients.
//
//go:generate mockgen -package mockllm -source=interface.go -destination=mock/mockllm.go *
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Messages carried by errors returned from a Generator.
const (
	MsgNotConfigured = "AI service configuration error"
	MsgUnavailable   = "AI service temporarily unavailable"
)
