// Package rewrite asks a generative text model to rework a drafted message.
package rewrite

import (
	"context"
	"errors"
	"strings"
)

var (
	// ErrAuth is returned when the API credential is missing or rejected
	ErrAuth = errors.New("rewrite: missing or invalid API key")
	// ErrProvider is returned for every other failure of the provider
	ErrProvider = errors.New("rewrite: provider error")
)

// Rewriter reworks text following an instruction
type Rewriter interface {
	Rewrite(ctx context.Context, instruction, text string) (string, error)
}

// BuildPrompt joins the instruction and the current message into one prompt
func BuildPrompt(instruction, text string) string {
	return strings.TrimSpace(instruction) + "\n\n" + text
}
