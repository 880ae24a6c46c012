package rewrite

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"google.golang.org/genai"
)

const defaultModel = "gemini-2.5-flash"

// Gemini rewrites messages through the Gemini API
type Gemini struct {
	model    string
	generate func(ctx context.Context, prompt string) (string, error)
	log      zerolog.Logger
}

// NewGemini creates a Gemini rewriter. An empty API key yields ErrAuth.
func NewGemini(ctx context.Context, apiKey, model string, log zerolog.Logger) (*Gemini, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrAuth
	}
	if model == "" {
		model = defaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	g := &Gemini{
		model: model,
		log:   log,
	}
	g.generate = func(ctx context.Context, prompt string) (string, error) {
		resp, err := client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
		if err != nil {
			return "", err
		}
		return resp.Text(), nil
	}
	return g, nil
}

// Rewrite sends instruction and text as a single prompt and returns the trimmed answer.
// One attempt is made.
func (g *Gemini) Rewrite(ctx context.Context, instruction, text string) (string, error) {
	out, err := g.generate(ctx, BuildPrompt(instruction, text))
	if err != nil {
		err = classify(err)
		g.log.Error().Err(err).Str("model", g.model).Msg("Rewrite failed")
		return "", err
	}

	out = strings.TrimSpace(out)
	if out == "" {
		return "", fmt.Errorf("%w: empty response", ErrProvider)
	}
	g.log.Debug().Str("model", g.model).Int("length", len(out)).Msg("Rewrite succeeded")
	return out, nil
}

func classify(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) && isAuthFailure(apiErr) {
		return fmt.Errorf("%w: %s", ErrAuth, apiErr.Message)
	}
	return fmt.Errorf("%w: %v", ErrProvider, err)
}

func isAuthFailure(e genai.APIError) bool {
	switch e.Code {
	case http.StatusUnauthorized, http.StatusForbidden:
		return true
	case http.StatusBadRequest:
		return strings.Contains(strings.ToLower(e.Message), "api key")
	}
	return e.Status == "UNAUTHENTICATED" || e.Status == "PERMISSION_DENIED"
}
