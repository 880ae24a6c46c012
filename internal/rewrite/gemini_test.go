package rewrite

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func stubGemini(fn func(ctx context.Context, prompt string) (string, error)) *Gemini {
	return &Gemini{model: "test", generate: fn, log: zerolog.Nop()}
}

func TestBuildPrompt(t *testing.T) {
	assert.Equal(t, "Rends le message plus chaleureux.\n\nBonjour Paul", BuildPrompt("  Rends le message plus chaleureux. ", "Bonjour Paul"))
}

func TestGemini_RewriteTrimsResponse(t *testing.T) {
	var gotPrompt string
	g := stubGemini(func(ctx context.Context, prompt string) (string, error) {
		gotPrompt = prompt
		return "\n  Bonjour cher Paul !  \n", nil
	})

	out, err := g.Rewrite(context.Background(), "Plus chaleureux", "Bonjour Paul")
	require.NoError(t, err)
	assert.Equal(t, "Bonjour cher Paul !", out)
	assert.Equal(t, "Plus chaleureux\n\nBonjour Paul", gotPrompt)
}

func TestGemini_RewriteErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"invalid key", genai.APIError{Code: 400, Message: "API key not valid. Please pass a valid API key."}, ErrAuth},
		{"unauthorized", genai.APIError{Code: 401, Message: "unauthorized"}, ErrAuth},
		{"forbidden wrapped", fmt.Errorf("call: %w", genai.APIError{Code: 403, Message: "denied"}), ErrAuth},
		{"quota", genai.APIError{Code: 429, Message: "quota exceeded"}, ErrProvider},
		{"bad request", genai.APIError{Code: 400, Message: "prompt too long"}, ErrProvider},
		{"network", errors.New("connection reset"), ErrProvider},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := stubGemini(func(ctx context.Context, prompt string) (string, error) {
				return "", tt.err
			})

			_, err := g.Rewrite(context.Background(), "x", "y")
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestGemini_EmptyResponse(t *testing.T) {
	g := stubGemini(func(ctx context.Context, prompt string) (string, error) {
		return "   ", nil
	})

	_, err := g.Rewrite(context.Background(), "x", "y")
	assert.ErrorIs(t, err, ErrProvider)
}

func TestNewGemini_MissingKey(t *testing.T) {
	_, err := NewGemini(context.Background(), " ", "", zerolog.Nop())
	assert.ErrorIs(t, err, ErrAuth)
}
