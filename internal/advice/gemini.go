package advice

import (
	"context"
	"log"
	"strings"

	"laplante/coach-app/internal/config"

	"google.golang.org/genai"
)

// geminiModel is a TextModel backed by the Gemini API.
type geminiModel struct {
	client *genai.Client
	model  string
}

// NewGemini builds a Generator for cfg. Without an API key the Generator
// runs unconfigured and only returns fallback text.
func NewGemini(ctx context.Context, cfg config.AdviceConfig, opts ...Option) (*Generator, error) {
	if cfg.APIKey == "" {
		return New(nil, opts...), nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	log.Printf("INFO: Advice generator using model %s", cfg.Model)
	return New(&geminiModel{client: client, model: cfg.Model}, opts...), nil
}

// GenerateText returns the concatenated text parts of the first candidate.
// An empty string means the model produced nothing usable (e.g. safety filters).
func (m *geminiModel) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := m.client.Models.GenerateContent(ctx, m.model, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", nil
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil {
			b.WriteString(part.Text)
		}
	}
	return b.String(), nil
}
