// Package advice produces short coaching sentences from a text-generation
// model. It never returns an error: every failure degrades to fixed text.
package advice

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"unicode/utf8"

	"laplante/coach-app/internal/domain"
	"laplante/coach-app/internal/observability"
)

// Fallback sentences.
const (
	// DefaultAdvice is shown while a request is pending and whenever the
	// model fails or returns nothing.
	DefaultAdvice = "Focus on your progressive overload this week."
	// NoCredentialsAdvice is returned without calling out when no model is configured.
	NoCredentialsAdvice = "Keep logging every session so your coach can fine-tune your next block."
	// DefaultMealIdea is the meal suggestion fallback.
	DefaultMealIdea = "High-protein meal with complex carbs and greens."
)

const maxResponseRunes = 280

// TextModel completes a single prompt.
type TextModel interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// Generator implements the coaching advice boundary on top of a TextModel.
type Generator struct {
	model     TextModel
	coachName string
}

// Option configures a Generator.
type Option func(*Generator)

// WithCoachName sets the coach the advice is phrased for.
func WithCoachName(name string) Option {
	return func(g *Generator) {
		if name != "" {
			g.coachName = name
		}
	}
}

// New creates a Generator. A nil model means no credentials are available.
func New(model TextModel, opts ...Option) *Generator {
	g := &Generator{model: model, coachName: "your coach"}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Configured reports whether a model is available.
func (g *Generator) Configured() bool {
	return g.model != nil
}

// WorkoutAdvice returns one coaching sentence for the given metric history.
func (g *Generator) WorkoutAdvice(ctx context.Context, metrics []domain.Metric) string {
	if g.model == nil {
		observability.RecordAdvice(observability.AdviceFallback)
		return NoCredentialsAdvice
	}
	if len(metrics) == 0 {
		observability.RecordAdvice(observability.AdviceFallback)
		return DefaultAdvice
	}

	payload, err := json.Marshal(metrics)
	if err != nil {
		log.Printf("ERROR: Failed to encode metrics for advice: %v", err)
		observability.RecordAdvice(observability.AdviceFallback)
		return DefaultAdvice
	}
	prompt := fmt.Sprintf("User metrics: %s. Provide one short coaching sentence for %s to tell their client.", payload, g.coachName)
	return g.complete(ctx, "advice", prompt, DefaultAdvice)
}

// MealIdea returns a one-sentence high-protein meal suggestion for goal.
func (g *Generator) MealIdea(ctx context.Context, goal string) string {
	goal = strings.TrimSpace(goal)
	if g.model == nil || goal == "" {
		observability.RecordAdvice(observability.AdviceFallback)
		return DefaultMealIdea
	}
	prompt := fmt.Sprintf("Suggest a high-protein meal for: %s. One sentence.", goal)
	return g.complete(ctx, "meal idea", prompt, DefaultMealIdea)
}

func (g *Generator) complete(ctx context.Context, what, prompt, fallback string) string {
	text, err := g.model.GenerateText(ctx, prompt)
	if err != nil {
		log.Printf("ERROR: Advice generator failed for %s: %v", what, err)
		observability.RecordAdvice(observability.AdviceFallback)
		return fallback
	}
	text = sanitize(text)
	if text == "" {
		log.Printf("WARN: Advice generator returned an empty %s", what)
		observability.RecordAdvice(observability.AdviceFallback)
		return fallback
	}
	observability.RecordAdvice(observability.AdviceGenerated)
	return text
}

// sanitize collapses whitespace, strips wrapping quotes and caps the length.
func sanitize(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	s = strings.TrimSpace(strings.Trim(s, "\"'`“”"))
	if utf8.RuneCountInString(s) > maxResponseRunes {
		r := []rune(s)
		s = strings.TrimSpace(string(r[:maxResponseRunes-1])) + "…"
	}
	return s
}
