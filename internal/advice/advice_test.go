package advice

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"laplante/coach-app/internal/domain"

	"github.com/stretchr/testify/require"
)

type fakeModel struct {
	text    string
	err     error
	prompts []string
}

func (m *fakeModel) GenerateText(_ context.Context, prompt string) (string, error) {
	m.prompts = append(m.prompts, prompt)
	return m.text, m.err
}

var sampleMetrics = []domain.Metric{
	{Date: "2025-01-01", Weight: 185, StrengthScore: 120},
	{Date: "2025-01-08", Weight: 184, StrengthScore: 125},
}

func TestWorkoutAdviceWithoutCredentials(t *testing.T) {
	g := New(nil)
	require.False(t, g.Configured())
	require.Equal(t, NoCredentialsAdvice, g.WorkoutAdvice(context.Background(), sampleMetrics))
	require.Equal(t, DefaultMealIdea, g.MealIdea(context.Background(), "bulking"))
}

func TestWorkoutAdviceUsesModel(t *testing.T) {
	model := &fakeModel{text: "  \"Add five pounds to your squat\n this week.\"  "}
	g := New(model, WithCoachName("Justin"))

	got := g.WorkoutAdvice(context.Background(), sampleMetrics)
	require.Equal(t, "Add five pounds to your squat this week.", got)
	require.Len(t, model.prompts, 1)
	require.Contains(t, model.prompts[0], `"weight":185`)
	require.Contains(t, model.prompts[0], "Justin")
}

func TestWorkoutAdviceFallsBack(t *testing.T) {
	t.Run("model error", func(t *testing.T) {
		g := New(&fakeModel{err: errors.New("deadline exceeded")})
		require.Equal(t, DefaultAdvice, g.WorkoutAdvice(context.Background(), sampleMetrics))
	})
	t.Run("empty payload", func(t *testing.T) {
		g := New(&fakeModel{text: "  \n "})
		require.Equal(t, DefaultAdvice, g.WorkoutAdvice(context.Background(), sampleMetrics))
	})
	t.Run("no metrics", func(t *testing.T) {
		model := &fakeModel{text: "unused"}
		g := New(model)
		require.Equal(t, DefaultAdvice, g.WorkoutAdvice(context.Background(), nil))
		require.Empty(t, model.prompts)
	})
}

func TestMealIdea(t *testing.T) {
	model := &fakeModel{text: "Grilled chicken with quinoa and broccoli."}
	g := New(model)

	require.Equal(t, "Grilled chicken with quinoa and broccoli.", g.MealIdea(context.Background(), " cutting "))
	require.Contains(t, model.prompts[0], "cutting")

	require.Equal(t, DefaultMealIdea, g.MealIdea(context.Background(), "   "))
	require.Len(t, model.prompts, 1)

	model.err = errors.New("quota exhausted")
	require.Equal(t, DefaultMealIdea, g.MealIdea(context.Background(), "maintenance"))
}

func TestSanitizeCapsLength(t *testing.T) {
	got := sanitize(strings.Repeat("lift heavy ", 100))
	require.Equal(t, maxResponseRunes, utf8.RuneCountInString(got))
	require.True(t, strings.HasSuffix(got, "…"))
}
