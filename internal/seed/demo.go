// Package seed builds the initial application state, either from the
// built-in demo data or from a seed repository.
package seed

import (
	"time"

	"laplante/coach-app/internal/domain"
	"laplante/coach-app/internal/state"
)

// DefaultBusinessName is used when no business name is configured.
const DefaultBusinessName = "La Plante Fitness"

// DemoAdmin is the coach account.
func DemoAdmin() domain.User {
	return domain.User{
		ID:     "admin-1",
		Name:   "Justin La Plante",
		Email:  "justin@laplantefitness.com",
		Phone:  "555-0100",
		Role:   domain.RoleAdmin,
		Avatar: "https://picsum.photos/seed/justin/200",
	}
}

// DemoClients is the fixed client roster. Their TodayStatus values are
// seed-only; at runtime the status is derived from workout progress.
func DemoClients() []domain.User {
	return []domain.User{
		{ID: "c-1", Name: "Alex Thompson", Email: "alex@example.com", Phone: "555-0123", Role: domain.RoleClient, Avatar: "https://picsum.photos/seed/alex/200", TodayStatus: domain.StatusCompleted},
		{ID: "c-2", Name: "Sarah Miller", Email: "sarah@example.com", Phone: "555-0145", Role: domain.RoleClient, Avatar: "https://picsum.photos/seed/sarah/200", TodayStatus: domain.StatusInProgress},
		{ID: "c-3", Name: "James Wilson", Email: "james@example.com", Phone: "555-0167", Role: domain.RoleClient, Avatar: "https://picsum.photos/seed/james/200", TodayStatus: domain.StatusNotStarted},
	}
}

func DemoTips() []domain.Tip {
	return []domain.Tip{
		{ID: "t-1", Title: "The Power of Consistency", Category: "Mindset", Content: "Consistency beats intensity every single time. Focus on showing up today.", Date: "2024-05-15"},
		{ID: "t-2", Title: "Pre-Workout Fueling", Category: "Nutrition", Content: "Consume moderate protein and slow-digesting carbs 90 minutes before your lift.", Date: "2024-05-18"},
	}
}

func DemoMetrics() map[string][]domain.Metric {
	bf := func(v float64) *float64 { return &v }
	return map[string][]domain.Metric{
		"c-1": {
			{Date: "2024-05-01", Weight: 185, BodyFat: bf(18), StrengthScore: 120},
			{Date: "2024-05-08", Weight: 184, BodyFat: bf(17.5), StrengthScore: 125},
			{Date: "2024-05-15", Weight: 182, BodyFat: bf(17), StrengthScore: 130},
		},
		"c-2": {
			{Date: "2024-05-01", Weight: 145, BodyFat: bf(22), StrengthScore: 80},
			{Date: "2024-05-15", Weight: 143, BodyFat: bf(21), StrengthScore: 85},
		},
		"c-3": {
			{Date: "2024-05-15", Weight: 210, BodyFat: bf(25), StrengthScore: 150},
		},
	}
}

// DemoWorkouts assigns today's lower-body session to the first client.
func DemoWorkouts(today time.Time) map[string][]domain.Workout {
	return map[string][]domain.Workout{
		"c-1": {
			{
				ID:          "w-1",
				Title:       "Lower Body Hypertrophy",
				Description: "Focus on quad depth and control.",
				Date:        today.UTC().Format(state.DateLayout),
				Exercises: []domain.Exercise{
					{ID: "e-1", Name: "Barbell Back Squat", Sets: 4, Reps: "8-10", Notes: "Keep upright.", LoggedSets: []domain.LoggedSet{}},
					{ID: "e-2", Name: "Romanian Deadlift", Sets: 3, Reps: "12", Notes: "Feel the stretch.", LoggedSets: []domain.LoggedSet{}},
					{ID: "e-3", Name: "Leg Extensions", Sets: 3, Reps: "15", Notes: "Tempo 3-0-1.", LoggedSets: []domain.LoggedSet{}},
				},
			},
		},
	}
}

func DemoNutrition() map[string]domain.NutritionPlan {
	return map[string]domain.NutritionPlan{
		"c-1": {
			ID:                "n-1",
			DailyGoalCalories: 2600,
			Meals: []domain.Meal{
				{ID: "m-1", Type: domain.MealBreakfast, Name: "Oats with whey and berries", Calories: 550, Macros: domain.Macros{Protein: 40, Carbs: 70, Fat: 10}},
				{ID: "m-2", Type: domain.MealLunch, Name: "Chicken, rice and greens", Calories: 750, Macros: domain.Macros{Protein: 55, Carbs: 90, Fat: 15}},
				{ID: "m-3", Type: domain.MealDinner, Name: "Salmon with sweet potato", Calories: 800, Macros: domain.Macros{Protein: 50, Carbs: 70, Fat: 30}},
				{ID: "m-4", Type: domain.MealSnack, Name: "Greek yogurt and almonds", Calories: 500, Macros: domain.Macros{Protein: 30, Carbs: 25, Fat: 28}},
			},
		},
	}
}

// Demo returns the full demo state, logged out.
func Demo(today time.Time) domain.AppState {
	return domain.AppState{
		Admin:     DemoAdmin(),
		Clients:   DemoClients(),
		Workouts:  DemoWorkouts(today),
		Nutrition: DemoNutrition(),
		Metrics:   DemoMetrics(),
		Messages:  []domain.ChatMessage{},
		Tips:      DemoTips(),
		Config:    domain.BusinessConfig{Name: DefaultBusinessName},
	}
}
