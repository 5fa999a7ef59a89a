package state

import (
	"laplante/coach-app/internal/domain"
)

func testState() domain.AppState {
	return domain.AppState{
		Admin: domain.User{ID: "admin-1", Name: "Coach", Role: domain.RoleAdmin},
		Clients: []domain.User{
			{ID: "c-1", Name: "Alex", Role: domain.RoleClient, TodayStatus: domain.StatusNotStarted},
			{ID: "c-2", Name: "Sam", Role: domain.RoleClient, TodayStatus: domain.StatusInProgress},
		},
		Workouts: map[string][]domain.Workout{
			"c-1": {{
				ID:    "w-1",
				Title: "Lower Body",
				Date:  "2025-01-15",
				Exercises: []domain.Exercise{
					{ID: "e-1", Name: "Squat", Sets: 3, Reps: "8-10", LoggedSets: []domain.LoggedSet{}},
					{ID: "e-2", Name: "RDL", Sets: 3, Reps: "12", LoggedSets: []domain.LoggedSet{}},
					{ID: "e-3", Name: "Leg Extension", Sets: 3, Reps: "15", LoggedSets: []domain.LoggedSet{}},
				},
			}},
		},
		Nutrition: map[string]domain.NutritionPlan{},
		Metrics: map[string][]domain.Metric{
			"c-1": {{Date: "2025-01-01", Weight: 80, StrengthScore: 90}},
		},
		Messages: []domain.ChatMessage{},
		Tips:     []domain.Tip{},
		Config:   domain.BusinessConfig{Name: "Test Fitness", LogoURL: pngDataURI},
	}
}

// pngDataURI is a tiny valid image data URI.
const pngDataURI = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mP8z8BQDwAEhQGAhKmMIQAAAABJRU5ErkJggg=="

func exercise(s domain.AppState, clientID, workoutID, exerciseID string) domain.Exercise {
	for _, w := range s.Workouts[clientID] {
		if w.ID != workoutID {
			continue
		}
		for _, e := range w.Exercises {
			if e.ID == exerciseID {
				return e
			}
		}
	}
	return domain.Exercise{}
}

func workout(s domain.AppState, clientID, workoutID string) domain.Workout {
	for _, w := range s.Workouts[clientID] {
		if w.ID == workoutID {
			return w
		}
	}
	return domain.Workout{}
}

func todayStatus(s domain.AppState, clientID string) domain.TodayStatus {
	u, _ := s.FindUser(clientID)
	return u.TodayStatus
}
