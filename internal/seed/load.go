package seed

import (
	"context"
	"errors"
	"fmt"

	"laplante/coach-app/internal/domain"
	"laplante/coach-app/internal/repository"
)

// --- Error Definitions ---
var (
	ErrDuplicateID = errors.New("duplicate id in seed data")
	ErrInvalidSeed = errors.New("invalid seed data")
)

// Load builds the initial, logged-out state from repo. A missing business
// config falls back to DefaultBusinessName.
func Load(ctx context.Context, repo repository.SeedRepository) (domain.AppState, error) {
	var s domain.AppState

	admin, err := repo.GetAdmin(ctx)
	if err != nil {
		return s, fmt.Errorf("loading admin: %w", err)
	}
	clients, err := repo.ListClients(ctx)
	if err != nil {
		return s, fmt.Errorf("loading clients: %w", err)
	}
	workouts, err := repo.ListWorkouts(ctx)
	if err != nil {
		return s, fmt.Errorf("loading workouts: %w", err)
	}
	metrics, err := repo.ListMetrics(ctx)
	if err != nil {
		return s, fmt.Errorf("loading metrics: %w", err)
	}
	nutrition, err := repo.ListNutritionPlans(ctx)
	if err != nil {
		return s, fmt.Errorf("loading nutrition plans: %w", err)
	}
	tips, err := repo.ListTips(ctx)
	if err != nil {
		return s, fmt.Errorf("loading tips: %w", err)
	}
	cfg := domain.BusinessConfig{Name: DefaultBusinessName}
	stored, err := repo.GetBusinessConfig(ctx)
	switch {
	case err == nil:
		cfg = *stored
	case !errors.Is(err, repository.ErrNotFound):
		return s, fmt.Errorf("loading business config: %w", err)
	}

	s = domain.AppState{
		Admin:     *admin,
		Clients:   clients,
		Workouts:  workouts,
		Nutrition: nutrition,
		Metrics:   metrics,
		Messages:  []domain.ChatMessage{},
		Tips:      tips,
		Config:    cfg,
	}
	Normalize(&s)
	if err := Validate(s); err != nil {
		return domain.AppState{}, err
	}
	return s, nil
}

// Normalize fills nil collections and recomputes each workout's derived
// completion flag.
func Normalize(s *domain.AppState) {
	if s.Clients == nil {
		s.Clients = []domain.User{}
	}
	if s.Workouts == nil {
		s.Workouts = map[string][]domain.Workout{}
	}
	if s.Nutrition == nil {
		s.Nutrition = map[string]domain.NutritionPlan{}
	}
	if s.Metrics == nil {
		s.Metrics = map[string][]domain.Metric{}
	}
	if s.Messages == nil {
		s.Messages = []domain.ChatMessage{}
	}
	if s.Tips == nil {
		s.Tips = []domain.Tip{}
	}
	for clientID, ws := range s.Workouts {
		for i := range ws {
			for j := range ws[i].Exercises {
				if ws[i].Exercises[j].LoggedSets == nil {
					ws[i].Exercises[j].LoggedSets = []domain.LoggedSet{}
				}
			}
			ws[i].IsCompleted = ws[i].AllExercisesCompleted()
		}
		s.Workouts[clientID] = ws
	}
}

// Validate checks roles, id uniqueness per collection and that every keyed
// collection refers to a known user.
func Validate(s domain.AppState) error {
	if s.Admin.ID == "" || s.Admin.Role != domain.RoleAdmin {
		return fmt.Errorf("%w: admin must have an id and the %s role", ErrInvalidSeed, domain.RoleAdmin)
	}

	users := map[string]bool{s.Admin.ID: true}
	for _, c := range s.Clients {
		if c.ID == "" || c.Role != domain.RoleClient {
			return fmt.Errorf("%w: client %q must have an id and the %s role", ErrInvalidSeed, c.ID, domain.RoleClient)
		}
		if users[c.ID] {
			return fmt.Errorf("%w: user %q", ErrDuplicateID, c.ID)
		}
		users[c.ID] = true
	}

	workoutIDs := map[string]bool{}
	for clientID, ws := range s.Workouts {
		if !users[clientID] {
			return fmt.Errorf("%w: workouts for unknown client %q", ErrInvalidSeed, clientID)
		}
		for _, w := range ws {
			if workoutIDs[w.ID] {
				return fmt.Errorf("%w: workout %q", ErrDuplicateID, w.ID)
			}
			workoutIDs[w.ID] = true
			exerciseIDs := map[string]bool{}
			for _, ex := range w.Exercises {
				if ex.Sets <= 0 {
					return fmt.Errorf("%w: exercise %q must prescribe at least one set", ErrInvalidSeed, ex.ID)
				}
				if exerciseIDs[ex.ID] {
					return fmt.Errorf("%w: exercise %q in workout %q", ErrDuplicateID, ex.ID, w.ID)
				}
				exerciseIDs[ex.ID] = true
			}
		}
	}

	for userID := range s.Metrics {
		if !users[userID] {
			return fmt.Errorf("%w: metrics for unknown user %q", ErrInvalidSeed, userID)
		}
	}
	for clientID := range s.Nutrition {
		if !users[clientID] {
			return fmt.Errorf("%w: nutrition plan for unknown client %q", ErrInvalidSeed, clientID)
		}
	}

	tipIDs := map[string]bool{}
	for _, t := range s.Tips {
		if tipIDs[t.ID] {
			return fmt.Errorf("%w: tip %q", ErrDuplicateID, t.ID)
		}
		tipIDs[t.ID] = true
	}
	return nil
}
