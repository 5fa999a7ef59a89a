package repository

import (
	"context"

	"laplante/coach-app/internal/domain" // Import our defined domain models
)

// Error constants for repository layer
var (
	ErrNotFound = RepositoryError("not found")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// SeedRepository reads the initial application data. It is read-only: runtime
// state is never written back.
type SeedRepository interface {
	// GetAdmin returns the single coach account, or ErrNotFound.
	GetAdmin(ctx context.Context) (*domain.User, error)
	// ListClients returns the client roster in display order.
	ListClients(ctx context.Context) ([]domain.User, error)
	// ListWorkouts returns workouts keyed by client ID, each list in display order.
	ListWorkouts(ctx context.Context) (map[string][]domain.Workout, error)
	// ListMetrics returns metric history keyed by user ID, oldest first.
	ListMetrics(ctx context.Context) (map[string][]domain.Metric, error)
	ListNutritionPlans(ctx context.Context) (map[string]domain.NutritionPlan, error)
	ListTips(ctx context.Context) ([]domain.Tip, error)
	// GetBusinessConfig returns the stored branding, or ErrNotFound.
	GetBusinessConfig(ctx context.Context) (*domain.BusinessConfig, error)
}
