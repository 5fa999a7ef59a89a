// internal/repository/mongo/seed_repo.go
package mongo

import (
	"context"
	"errors"
	"log"

	"laplante/coach-app/internal/domain"
	"laplante/coach-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	userCollectionName           = "users"
	workoutCollectionName        = "workouts"
	metricCollectionName         = "metrics"
	nutritionPlanCollectionName  = "nutrition_plans"
	tipCollectionName            = "tips"
	businessConfigCollectionName = "business_config"
)

// Documents keyed by owner. The owner ID lives next to the embedded domain
// fields so the domain types stay free of storage-only fields.
type workoutDocument struct {
	ClientID       string `bson:"clientId"`
	Sequence       int    `bson:"sequence"` // Display order within the client's list
	domain.Workout `bson:",inline"`
}

type metricDocument struct {
	UserID        string `bson:"userId"`
	domain.Metric `bson:",inline"`
}

type nutritionPlanDocument struct {
	ClientID             string `bson:"clientId"`
	domain.NutritionPlan `bson:",inline"`
}

// mongoSeedRepository implements repository.SeedRepository using MongoDB.
type mongoSeedRepository struct {
	users          *mongo.Collection
	workouts       *mongo.Collection
	metrics        *mongo.Collection
	nutritionPlans *mongo.Collection
	tips           *mongo.Collection
	businessConfig *mongo.Collection
}

// NewMongoSeedRepository creates a seed repository reading from db.
func NewMongoSeedRepository(db *mongo.Database) repository.SeedRepository {
	return &mongoSeedRepository{
		users:          db.Collection(userCollectionName),
		workouts:       db.Collection(workoutCollectionName),
		metrics:        db.Collection(metricCollectionName),
		nutritionPlans: db.Collection(nutritionPlanCollectionName),
		tips:           db.Collection(tipCollectionName),
		businessConfig: db.Collection(businessConfigCollectionName),
	}
}

// GetAdmin retrieves the single coach account.
func (r *mongoSeedRepository) GetAdmin(ctx context.Context) (*domain.User, error) {
	var user domain.User
	filter := bson.M{"role": domain.RoleAdmin}

	err := r.users.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// ListClients retrieves the client roster, sorted by id.
func (r *mongoSeedRepository) ListClients(ctx context.Context) ([]domain.User, error) {
	clients := []domain.User{}
	filter := bson.M{"role": domain.RoleClient}
	findOptions := options.Find().SetSort(bson.D{{Key: "id", Value: 1}})

	cursor, err := r.users.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &clients); err != nil {
		return nil, err
	}
	return clients, nil
}

// ListWorkouts retrieves every workout, grouped by client and sorted by sequence.
func (r *mongoSeedRepository) ListWorkouts(ctx context.Context) (map[string][]domain.Workout, error) {
	var docs []workoutDocument
	findOptions := options.Find().SetSort(bson.D{{Key: "clientId", Value: 1}, {Key: "sequence", Value: 1}})

	cursor, err := r.workouts.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	workouts := make(map[string][]domain.Workout)
	for _, d := range docs {
		workouts[d.ClientID] = append(workouts[d.ClientID], d.Workout)
	}
	return workouts, nil
}

// ListMetrics retrieves metric history grouped by user, oldest first.
// Samples on the same day keep their insertion order.
func (r *mongoSeedRepository) ListMetrics(ctx context.Context) (map[string][]domain.Metric, error) {
	var docs []metricDocument
	findOptions := options.Find().SetSort(bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: 1}, {Key: "_id", Value: 1}})

	cursor, err := r.metrics.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	metrics := make(map[string][]domain.Metric)
	for _, d := range docs {
		metrics[d.UserID] = append(metrics[d.UserID], d.Metric)
	}
	return metrics, nil
}

// ListNutritionPlans retrieves one plan per client. Later documents for the
// same client are ignored.
func (r *mongoSeedRepository) ListNutritionPlans(ctx context.Context) (map[string]domain.NutritionPlan, error) {
	var docs []nutritionPlanDocument
	cursor, err := r.nutritionPlans.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	plans := make(map[string]domain.NutritionPlan)
	for _, d := range docs {
		if _, exists := plans[d.ClientID]; exists {
			log.Printf("WARN: Ignoring extra nutrition plan %q for client %q", d.ID, d.ClientID)
			continue
		}
		plans[d.ClientID] = d.NutritionPlan
	}
	return plans, nil
}

// ListTips retrieves tips sorted by date.
func (r *mongoSeedRepository) ListTips(ctx context.Context) ([]domain.Tip, error) {
	tips := []domain.Tip{}
	findOptions := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "id", Value: 1}})

	cursor, err := r.tips.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &tips); err != nil {
		return nil, err
	}
	return tips, nil
}

// GetBusinessConfig retrieves the branding document.
func (r *mongoSeedRepository) GetBusinessConfig(ctx context.Context) (*domain.BusinessConfig, error) {
	var cfg domain.BusinessConfig
	err := r.businessConfig.FindOne(ctx, bson.M{}).Decode(&cfg)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &cfg, nil
}

// EnsureSeedIndexes creates the id uniqueness indexes for the seed collections.
// Call this once during application startup.
func EnsureSeedIndexes(ctx context.Context, db *mongo.Database) {
	unique := func(keys bson.D) mongo.IndexModel {
		return mongo.IndexModel{Keys: keys, Options: options.Index().SetUnique(true)}
	}
	plan := map[string][]mongo.IndexModel{
		userCollectionName: {
			unique(bson.D{{Key: "id", Value: 1}}),
			{Keys: bson.D{{Key: "role", Value: 1}}, Options: options.Index()},
		},
		workoutCollectionName: {
			unique(bson.D{{Key: "id", Value: 1}}),
			{Keys: bson.D{{Key: "clientId", Value: 1}, {Key: "sequence", Value: 1}}, Options: options.Index()},
		},
		metricCollectionName: {
			{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: 1}}, Options: options.Index()},
		},
		nutritionPlanCollectionName: {unique(bson.D{{Key: "clientId", Value: 1}})},
		tipCollectionName:           {unique(bson.D{{Key: "id", Value: 1}})},
	}

	for name, indexes := range plan {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, indexes); err != nil {
			log.Printf("WARN: Failed to create indexes for collection %s: %v", name, err)
		}
	}
}
