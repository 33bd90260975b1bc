package workerRepo

import (
	"context"
	"fmt"
	"time"

	"mazdoor/config"
	"mazdoor/database"
	"mazdoor/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoWorkerRepo implements WorkerRepository using MongoDB.
type MongoWorkerRepo struct {
	coll *mongo.Collection
}

// NewMongoWorkerRepo creates a new instance of WorkerRepository using MongoDB.
func NewMongoWorkerRepo() WorkerRepository {
	coll := database.MongoClient.Database(config.AppConfig.DatabaseName).Collection("workers")
	repo := &MongoWorkerRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoWorkerRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "userId", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "rating", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new worker profile document.
func (r *MongoWorkerRepo) Create(profile *models.WorkerProfile) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	profile.CreatedAt = now
	profile.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, profile); err != nil {
		return fmt.Errorf("failed to create worker profile: %w", err)
	}
	return nil
}

// Update modifies an existing worker profile document.
func (r *MongoWorkerRepo) Update(profile *models.WorkerProfile) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	profile.UpdatedAt = time.Now()
	filter := bson.M{"id": profile.ID}
	update := bson.M{"$set": profile}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update worker profile %s: %w", profile.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("worker profile %s not found", profile.ID)
	}
	return nil
}

// GetByID fetches a worker profile by its ID. Returns (nil, nil) when absent.
func (r *MongoWorkerRepo) GetByID(id string) (*models.WorkerProfile, error) {
	return r.findOne(bson.M{"id": id})
}

// GetByUserID fetches the profile owned by the given user account.
func (r *MongoWorkerRepo) GetByUserID(userID string) (*models.WorkerProfile, error) {
	return r.findOne(bson.M{"userId": userID})
}

func (r *MongoWorkerRepo) findOne(filter bson.M) (*models.WorkerProfile, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var profile models.WorkerProfile
	err := r.coll.FindOne(ctx, filter).Decode(&profile)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch worker profile: %w", err)
	}
	return &profile, nil
}

// List returns worker profiles matching the coarse criteria, oldest first so
// downstream sorting is stable across identical queries.
func (r *MongoWorkerRepo) List(criteria ListCriteria) ([]models.WorkerProfile, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{}
	if criteria.Category != "" {
		filter["category"] = criteria.Category
	}
	if criteria.Location != "" {
		filter["location"] = bson.M{"$regex": criteria.Location, "$options": "i"}
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list worker profiles: %w", err)
	}
	defer cursor.Close(ctx)

	var profiles []models.WorkerProfile
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, fmt.Errorf("failed to decode worker profiles: %w", err)
	}
	return profiles, nil
}

// SetRating writes the recomputed rating and review count in one update.
func (r *MongoWorkerRepo) SetRating(workerID string, rating float64, reviewCount int) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": workerID}
	update := bson.M{"$set": bson.M{
		"rating":      rating,
		"reviewCount": reviewCount,
		"updatedAt":   time.Now(),
	}}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to set rating for worker %s: %w", workerID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("worker profile %s not found", workerID)
	}
	return nil
}

// IncrementJobsCompleted bumps the completed-jobs counter atomically.
func (r *MongoWorkerRepo) IncrementJobsCompleted(workerID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": workerID}
	update := bson.M{
		"$inc": bson.M{"jobsCompleted": 1},
		"$set": bson.M{"updatedAt": time.Now()},
	}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to increment jobsCompleted for worker %s: %w", workerID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("worker profile %s not found", workerID)
	}
	return nil
}
