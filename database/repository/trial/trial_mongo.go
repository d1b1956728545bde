package trialRepo

import (
	"context"
	"fmt"
	"time"

	"coursebot/database"
	"coursebot/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoTrialRepo implements TrialRepository using MongoDB.
type MongoTrialRepo struct {
	trialColl *mongo.Collection
	userColl  *mongo.Collection
}

// NewMongoTrialRepo creates a new instance of TrialRepository using MongoDB.
func NewMongoTrialRepo() TrialRepository {
	db := database.DB()
	repo := &MongoTrialRepo{
		trialColl: db.Collection("trial_lessons"),
		userColl:  db.Collection("users"),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoTrialRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "confirmed", Value: 1}}},
		{Keys: bson.D{{Key: "userId", Value: 1}}},
	}

	_, err := r.trialColl.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoTrialRepo) GetByID(id string) (*models.TrialLesson, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var trial models.TrialLesson
	if err := r.trialColl.FindOne(ctx, bson.M{"id": id}).Decode(&trial); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("trial lesson with id %s not found", id)
		}
		return nil, fmt.Errorf("failed to fetch trial lesson with id %s: %w", id, err)
	}
	return &trial, nil
}

func (r *MongoTrialRepo) GetAll(unconfirmedOnly bool) ([]models.TrialLesson, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{}
	if unconfirmedOnly {
		filter["confirmed"] = false
	}
	cursor, err := r.trialColl.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "date", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch trial lessons: %w", err)
	}
	defer cursor.Close(ctx)

	var trials []models.TrialLesson
	if err := cursor.All(ctx, &trials); err != nil {
		return nil, fmt.Errorf("failed to decode trial lessons: %w", err)
	}
	return trials, nil
}

func (r *MongoTrialRepo) Confirm(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.trialColl.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"confirmed": true}})
	if err != nil {
		return fmt.Errorf("failed to confirm trial lesson %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("trial lesson with id %s not found", id)
	}
	return nil
}

func (r *MongoTrialRepo) Clear() (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.trialColl.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to clear trial lessons: %w", err)
	}
	return result.DeletedCount, nil
}
