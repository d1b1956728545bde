package courseRepo

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

// MongoCourseRepo implements CourseRepository using MongoDB.
type MongoCourseRepo struct {
	coll *mongo.Collection
}

// NewMongoCourseRepo creates a new instance of CourseRepository using MongoDB.
func NewMongoCourseRepo() CourseRepository {
	coll := database.DB().Collection("courses")
	repo := &MongoCourseRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoCourseRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "minAge", Value: 1}, {Key: "maxAge", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoCourseRepo) GetByID(id string) (*models.Course, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var course models.Course
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&course); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("course with id %s not found", id)
		}
		return nil, fmt.Errorf("failed to fetch course with id %s: %w", id, err)
	}
	return &course, nil
}

func (r *MongoCourseRepo) GetAll() ([]models.Course, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch courses: %w", err)
	}
	defer cursor.Close(ctx)

	var courses []models.Course
	if err := cursor.All(ctx, &courses); err != nil {
		return nil, fmt.Errorf("failed to decode courses: %w", err)
	}
	return courses, nil
}

// FindByAge returns age-eligible courses in ascending id order so ranking
// ties stay reproducible.
func (r *MongoCourseRepo) FindByAge(age int) ([]models.Course, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"minAge": bson.M{"$lte": age},
		"maxAge": bson.M{"$gte": age},
	}
	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch courses for age %d: %w", age, err)
	}
	defer cursor.Close(ctx)

	var courses []models.Course
	if err := cursor.All(ctx, &courses); err != nil {
		return nil, fmt.Errorf("failed to decode courses: %w", err)
	}
	return courses, nil
}

func (r *MongoCourseRepo) Create(course *models.Course) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, course); err != nil {
		return fmt.Errorf("failed to create course: %w", err)
	}
	return nil
}

func (r *MongoCourseRepo) Update(course *models.Course) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": course.ID}
	update := bson.M{"$set": course}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update course with id %s: %w", course.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("course with id %s not found", course.ID)
	}
	return nil
}

func (r *MongoCourseRepo) SetTags(id string, tags []string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"tags": tags}})
	if err != nil {
		return fmt.Errorf("failed to set tags for course %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("course with id %s not found", id)
	}
	return nil
}

func (r *MongoCourseRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete course with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("course with id %s not found", id)
	}
	return nil
}

func (r *MongoCourseRepo) Count() (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count courses: %w", err)
	}
	return n, nil
}
