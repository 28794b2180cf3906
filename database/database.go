package database

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"after-school-api/model"
)

const (
	LessonsCollection = "lessons"
	OrdersCollection  = "orders"
)

// Connect opens the single client shared by every request for the lifetime
// of the process and verifies the server is reachable.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("cannot connect to the db: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("db is not available: %w", err)
	}

	return client, nil
}

type MongoLessonStore struct {
	collection *mongo.Collection
}

func NewMongoLessonStore(db *mongo.Database) *MongoLessonStore {
	return &MongoLessonStore{collection: db.Collection(LessonsCollection)}
}

func (s *MongoLessonStore) List(ctx context.Context) ([]model.Lesson, error) {
	return s.find(ctx, bson.M{})
}

func (s *MongoLessonStore) Search(ctx context.Context, term string) ([]model.Lesson, error) {
	return s.find(ctx, buildSearchFilter(term))
}

func (s *MongoLessonStore) find(ctx context.Context, filter bson.M) ([]model.Lesson, error) {
	cursor, err := s.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	lessons := []model.Lesson{}
	if err := cursor.All(ctx, &lessons); err != nil {
		return nil, err
	}

	return lessons, nil
}

// buildSearchFilter matches term case-insensitively against the text fields
// and, when term reads as a number, against price and spaces as well.
func buildSearchFilter(term string) bson.M {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"}

	or := []bson.M{
		{"subject": pattern},
		{"location": pattern},
		{"icon": pattern},
	}

	if n, err := strconv.ParseFloat(term, 64); err == nil {
		or = append(or, bson.M{"price": n}, bson.M{"spaces": n})
	}

	return bson.M{"$or": or}
}

func (s *MongoLessonStore) UpdateFields(ctx context.Context, ref LessonRef, fields map[string]interface{}) (int64, error) {
	result, err := s.collection.UpdateOne(ctx, ref.Filter(), bson.M{"$set": fields})
	if err != nil {
		return 0, err
	}

	return result.MatchedCount, nil
}

func (s *MongoLessonStore) DecrementSpaces(ctx context.Context, ref LessonRef, qty int64) (int64, error) {
	result, err := s.collection.UpdateOne(ctx, ref.Filter(), bson.M{"$inc": bson.M{"spaces": -qty}})
	if err != nil {
		return 0, err
	}

	return result.MatchedCount, nil
}

func (s *MongoLessonStore) ReplaceAll(ctx context.Context, lessons []model.Lesson) error {
	if _, err := s.collection.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}

	docs := make([]interface{}, 0, len(lessons))
	for _, lesson := range lessons {
		docs = append(docs, lesson)
	}

	_, err := s.collection.InsertMany(ctx, docs)
	return err
}

type MongoOrderStore struct {
	collection *mongo.Collection
}

func NewMongoOrderStore(db *mongo.Database) *MongoOrderStore {
	return &MongoOrderStore{collection: db.Collection(OrdersCollection)}
}

func (s *MongoOrderStore) Insert(ctx context.Context, order model.Order) error {
	_, err := s.collection.InsertOne(ctx, order)
	return err
}

func (s *MongoOrderStore) Clear(ctx context.Context) error {
	_, err := s.collection.DeleteMany(ctx, bson.M{})
	return err
}
