package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/MarekLipan/generated-adventures/models"
)

const (
	mongoDatabase   = "adventures"
	gamesCollection = "games"
)

// MongoStore persists games as documents in MongoDB, one per game keyed by
// the game id. Used instead of the file store when MONGODB_URI is set.
type MongoStore struct {
	client *mongo.Client
	games  *mongo.Collection
}

// NewMongoStore connects and pings the database.
func NewMongoStore(ctx context.Context, uri string) (*MongoStore, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return &MongoStore{
		client: client,
		games:  client.Database(mongoDatabase).Collection(gamesCollection),
	}, nil
}

// Close disconnects from the database.
func (s *MongoStore) Close(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

func (s *MongoStore) Get(ctx context.Context, id string) (*models.Game, error) {
	var game models.Game
	err := s.games.FindOne(ctx, bson.M{"_id": id}).Decode(&game)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &game, nil
}

func (s *MongoStore) Put(ctx context.Context, game *models.Game) error {
	opts := options.Replace().SetUpsert(true)
	_, err := s.games.ReplaceOne(ctx, bson.M{"_id": game.ID}, game, opts)
	return err
}

func (s *MongoStore) List(ctx context.Context) ([]GameSummary, error) {
	cursor, err := s.games.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "updated_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	summaries := []GameSummary{}
	for cursor.Next(ctx) {
		var game models.Game
		if err := cursor.Decode(&game); err != nil {
			continue
		}
		summaries = append(summaries, summarize(&game))
	}
	return summaries, cursor.Err()
}

func (s *MongoStore) Delete(ctx context.Context, id string) error {
	result, err := s.games.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
