package store

import (
	"context"
	"fmt"

	"edutrack-service/pkg/config"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoStore implements DocumentStore over a MongoDB database.
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect opens a client against the configured database and verifies the
// connection before returning.
func Connect(ctx context.Context, cfg *config.MongoConfig) (*MongoStore, error) {
	opts := options.Client().
		ApplyURI(cfg.URL).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetMaxPoolSize(cfg.MaxPoolSize)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect to document store: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping document store: %w", err)
	}

	return &MongoStore{
		client: client,
		db:     client.Database(cfg.DBName),
	}, nil
}

// Name returns the database name.
func (s *MongoStore) Name() string {
	return s.db.Name()
}

// Close disconnects the underlying client.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *MongoStore) Find(ctx context.Context, collection string, filter Document, limit int64) ([]Document, error) {
	opts := options.Find().SetLimit(limit)
	cursor, err := s.db.Collection(collection).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	docs := []Document{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (s *MongoStore) InsertOne(ctx context.Context, collection string, doc Document) (string, error) {
	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}
	return FormatID(res.InsertedID), nil
}

func (s *MongoStore) UpdateOne(ctx context.Context, collection string, filter, patch Document) (int64, error) {
	res, err := s.db.Collection(collection).UpdateOne(ctx, filter, patch)
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

func (s *MongoStore) DeleteOne(ctx context.Context, collection string, filter Document) (int64, error) {
	res, err := s.db.Collection(collection).DeleteOne(ctx, filter)
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (s *MongoStore) ListCollectionNames(ctx context.Context) ([]string, error) {
	return s.db.ListCollectionNames(ctx, bson.M{})
}

func (s *MongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}
