package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
)

// Document is a schema-flexible record as stored in a collection.
type Document = bson.M

// DocumentStore is the persistence collaborator consumed by the handlers.
// Implementations: MongoStore (production), MemoryStore (tests).
type DocumentStore interface {
	// Find returns up to limit documents matching filter, in the store's
	// natural order. An empty result is not an error.
	Find(ctx context.Context, collection string, filter Document, limit int64) ([]Document, error)

	// InsertOne stores a new document and returns its assigned identifier
	// in canonical string form.
	InsertOne(ctx context.Context, collection string, doc Document) (string, error)

	// UpdateOne applies patch to the first document matching filter and
	// returns the matched count.
	UpdateOne(ctx context.Context, collection string, filter, patch Document) (int64, error)

	// DeleteOne removes the first document matching filter and returns the
	// deleted count.
	DeleteOne(ctx context.Context, collection string, filter Document) (int64, error)

	// ListCollectionNames returns the names of existing collections.
	ListCollectionNames(ctx context.Context) ([]string, error)

	// Ping verifies store connectivity.
	Ping(ctx context.Context) error
}

// ErrNotConnected is returned by every operation when no store is installed.
var ErrNotConnected = errors.New("document store not connected")

// activeStore is the store instance used by the handlers.
var activeStore DocumentStore

// Set installs the active document store.
func Set(s DocumentStore) {
	activeStore = s
}

// Get returns the active document store. When no store is connected it
// returns a stand-in whose every operation fails with ErrNotConnected, so
// handlers degrade to 503 instead of panicking.
func Get() DocumentStore {
	if activeStore == nil {
		return notConnected{}
	}
	return activeStore
}

// Connected reports whether a real store is installed.
func Connected() bool {
	return activeStore != nil
}

type notConnected struct{}

func (notConnected) Find(context.Context, string, Document, int64) ([]Document, error) {
	return nil, ErrNotConnected
}

func (notConnected) InsertOne(context.Context, string, Document) (string, error) {
	return "", ErrNotConnected
}

func (notConnected) UpdateOne(context.Context, string, Document, Document) (int64, error) {
	return 0, ErrNotConnected
}

func (notConnected) DeleteOne(context.Context, string, Document) (int64, error) {
	return 0, ErrNotConnected
}

func (notConnected) ListCollectionNames(context.Context) ([]string, error) {
	return nil, ErrNotConnected
}

func (notConnected) Ping(context.Context) error {
	return ErrNotConnected
}
