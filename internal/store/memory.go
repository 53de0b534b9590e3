package store

import (
	"context"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStore is an in-memory DocumentStore used by handler tests, in place
// of a live database. Filters support equality matching only, which is all
// the handlers use.
type MemoryStore struct {
	mu          sync.Mutex
	collections map[string][]Document
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string][]Document)}
}

func (s *MemoryStore) Find(ctx context.Context, collection string, filter Document, limit int64) ([]Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs := []Document{}
	for _, doc := range s.collections[collection] {
		if !matches(doc, filter) {
			continue
		}
		docs = append(docs, copyDoc(doc))
		if limit > 0 && int64(len(docs)) >= limit {
			break
		}
	}
	return docs, nil
}

func (s *MemoryStore) InsertOne(ctx context.Context, collection string, doc Document) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := copyDoc(doc)
	if _, ok := stored["_id"]; !ok {
		stored["_id"] = primitive.NewObjectID()
	}
	s.collections[collection] = append(s.collections[collection], stored)
	return FormatID(stored["_id"]), nil
}

func (s *MemoryStore) UpdateOne(ctx context.Context, collection string, filter, patch Document) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, doc := range s.collections[collection] {
		if !matches(doc, filter) {
			continue
		}
		if set, ok := patch["$set"].(Document); ok {
			for k, v := range set {
				doc[k] = v
			}
		}
		return 1, nil
	}
	return 0, nil
}

func (s *MemoryStore) DeleteOne(ctx context.Context, collection string, filter Document) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs := s.collections[collection]
	for i, doc := range docs {
		if matches(doc, filter) {
			s.collections[collection] = append(docs[:i], docs[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (s *MemoryStore) ListCollectionNames(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	names := make([]string, 0, len(s.collections))
	for name := range s.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	return nil
}

func matches(doc, filter Document) bool {
	for k, want := range filter {
		if doc[k] != want {
			return false
		}
	}
	return true
}

func copyDoc(doc Document) Document {
	out := make(Document, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	return out
}
