package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_memoryStore_insertAndFind(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	id, err := s.InsertOne(ctx, "student", Document{"tenant_id": "t1", "name": "Ana"})
	assert.NoError(t, err)
	assert.NotEmpty(t, id)

	_, err = s.InsertOne(ctx, "student", Document{"tenant_id": "t2", "name": "Ben"})
	assert.NoError(t, err)

	docs, err := s.Find(ctx, "student", Document{"tenant_id": "t1"}, 10)
	assert.NoError(t, err)
	if assert.Len(t, docs, 1) {
		assert.Equal(t, "Ana", docs[0]["name"])
	}
}

func Test_memoryStore_findRespectsLimit(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := s.InsertOne(ctx, "student", Document{"tenant_id": "t1"})
		assert.NoError(t, err)
	}

	docs, err := s.Find(ctx, "student", Document{"tenant_id": "t1"}, 3)
	assert.NoError(t, err)
	assert.Len(t, docs, 3)
}

func Test_memoryStore_findReturnsCopies(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	_, err := s.InsertOne(ctx, "student", Document{"tenant_id": "t1", "name": "Ana"})
	assert.NoError(t, err)

	docs, _ := s.Find(ctx, "student", Document{}, 0)
	docs[0]["name"] = "mutated"

	docs, _ = s.Find(ctx, "student", Document{}, 0)
	assert.Equal(t, "Ana", docs[0]["name"])
}

func Test_memoryStore_updateOne(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	id, _ := s.InsertOne(ctx, "feeinvoice", Document{"tenant_id": "t1", "status": "open"})
	oid, err := ParseID(id)
	assert.NoError(t, err)

	matched, err := s.UpdateOne(ctx, "feeinvoice",
		Document{"_id": oid},
		Document{"$set": Document{"status": "paid"}})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), matched)

	docs, _ := s.Find(ctx, "feeinvoice", Document{"_id": oid}, 1)
	if assert.Len(t, docs, 1) {
		assert.Equal(t, "paid", docs[0]["status"])
	}
}

func Test_memoryStore_updateOne_noMatch(t *testing.T) {
	s := NewMemoryStore()

	matched, err := s.UpdateOne(context.Background(), "feeinvoice",
		Document{"status": "void"},
		Document{"$set": Document{"status": "paid"}})
	assert.NoError(t, err)
	assert.Equal(t, int64(0), matched)
}

func Test_memoryStore_deleteOne(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	id, _ := s.InsertOne(ctx, "student", Document{"tenant_id": "t1"})
	oid, _ := ParseID(id)

	deleted, err := s.DeleteOne(ctx, "student", Document{"_id": oid, "tenant_id": "t2"})
	assert.NoError(t, err)
	assert.Equal(t, int64(0), deleted)

	deleted, err = s.DeleteOne(ctx, "student", Document{"_id": oid, "tenant_id": "t1"})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), deleted)
}

func Test_memoryStore_listCollectionNames(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	_, _ = s.InsertOne(ctx, "teacher", Document{})
	_, _ = s.InsertOne(ctx, "class", Document{})

	names, err := s.ListCollectionNames(ctx)
	assert.NoError(t, err)
	assert.Equal(t, []string{"class", "teacher"}, names)
}

func Test_notConnectedStore(t *testing.T) {
	Set(nil)
	defer Set(nil)

	assert.False(t, Connected())
	_, err := Get().Find(context.Background(), "student", Document{}, 1)
	assert.ErrorIs(t, err, ErrNotConnected)
}
