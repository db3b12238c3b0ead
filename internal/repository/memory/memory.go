// Package memory implements repository.Store over process memory. It
// exists for tests: documents round-trip through BSON so stored values
// carry the same types (ObjectID ids, DateTime timestamps) the real
// store would return.
package memory

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Store struct {
	mu          sync.RWMutex
	collections map[string][]bson.M
}

func NewStore() *Store {
	return &Store{collections: make(map[string][]bson.M)}
}

func (s *Store) Insert(ctx context.Context, collection string, doc interface{}) (string, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("failed to encode document: %w", err)
	}

	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return "", fmt.Errorf("failed to decode document: %w", err)
	}

	id, ok := m["_id"].(primitive.ObjectID)
	if !ok {
		id = primitive.NewObjectID()
		m["_id"] = id
	}

	s.mu.Lock()
	s.collections[collection] = append(s.collections[collection], m)
	s.mu.Unlock()

	return id.Hex(), nil
}

func (s *Store) Find(ctx context.Context, collection string, filter bson.M) ([]bson.M, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []bson.M
	for _, doc := range s.collections[collection] {
		if matches(doc, filter) {
			out = append(out, doc)
		}
	}
	return out, nil
}

func (s *Store) FindOne(ctx context.Context, collection string, filter bson.M) (bson.M, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, doc := range s.collections[collection] {
		if matches(doc, filter) {
			return doc, nil
		}
	}
	return nil, nil
}

// Name and CollectionNames satisfy the diagnostic contract so endpoint
// tests can exercise the /test handler.
func (s *Store) Name() string {
	return "memory"
}

func (s *Store) CollectionNames(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.collections))
	for name := range s.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func matches(doc, filter bson.M) bool {
	for k, want := range filter {
		got, ok := doc[k]
		if !ok || !reflect.DeepEqual(got, want) {
			return false
		}
	}
	return true
}
