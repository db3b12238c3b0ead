package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
)

// Collection names, one per entity.
const (
	CollectionUser    = "user"
	CollectionService = "service"
	CollectionPayment = "payment"
	CollectionResult  = "result"
)

// Store is the document store contract. It is injected into every
// service so tests can substitute an in-memory implementation.
//
// Insert persists a document and returns the generated identifier as an
// opaque string. Find returns every document matching all filter pairs,
// in store-native order; an empty filter matches everything. FindOne
// returns the first match, or (nil, nil) when nothing matches. No
// transactional guarantee spans multiple calls.
type Store interface {
	Insert(ctx context.Context, collection string, doc interface{}) (string, error)
	Find(ctx context.Context, collection string, filter bson.M) ([]bson.M, error)
	FindOne(ctx context.Context, collection string, filter bson.M) (bson.M, error)
}
