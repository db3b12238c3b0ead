package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/medilab/lab-api/pkg/errors"
)

// unavailableStore stands in when no store is configured. Every call
// fails with a Store-Unavailable error, which handlers surface as 503,
// so the process still serves requests and the diagnostic endpoint can
// report the missing configuration.
type unavailableStore struct{}

func NewUnavailableStore() Store {
	return unavailableStore{}
}

func (unavailableStore) Insert(ctx context.Context, collection string, doc interface{}) (string, error) {
	return "", errors.Unavailable("store unavailable", nil)
}

func (unavailableStore) Find(ctx context.Context, collection string, filter bson.M) ([]bson.M, error) {
	return nil, errors.Unavailable("store unavailable", nil)
}

func (unavailableStore) FindOne(ctx context.Context, collection string, filter bson.M) (bson.M, error) {
	return nil, errors.Unavailable("store unavailable", nil)
}
