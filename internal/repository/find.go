package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/medilab/lab-api/pkg/errors"
)

// FindByID resolves an identifier string back to a raw document.
// Services use it to re-read freshly inserted documents so responses
// reflect exactly what the store persisted.
func FindByID(ctx context.Context, store Store, collection, id string) (bson.M, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.BadRequest("invalid identifier")
	}
	return store.FindOne(ctx, collection, bson.M{"_id": oid})
}
