package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestInsertGeneratesID(t *testing.T) {
	s := NewStore()

	id, err := s.Insert(context.Background(), "user", bson.M{"email": "a@x.com"})
	require.NoError(t, err)
	assert.Len(t, id, 24)

	oid, err := primitive.ObjectIDFromHex(id)
	require.NoError(t, err)

	doc, err := s.FindOne(context.Background(), "user", bson.M{"_id": oid})
	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.Equal(t, "a@x.com", doc["email"])
}

func TestFindOneNoMatch(t *testing.T) {
	s := NewStore()

	doc, err := s.FindOne(context.Background(), "user", bson.M{"email": "missing@x.com"})
	require.NoError(t, err)
	assert.Nil(t, doc)
}

func TestFindFiltersByAllPairs(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	_, err := s.Insert(ctx, "result", bson.M{"user_id": "u1", "service_code": "CBC"})
	require.NoError(t, err)
	_, err = s.Insert(ctx, "result", bson.M{"user_id": "u1", "service_code": "LIPID"})
	require.NoError(t, err)
	_, err = s.Insert(ctx, "result", bson.M{"user_id": "u2", "service_code": "CBC"})
	require.NoError(t, err)

	all, err := s.Find(ctx, "result", bson.M{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	byUser, err := s.Find(ctx, "result", bson.M{"user_id": "u1"})
	require.NoError(t, err)
	assert.Len(t, byUser, 2)

	both, err := s.Find(ctx, "result", bson.M{"user_id": "u1", "service_code": "CBC"})
	require.NoError(t, err)
	assert.Len(t, both, 1)
}

func TestCollectionNames(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	_, err := s.Insert(ctx, "user", bson.M{"email": "a@x.com"})
	require.NoError(t, err)
	_, err = s.Insert(ctx, "service", bson.M{"code": "CBC"})
	require.NoError(t, err)

	names, err := s.CollectionNames(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"service", "user"}, names)
}
