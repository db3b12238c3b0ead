// Package mongodb adapts the MongoDB driver to the repository.Store
// contract. The driver's client is safe for concurrent use, which is
// the only concurrency guarantee handlers rely on.
package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/medilab/lab-api/internal/config"
	"github.com/medilab/lab-api/pkg/errors"
)

const connectTimeout = 10 * time.Second

type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// New connects to the configured database. Connection errors at this
// point are limited to invalid URIs; reachability is probed separately
// with Ping so an unreachable store degrades instead of aborting start.
func New(ctx context.Context, cfg config.DatabaseConfig) (*Store, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URL))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to store: %w", err)
	}

	return &Store{
		client: client,
		db:     client.Database(cfg.Name),
	}, nil
}

func (s *Store) Insert(ctx context.Context, collection string, doc interface{}) (string, error) {
	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", errors.Unavailable("store unavailable", err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprint(res.InsertedID), nil
}

func (s *Store) Find(ctx context.Context, collection string, filter bson.M) ([]bson.M, error) {
	cur, err := s.db.Collection(collection).Find(ctx, filter)
	if err != nil {
		return nil, errors.Unavailable("store unavailable", err)
	}
	defer cur.Close(ctx)

	var docs []bson.M
	if err := cur.All(ctx, &docs); err != nil {
		return nil, errors.Unavailable("store unavailable", err)
	}
	return docs, nil
}

func (s *Store) FindOne(ctx context.Context, collection string, filter bson.M) (bson.M, error) {
	var doc bson.M
	err := s.db.Collection(collection).FindOne(ctx, filter).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Unavailable("store unavailable", err)
	}
	return doc, nil
}

// Name reports the database name for the diagnostic endpoint.
func (s *Store) Name() string {
	return s.db.Name()
}

// CollectionNames lists collections; the diagnostic endpoint uses this
// as its connectivity probe.
func (s *Store) CollectionNames(ctx context.Context) ([]string, error) {
	return s.db.ListCollectionNames(ctx, bson.M{})
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
