package catalog

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/medilab/lab-api/internal/model"
	"github.com/medilab/lab-api/internal/repository"
	"github.com/medilab/lab-api/pkg/errors"
	"github.com/medilab/lab-api/pkg/normalize"
)

type Service struct {
	store repository.Store
}

func NewService(store repository.Store) *Service {
	return &Service{store: store}
}

func (s *Service) List(ctx context.Context) ([]map[string]interface{}, error) {
	docs, err := s.store.Find(ctx, repository.CollectionService, bson.M{})
	if err != nil {
		return nil, err
	}
	return normalize.Documents(docs), nil
}

// Create adds a catalog entry. Code uniqueness is a check-then-insert
// across two store calls, racy under concurrent identical requests.
func (s *Service) Create(ctx context.Context, req *model.CreateServiceRequest) (map[string]interface{}, error) {
	existing, err := s.store.FindOne(ctx, repository.CollectionService, bson.M{"code": req.Code})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.Conflict("Service code already exists")
	}

	entry := &model.Service{
		Code:        req.Code,
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Active:      true,
		CreatedAt:   time.Now().UTC(),
	}

	id, err := s.store.Insert(ctx, repository.CollectionService, entry)
	if err != nil {
		return nil, err
	}

	created, err := repository.FindByID(ctx, s.store, repository.CollectionService, id)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, errors.Internal(fmt.Errorf("created service %s not found", id))
	}
	return normalize.Document(created), nil
}
