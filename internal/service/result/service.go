package result

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

// List returns results, optionally narrowed to the user owning the
// given email. An email that matches no user yields an empty list, not
// an error.
func (s *Service) List(ctx context.Context, userEmail string) ([]map[string]interface{}, error) {
	filter := bson.M{}
	if userEmail != "" {
		user, err := s.store.FindOne(ctx, repository.CollectionUser, bson.M{"email": userEmail})
		if err != nil {
			return nil, err
		}
		if user == nil {
			return normalize.Documents(nil), nil
		}
		filter["user_id"] = normalize.IDString(user["_id"])
	}

	docs, err := s.store.Find(ctx, repository.CollectionResult, filter)
	if err != nil {
		return nil, err
	}
	return normalize.Documents(docs), nil
}

// Create stores a test result for an existing user and service.
func (s *Service) Create(ctx context.Context, req *model.CreateResultRequest) (map[string]interface{}, error) {
	user, err := s.store.FindOne(ctx, repository.CollectionUser, bson.M{"email": req.UserEmail})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.NotFound("User not found")
	}

	svc, err := s.store.FindOne(ctx, repository.CollectionService, bson.M{"code": req.ServiceCode})
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, errors.NotFound("Service not found")
	}

	values := req.Values
	if values == nil {
		values = map[string]interface{}{}
	}

	r := &model.Result{
		UserID:      normalize.IDString(user["_id"]),
		ServiceCode: req.ServiceCode,
		Values:      values,
		Notes:       req.Notes,
		ReportedAt:  time.Now().UTC(),
	}

	id, err := s.store.Insert(ctx, repository.CollectionResult, r)
	if err != nil {
		return nil, err
	}

	created, err := repository.FindByID(ctx, s.store, repository.CollectionResult, id)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, errors.Internal(fmt.Errorf("created result %s not found", id))
	}
	return normalize.Document(created), nil
}
