package payment

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/medilab/lab-api/internal/model"
	"github.com/medilab/lab-api/internal/repository"
	"github.com/medilab/lab-api/pkg/errors"
	"github.com/medilab/lab-api/pkg/hash"
	"github.com/medilab/lab-api/pkg/normalize"
)

type Service struct {
	store repository.Store
}

func NewService(store repository.Store) *Service {
	return &Service{store: store}
}

// Create records a payment for an existing user and service. The
// amount is copied from the service's current price, the status is
// fixed to "paid" and the reference is derived from the user id,
// service code and payment time. Referenced entities are checked here
// at write time only.
func (s *Service) Create(ctx context.Context, req *model.CreatePaymentRequest) (map[string]interface{}, error) {
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

	userID := normalize.IDString(user["_id"])
	code, _ := svc["code"].(string)
	now := time.Now().UTC()

	p := &model.Payment{
		UserID:      userID,
		ServiceCode: code,
		Amount:      asFloat(svc["price"]),
		Status:      model.PaymentStatusPaid,
		Reference:   hash.PaymentReference(userID, code, now),
		CreatedAt:   now,
	}

	id, err := s.store.Insert(ctx, repository.CollectionPayment, p)
	if err != nil {
		return nil, err
	}

	created, err := repository.FindByID(ctx, s.store, repository.CollectionPayment, id)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, errors.Internal(fmt.Errorf("created payment %s not found", id))
	}
	return normalize.Document(created), nil
}

// asFloat widens the numeric types BSON may hand back for a price.
func asFloat(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	default:
		return 0
	}
}
