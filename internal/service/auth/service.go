package auth

import (
	"context"
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

// Signup registers a new user. The email uniqueness probe and the
// insert are separate store calls; concurrent identical signups can
// both pass the probe.
func (s *Service) Signup(ctx context.Context, req *model.SignupRequest) (*model.AuthResponse, error) {
	existing, err := s.store.FindOne(ctx, repository.CollectionUser, bson.M{"email": req.Email})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.Conflict("Email already registered")
	}

	user := &model.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash.Password(req.Password),
		Role:         model.RolePatient,
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}

	id, err := s.store.Insert(ctx, repository.CollectionUser, user)
	if err != nil {
		return nil, err
	}

	return &model.AuthResponse{
		Token: hash.DeriveToken(req.Email, id),
		Name:  req.Name,
		Email: req.Email,
	}, nil
}

// Login checks credentials and re-derives the bearer token. Unknown
// emails and wrong passwords fail identically so the response does not
// reveal which of the two it was.
func (s *Service) Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error) {
	doc, err := s.store.FindOne(ctx, repository.CollectionUser, bson.M{"email": req.Email})
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, errors.Unauthorized("Invalid credentials")
	}

	storedHash, _ := doc["password_hash"].(string)
	if storedHash != hash.Password(req.Password) {
		return nil, errors.Unauthorized("Invalid credentials")
	}

	email, _ := doc["email"].(string)
	name, _ := doc["name"].(string)

	return &model.AuthResponse{
		Token: hash.DeriveToken(email, normalize.IDString(doc["_id"])),
		Name:  name,
		Email: email,
	}, nil
}
