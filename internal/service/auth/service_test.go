package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/medilab/lab-api/internal/model"
	"github.com/medilab/lab-api/internal/repository/memory"
	"github.com/medilab/lab-api/pkg/errors"
	"github.com/medilab/lab-api/pkg/hash"
)

func signup(t *testing.T, svc *Service, name, email, password string) *model.AuthResponse {
	t.Helper()
	resp, err := svc.Signup(context.Background(), &model.SignupRequest{
		Name:     name,
		Email:    email,
		Password: password,
	})
	require.NoError(t, err)
	return resp
}

func TestSignup(t *testing.T) {
	svc := NewService(memory.NewStore())

	resp := signup(t, svc, "Ana", "ana@x.com", "pw1")
	assert.Len(t, resp.Token, 64)
	assert.Equal(t, "Ana", resp.Name)
	assert.Equal(t, "ana@x.com", resp.Email)
}

func TestSignupDistinctEmailsDistinctTokens(t *testing.T) {
	svc := NewService(memory.NewStore())

	a := signup(t, svc, "Ana", "ana@x.com", "pw1")
	b := signup(t, svc, "Bo", "bo@x.com", "pw1")
	assert.NotEqual(t, a.Token, b.Token)
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc := NewService(memory.NewStore())
	signup(t, svc, "Ana", "ana@x.com", "pw1")

	_, err := svc.Signup(context.Background(), &model.SignupRequest{
		Name:     "Ana Again",
		Email:    "ana@x.com",
		Password: "pw2",
	})
	require.Error(t, err)

	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errors.CodeConflict, appErr.Code)
	assert.Equal(t, "Email already registered", appErr.Message)
}

func TestLogin(t *testing.T) {
	store := memory.NewStore()
	svc := NewService(store)
	signup(t, svc, "Ana", "ana@x.com", "pw1")

	resp, err := svc.Login(context.Background(), &model.LoginRequest{
		Email:    "ana@x.com",
		Password: "pw1",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ana", resp.Name)
	assert.Equal(t, "ana@x.com", resp.Email)

	// token derivation is the documented email:id formula
	user, err := store.FindOne(context.Background(), "user", bson.M{"email": "ana@x.com"})
	require.NoError(t, err)
	require.NotNil(t, user)
	oid, ok := user["_id"].(primitive.ObjectID)
	require.True(t, ok)
	assert.Equal(t, hash.DeriveToken("ana@x.com", oid.Hex()), resp.Token)
}

func TestLoginDoesNotDistinguishFailures(t *testing.T) {
	svc := NewService(memory.NewStore())
	signup(t, svc, "Ana", "ana@x.com", "pw1")

	_, wrongPw := svc.Login(context.Background(), &model.LoginRequest{
		Email:    "ana@x.com",
		Password: "pw2",
	})
	_, noUser := svc.Login(context.Background(), &model.LoginRequest{
		Email:    "nobody@x.com",
		Password: "pw1",
	})

	require.Error(t, wrongPw)
	require.Error(t, noUser)
	assert.Equal(t, wrongPw.Error(), noUser.Error())

	var appErr *errors.AppError
	require.ErrorAs(t, wrongPw, &appErr)
	assert.Equal(t, errors.CodeUnauthorized, appErr.Code)
}
