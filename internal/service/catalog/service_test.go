package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medilab/lab-api/internal/model"
	"github.com/medilab/lab-api/internal/repository/memory"
	"github.com/medilab/lab-api/pkg/errors"
)

func floatPtr(f float64) *float64 { return &f }

func TestCreateAndList(t *testing.T) {
	svc := NewService(memory.NewStore())
	ctx := context.Background()

	created, err := svc.Create(ctx, &model.CreateServiceRequest{
		Code:        "CBC",
		Name:        "Complete Blood Count",
		Description: "Standard panel",
		Price:       floatPtr(25.5),
	})
	require.NoError(t, err)

	assert.IsType(t, "", created["id"])
	assert.NotEmpty(t, created["id"])
	assert.NotContains(t, created, "_id")
	assert.Equal(t, "CBC", created["code"])
	assert.Equal(t, 25.5, created["price"])
	assert.Equal(t, true, created["active"])

	// immediately visible via list
	listed, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, created["id"], listed[0]["id"])
}

func TestCreateZeroPrice(t *testing.T) {
	svc := NewService(memory.NewStore())

	created, err := svc.Create(context.Background(), &model.CreateServiceRequest{
		Code:  "FREE",
		Name:  "Complimentary screening",
		Price: floatPtr(0),
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, created["price"])
}

func TestCreateDuplicateCode(t *testing.T) {
	svc := NewService(memory.NewStore())
	ctx := context.Background()

	_, err := svc.Create(ctx, &model.CreateServiceRequest{
		Code:  "CBC",
		Name:  "Complete Blood Count",
		Price: floatPtr(25.5),
	})
	require.NoError(t, err)

	_, err = svc.Create(ctx, &model.CreateServiceRequest{
		Code:  "CBC",
		Name:  "Another CBC",
		Price: floatPtr(30),
	})
	require.Error(t, err)

	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errors.CodeConflict, appErr.Code)
	assert.Equal(t, "Service code already exists", appErr.Message)
}

func TestListEmpty(t *testing.T) {
	svc := NewService(memory.NewStore())

	listed, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, listed)
	assert.Len(t, listed, 0)
}
