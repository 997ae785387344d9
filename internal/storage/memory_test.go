package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/harentsoaR/dentallab-api/internal/errs"
	"github.com/harentsoaR/dentallab-api/internal/models"
)

func f(v float64) *float64 { return &v }

func TestCreateThenGetRoundTrip(t *testing.T) {
	store := NewMemory[models.Lab]()
	ctx := context.Background()

	lab := models.Lab{
		Name:    "DentalLab Norte",
		Address: "Avenida Central 45, Braga",
		Email:   "lab@dentallab.example",
	}
	require.NoError(t, store.Create(ctx, &lab))
	require.False(t, lab.ID.IsZero(), "create must assign an identifier")

	got, err := store.Get(ctx, lab.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, lab.Name, got.Name)
	assert.Equal(t, lab.Address, got.Address)
	assert.Equal(t, lab.Email, got.Email)
	assert.Equal(t, lab.ID, got.ID)
}

func TestCreateRunsValidation(t *testing.T) {
	store := NewMemory[models.Lab]()

	lab := models.Lab{Address: "no name"}
	err := store.Create(context.Background(), &lab)
	assert.ErrorIs(t, err, errs.ErrValidation)
}

func TestUpdateReturnsBooleanOnly(t *testing.T) {
	store := NewMemory[models.Collaborator]()
	ctx := context.Background()

	collab := models.Collaborator{Name: "Miguel Tavares", Role: "technician", Salary: f(1400)}
	require.NoError(t, store.Create(ctx, &collab))

	ok, err := store.Update(ctx, collab.ID.Hex(), bson.M{"role": "senior technician"})
	require.NoError(t, err)
	assert.True(t, ok)

	// callers must re-fetch to observe state; only the provided field moved
	got, err := store.Get(ctx, collab.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "senior technician", got.Role)
	assert.Equal(t, "Miguel Tavares", got.Name)
	require.NotNil(t, got.Salary)
	assert.Equal(t, 1400.0, *got.Salary)
}

func TestUpdateUnmatchedIDStillReportsTrue(t *testing.T) {
	store := NewMemory[models.Collaborator]()

	ok, err := store.Update(context.Background(), primitive.NewObjectID().Hex(), bson.M{"role": "ghost"})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestUpdateRejectsMalformedID(t *testing.T) {
	store := NewMemory[models.Collaborator]()

	ok, err := store.Update(context.Background(), "not-a-hex-id", bson.M{"role": "x"})
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestDeleteThenGetNotFound(t *testing.T) {
	store := NewMemory[models.Service]()
	ctx := context.Background()

	svc := models.Service{Name: "Zirconia crown", ValueType: "per-tooth", Type: "prosthetics"}
	require.NoError(t, store.Create(ctx, &svc))

	ok, err := store.Delete(ctx, svc.ID.Hex())
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = store.Get(ctx, svc.ID.Hex())
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestGetUnknownIDNotFound(t *testing.T) {
	store := NewMemory[models.Service]()

	_, err := store.Get(context.Background(), primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestListReturnsEveryDocument(t *testing.T) {
	store := NewMemory[models.Inventory]()
	ctx := context.Background()

	empty, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	for _, name := range []string{"resin", "gypsum", "wax"} {
		item := models.Inventory{Name: name}
		require.NoError(t, store.Create(ctx, &item))
	}

	all, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestMemoryUsersFindByUsername(t *testing.T) {
	users := NewMemoryUsers()
	ctx := context.Background()

	u := models.User{Username: "lab1", Password: "hash", Permissions: []string{"admin"}}
	require.NoError(t, users.Insert(ctx, &u))

	found, err := users.FindByUsername(ctx, "lab1")
	require.NoError(t, err)
	assert.Equal(t, u.ID, found.ID)

	_, err = users.FindByUsername(ctx, "ghost")
	assert.ErrorIs(t, err, errs.ErrNotFound)
}
