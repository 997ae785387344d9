package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/harentsoaR/dentallab-api/internal/errs"
	"github.com/harentsoaR/dentallab-api/internal/models"
)

type fakeUsers struct {
	byName map[string]*models.User
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byName: map[string]*models.User{}}
}

func (f *fakeUsers) FindByUsername(_ context.Context, username string) (*models.User, error) {
	u, ok := f.byName[username]
	if !ok {
		return nil, errs.ErrNotFound
	}
	cpy := *u
	return &cpy, nil
}

func (f *fakeUsers) Insert(_ context.Context, u *models.User) error {
	u.ID = primitive.NewObjectID()
	cpy := *u
	f.byName[u.Username] = &cpy
	return nil
}

func newTestService(users UserStore, ttl time.Duration) *Service {
	return NewService(users, []byte("test-secret"), ttl, bcrypt.MinCost, zap.NewNop())
}

func TestRegisterThenLogin(t *testing.T) {
	users := newFakeUsers()
	svc := newTestService(users, time.Hour)
	ctx := context.Background()

	lab := primitive.NewObjectID()
	registered, err := svc.Register(ctx, RegisterInput{
		Username:    "lab1",
		Password:    "pw",
		Lab:         &lab,
		Permissions: []string{"admin"},
	})
	require.NoError(t, err)
	assert.NotEqual(t, "pw", registered.Password, "plaintext must not be stored")
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(registered.Password), []byte("pw")))

	token, claims, err := svc.Login(ctx, "lab1", "pw")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, registered.ID.Hex(), claims.UserID)
	assert.Equal(t, []string{"admin"}, claims.Permissions)
	assert.Equal(t, lab.Hex(), claims.LabOrClinicID)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	users := newFakeUsers()
	svc := newTestService(users, time.Hour)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Username: "lab1", Password: "pw"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, RegisterInput{Username: "lab1", Password: "other"})
	assert.ErrorIs(t, err, errs.ErrDuplicateUser)
}

func TestRegisterRequiresCredentials(t *testing.T) {
	svc := newTestService(newFakeUsers(), time.Hour)

	_, err := svc.Register(context.Background(), RegisterInput{Username: "", Password: "pw"})
	assert.ErrorIs(t, err, errs.ErrValidation)

	_, err = svc.Register(context.Background(), RegisterInput{Username: "lab1", Password: ""})
	assert.ErrorIs(t, err, errs.ErrValidation)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	users := newFakeUsers()
	svc := newTestService(users, time.Hour)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Username: "lab1", Password: "pw"})
	require.NoError(t, err)

	_, _, errWrongPassword := svc.Login(ctx, "lab1", "wrong")
	_, _, errNoSuchUser := svc.Login(ctx, "ghost", "pw")

	assert.ErrorIs(t, errWrongPassword, errs.ErrInvalidCredentials)
	assert.ErrorIs(t, errNoSuchUser, errs.ErrInvalidCredentials)
	// same sentinel, same message: no username enumeration
	assert.Equal(t, errWrongPassword.Error(), errNoSuchUser.Error())
}

func TestVerifyRoundTrip(t *testing.T) {
	users := newFakeUsers()
	svc := newTestService(users, time.Hour)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Username: "lab1", Password: "pw", Permissions: []string{"user"}})
	require.NoError(t, err)

	token, claims, err := svc.Login(ctx, "lab1", "pw")
	require.NoError(t, err)

	verified, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, claims.UserID, verified.UserID)
	assert.Equal(t, claims.Permissions, verified.Permissions)
	assert.True(t, claims.ExpirationDate.Equal(verified.ExpirationDate))
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	users := newFakeUsers()
	svc := newTestService(users, time.Hour)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Username: "lab1", Password: "pw"})
	require.NoError(t, err)

	// issue a token from a clock two hours in the past so it is already expired
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, _, err := svc.Login(ctx, "lab1", "pw")
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, errs.ErrInvalidToken)
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	users := newFakeUsers()
	svc := newTestService(users, time.Hour)
	other := newTestService(users, time.Hour)
	other.secret = []byte("different-secret")
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Username: "lab1", Password: "pw"})
	require.NoError(t, err)

	token, _, err := svc.Login(ctx, "lab1", "pw")
	require.NoError(t, err)

	_, err = other.Verify(token)
	assert.ErrorIs(t, err, errs.ErrInvalidToken)

	_, err = svc.Verify("not-a-token")
	assert.ErrorIs(t, err, errs.ErrInvalidToken)
}

func TestClaimsExpirationMatchesToken(t *testing.T) {
	users := newFakeUsers()
	svc := newTestService(users, time.Hour)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Username: "lab1", Password: "pw"})
	require.NoError(t, err)

	_, claims, err := svc.Login(ctx, "lab1", "pw")
	require.NoError(t, err)

	require.NotNil(t, claims.ExpiresAt)
	assert.True(t, claims.ExpirationDate.Equal(claims.ExpiresAt.Time),
		"expirationDate claim must equal the token's registered expiry")
}

func TestAffiliationFallsBackToClinic(t *testing.T) {
	users := newFakeUsers()
	svc := newTestService(users, time.Hour)
	ctx := context.Background()

	clinic := primitive.NewObjectID()
	_, err := svc.Register(ctx, RegisterInput{Username: "clinic1", Password: "pw", Clinic: &clinic})
	require.NoError(t, err)

	_, claims, err := svc.Login(ctx, "clinic1", "pw")
	require.NoError(t, err)
	assert.Equal(t, clinic.Hex(), claims.LabOrClinicID)
}
