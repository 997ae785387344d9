// Package auth issues and verifies bearer tokens and gates access by
// permission level.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/harentsoaR/dentallab-api/internal/errs"
	"github.com/harentsoaR/dentallab-api/internal/models"
)

// UserStore is the credential lookup the service needs. The Mongo
// implementation lives in internal/storage.
type UserStore interface {
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	Insert(ctx context.Context, user *models.User) error
}

// Service registers users, exchanges credentials for tokens and verifies
// presented tokens. Tokens are stateless; logout is an acknowledgement only.
type Service struct {
	users      UserStore
	secret     []byte
	tokenTTL   time.Duration
	bcryptCost int
	log        *zap.Logger
	now        func() time.Time
}

func NewService(users UserStore, secret []byte, tokenTTL time.Duration, bcryptCost int, log *zap.Logger) *Service {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		users:      users,
		secret:     secret,
		tokenTTL:   tokenTTL,
		bcryptCost: bcryptCost,
		log:        log,
		now:        time.Now,
	}
}

// RegisterInput carries the fields accepted at registration. Password is
// the plaintext; it is hashed before anything is persisted and never logged.
type RegisterInput struct {
	Username    string
	Password    string
	Lab         *primitive.ObjectID
	Clinic      *primitive.ObjectID
	Email       string
	Permissions []string
}

// Register creates a new user with a bcrypt-hashed password. Fails with
// ErrDuplicateUser when the username is taken.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if in.Username == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: username and password are required", errs.ErrValidation)
	}

	_, err := s.users.FindByUsername(ctx, in.Username)
	if err == nil {
		return nil, errs.ErrDuplicateUser
	}
	if !errors.Is(err, errs.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Username:    in.Username,
		Password:    string(hash),
		Lab:         in.Lab,
		Clinic:      in.Clinic,
		Email:       in.Email,
		Permissions: in.Permissions,
	}
	if err := s.users.Insert(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info("user registered", zap.String("username", in.Username))
	return user, nil
}

// Login authenticates the user and returns a signed token together with its
// claims. Unknown username and wrong password both yield
// ErrInvalidCredentials so callers cannot enumerate accounts.
func (s *Service) Login(ctx context.Context, username, password string) (string, *Claims, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return "", nil, errs.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return "", nil, errs.ErrInvalidCredentials
	}

	expiresAt := s.now().Add(s.tokenTTL).Truncate(time.Second)
	claims := &Claims{
		UserID:         user.ID.Hex(),
		Permissions:    user.Permissions,
		LabOrClinicID:  user.AffiliationID(),
		ExpirationDate: expiresAt,
	}

	token, err := signToken(claims, s.secret)
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}

	s.log.Info("user logged in", zap.String("username", username))
	return token, claims, nil
}

// Verify decodes and validates a bearer token.
func (s *Service) Verify(tokenStr string) (*Claims, error) {
	return parseToken(tokenStr, s.secret)
}
