package application

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/webatelier/landing-api/internal/domain/entity"
	"github.com/webatelier/landing-api/pkg/helpers"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("forbidden")
)

// CredentialStore verifies a login attempt against an identity source. The
// environment-fixed store below is the only implementation today; a
// multi-admin deployment would swap in a database-backed one without touching
// token issuance.
type CredentialStore interface {
	Verify(ctx context.Context, email, password string) (*entity.Identity, error)
}

// EnvCredentialStore holds the single configured admin identity. Email compare
// is case-insensitive; password compare is exact unless a bcrypt hash is
// configured.
type EnvCredentialStore struct {
	Email        string
	Password     string
	PasswordHash string
}

func (s *EnvCredentialStore) Verify(_ context.Context, email, password string) (*entity.Identity, error) {
	email = strings.TrimSpace(email)
	if !strings.EqualFold(email, s.Email) {
		return nil, ErrInvalidCredentials
	}
	if s.PasswordHash != "" {
		if !helpers.CompareHashAndPassword(s.PasswordHash, password) {
			return nil, ErrInvalidCredentials
		}
	} else if subtle.ConstantTimeCompare([]byte(password), []byte(s.Password)) != 1 {
		return nil, ErrInvalidCredentials
	}
	return &entity.Identity{
		ID:    "admin",
		Email: strings.ToLower(email),
		Role:  entity.RoleAdmin,
	}, nil
}

// AuthService issues and verifies admin tokens. Verification is stateless; a
// token stays valid until natural expiry.
type AuthService struct {
	Store  CredentialStore
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewAuthService(store CredentialStore, jwt *helpers.JWTManager, logger *logrus.Logger) *AuthService {
	return &AuthService{Store: store, JWT: jwt, Logger: logger}
}

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	Identity  *entity.Identity
}

// Login checks credentials and issues a signed token. A mismatch on either
// field yields the same error; callers learn nothing about which was wrong.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	id, err := s.Store.Verify(ctx, email, password)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	token, exp, err := s.JWT.Generate(id.ID, id.Email, id.Role)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).Error("token generation failed")
		}
		return nil, err
	}
	return &LoginResult{Token: token, ExpiresAt: exp, Identity: id}, nil
}

// Verify validates signature and expiry and returns the asserted identity.
func (s *AuthService) Verify(token string) (*entity.Identity, error) {
	claims, err := s.JWT.Parse(token)
	if err != nil {
		return nil, err
	}
	return &entity.Identity{ID: claims.Subject, Email: claims.Email, Role: claims.Role}, nil
}

// Authorize fails with ErrForbidden unless the identity carries the required
// role.
func (s *AuthService) Authorize(id *entity.Identity, role string) error {
	if id == nil || id.Role != role {
		return ErrForbidden
	}
	return nil
}
