package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/construware/construct-backend/internal/admins/domain"
	"github.com/construware/construct-backend/internal/auth"
)

// Store is the admin persistence surface; *repository.Repo satisfies it.
type Store interface {
	Create(ctx context.Context, a *domain.Admin) (*domain.Admin, error)
	GetByEmail(ctx context.Context, email string) (*domain.Admin, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Admin, error)
}

type Service struct {
	store   Store
	tokens  *auth.JWTService
	revoked *auth.RevocationStore
}

func NewService(store Store, tokens *auth.JWTService, revoked *auth.RevocationStore) *Service {
	return &Service{
		store:   store,
		tokens:  tokens,
		revoked: revoked,
	}
}

func (s *Service) Register(ctx context.Context, name, email, password string) (*domain.Admin, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" || password == "" {
		return nil, errors.New("name, email and password are required")
	}

	if _, err := s.store.GetByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailRegistered
	} else if !errors.Is(err, domain.ErrAdminNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return s.store.Create(ctx, &domain.Admin{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	})
}

func (s *Service) Login(ctx context.Context, email, password string) (string, *domain.Admin, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	admin, err := s.store.GetByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(admin.ID)
	if err != nil {
		return "", nil, err
	}
	return token, admin, nil
}

// Logout denylists the presented token until its natural expiry.
func (s *Service) Logout(ctx context.Context, jti string, expiresAt time.Time) error {
	if jti == "" {
		return nil
	}
	return s.revoked.Revoke(ctx, jti, time.Until(expiresAt))
}

func (s *Service) Profile(ctx context.Context, adminID uuid.UUID) (*domain.Admin, error) {
	return s.store.GetByID(ctx, adminID)
}
