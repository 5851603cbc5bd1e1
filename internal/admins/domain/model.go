package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Admin is an authenticated principal owning projects. The password hash
// never leaves the repository layer in API responses.
type Admin struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

var (
	ErrAdminNotFound      = errors.New("Admin not found")
	ErrEmailRegistered    = errors.New("Email already registered")
	ErrInvalidCredentials = errors.New("Invalid credentials")
)
