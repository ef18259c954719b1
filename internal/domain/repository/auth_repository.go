// Package repository defines the interfaces for the data-access layer.
// Every interface has two implementations: a local one over the mock
// persistence backend and a remote one over the platform API. Which one a
// usecase receives is decided once, at wiring time, from configuration.
package repository

import (
	"context"
	"errors"

	"starfund/internal/domain/entity"
)

// ErrInvalidCredentials is returned when the email/password pair does not
// match a known identity.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrEmailTaken is returned when registering with an email that already has
// an account.
var ErrEmailTaken = errors.New("email already registered")

// Registration carries the data required to create a new account.
type Registration struct {
	Email    string
	Password string
	Name     string
	Role     entity.Role
	Company  string
	Phone    string
}

// Authenticator resolves credentials to authenticated identities.
type Authenticator interface {
	// Login exchanges credentials for an identity carrying a bearer token.
	Login(ctx context.Context, email, password string) (*entity.User, error)

	// Register creates a new account and returns the authenticated identity.
	Register(ctx context.Context, reg Registration) (*entity.User, error)

	// CurrentUser resolves a bearer token back to its identity.
	CurrentUser(ctx context.Context, token string) (*entity.User, error)
}
