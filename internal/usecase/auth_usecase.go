// Package usecase contains the application-specific business rules. It sits
// between the screens and the repositories, owning the per-view loading and
// error state.
package usecase

import (
	"context"

	"starfund/internal/domain/entity"
)

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// RegisterInput defines the data required to create an account. Only
// investors and startups can self-register.
type RegisterInput struct {
	Email    string      `validate:"required,email"`
	Password string      `validate:"required,min=6"`
	Name     string      `validate:"required"`
	Role     entity.Role `validate:"required,oneof=investor startup"`
	Company  string
	Phone    string
}

// AuthUsecase defines the authentication operations the screens depend on.
type AuthUsecase interface {
	Login(ctx context.Context, input LoginInput) (*entity.User, error)
	Register(ctx context.Context, input RegisterInput) (*entity.User, error)
	// Refresh re-validates the persisted session against the backend and is
	// a no-op when signed out.
	Refresh(ctx context.Context) (*entity.User, error)
	Logout() error
}
