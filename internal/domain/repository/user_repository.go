package repository

import (
	"context"
	"errors"

	"starfund/internal/domain/entity"
)

// ErrUserNotFound is returned when no user exists for the given id.
var ErrUserNotFound = errors.New("user not found")

// UserDirectory exposes the administrative view over platform accounts.
type UserDirectory interface {
	// List returns every account on the platform.
	List(ctx context.Context) ([]entity.User, error)

	// FindByID retrieves a single account by its id.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// UpdateStatus changes the administrative standing of an account.
	UpdateStatus(ctx context.Context, id int64, status entity.UserStatus) (*entity.User, error)

	// Delete removes an account.
	Delete(ctx context.Context, id int64) error
}
