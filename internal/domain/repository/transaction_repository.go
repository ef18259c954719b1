package repository

import (
	"context"
	"errors"

	"starfund/internal/domain/entity"
)

// ErrTransactionNotFound is returned when no transaction exists for the
// given id.
var ErrTransactionNotFound = errors.New("transaction not found")

// TransactionLog is the read-only view over the payment subsystem's ledger.
type TransactionLog interface {
	// List returns every transaction on the platform.
	List(ctx context.Context) ([]entity.Transaction, error)

	// FindByID retrieves a single transaction by its id.
	FindByID(ctx context.Context, id int64) (*entity.Transaction, error)

	// ListByUser returns the transactions involving a user.
	ListByUser(ctx context.Context, userID int64) ([]entity.Transaction, error)
}
