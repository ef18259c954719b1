package usecase

import (
	"context"

	"starfund/internal/domain/entity"
)

// AdminUsecase defines the platform administration operations.
type AdminUsecase interface {
	ViewState

	Users(ctx context.Context) ([]entity.User, error)
	UpdateUserStatus(ctx context.Context, id int64, status entity.UserStatus) (*entity.User, error)
	DeleteUser(ctx context.Context, id int64) error
	Transactions(ctx context.Context) ([]entity.Transaction, error)
	UserTransactions(ctx context.Context, userID int64) ([]entity.Transaction, error)
}
