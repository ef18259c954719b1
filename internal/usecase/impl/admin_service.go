package impl

import (
	"context"
	"log/slog"

	"starfund/internal/domain/entity"
	domainerrors "starfund/internal/domain/errors"
	"starfund/internal/domain/repository"
	"starfund/internal/errors"
	"starfund/internal/usecase"

	"go.uber.org/fx"
)

// adminService implements the AdminUsecase interface.
type adminService struct {
	viewState

	users        repository.UserDirectory
	transactions repository.TransactionLog
	logger       *slog.Logger
}

// AdminServiceParams holds dependencies for adminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	Users        repository.UserDirectory
	Transactions repository.TransactionLog
	Logger       *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		users:        params.Users,
		transactions: params.Transactions,
		logger:       params.Logger,
	}
}

// Users returns every account on the platform.
func (srv *adminService) Users(ctx context.Context) ([]entity.User, error) {
	gen := srv.begin()
	users, err := srv.users.List(ctx)
	srv.finish(gen, err)

	return users, err
}

// UpdateUserStatus changes an account's administrative standing.
func (srv *adminService) UpdateUserStatus(ctx context.Context, id int64, status entity.UserStatus) (*entity.User, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown user status")
	}

	gen := srv.begin()
	user, err := srv.users.UpdateStatus(ctx, id, status)
	srv.finish(gen, err)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err == nil {
		srv.logger.Info("user status updated", slog.Int64("userID", id), slog.Any("status", status))
	}

	return user, err
}

// DeleteUser removes an account.
func (srv *adminService) DeleteUser(ctx context.Context, id int64) error {
	gen := srv.begin()
	err := srv.users.Delete(ctx, id)
	srv.finish(gen, err)
	if errors.Is(err, repository.ErrUserNotFound) {
		return domainerrors.ErrUserNotFound
	}
	if err == nil {
		srv.logger.Info("user deleted", slog.Int64("userID", id))
	}

	return err
}

// Transactions returns the platform-wide payment ledger.
func (srv *adminService) Transactions(ctx context.Context) ([]entity.Transaction, error) {
	gen := srv.begin()
	txs, err := srv.transactions.List(ctx)
	srv.finish(gen, err)

	return txs, err
}

// UserTransactions returns the transactions involving one user.
func (srv *adminService) UserTransactions(ctx context.Context, userID int64) ([]entity.Transaction, error) {
	gen := srv.begin()
	txs, err := srv.transactions.ListByUser(ctx, userID)
	srv.finish(gen, err)

	return txs, err
}
