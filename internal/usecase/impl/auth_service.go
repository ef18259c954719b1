package impl

import (
	"context"
	"log/slog"

	"starfund/internal/domain/entity"
	domainerrors "starfund/internal/domain/errors"
	"starfund/internal/domain/repository"
	"starfund/internal/errors"
	"starfund/internal/session"
	"starfund/internal/usecase"

	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	auth    repository.Authenticator
	session *session.Store
	logger  *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	Auth    repository.Authenticator
	Session *session.Store
	Logger  *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		auth:    params.Auth,
		session: params.Session,
		logger:  params.Logger,
	}
}

// Login authenticates the user and persists the session.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*entity.User, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	user, err := srv.auth.Login(ctx, input.Email, input.Password)
	if err != nil {
		srv.logger.Warn("login failed", slog.String("email", input.Email), slog.Any("error", err))
		if errors.Is(err, repository.ErrInvalidCredentials) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, err
	}

	if err := srv.session.Set(user); err != nil {
		return nil, errors.Wrap(err, "persist session")
	}
	srv.logger.Info("login succeeded", slog.Int64("userID", user.ID), slog.Any("role", user.Role))

	return user, nil
}

// Register creates an account and signs the new user in.
func (srv *authService) Register(ctx context.Context, input usecase.RegisterInput) (*entity.User, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	user, err := srv.auth.Register(ctx, repository.Registration{
		Email:    input.Email,
		Password: input.Password,
		Name:     input.Name,
		Role:     input.Role,
		Company:  input.Company,
		Phone:    input.Phone,
	})
	if err != nil {
		srv.logger.Warn("registration failed", slog.String("email", input.Email), slog.Any("error", err))
		if errors.Is(err, repository.ErrEmailTaken) {
			return nil, domainerrors.ErrEmailTaken
		}

		return nil, err
	}

	if err := srv.session.Set(user); err != nil {
		return nil, errors.Wrap(err, "persist session")
	}
	srv.logger.Info("registration succeeded", slog.Int64("userID", user.ID), slog.Any("role", user.Role))

	return user, nil
}

// Refresh re-validates the persisted identity against the backend. A dead
// token signs the user out instead of failing.
func (srv *authService) Refresh(ctx context.Context) (*entity.User, error) {
	current := srv.session.Current()
	if current == nil {
		return nil, nil
	}

	user, err := srv.auth.CurrentUser(ctx, current.Token)
	if err != nil {
		srv.logger.Warn("session refresh failed, signing out", slog.Any("error", err))
		if clearErr := srv.session.Clear(); clearErr != nil {
			return nil, clearErr
		}

		return nil, nil
	}

	if err := srv.session.Set(user); err != nil {
		return nil, errors.Wrap(err, "persist session")
	}

	return user, nil
}

// Logout clears the session.
func (srv *authService) Logout() error {
	return srv.session.Clear()
}
