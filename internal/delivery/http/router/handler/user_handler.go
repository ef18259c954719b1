package handler

import (
	"log/slog"
	"net/http"

	"starfund/internal/delivery/http/response"
	"starfund/internal/domain/entity"
	domainerrors "starfund/internal/domain/errors"
	"starfund/internal/domain/repository"
	"starfund/internal/errors"

	"github.com/labstack/echo/v4"
)

// UserHandler serves the /users administration routes.
type UserHandler struct {
	users  repository.UserDirectory
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(users repository.UserDirectory, logger *slog.Logger) *UserHandler {
	return &UserHandler{users: users, logger: logger}
}

// List returns every account.
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.users.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, users)
}

// Get returns one account.
func (h *UserHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	user, err := h.users.FindByID(c.Request().Context(), id)
	if errors.Is(err, repository.ErrUserNotFound) {
		return response.NotFound(c, domainerrors.ErrUserNotFound.Message())
	}
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, user)
}

type updateStatusRequest struct {
	Status entity.UserStatus `json:"status" validate:"required"`
}

// UpdateStatus changes an account's standing.
func (h *UserHandler) UpdateStatus(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, domainerrors.ErrValidationFailed.Message())
	}
	if !req.Status.IsValid() {
		return response.BadRequest(c, domainerrors.ErrValidationFailed.Message())
	}

	user, err := h.users.UpdateStatus(c.Request().Context(), id, req.Status)
	if errors.Is(err, repository.ErrUserNotFound) {
		return response.NotFound(c, domainerrors.ErrUserNotFound.Message())
	}
	if err != nil {
		return errors.WithStack(err)
	}
	h.logger.Info("user status updated", slog.Int64("userID", id), slog.Any("status", req.Status))

	return response.JSON(c, http.StatusOK, user)
}

// Delete removes an account.
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	err = h.users.Delete(c.Request().Context(), id)
	if errors.Is(err, repository.ErrUserNotFound) {
		return response.NotFound(c, domainerrors.ErrUserNotFound.Message())
	}
	if err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
