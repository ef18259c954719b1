// Package handler contains the HTTP handlers for the mock API server.
package handler

import (
	"log/slog"
	"net/http"

	"starfund/internal/delivery/http/middleware"
	"starfund/internal/delivery/http/response"
	"starfund/internal/domain/entity"
	domainerrors "starfund/internal/domain/errors"
	"starfund/internal/domain/repository"
	"starfund/internal/errors"

	"github.com/labstack/echo/v4"
)

// AuthHandler serves the /auth routes.
type AuthHandler struct {
	auth   repository.Authenticator
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(auth repository.Authenticator, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, logger: logger}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	Email    string      `json:"email" validate:"required,email"`
	Password string      `json:"password" validate:"required,min=6"`
	Name     string      `json:"name" validate:"required"`
	Role     entity.Role `json:"role" validate:"required"`
	Company  string      `json:"company"`
	Phone    string      `json:"phone"`
}

// Login handles the login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, domainerrors.ErrValidationFailed.Message())
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, domainerrors.ErrValidationFailed.Message())
	}

	user, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	if errors.Is(err, repository.ErrInvalidCredentials) {
		return response.Unauthorized(c, domainerrors.ErrInvalidCredentials.Message())
	}
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, user)
}

// Register handles the signup request.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, domainerrors.ErrValidationFailed.Message())
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, domainerrors.ErrValidationFailed.Message())
	}
	if !req.Role.CanRegister() {
		return response.BadRequest(c, domainerrors.ErrRegisterFailed.Message())
	}

	user, err := h.auth.Register(c.Request().Context(), repository.Registration{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Role:     req.Role,
		Company:  req.Company,
		Phone:    req.Phone,
	})
	if errors.Is(err, repository.ErrEmailTaken) {
		return response.Error(c, http.StatusConflict, domainerrors.ErrEmailTaken.Message())
	}
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusCreated, user)
}

// Me resolves the caller's bearer token back to an identity.
func (h *AuthHandler) Me(c echo.Context) error {
	user, err := h.auth.CurrentUser(c.Request().Context(), middleware.CallerToken(c))
	if err != nil {
		return response.Unauthorized(c, domainerrors.ErrTokenInvalid.Message())
	}

	return response.JSON(c, http.StatusOK, user)
}
