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

// InvestmentHandler serves the /investments routes.
type InvestmentHandler struct {
	investments repository.InvestmentRepository
	projects    repository.ProjectRepository
	users       repository.UserDirectory
	logger      *slog.Logger
}

// NewInvestmentHandler is the constructor for InvestmentHandler, injected by Fx.
func NewInvestmentHandler(
	investments repository.InvestmentRepository,
	projects repository.ProjectRepository,
	users repository.UserDirectory,
	logger *slog.Logger,
) *InvestmentHandler {
	return &InvestmentHandler{
		investments: investments,
		projects:    projects,
		users:       users,
		logger:      logger,
	}
}

type createInvestmentRequest struct {
	ProjectID     int64   `json:"projectId" validate:"required,gt=0"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	PaymentMethod string  `json:"paymentMethod" validate:"required"`
}

// Create opens a pending investment for the calling investor.
func (h *InvestmentHandler) Create(c echo.Context) error {
	var req createInvestmentRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, domainerrors.ErrValidationFailed.Message())
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, domainerrors.ErrInvalidAmount.Message())
	}

	ctx := c.Request().Context()
	project, err := h.projects.FindByID(ctx, req.ProjectID)
	if errors.Is(err, repository.ErrProjectNotFound) {
		return response.NotFound(c, domainerrors.ErrProjectNotFound.Message())
	}
	if err != nil {
		return errors.WithStack(err)
	}
	if !project.Status.Investable() {
		return response.Error(c, http.StatusConflict, domainerrors.ErrProjectNotInvestable.Message())
	}

	investor, err := h.users.FindByID(ctx, middleware.CallerID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	created, err := h.investments.Create(ctx, &entity.Investment{
		ProjectID:     req.ProjectID,
		InvestorID:    investor.ID,
		InvestorName:  investor.Name,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusCreated, created)
}

// ListByInvestor returns an investor's history.
func (h *InvestmentHandler) ListByInvestor(c echo.Context) error {
	investorID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	investments, err := h.investments.ListByInvestor(c.Request().Context(), investorID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, investments)
}

// ListByProject returns the investments a project received.
func (h *InvestmentHandler) ListByProject(c echo.Context) error {
	projectID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	investments, err := h.investments.ListByProject(c.Request().Context(), projectID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, investments)
}

// Get returns one investment.
func (h *InvestmentHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	inv, err := h.investments.FindByID(c.Request().Context(), id)
	if errors.Is(err, repository.ErrInvestmentNotFound) {
		return response.NotFound(c, domainerrors.ErrInvestmentNotFound.Message())
	}
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, inv)
}
