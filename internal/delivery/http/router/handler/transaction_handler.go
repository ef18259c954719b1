package handler

import (
	"log/slog"
	"net/http"

	"starfund/internal/delivery/http/response"
	domainerrors "starfund/internal/domain/errors"
	"starfund/internal/domain/repository"
	"starfund/internal/errors"

	"github.com/labstack/echo/v4"
)

// TransactionHandler serves the /transactions routes.
type TransactionHandler struct {
	transactions repository.TransactionLog
	logger       *slog.Logger
}

// NewTransactionHandler is the constructor for TransactionHandler, injected by Fx.
func NewTransactionHandler(transactions repository.TransactionLog, logger *slog.Logger) *TransactionHandler {
	return &TransactionHandler{transactions: transactions, logger: logger}
}

// List returns the platform-wide ledger.
func (h *TransactionHandler) List(c echo.Context) error {
	txs, err := h.transactions.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, txs)
}

// Get returns one transaction.
func (h *TransactionHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	tx, err := h.transactions.FindByID(c.Request().Context(), id)
	if errors.Is(err, repository.ErrTransactionNotFound) {
		return response.NotFound(c, domainerrors.ErrTransactionNotFound.Message())
	}
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, tx)
}

// ListByUser returns the transactions involving one user.
func (h *TransactionHandler) ListByUser(c echo.Context) error {
	userID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	txs, err := h.transactions.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, txs)
}
