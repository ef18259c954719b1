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

// PaymentHandler serves the /payment/vnpay routes.
type PaymentHandler struct {
	gateway repository.PaymentGateway
	logger  *slog.Logger
}

// NewPaymentHandler is the constructor for PaymentHandler, injected by Fx.
func NewPaymentHandler(gateway repository.PaymentGateway, logger *slog.Logger) *PaymentHandler {
	return &PaymentHandler{gateway: gateway, logger: logger}
}

type createPaymentRequest struct {
	Amount       float64 `json:"amount" validate:"gt=0"`
	InvestmentID int64   `json:"investmentId" validate:"required,gt=0"`
	ReturnURL    string  `json:"returnUrl"`
}

type createPaymentResponse struct {
	PaymentURL string `json:"paymentUrl"`
}

// Create returns a signed VNPay payment URL.
func (h *PaymentHandler) Create(c echo.Context) error {
	var req createPaymentRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, domainerrors.ErrValidationFailed.Message())
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, domainerrors.ErrInvalidAmount.Message())
	}

	payURL, err := h.gateway.CreatePaymentURL(c.Request().Context(), repository.PaymentRequest{
		Amount:       req.Amount,
		InvestmentID: req.InvestmentID,
		ReturnURL:    req.ReturnURL,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, createPaymentResponse{PaymentURL: payURL})
}

// Callback verifies the signed query VNPay redirected back with.
func (h *PaymentHandler) Callback(c echo.Context) error {
	result, err := h.gateway.VerifyCallback(c.Request().Context(), c.QueryParams())
	if errors.Is(err, repository.ErrInvestmentNotFound) {
		return response.NotFound(c, domainerrors.ErrInvestmentNotFound.Message())
	}
	if err != nil {
		return errors.WithStack(err)
	}
	h.logger.Info("payment callback verified", slog.Bool("success", result.Success))

	return response.JSON(c, http.StatusOK, result)
}
