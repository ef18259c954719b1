package impl

import (
	"context"
	"log/slog"
	"net/url"

	domainerrors "starfund/internal/domain/errors"
	"starfund/internal/domain/repository"
	"starfund/internal/usecase"

	"go.uber.org/fx"
)

// paymentService implements the PaymentUsecase interface.
type paymentService struct {
	viewState

	gateway repository.PaymentGateway
	logger  *slog.Logger
}

// PaymentServiceParams holds dependencies for paymentService, injected by Fx.
type PaymentServiceParams struct {
	fx.In

	Gateway repository.PaymentGateway
	Logger  *slog.Logger
}

// NewPaymentService is the constructor for paymentService.
func NewPaymentService(params PaymentServiceParams) usecase.PaymentUsecase {
	return &paymentService{
		gateway: params.Gateway,
		logger:  params.Logger,
	}
}

// StartPayment returns the VNPay URL for a pending investment.
func (srv *paymentService) StartPayment(ctx context.Context, investmentID int64, amount float64) (string, error) {
	if investmentID <= 0 || amount <= 0 {
		return "", domainerrors.ErrInvalidAmount
	}

	gen := srv.begin()
	payURL, err := srv.gateway.CreatePaymentURL(ctx, repository.PaymentRequest{
		Amount:       amount,
		InvestmentID: investmentID,
	})
	srv.finish(gen, err)
	if err != nil {
		srv.logger.Warn("creating payment url failed", slog.Int64("investmentID", investmentID), slog.Any("error", err))

		return "", err
	}

	return payURL, nil
}

// CompletePayment verifies the VNPay redirect query.
func (srv *paymentService) CompletePayment(ctx context.Context, query url.Values) (*repository.PaymentResult, error) {
	gen := srv.begin()
	result, err := srv.gateway.VerifyCallback(ctx, query)
	srv.finish(gen, err)
	if err != nil {
		srv.logger.Warn("payment verification failed", slog.Any("error", err))

		return nil, err
	}
	srv.logger.Info("payment verified", slog.Bool("success", result.Success))

	return result, nil
}
