package usecase

import (
	"context"
	"net/url"

	"starfund/internal/domain/repository"
)

// PaymentUsecase drives the VNPay payment flow for a pending investment.
type PaymentUsecase interface {
	ViewState

	// StartPayment returns the gateway URL for an investment.
	StartPayment(ctx context.Context, investmentID int64, amount float64) (string, error)
	// CompletePayment verifies the redirect query VNPay sent the user back
	// with.
	CompletePayment(ctx context.Context, query url.Values) (*repository.PaymentResult, error)
}
