package repository

import (
	"context"
	"net/url"
)

// PaymentRequest carries the data needed to open a VNPay payment flow.
type PaymentRequest struct {
	Amount       float64
	InvestmentID int64
	ReturnURL    string
}

// PaymentResult is the outcome of a verified payment callback.
type PaymentResult struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	TransactionID string `json:"transactionId,omitempty"`
}

// PaymentGateway creates and verifies VNPay payment flows.
type PaymentGateway interface {
	// CreatePaymentURL returns the gateway URL the user is sent to.
	CreatePaymentURL(ctx context.Context, req PaymentRequest) (string, error)

	// VerifyCallback validates the signed query VNPay redirects back with.
	VerifyCallback(ctx context.Context, query url.Values) (*PaymentResult, error)
}
