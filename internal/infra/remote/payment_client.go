package remote

import (
	"context"
	"net/url"

	"starfund/internal/domain/repository"
)

// PaymentClient implements repository.PaymentGateway against /payment/vnpay.
type PaymentClient struct {
	client *Client
}

// NewPaymentClient creates the remote payment gateway.
func NewPaymentClient(client *Client) *PaymentClient {
	return &PaymentClient{client: client}
}

var _ repository.PaymentGateway = (*PaymentClient)(nil)

type createPaymentRequest struct {
	Amount       float64 `json:"amount"`
	InvestmentID int64   `json:"investmentId"`
	ReturnURL    string  `json:"returnUrl"`
}

type createPaymentResponse struct {
	PaymentURL string `json:"paymentUrl"`
}

// CreatePaymentURL asks the backend for a signed VNPay URL.
func (c *PaymentClient) CreatePaymentURL(ctx context.Context, req repository.PaymentRequest) (string, error) {
	var resp createPaymentResponse
	err := c.client.post(ctx, "/payment/vnpay/create", createPaymentRequest{
		Amount:       req.Amount,
		InvestmentID: req.InvestmentID,
		ReturnURL:    req.ReturnURL,
	}, &resp)
	if err != nil {
		return "", err
	}

	return resp.PaymentURL, nil
}

// VerifyCallback forwards the VNPay redirect query for verification.
func (c *PaymentClient) VerifyCallback(ctx context.Context, query url.Values) (*repository.PaymentResult, error) {
	var result repository.PaymentResult
	if err := c.client.get(ctx, "/payment/vnpay/callback", query, &result); err != nil {
		return nil, err
	}

	return &result, nil
}
