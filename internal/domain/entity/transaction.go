package entity

import "time"

// TransactionType classifies a money movement recorded by the payment
// subsystem.
type TransactionType string

const (
	// TransactionInvestment is money flowing into a project.
	TransactionInvestment TransactionType = "investment"
	// TransactionWithdrawal is money paid out to a founder.
	TransactionWithdrawal TransactionType = "withdrawal"
	// TransactionRefund is money returned to an investor.
	TransactionRefund TransactionType = "refund"
)

// IsValid checks if the TransactionType is a valid value.
func (t TransactionType) IsValid() bool {
	switch t {
	case TransactionInvestment, TransactionWithdrawal, TransactionRefund:
		return true
	default:
		return false
	}
}

// Transaction is the payment-subsystem ledger entry derived from an
// investment. It is read-only from the client's perspective.
type Transaction struct {
	ID                 int64            `json:"id"`
	InvestmentID       int64            `json:"investmentId"`
	Amount             float64          `json:"amount"`
	Type               TransactionType  `json:"type"`
	Status             InvestmentStatus `json:"status"`
	PaymentMethod      string           `json:"paymentMethod"`
	VNPayTransactionID string           `json:"vnpayTransactionId,omitempty"`
	CreatedAt          time.Time        `json:"createdAt"`
	CompletedAt        *time.Time       `json:"completedAt,omitempty"`
}
