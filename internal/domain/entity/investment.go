package entity

import "time"

// InvestmentStatus represents the settlement state of a payment flow. It is
// shared by investments and the transactions derived from them.
type InvestmentStatus string

const (
	// InvestmentPending indicates a created but unsettled investment.
	InvestmentPending InvestmentStatus = "pending"
	// InvestmentCompleted indicates a settled investment.
	InvestmentCompleted InvestmentStatus = "completed"
	// InvestmentFailed indicates a payment that did not go through.
	InvestmentFailed InvestmentStatus = "failed"
)

// IsValid checks if the InvestmentStatus is a valid value.
func (s InvestmentStatus) IsValid() bool {
	switch s {
	case InvestmentPending, InvestmentCompleted, InvestmentFailed:
		return true
	default:
		return false
	}
}

// Investment is an investor's contribution to an approved project. Once
// completed it is immutable except for the pending→completed|failed status
// transition performed by the payment subsystem.
type Investment struct {
	ID            int64            `json:"id"`
	ProjectID     int64            `json:"projectId"`
	ProjectTitle  string           `json:"projectTitle"`
	InvestorID    int64            `json:"investorId"`
	InvestorName  string           `json:"investorName"`
	Amount        float64          `json:"amount"`
	PaymentMethod string           `json:"paymentMethod"`
	Status        InvestmentStatus `json:"status"`
	CreatedAt     time.Time        `json:"createdAt"`
	CompletedAt   *time.Time       `json:"completedAt,omitempty"`
}
