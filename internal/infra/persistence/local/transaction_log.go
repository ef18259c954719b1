package local

import (
	"context"

	"starfund/internal/domain/entity"
	"starfund/internal/domain/repository"
)

// TransactionLog derives the payment ledger from the investments ledger:
// every local investment shows up as one investment-type transaction. The
// real ledger lives server-side; this keeps the admin screens working
// offline.
type TransactionLog struct {
	investments *InvestmentStore
}

// NewTransactionLog creates the local transaction view.
func NewTransactionLog(investments *InvestmentStore) *TransactionLog {
	return &TransactionLog{investments: investments}
}

var _ repository.TransactionLog = (*TransactionLog)(nil)

// List returns every transaction on the platform.
func (l *TransactionLog) List(ctx context.Context) ([]entity.Transaction, error) {
	investments, err := l.investments.filter(ctx, func(entity.Investment) bool { return true })
	if err != nil {
		return nil, err
	}

	return fromInvestments(investments), nil
}

// FindByID retrieves a single transaction by its id.
func (l *TransactionLog) FindByID(ctx context.Context, id int64) (*entity.Transaction, error) {
	inv, err := l.investments.FindByID(ctx, id)
	if err != nil {
		return nil, repository.ErrTransactionNotFound
	}

	tx := fromInvestment(*inv)

	return &tx, nil
}

// ListByUser returns the transactions involving a user.
func (l *TransactionLog) ListByUser(ctx context.Context, userID int64) ([]entity.Transaction, error) {
	investments, err := l.investments.ListByInvestor(ctx, userID)
	if err != nil {
		return nil, err
	}

	return fromInvestments(investments), nil
}

func fromInvestments(investments []entity.Investment) []entity.Transaction {
	txs := make([]entity.Transaction, 0, len(investments))
	for _, inv := range investments {
		txs = append(txs, fromInvestment(inv))
	}

	return txs
}

func fromInvestment(inv entity.Investment) entity.Transaction {
	return entity.Transaction{
		ID:            inv.ID,
		InvestmentID:  inv.ID,
		Amount:        inv.Amount,
		Type:          entity.TransactionInvestment,
		Status:        inv.Status,
		PaymentMethod: inv.PaymentMethod,
		CreatedAt:     inv.CreatedAt,
		CompletedAt:   inv.CompletedAt,
	}
}
