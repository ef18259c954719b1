package remote

import (
	"context"

	"starfund/internal/domain/entity"
	"starfund/internal/domain/repository"
)

// TransactionClient implements repository.TransactionLog against
// /transactions.
type TransactionClient struct {
	client *Client
}

// NewTransactionClient creates the remote transaction log.
func NewTransactionClient(client *Client) *TransactionClient {
	return &TransactionClient{client: client}
}

var _ repository.TransactionLog = (*TransactionClient)(nil)

// List returns every transaction on the platform.
func (c *TransactionClient) List(ctx context.Context) ([]entity.Transaction, error) {
	var txs []entity.Transaction
	if err := c.client.get(ctx, "/transactions", nil, &txs); err != nil {
		return nil, err
	}

	return txs, nil
}

// FindByID retrieves a single transaction.
func (c *TransactionClient) FindByID(ctx context.Context, id int64) (*entity.Transaction, error) {
	var tx entity.Transaction
	if err := c.client.get(ctx, idPath("/transactions/%d", id), nil, &tx); err != nil {
		if IsNotFound(err) {
			return nil, repository.ErrTransactionNotFound
		}

		return nil, err
	}

	return &tx, nil
}

// ListByUser returns the transactions involving a user.
func (c *TransactionClient) ListByUser(ctx context.Context, userID int64) ([]entity.Transaction, error) {
	var txs []entity.Transaction
	if err := c.client.get(ctx, idPath("/transactions/user/%d", userID), nil, &txs); err != nil {
		return nil, err
	}

	return txs, nil
}
