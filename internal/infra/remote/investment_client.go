package remote

import (
	"context"

	"starfund/internal/domain/entity"
	"starfund/internal/domain/repository"
)

// InvestmentClient implements repository.InvestmentRepository against
// /investments.
type InvestmentClient struct {
	client *Client
}

// NewInvestmentClient creates the remote investment repository.
func NewInvestmentClient(client *Client) *InvestmentClient {
	return &InvestmentClient{client: client}
}

var _ repository.InvestmentRepository = (*InvestmentClient)(nil)

type createInvestmentRequest struct {
	ProjectID     int64   `json:"projectId"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"paymentMethod"`
}

// Create opens a new pending investment.
func (c *InvestmentClient) Create(ctx context.Context, inv *entity.Investment) (*entity.Investment, error) {
	var created entity.Investment
	err := c.client.post(ctx, "/investments", createInvestmentRequest{
		ProjectID:     inv.ProjectID,
		Amount:        inv.Amount,
		PaymentMethod: inv.PaymentMethod,
	}, &created)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

// ListByInvestor returns the investments made by an investor.
func (c *InvestmentClient) ListByInvestor(ctx context.Context, investorID int64) ([]entity.Investment, error) {
	var investments []entity.Investment
	if err := c.client.get(ctx, idPath("/investments/investor/%d", investorID), nil, &investments); err != nil {
		return nil, err
	}

	return investments, nil
}

// ListByProject returns the investments received by a project.
func (c *InvestmentClient) ListByProject(ctx context.Context, projectID int64) ([]entity.Investment, error) {
	var investments []entity.Investment
	if err := c.client.get(ctx, idPath("/investments/project/%d", projectID), nil, &investments); err != nil {
		return nil, err
	}

	return investments, nil
}

// FindByID retrieves a single investment.
func (c *InvestmentClient) FindByID(ctx context.Context, id int64) (*entity.Investment, error) {
	var inv entity.Investment
	if err := c.client.get(ctx, idPath("/investments/%d", id), nil, &inv); err != nil {
		if IsNotFound(err) {
			return nil, repository.ErrInvestmentNotFound
		}

		return nil, err
	}

	return &inv, nil
}

// TotalInvested sums the completed investments of an investor.
func (c *InvestmentClient) TotalInvested(ctx context.Context, investorID int64) (float64, error) {
	investments, err := c.ListByInvestor(ctx, investorID)
	if err != nil {
		return 0, err
	}

	var total float64
	for _, inv := range investments {
		if inv.Status == entity.InvestmentCompleted {
			total += inv.Amount
		}
	}

	return total, nil
}
