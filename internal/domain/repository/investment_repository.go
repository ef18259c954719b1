package repository

import (
	"context"
	"errors"

	"starfund/internal/domain/entity"
)

// ErrInvestmentNotFound is returned when no investment exists for the given id.
var ErrInvestmentNotFound = errors.New("investment not found")

// InvestmentRepository defines the standard operations for investment
// persistence.
type InvestmentRepository interface {
	// Create persists a new investment. The implementation assigns the id,
	// creation time and the pending status, and credits the target project.
	Create(ctx context.Context, inv *entity.Investment) (*entity.Investment, error)

	// ListByInvestor returns all investments made by an investor.
	ListByInvestor(ctx context.Context, investorID int64) ([]entity.Investment, error)

	// ListByProject returns all investments received by a project.
	ListByProject(ctx context.Context, projectID int64) ([]entity.Investment, error)

	// FindByID retrieves a single investment by its id.
	FindByID(ctx context.Context, id int64) (*entity.Investment, error)

	// TotalInvested sums the completed investments of an investor.
	TotalInvested(ctx context.Context, investorID int64) (float64, error)
}
