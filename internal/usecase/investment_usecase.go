package usecase

import (
	"context"

	"starfund/internal/domain/entity"
)

// InvestInput defines the data required to open an investment.
type InvestInput struct {
	ProjectID     int64   `validate:"required,gt=0"`
	Amount        float64 `validate:"required,gt=0"`
	PaymentMethod string  `validate:"required"`
}

// InvestmentUsecase defines the investment operations the screens depend on.
type InvestmentUsecase interface {
	ViewState

	Invest(ctx context.Context, input InvestInput) (*entity.Investment, error)
	MyInvestments(ctx context.Context) ([]entity.Investment, error)
	ProjectInvestments(ctx context.Context, projectID int64) ([]entity.Investment, error)
	Investment(ctx context.Context, id int64) (*entity.Investment, error)
	TotalInvested(ctx context.Context) (float64, error)
}
