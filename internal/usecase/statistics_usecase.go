package usecase

import (
	"context"

	"starfund/internal/domain/entity"
)

// StatisticsUsecase defines the dashboard summary operations.
type StatisticsUsecase interface {
	ViewState

	Overall(ctx context.Context) (*entity.OverallStatistics, error)
	Investor(ctx context.Context, investorID int64) (*entity.InvestorStatistics, error)
	Startup(ctx context.Context, founderID int64) (*entity.StartupStatistics, error)
}
