package repository

import (
	"context"

	"starfund/internal/domain/entity"
)

// StatisticsProvider computes dashboard summaries.
type StatisticsProvider interface {
	// Overall returns the platform-wide summary.
	Overall(ctx context.Context) (*entity.OverallStatistics, error)

	// Investor returns the summary for a single investor.
	Investor(ctx context.Context, investorID int64) (*entity.InvestorStatistics, error)

	// Startup returns the summary for a single founder.
	Startup(ctx context.Context, founderID int64) (*entity.StartupStatistics, error)
}
