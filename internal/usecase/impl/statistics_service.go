package impl

import (
	"context"
	"log/slog"

	"starfund/internal/domain/entity"
	"starfund/internal/domain/repository"
	"starfund/internal/usecase"

	"go.uber.org/fx"
)

// statisticsService implements the StatisticsUsecase interface.
type statisticsService struct {
	viewState

	provider repository.StatisticsProvider
	logger   *slog.Logger
}

// StatisticsServiceParams holds dependencies for statisticsService, injected by Fx.
type StatisticsServiceParams struct {
	fx.In

	Provider repository.StatisticsProvider
	Logger   *slog.Logger
}

// NewStatisticsService is the constructor for statisticsService.
func NewStatisticsService(params StatisticsServiceParams) usecase.StatisticsUsecase {
	return &statisticsService{
		provider: params.Provider,
		logger:   params.Logger,
	}
}

// Overall returns the platform-wide summary.
func (srv *statisticsService) Overall(ctx context.Context) (*entity.OverallStatistics, error) {
	gen := srv.begin()
	stats, err := srv.provider.Overall(ctx)
	srv.finish(gen, err)

	return stats, err
}

// Investor returns the summary for one investor.
func (srv *statisticsService) Investor(ctx context.Context, investorID int64) (*entity.InvestorStatistics, error) {
	gen := srv.begin()
	stats, err := srv.provider.Investor(ctx, investorID)
	srv.finish(gen, err)

	return stats, err
}

// Startup returns the summary for one founder.
func (srv *statisticsService) Startup(ctx context.Context, founderID int64) (*entity.StartupStatistics, error) {
	gen := srv.begin()
	stats, err := srv.provider.Startup(ctx, founderID)
	srv.finish(gen, err)

	return stats, err
}
