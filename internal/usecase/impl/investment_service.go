package impl

import (
	"context"
	"log/slog"

	"starfund/internal/domain/entity"
	domainerrors "starfund/internal/domain/errors"
	"starfund/internal/domain/repository"
	"starfund/internal/errors"
	"starfund/internal/session"
	"starfund/internal/usecase"

	"go.uber.org/fx"
)

// investmentService implements the InvestmentUsecase interface.
type investmentService struct {
	viewState

	repo     repository.InvestmentRepository
	projects repository.ProjectRepository
	session  *session.Store
	logger   *slog.Logger
}

// InvestmentServiceParams holds dependencies for investmentService, injected by Fx.
type InvestmentServiceParams struct {
	fx.In

	Repo     repository.InvestmentRepository
	Projects repository.ProjectRepository
	Session  *session.Store
	Logger   *slog.Logger
}

// NewInvestmentService is the constructor for investmentService.
func NewInvestmentService(params InvestmentServiceParams) usecase.InvestmentUsecase {
	return &investmentService{
		repo:     params.Repo,
		projects: params.Projects,
		session:  params.Session,
		logger:   params.Logger,
	}
}

// Invest opens a pending investment for the signed-in investor. The target
// project must be open for funding.
func (srv *investmentService) Invest(ctx context.Context, input usecase.InvestInput) (*entity.Investment, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	investor := srv.session.Current()
	if investor == nil {
		return nil, domainerrors.ErrForbidden
	}

	project, err := srv.projects.FindByID(ctx, input.ProjectID)
	if errors.Is(err, repository.ErrProjectNotFound) {
		return nil, domainerrors.ErrProjectNotFound
	}
	if err != nil {
		return nil, err
	}
	if !project.Status.Investable() {
		return nil, domainerrors.ErrProjectNotInvestable
	}

	gen := srv.begin()
	created, err := srv.repo.Create(ctx, &entity.Investment{
		ProjectID:     input.ProjectID,
		InvestorID:    investor.ID,
		InvestorName:  investor.Name,
		Amount:        input.Amount,
		PaymentMethod: input.PaymentMethod,
	})
	srv.finish(gen, err)
	if err != nil {
		srv.logger.Warn("investment failed", slog.Int64("projectID", input.ProjectID), slog.Any("error", err))

		return nil, err
	}
	srv.logger.Info("investment created",
		slog.Int64("investmentID", created.ID),
		slog.Int64("projectID", created.ProjectID),
		slog.Float64("amount", created.Amount))

	return created, nil
}

// MyInvestments returns the signed-in investor's history.
func (srv *investmentService) MyInvestments(ctx context.Context) ([]entity.Investment, error) {
	investor := srv.session.Current()
	if investor == nil {
		return nil, domainerrors.ErrForbidden
	}

	gen := srv.begin()
	investments, err := srv.repo.ListByInvestor(ctx, investor.ID)
	srv.finish(gen, err)

	return investments, err
}

// ProjectInvestments returns the investments a project received.
func (srv *investmentService) ProjectInvestments(ctx context.Context, projectID int64) ([]entity.Investment, error) {
	gen := srv.begin()
	investments, err := srv.repo.ListByProject(ctx, projectID)
	srv.finish(gen, err)

	return investments, err
}

// Investment fetches a single investment.
func (srv *investmentService) Investment(ctx context.Context, id int64) (*entity.Investment, error) {
	gen := srv.begin()
	inv, err := srv.repo.FindByID(ctx, id)
	srv.finish(gen, err)
	if errors.Is(err, repository.ErrInvestmentNotFound) {
		return nil, domainerrors.ErrInvestmentNotFound
	}

	return inv, err
}

// TotalInvested sums the signed-in investor's completed investments.
func (srv *investmentService) TotalInvested(ctx context.Context) (float64, error) {
	investor := srv.session.Current()
	if investor == nil {
		return 0, domainerrors.ErrForbidden
	}

	gen := srv.begin()
	total, err := srv.repo.TotalInvested(ctx, investor.ID)
	srv.finish(gen, err)

	return total, err
}
