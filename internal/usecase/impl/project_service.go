package impl

import (
	"context"
	"log/slog"
	"sync"

	"starfund/internal/domain/entity"
	domainerrors "starfund/internal/domain/errors"
	"starfund/internal/domain/repository"
	"starfund/internal/errors"
	"starfund/internal/session"
	"starfund/internal/usecase"

	"go.uber.org/fx"
)

// projectService implements the ProjectUsecase interface.
type projectService struct {
	viewState

	repo    repository.ProjectRepository
	session *session.Store
	logger  *slog.Logger

	cacheMu sync.Mutex
	cache   []entity.Project
}

// ProjectServiceParams holds dependencies for projectService, injected by Fx.
type ProjectServiceParams struct {
	fx.In

	Repo    repository.ProjectRepository
	Session *session.Store
	Logger  *slog.Logger
}

// NewProjectService is the constructor for projectService.
func NewProjectService(params ProjectServiceParams) usecase.ProjectUsecase {
	return &projectService{
		repo:    params.Repo,
		session: params.Session,
		logger:  params.Logger,
	}
}

// ApprovedProjects fetches the public project list. On failure the previous
// snapshot is retained and returned alongside the error slot update.
func (srv *projectService) ApprovedProjects(ctx context.Context) ([]entity.Project, error) {
	gen := srv.begin()

	projects, err := srv.repo.ListApproved(ctx)
	if !srv.finish(gen, err) {
		return srv.CachedProjects(), nil
	}
	if err != nil {
		srv.logger.Warn("fetching approved projects failed", slog.Any("error", err))

		return nil, err
	}

	srv.cacheMu.Lock()
	srv.cache = projects
	srv.cacheMu.Unlock()

	return projects, nil
}

// CachedProjects returns the last successfully fetched approved list.
func (srv *projectService) CachedProjects() []entity.Project {
	srv.cacheMu.Lock()
	defer srv.cacheMu.Unlock()

	return srv.cache
}

// PendingProjects fetches the review queue.
func (srv *projectService) PendingProjects(ctx context.Context) ([]entity.Project, error) {
	gen := srv.begin()
	projects, err := srv.repo.ListPending(ctx)
	srv.finish(gen, err)

	return projects, err
}

// Project fetches a single project.
func (srv *projectService) Project(ctx context.Context, id int64) (*entity.Project, error) {
	gen := srv.begin()
	project, err := srv.repo.FindByID(ctx, id)
	srv.finish(gen, err)
	if errors.Is(err, repository.ErrProjectNotFound) {
		return nil, domainerrors.ErrProjectNotFound
	}

	return project, err
}

// ProjectsByFounder fetches a founder's projects.
func (srv *projectService) ProjectsByFounder(ctx context.Context, founderID int64) ([]entity.Project, error) {
	gen := srv.begin()
	projects, err := srv.repo.ListByFounder(ctx, founderID)
	srv.finish(gen, err)

	return projects, err
}

// CreateProject submits a new project for review under the signed-in founder.
func (srv *projectService) CreateProject(ctx context.Context, input usecase.CreateProjectInput) (*entity.Project, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	founder := srv.session.Current()
	if founder == nil {
		return nil, domainerrors.ErrForbidden
	}

	project := &entity.Project{
		Title:           input.Title,
		Description:     input.Description,
		FullDescription: input.FullDescription,
		Category:        input.Category,
		TargetAmount:    input.TargetAmount,
		DaysLeft:        input.DaysLeft,
		Image:           input.Image,
		Tags:            input.Tags,
		StartupName:     founder.Company,
		FounderID:       founder.ID,
		FounderName:     founder.Name,
		FounderEmail:    founder.Email,
	}
	for _, m := range input.Milestones {
		project.Milestones = append(project.Milestones, entity.Milestone{
			Title:       m.Title,
			Description: m.Description,
			Amount:      m.Amount,
		})
	}

	gen := srv.begin()
	created, err := srv.repo.Create(ctx, project)
	srv.finish(gen, err)
	if err != nil {
		srv.logger.Warn("creating project failed", slog.Any("error", err))

		return nil, err
	}
	srv.logger.Info("project submitted for review", slog.Int64("projectID", created.ID))

	return created, nil
}

// UpdateProject edits the mutable fields of a project.
func (srv *projectService) UpdateProject(ctx context.Context, id int64, update repository.ProjectUpdate) (*entity.Project, error) {
	gen := srv.begin()
	project, err := srv.repo.Update(ctx, id, update)
	srv.finish(gen, err)
	if errors.Is(err, repository.ErrProjectNotFound) {
		return nil, domainerrors.ErrProjectNotFound
	}

	return project, err
}

// ApproveProject marks a pending project as approved.
func (srv *projectService) ApproveProject(ctx context.Context, id int64, feedback string) (*entity.Project, error) {
	gen := srv.begin()
	project, err := srv.repo.Approve(ctx, id, feedback)
	srv.finish(gen, err)
	if errors.Is(err, repository.ErrProjectNotFound) {
		return nil, domainerrors.ErrProjectNotFound
	}
	if err == nil {
		srv.logger.Info("project approved", slog.Int64("projectID", id))
	}

	return project, err
}

// RejectProject marks a pending project as rejected.
func (srv *projectService) RejectProject(ctx context.Context, id int64, feedback string) (*entity.Project, error) {
	gen := srv.begin()
	project, err := srv.repo.Reject(ctx, id, feedback)
	srv.finish(gen, err)
	if errors.Is(err, repository.ErrProjectNotFound) {
		return nil, domainerrors.ErrProjectNotFound
	}
	if err == nil {
		srv.logger.Info("project rejected", slog.Int64("projectID", id))
	}

	return project, err
}

// DeleteProject removes a project.
func (srv *projectService) DeleteProject(ctx context.Context, id int64) error {
	gen := srv.begin()
	err := srv.repo.Delete(ctx, id)
	srv.finish(gen, err)
	if errors.Is(err, repository.ErrProjectNotFound) {
		return domainerrors.ErrProjectNotFound
	}

	return err
}

// SearchProjects finds projects of any status matching the query.
func (srv *projectService) SearchProjects(ctx context.Context, query string) ([]entity.Project, error) {
	gen := srv.begin()
	projects, err := srv.repo.Search(ctx, query)
	srv.finish(gen, err)

	return projects, err
}
