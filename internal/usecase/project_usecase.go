package usecase

import (
	"context"

	"starfund/internal/domain/entity"
	"starfund/internal/domain/repository"
)

// MilestoneInput is one funding milestone of a new project.
type MilestoneInput struct {
	Title       string  `validate:"required"`
	Description string  `validate:"required"`
	Amount      float64 `validate:"gt=0"`
}

// CreateProjectInput defines the data a startup submits for review.
type CreateProjectInput struct {
	Title           string  `validate:"required,min=3"`
	Description     string  `validate:"required"`
	FullDescription string  `validate:"required"`
	Category        string  `validate:"required"`
	TargetAmount    float64 `validate:"gt=0"`
	DaysLeft        int     `validate:"gte=0"`
	Image           string
	Tags            []string         `validate:"unique"`
	Milestones      []MilestoneInput `validate:"dive"`
}

// ProjectUsecase defines the project operations the screens depend on.
// List results are cached; a failed refresh keeps the previous snapshot.
type ProjectUsecase interface {
	ViewState

	ApprovedProjects(ctx context.Context) ([]entity.Project, error)
	PendingProjects(ctx context.Context) ([]entity.Project, error)
	Project(ctx context.Context, id int64) (*entity.Project, error)
	ProjectsByFounder(ctx context.Context, founderID int64) ([]entity.Project, error)
	CreateProject(ctx context.Context, input CreateProjectInput) (*entity.Project, error)
	UpdateProject(ctx context.Context, id int64, update repository.ProjectUpdate) (*entity.Project, error)
	ApproveProject(ctx context.Context, id int64, feedback string) (*entity.Project, error)
	RejectProject(ctx context.Context, id int64, feedback string) (*entity.Project, error)
	DeleteProject(ctx context.Context, id int64) error
	SearchProjects(ctx context.Context, query string) ([]entity.Project, error)

	// CachedProjects returns the last successfully fetched approved list.
	CachedProjects() []entity.Project
}
