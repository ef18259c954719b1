package repository

import (
	"context"
	"errors"

	"starfund/internal/domain/entity"
)

// ErrProjectNotFound is returned when no project exists for the given id.
// Lookups never fail silently; callers can always distinguish "succeeded"
// from "nothing happened".
var ErrProjectNotFound = errors.New("project not found")

// ProjectUpdate describes a partial update to a project. Nil fields are left
// untouched and stay off the wire.
type ProjectUpdate struct {
	Title           *string            `json:"title,omitempty"`
	Description     *string            `json:"description,omitempty"`
	FullDescription *string            `json:"fullDescription,omitempty"`
	Category        *string            `json:"category,omitempty"`
	TargetAmount    *float64           `json:"targetAmount,omitempty"`
	DaysLeft        *int               `json:"daysLeft,omitempty"`
	Image           *string            `json:"image,omitempty"`
	Tags            []string           `json:"tags,omitempty"`
	Milestones      []entity.Milestone `json:"milestones,omitempty"`
}

// ProjectRepository defines the standard operations for project persistence.
type ProjectRepository interface {
	// ListApproved returns the publicly visible projects.
	ListApproved(ctx context.Context) ([]entity.Project, error)

	// ListPending returns projects awaiting CVA review.
	ListPending(ctx context.Context) ([]entity.Project, error)

	// FindByID retrieves a single project by its id.
	FindByID(ctx context.Context, id int64) (*entity.Project, error)

	// ListByFounder returns all projects owned by a founder.
	ListByFounder(ctx context.Context, founderID int64) ([]entity.Project, error)

	// Create persists a new project. The implementation assigns the id,
	// creation time and the pending status.
	Create(ctx context.Context, project *entity.Project) (*entity.Project, error)

	// Update applies a partial update to a project.
	Update(ctx context.Context, id int64, update ProjectUpdate) (*entity.Project, error)

	// Approve marks a pending project approved, with optional feedback.
	// Approving an already-approved project is a no-op that returns it as is.
	Approve(ctx context.Context, id int64, feedback string) (*entity.Project, error)

	// Reject marks a pending project rejected with mandatory feedback.
	Reject(ctx context.Context, id int64, feedback string) (*entity.Project, error)

	// Delete removes a project.
	Delete(ctx context.Context, id int64) error

	// Search returns projects whose title or description contains the query,
	// case-insensitively. No ranking.
	Search(ctx context.Context, query string) ([]entity.Project, error)
}
