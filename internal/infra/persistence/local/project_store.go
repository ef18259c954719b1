package local

import (
	"context"
	"strings"
	"sync"
	"time"

	"starfund/internal/domain/entity"
	"starfund/internal/domain/repository"
	"starfund/internal/errors"
	"starfund/internal/infra/localstore"
)

// projectsDocument is the on-disk shape of the projects overlay.
type projectsDocument struct {
	NextID   int64            `json:"nextId"`
	Projects []entity.Project `json:"projects"`
}

// ProjectStore implements repository.ProjectRepository over localstore.
type ProjectStore struct {
	mu      sync.Mutex
	store   *localstore.Store
	latency time.Duration
	now     func() time.Time
}

// NewProjectStore creates the local project repository.
func NewProjectStore(store *localstore.Store, latency time.Duration) *ProjectStore {
	return &ProjectStore{
		store:   store,
		latency: latency,
		now:     time.Now,
	}
}

var _ repository.ProjectRepository = (*ProjectStore)(nil)

// load reads the overlay, seeding it on first use. Callers must hold mu.
func (s *ProjectStore) load() (*projectsDocument, error) {
	doc := &projectsDocument{}
	found, err := s.store.Load(projectsDoc, doc)
	if err != nil {
		return nil, err
	}
	if !found {
		seed := seedProjects()
		doc = &projectsDocument{
			NextID:   maxID(seed, func(p entity.Project) int64 { return p.ID }) + 1,
			Projects: seed,
		}
		if err := s.store.Save(projectsDoc, doc); err != nil {
			return nil, err
		}
	}

	return doc, nil
}

func (s *ProjectStore) save(doc *projectsDocument) error {
	return s.store.Save(projectsDoc, doc)
}

// ListApproved returns the publicly visible projects.
func (s *ProjectStore) ListApproved(ctx context.Context) ([]entity.Project, error) {
	return s.filter(ctx, func(p entity.Project) bool {
		return p.Status.Investable()
	})
}

// ListPending returns projects awaiting CVA review.
func (s *ProjectStore) ListPending(ctx context.Context) ([]entity.Project, error) {
	return s.filter(ctx, func(p entity.Project) bool {
		return p.Status == entity.ProjectPending
	})
}

// ListByFounder returns all projects owned by a founder.
func (s *ProjectStore) ListByFounder(ctx context.Context, founderID int64) ([]entity.Project, error) {
	return s.filter(ctx, func(p entity.Project) bool {
		return p.FounderID == founderID
	})
}

// Search returns projects whose title or description contains the query,
// case-insensitively.
func (s *ProjectStore) Search(ctx context.Context, query string) ([]entity.Project, error) {
	needle := strings.ToLower(strings.TrimSpace(query))

	return s.filter(ctx, func(p entity.Project) bool {
		return strings.Contains(strings.ToLower(p.Title), needle) ||
			strings.Contains(strings.ToLower(p.Description), needle)
	})
}

func (s *ProjectStore) filter(ctx context.Context, keep func(entity.Project) bool) ([]entity.Project, error) {
	if err := wait(ctx, s.latency); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	result := make([]entity.Project, 0, len(doc.Projects))
	for _, p := range doc.Projects {
		if keep(p) {
			result = append(result, p)
		}
	}

	return result, nil
}

// FindByID retrieves a single project by its id.
func (s *ProjectStore) FindByID(ctx context.Context, id int64) (*entity.Project, error) {
	if err := wait(ctx, s.latency); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	for i := range doc.Projects {
		if doc.Projects[i].ID == id {
			p := doc.Projects[i]

			return &p, nil
		}
	}

	return nil, repository.ErrProjectNotFound
}

// Create persists a new project with a fresh id and the pending status.
func (s *ProjectStore) Create(ctx context.Context, project *entity.Project) (*entity.Project, error) {
	if err := wait(ctx, s.latency); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	created := *project
	created.ID = doc.NextID
	doc.NextID++
	created.Status = entity.ProjectPending
	created.CurrentAmount = 0
	created.InvestorCount = 0
	created.CreatedAt = s.now().UTC()
	created.ApprovedAt = nil
	created.RejectedAt = nil
	created.ReviewFeedback = ""

	doc.Projects = append(doc.Projects, created)
	if err := s.save(doc); err != nil {
		return nil, err
	}

	return &created, nil
}

// Update applies a partial update to a project.
func (s *ProjectStore) Update(ctx context.Context, id int64, update repository.ProjectUpdate) (*entity.Project, error) {
	return s.mutate(ctx, id, func(p *entity.Project) error {
		if update.Title != nil {
			p.Title = *update.Title
		}
		if update.Description != nil {
			p.Description = *update.Description
		}
		if update.FullDescription != nil {
			p.FullDescription = *update.FullDescription
		}
		if update.Category != nil {
			p.Category = *update.Category
		}
		if update.TargetAmount != nil {
			p.TargetAmount = *update.TargetAmount
		}
		if update.DaysLeft != nil {
			p.DaysLeft = *update.DaysLeft
		}
		if update.Image != nil {
			p.Image = *update.Image
		}
		if update.Tags != nil {
			p.Tags = append([]string(nil), update.Tags...)
		}
		if update.Milestones != nil {
			p.Milestones = append([]entity.Milestone(nil), update.Milestones...)
		}

		return nil
	})
}

// Approve marks a pending project approved. Approving an already-approved
// project leaves it untouched.
func (s *ProjectStore) Approve(ctx context.Context, id int64, feedback string) (*entity.Project, error) {
	return s.mutate(ctx, id, func(p *entity.Project) error {
		if p.Status == entity.ProjectApproved {
			return nil
		}
		now := s.now().UTC()
		p.Status = entity.ProjectApproved
		p.ApprovedAt = &now
		p.RejectedAt = nil
		p.ReviewFeedback = feedback

		return nil
	})
}

// Reject marks a project rejected with mandatory feedback.
func (s *ProjectStore) Reject(ctx context.Context, id int64, feedback string) (*entity.Project, error) {
	return s.mutate(ctx, id, func(p *entity.Project) error {
		now := s.now().UTC()
		p.Status = entity.ProjectRejected
		p.RejectedAt = &now
		p.ApprovedAt = nil
		p.ReviewFeedback = feedback

		return nil
	})
}

// AddInvestment credits an investment to a project: currentAmount grows by
// the amount, investorCount by one. Over-funding past targetAmount is
// allowed.
func (s *ProjectStore) AddInvestment(ctx context.Context, projectID int64, amount float64) error {
	_, err := s.mutate(ctx, projectID, func(p *entity.Project) error {
		p.CurrentAmount += amount
		p.InvestorCount++

		return nil
	})

	return err
}

// Delete removes a project.
func (s *ProjectStore) Delete(ctx context.Context, id int64) error {
	if err := wait(ctx, s.latency); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}

	for i := range doc.Projects {
		if doc.Projects[i].ID == id {
			doc.Projects = append(doc.Projects[:i], doc.Projects[i+1:]...)

			return s.save(doc)
		}
	}

	return repository.ErrProjectNotFound
}

func (s *ProjectStore) mutate(ctx context.Context, id int64, apply func(*entity.Project) error) (*entity.Project, error) {
	if err := wait(ctx, s.latency); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	for i := range doc.Projects {
		if doc.Projects[i].ID != id {
			continue
		}

		if err := apply(&doc.Projects[i]); err != nil {
			return nil, err
		}
		if err := s.save(doc); err != nil {
			return nil, err
		}
		p := doc.Projects[i]

		return &p, nil
	}

	return nil, errors.WithStack(repository.ErrProjectNotFound)
}
