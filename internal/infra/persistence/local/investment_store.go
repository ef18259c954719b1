package local

import (
	"context"
	"sync"
	"time"

	"starfund/internal/domain/entity"
	"starfund/internal/domain/repository"
	"starfund/internal/infra/localstore"
)

// investmentsDocument is the on-disk shape of the investments ledger.
type investmentsDocument struct {
	NextID      int64               `json:"nextId"`
	Investments []entity.Investment `json:"investments"`
}

// InvestmentStore implements repository.InvestmentRepository over localstore.
// Creating an investment also credits the target project, mirroring what the
// real backend does server-side.
type InvestmentStore struct {
	mu       sync.Mutex
	store    *localstore.Store
	projects *ProjectStore
	latency  time.Duration
	now      func() time.Time
}

// NewInvestmentStore creates the local investment repository.
func NewInvestmentStore(store *localstore.Store, projects *ProjectStore, latency time.Duration) *InvestmentStore {
	return &InvestmentStore{
		store:    store,
		projects: projects,
		latency:  latency,
		now:      time.Now,
	}
}

var _ repository.InvestmentRepository = (*InvestmentStore)(nil)

func (s *InvestmentStore) load() (*investmentsDocument, error) {
	doc := &investmentsDocument{NextID: 1}
	if _, err := s.store.Load(investmentsDoc, doc); err != nil {
		return nil, err
	}
	if doc.NextID == 0 {
		doc.NextID = maxID(doc.Investments, func(i entity.Investment) int64 { return i.ID }) + 1
	}

	return doc, nil
}

// Create persists a new pending investment and credits the project.
func (s *InvestmentStore) Create(ctx context.Context, inv *entity.Investment) (*entity.Investment, error) {
	if err := wait(ctx, s.latency); err != nil {
		return nil, err
	}

	project, err := s.projects.FindByID(ctx, inv.ProjectID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	doc, err := s.load()
	if err != nil {
		s.mu.Unlock()

		return nil, err
	}

	created := *inv
	created.ID = doc.NextID
	doc.NextID++
	created.ProjectTitle = project.Title
	created.Status = entity.InvestmentPending
	created.CreatedAt = s.now().UTC()
	created.CompletedAt = nil

	doc.Investments = append(doc.Investments, created)
	if err := s.store.Save(investmentsDoc, doc); err != nil {
		s.mu.Unlock()

		return nil, err
	}
	s.mu.Unlock()

	// Credit outside the ledger lock; the project store has its own.
	if err := s.projects.AddInvestment(ctx, created.ProjectID, created.Amount); err != nil {
		return nil, err
	}

	return &created, nil
}

// ListByInvestor returns all investments made by an investor.
func (s *InvestmentStore) ListByInvestor(ctx context.Context, investorID int64) ([]entity.Investment, error) {
	return s.filter(ctx, func(inv entity.Investment) bool {
		return inv.InvestorID == investorID
	})
}

// ListByProject returns all investments received by a project.
func (s *InvestmentStore) ListByProject(ctx context.Context, projectID int64) ([]entity.Investment, error) {
	return s.filter(ctx, func(inv entity.Investment) bool {
		return inv.ProjectID == projectID
	})
}

// FindByID retrieves a single investment by its id.
func (s *InvestmentStore) FindByID(ctx context.Context, id int64) (*entity.Investment, error) {
	if err := wait(ctx, s.latency); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	for i := range doc.Investments {
		if doc.Investments[i].ID == id {
			inv := doc.Investments[i]

			return &inv, nil
		}
	}

	return nil, repository.ErrInvestmentNotFound
}

// TotalInvested sums the completed investments of an investor.
func (s *InvestmentStore) TotalInvested(ctx context.Context, investorID int64) (float64, error) {
	investments, err := s.ListByInvestor(ctx, investorID)
	if err != nil {
		return 0, err
	}

	var total float64
	for _, inv := range investments {
		if inv.Status == entity.InvestmentCompleted {
			total += inv.Amount
		}
	}

	return total, nil
}

// Settle moves an investment out of the pending state. The payment gateway
// calls this when a VNPay callback verifies.
func (s *InvestmentStore) Settle(ctx context.Context, id int64, status entity.InvestmentStatus) (*entity.Investment, error) {
	if err := wait(ctx, s.latency); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	for i := range doc.Investments {
		if doc.Investments[i].ID != id {
			continue
		}

		doc.Investments[i].Status = status
		if status == entity.InvestmentCompleted {
			now := s.now().UTC()
			doc.Investments[i].CompletedAt = &now
		}
		if err := s.store.Save(investmentsDoc, doc); err != nil {
			return nil, err
		}
		inv := doc.Investments[i]

		return &inv, nil
	}

	return nil, repository.ErrInvestmentNotFound
}

func (s *InvestmentStore) filter(ctx context.Context, keep func(entity.Investment) bool) ([]entity.Investment, error) {
	if err := wait(ctx, s.latency); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	result := make([]entity.Investment, 0, len(doc.Investments))
	for _, inv := range doc.Investments {
		if keep(inv) {
			result = append(result, inv)
		}
	}

	return result, nil
}
