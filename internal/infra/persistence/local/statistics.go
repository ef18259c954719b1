package local

import (
	"context"

	"starfund/internal/domain/entity"
	"starfund/internal/domain/repository"
)

// Statistics computes dashboard summaries from the local stores.
type Statistics struct {
	projects    *ProjectStore
	investments *InvestmentStore
	users       *UserStore
}

// NewStatistics creates the local statistics provider.
func NewStatistics(projects *ProjectStore, investments *InvestmentStore, users *UserStore) *Statistics {
	return &Statistics{projects: projects, investments: investments, users: users}
}

var _ repository.StatisticsProvider = (*Statistics)(nil)

// Overall returns the platform-wide summary.
func (s *Statistics) Overall(ctx context.Context) (*entity.OverallStatistics, error) {
	projects, err := s.projects.filter(ctx, func(entity.Project) bool { return true })
	if err != nil {
		return nil, err
	}
	investments, err := s.investments.filter(ctx, func(entity.Investment) bool { return true })
	if err != nil {
		return nil, err
	}
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}

	stats := &entity.OverallStatistics{
		TotalProjects:    len(projects),
		TotalInvestments: len(investments),
	}
	for _, p := range projects {
		stats.TotalFunding += p.CurrentAmount
		switch p.Status {
		case entity.ProjectPending:
			stats.PendingProjects++
		case entity.ProjectApproved, entity.ProjectActive, entity.ProjectCompleted:
			stats.ApprovedProjects++
		case entity.ProjectRejected:
			stats.RejectedProjects++
		}
	}
	for _, u := range users {
		switch u.Role {
		case entity.RoleInvestor:
			stats.TotalInvestors++
		case entity.RoleStartup:
			stats.TotalStartups++
		}
	}

	return stats, nil
}

// Investor returns the summary for a single investor.
func (s *Statistics) Investor(ctx context.Context, investorID int64) (*entity.InvestorStatistics, error) {
	investments, err := s.investments.ListByInvestor(ctx, investorID)
	if err != nil {
		return nil, err
	}

	stats := &entity.InvestorStatistics{InvestorID: investorID}
	backed := map[int64]struct{}{}
	for _, inv := range investments {
		backed[inv.ProjectID] = struct{}{}
		switch inv.Status {
		case entity.InvestmentPending:
			stats.PendingInvestments++
		case entity.InvestmentCompleted:
			stats.CompletedInvestments++
			stats.TotalInvested += inv.Amount
		}
	}
	stats.ProjectsBacked = len(backed)

	return stats, nil
}

// Startup returns the summary for a single founder.
func (s *Statistics) Startup(ctx context.Context, founderID int64) (*entity.StartupStatistics, error) {
	projects, err := s.projects.ListByFounder(ctx, founderID)
	if err != nil {
		return nil, err
	}

	stats := &entity.StartupStatistics{FounderID: founderID}
	stats.TotalProjects = len(projects)
	for _, p := range projects {
		stats.TotalRaised += p.CurrentAmount
		stats.TotalInvestors += p.InvestorCount
		switch p.Status {
		case entity.ProjectPending:
			stats.PendingProjects++
		case entity.ProjectApproved, entity.ProjectActive, entity.ProjectCompleted:
			stats.ApprovedProjects++
		case entity.ProjectRejected:
			stats.RejectedProjects++
		}
	}

	return stats, nil
}
