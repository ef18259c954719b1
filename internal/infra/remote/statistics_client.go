package remote

import (
	"context"

	"starfund/internal/domain/entity"
	"starfund/internal/domain/repository"
)

// StatisticsClient implements repository.StatisticsProvider against
// /statistics.
type StatisticsClient struct {
	client *Client
}

// NewStatisticsClient creates the remote statistics provider.
func NewStatisticsClient(client *Client) *StatisticsClient {
	return &StatisticsClient{client: client}
}

var _ repository.StatisticsProvider = (*StatisticsClient)(nil)

// Overall returns the platform-wide summary.
func (c *StatisticsClient) Overall(ctx context.Context) (*entity.OverallStatistics, error) {
	var stats entity.OverallStatistics
	if err := c.client.get(ctx, "/statistics/overall", nil, &stats); err != nil {
		return nil, err
	}

	return &stats, nil
}

// Investor returns the summary for a single investor.
func (c *StatisticsClient) Investor(ctx context.Context, investorID int64) (*entity.InvestorStatistics, error) {
	var stats entity.InvestorStatistics
	if err := c.client.get(ctx, idPath("/statistics/investor/%d", investorID), nil, &stats); err != nil {
		return nil, err
	}

	return &stats, nil
}

// Startup returns the summary for a single founder.
func (c *StatisticsClient) Startup(ctx context.Context, founderID int64) (*entity.StartupStatistics, error) {
	var stats entity.StartupStatistics
	if err := c.client.get(ctx, idPath("/statistics/startup/%d", founderID), nil, &stats); err != nil {
		return nil, err
	}

	return &stats, nil
}
