package entity

// OverallStatistics is the platform-wide dashboard summary.
type OverallStatistics struct {
	TotalProjects    int     `json:"totalProjects"`
	TotalInvestments int     `json:"totalInvestments"`
	TotalInvestors   int     `json:"totalInvestors"`
	TotalStartups    int     `json:"totalStartups"`
	TotalFunding     float64 `json:"totalFunding"`
	PendingProjects  int     `json:"pendingProjects"`
	ApprovedProjects int     `json:"approvedProjects"`
	RejectedProjects int     `json:"rejectedProjects"`
}

// InvestorStatistics summarizes a single investor's activity.
type InvestorStatistics struct {
	InvestorID           int64   `json:"investorId"`
	TotalInvested        float64 `json:"totalInvested"`
	ProjectsBacked       int     `json:"projectsBacked"`
	PendingInvestments   int     `json:"pendingInvestments"`
	CompletedInvestments int     `json:"completedInvestments"`
}

// StartupStatistics summarizes a single founder's fundraising.
type StartupStatistics struct {
	FounderID        int64   `json:"founderId"`
	TotalRaised      float64 `json:"totalRaised"`
	TotalProjects    int     `json:"totalProjects"`
	PendingProjects  int     `json:"pendingProjects"`
	ApprovedProjects int     `json:"approvedProjects"`
	RejectedProjects int     `json:"rejectedProjects"`
	TotalInvestors   int     `json:"totalInvestors"`
}
