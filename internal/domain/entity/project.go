package entity

import "time"

// ProjectStatus represents the review and funding lifecycle of a project.
type ProjectStatus string

const (
	// ProjectPending indicates a submitted project awaiting CVA review.
	ProjectPending ProjectStatus = "pending"
	// ProjectApproved indicates a project cleared by the CVA and open to investors.
	ProjectApproved ProjectStatus = "approved"
	// ProjectRejected indicates a project turned down by the CVA.
	ProjectRejected ProjectStatus = "rejected"
	// ProjectActive indicates an approved project currently raising funds.
	ProjectActive ProjectStatus = "active"
	// ProjectCompleted indicates a project whose campaign has ended.
	ProjectCompleted ProjectStatus = "completed"
)

// IsValid checks if the ProjectStatus is a valid value.
func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectPending, ProjectApproved, ProjectRejected, ProjectActive, ProjectCompleted:
		return true
	default:
		return false
	}
}

// Investable reports whether the project can receive new investments.
func (s ProjectStatus) Investable() bool {
	return s == ProjectApproved || s == ProjectActive
}

// Milestone is a funding checkpoint declared by the founder.
type Milestone struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Completed   bool    `json:"completed,omitempty"`
}

// Project is a fundraising campaign created by a startup. Financial fields
// (CurrentAmount, InvestorCount) are owned by the investment subsystem once
// the project is approved.
type Project struct {
	ID              int64         `json:"id"`
	Title           string        `json:"title"`
	Description     string        `json:"description"`
	FullDescription string        `json:"fullDescription"`
	Category        string        `json:"category"`
	TargetAmount    float64       `json:"targetAmount"`
	CurrentAmount   float64       `json:"currentAmount"`
	InvestorCount   int           `json:"investorCount"`
	DaysLeft        int           `json:"daysLeft"`
	StartupName     string        `json:"startupName"`
	FounderID       int64         `json:"founderId"`
	FounderName     string        `json:"founderName"`
	FounderEmail    string        `json:"founderEmail"`
	Status          ProjectStatus `json:"status"`
	Image           string        `json:"image"`
	Tags            []string      `json:"tags"`
	Milestones      []Milestone   `json:"milestones,omitempty"`
	CreatedAt       time.Time     `json:"createdAt"`
	ApprovedAt      *time.Time    `json:"approvedAt,omitempty"`
	RejectedAt      *time.Time    `json:"rejectedAt,omitempty"`
	ReviewFeedback  string        `json:"reviewFeedback,omitempty"`
}
