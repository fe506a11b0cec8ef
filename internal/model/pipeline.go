package model

import "time"

// Deal stages as stored by the core CRM. Only the closed-won stage matters
// for quota attainment; staleness applies to every open stage.
const (
	DealStageProspecting = "PROSPECTING"
	DealStageProposal    = "PROPOSAL"
	DealStageNegotiation = "NEGOTIATION"
	DealStageClosedWon   = "CLOSED_WON"
	DealStageClosedLost  = "CLOSED_LOST"
)

// Deal is a read-only view of a pipeline deal.
type Deal struct {
	ID        string     `json:"id"`
	OwnerID   string     `json:"owner_id"`
	Name      string     `json:"name"`
	Stage     string     `json:"stage"`
	Amount    float64    `json:"amount"`
	ClosedAt  *time.Time `json:"closed_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// IsOpen reports whether the deal is still in play.
func (d Deal) IsOpen() bool {
	return d.Stage != DealStageClosedWon && d.Stage != DealStageClosedLost
}

// DaysSinceUpdate returns the whole days elapsed since the deal last changed.
func (d Deal) DaysSinceUpdate(now time.Time) int {
	return int(now.Sub(d.UpdatedAt).Hours() / 24)
}

// Lead is a read-only view of a sales lead.
type Lead struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Name      string    `json:"name"`
	Company   string    `json:"company"`
	Converted bool      `json:"converted"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DaysSinceUpdate returns the whole days elapsed since the lead last changed.
func (l Lead) DaysSinceUpdate(now time.Time) int {
	return int(now.Sub(l.UpdatedAt).Hours() / 24)
}

// Activity is a read-only view of a logged CRM activity (call, meeting, ...).
type Activity struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Type      string    `json:"type"`
	Subject   string    `json:"subject"`
	CreatedAt time.Time `json:"created_at"`
}

// Task is a read-only view of a CRM task with a due date.
type Task struct {
	ID          string     `json:"id"`
	OwnerID     string     `json:"owner_id"`
	Title       string     `json:"title"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// IsOverdue reports whether the task has a due date in the past and is not
// yet completed.
func (t Task) IsOverdue(now time.Time) bool {
	return t.CompletedAt == nil && t.DueDate != nil && t.DueDate.Before(now)
}
