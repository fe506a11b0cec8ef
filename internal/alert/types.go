package alert

import (
	"time"

	"crm-alert-srv/internal/model"
)

// Per-user terminal statuses of one evaluation run.
const (
	StatusSent          = "sent"
	StatusAlreadySent   = "already_sent"
	StatusNoAlertNeeded = "no_alert_needed"
	StatusSkipped       = "skipped"
	StatusEmailFailed   = "email_failed"
	StatusFailed        = "failed"
)

// UserResult is the observability record for one candidate user.
type UserResult struct {
	UserID   string         `json:"userId"`
	Status   string         `json:"status"`
	Severity model.Severity `json:"severity,omitempty"`
}

// RunResult is the JSON summary returned to the trigger caller.
type RunResult struct {
	Category  model.Category `json:"category"`
	Processed int            `json:"processed"`
	Results   []UserResult   `json:"results"`
	Timestamp time.Time      `json:"timestamp"`
}

// Thresholds are the numeric bounds one category is graded against,
// resolved from AlertConfig or category defaults.
type Thresholds struct {
	Red    float64
	Yellow float64
	Green  float64
}

// MarketingStats aggregates a user's marketing-task outcomes over a window.
type MarketingStats struct {
	Success        int `json:"success"`
	Partial        int `json:"partial"`
	Failed         int `json:"failed"`
	PendingOutcome int `json:"pending_outcome"`
	LeadsGenerated int `json:"leads_generated"`
}

// Scored returns the number of outcome-bearing tasks in the window.
func (s MarketingStats) Scored() int {
	return s.Success + s.Partial + s.Failed
}

// SuccessRate returns the success percentage over scored tasks, 0 when the
// sample is empty.
func (s MarketingStats) SuccessRate() float64 {
	scored := s.Scored()
	if scored == 0 {
		return 0
	}
	return float64(s.Success) / float64(scored) * 100
}

// Metrics carries everything a category evaluation computed for one user.
// Each category fills only its own fields; the dispatcher renders from them.
type Metrics struct {
	QuotaTarget   float64 `json:"quota_target,omitempty"`
	QuotaActual   float64 `json:"quota_actual,omitempty"`
	AttainmentPct float64 `json:"attainment_pct,omitempty"`

	StaleDealsRed    []model.Deal `json:"stale_deals_red,omitempty"`
	StaleDealsYellow []model.Deal `json:"stale_deals_yellow,omitempty"`
	StaleLeadsRed    []model.Lead `json:"stale_leads_red,omitempty"`
	StaleLeadsYellow []model.Lead `json:"stale_leads_yellow,omitempty"`

	ActivityCount int `json:"activity_count,omitempty"`

	OverdueTasks []model.Task `json:"overdue_tasks,omitempty"`

	Marketing MarketingStats `json:"marketing,omitempty"`

	PeriodStart time.Time `json:"period_start"`
	PeriodEnd   time.Time `json:"period_end"`
}
