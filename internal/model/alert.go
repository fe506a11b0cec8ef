package model

import "time"

// Category identifies an independently scheduled alert evaluation.
type Category string

const (
	CategoryQuota           Category = "quota"
	CategoryStaleItems      Category = "stale_items"
	CategoryActivity        Category = "activity"
	CategoryTaskOverdue     Category = "task_overdue"
	CategoryMarketingWeekly Category = "marketing_weekly"
	CategoryMonthlyReview   Category = "monthly_review"
)

// Categories lists every alert category in evaluation order.
var Categories = []Category{
	CategoryQuota,
	CategoryStaleItems,
	CategoryActivity,
	CategoryTaskOverdue,
	CategoryMarketingWeekly,
	CategoryMonthlyReview,
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Severity grades a metric against thresholds. The zero value SeverityNone
// means "no alert warranted".
type Severity string

const (
	SeverityNone   Severity = ""
	SeverityGreen  Severity = "GREEN"
	SeverityYellow Severity = "YELLOW"
	SeverityRed    Severity = "RED"
)

// Rank orders severities none < GREEN < YELLOW < RED so that "worse wins"
// comparisons are a plain integer compare.
func (s Severity) Rank() int {
	switch s {
	case SeverityRed:
		return 3
	case SeverityYellow:
		return 2
	case SeverityGreen:
		return 1
	default:
		return 0
	}
}

// Worse returns the higher-ranked of s and other.
func (s Severity) Worse(other Severity) Severity {
	if other.Rank() > s.Rank() {
		return other
	}
	return s
}

// AlertConfig is the per-category admin-editable configuration row. Missing
// rows are lazily created with category defaults by the settings loader.
type AlertConfig struct {
	ID              string    `json:"id"`
	Category        Category  `json:"category"`
	Enabled         bool      `json:"enabled"`
	Schedule        string    `json:"schedule"` // cadence expression, informational
	RedThreshold    float64   `json:"red_threshold"`
	YellowThreshold float64   `json:"yellow_threshold"`
	GreenThreshold  float64   `json:"green_threshold"`
	CCRecipients    []string  `json:"cc_recipients"`
	BCCAdmin        bool      `json:"bcc_admin"`
	TestMode        bool      `json:"test_mode"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// GlobalAlertSettings is the singleton engine-wide mail policy. Safe defaults
// apply when the row is absent.
type GlobalAlertSettings struct {
	FromEmail       string    `json:"from_email"`
	AdminEmail      string    `json:"admin_email"`
	HREmail         string    `json:"hr_email"`
	LeadershipEmail string    `json:"leadership_email"`
	ReviewerEmail   string    `json:"reviewer_email"`
	BCCAllToAdmin   bool      `json:"bcc_all_to_admin"`
	TestMode        bool      `json:"test_mode"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// QuotaAlert is the idempotency ledger row. Its existence means "already
// sent for this period"; (UserID, AlertType, Period) is unique.
type QuotaAlert struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	AlertType Category  `json:"alert_type"`
	Severity  Severity  `json:"severity"`
	Period    string    `json:"period"`
	CreatedAt time.Time `json:"created_at"`
}

// EmailLog is the immutable audit record of one send attempt. A null
// SESMessageID marks a failed send.
type EmailLog struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	AlertType     Category  `json:"alert_type"`
	Severity      Severity  `json:"severity"`
	RecipientTo   string    `json:"recipient_to"`
	RecipientsCC  []string  `json:"recipients_cc"`
	Subject       string    `json:"subject"`
	Body          string    `json:"body"`
	BodyObjectKey string    `json:"body_object_key,omitempty"`
	QuotaTarget   float64   `json:"quota_target"`
	QuotaActual   float64   `json:"quota_actual"`
	SESMessageID  *string   `json:"ses_message_id"`
	SentAt        time.Time `json:"sent_at"`
}

// UserAlertExclusion suppresses every alert category for a user while now is
// inside [StartDate, EndDate].
type UserAlertExclusion struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Reason    string    `json:"reason,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Covers reports whether the exclusion window contains now.
func (e UserAlertExclusion) Covers(now time.Time) bool {
	return !now.Before(e.StartDate) && !now.After(e.EndDate)
}
