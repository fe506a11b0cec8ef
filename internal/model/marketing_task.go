package model

import "time"

// TaskType is the closed set of marketing task kinds. The outcome classifier
// dispatches exhaustively on this enum.
type TaskType string

const (
	TaskTypeLinkedInOutreach TaskType = "LINKEDIN_OUTREACH"
	TaskTypeColdEmail        TaskType = "COLD_EMAIL"
	TaskTypeSocialPost       TaskType = "SOCIAL_POST"
	TaskTypeBlogPost         TaskType = "BLOG_POST"
	TaskTypeEmailCampaign    TaskType = "EMAIL_CAMPAIGN"
	TaskTypeEvent            TaskType = "EVENT"
	TaskTypeWebinar          TaskType = "WEBINAR"
	TaskTypeContent          TaskType = "CONTENT"
	TaskTypeOther            TaskType = "OTHER"
)

// TaskTypes lists every valid task type.
var TaskTypes = []TaskType{
	TaskTypeLinkedInOutreach,
	TaskTypeColdEmail,
	TaskTypeSocialPost,
	TaskTypeBlogPost,
	TaskTypeEmailCampaign,
	TaskTypeEvent,
	TaskTypeWebinar,
	TaskTypeContent,
	TaskTypeOther,
}

// Valid reports whether t is one of the known task types.
func (t TaskType) Valid() bool {
	for _, known := range TaskTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Marketing task statuses.
const (
	MarketingTaskStatusInProgress = "IN_PROGRESS"
	MarketingTaskStatusCompleted  = "COMPLETED"
	MarketingTaskStatusNoResponse = "NO_RESPONSE"
)

// Outcome is the classification of a completed marketing task.
type Outcome string

const (
	OutcomeSuccess Outcome = "SUCCESS"
	OutcomePartial Outcome = "PARTIAL"
	OutcomeFailed  Outcome = "FAILED"
)

// Rank orders outcomes FAILED < PARTIAL < SUCCESS.
func (o Outcome) Rank() int {
	switch o {
	case OutcomeSuccess:
		return 2
	case OutcomePartial:
		return 1
	default:
		return 0
	}
}

// LinkedIn response types.
const (
	ResponseInterested    = "INTERESTED"
	ResponseNotInterested = "NOT_INTERESTED"
	ResponseNone          = "NO_RESPONSE"
)

// EngagementMetrics holds the type-dependent engagement fields recorded on a
// marketing task. Absent fields are zero values; the classifier treats them
// as 0/false.
type EngagementMetrics struct {
	Likes               int    `json:"likes"`
	Comments            int    `json:"comments"`
	Shares              int    `json:"shares"`
	Views               int    `json:"views"`
	EmailsSent          int    `json:"emails_sent"`
	EmailsOpened        int    `json:"emails_opened"`
	EmailsReplied       int    `json:"emails_replied"`
	Attendees           int    `json:"attendees"`
	MeetingsBooked      int    `json:"meetings_booked"`
	ResponseType        string `json:"response_type"`       // LinkedIn only
	ConnectionAccepted  bool   `json:"connection_accepted"` // LinkedIn only
	ICPEngagement       bool   `json:"icp_engagement"`
	LeadsGeneratedCount int    `json:"leads_generated_count"`
}

// MarketingTask is a marketing work item. Only the outcome fields are
// writable by the engine.
type MarketingTask struct {
	ID              string            `json:"id"`
	OwnerID         string            `json:"owner_id"`
	Title           string            `json:"title"`
	Type            TaskType          `json:"type"`
	Status          string            `json:"status"`
	Metrics         EngagementMetrics `json:"metrics"`
	Outcome         *Outcome          `json:"outcome,omitempty"`
	OutcomeOverride bool              `json:"outcome_override"`
	OverrideReason  string            `json:"override_reason,omitempty"`
	CompletedAt     *time.Time        `json:"completed_at,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}
