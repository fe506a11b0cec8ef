package marketingtask

import (
	"crm-alert-srv/internal/model"
	"crm-alert-srv/internal/outcome"
	"crm-alert-srv/pkg/paginator"
)

// ListInput filters the task listing. OwnerID is honored for admins only;
// other callers always see their own tasks.
type ListInput struct {
	OwnerID       string
	Status        string
	PaginateQuery paginator.PaginateQuery
}

// Detail pairs a task with the classifier's view of it. Checks are always
// computed for display, even when an override pinned the stored outcome.
type Detail struct {
	Task       model.MarketingTask `json:"task"`
	Classified outcome.Result      `json:"classified"`
}

// UpdateInput patches one task. Nil fields are left unchanged; the metric
// fields carry "any subset" semantics from the task UI.
type UpdateInput struct {
	TaskID string
	Status *string

	Likes               *int
	Comments            *int
	Shares              *int
	Views               *int
	EmailsSent          *int
	EmailsOpened        *int
	EmailsReplied       *int
	Attendees           *int
	MeetingsBooked      *int
	LeadsGeneratedCount *int
	ResponseType        *string
	ConnectionAccepted  *bool
	ICPEngagement       *bool

	Outcome         *model.Outcome
	OutcomeOverride *bool
	OverrideReason  *string
}

func (ip UpdateInput) ApplyMetrics(m *model.EngagementMetrics) {
	if ip.Likes != nil {
		m.Likes = *ip.Likes
	}
	if ip.Comments != nil {
		m.Comments = *ip.Comments
	}
	if ip.Shares != nil {
		m.Shares = *ip.Shares
	}
	if ip.Views != nil {
		m.Views = *ip.Views
	}
	if ip.EmailsSent != nil {
		m.EmailsSent = *ip.EmailsSent
	}
	if ip.EmailsOpened != nil {
		m.EmailsOpened = *ip.EmailsOpened
	}
	if ip.EmailsReplied != nil {
		m.EmailsReplied = *ip.EmailsReplied
	}
	if ip.Attendees != nil {
		m.Attendees = *ip.Attendees
	}
	if ip.MeetingsBooked != nil {
		m.MeetingsBooked = *ip.MeetingsBooked
	}
	if ip.LeadsGeneratedCount != nil {
		m.LeadsGeneratedCount = *ip.LeadsGeneratedCount
	}
	if ip.ResponseType != nil {
		m.ResponseType = *ip.ResponseType
	}
	if ip.ConnectionAccepted != nil {
		m.ConnectionAccepted = *ip.ConnectionAccepted
	}
	if ip.ICPEngagement != nil {
		m.ICPEngagement = *ip.ICPEngagement
	}
}
