package http

import (
	"crm-alert-srv/internal/marketingtask"
	"crm-alert-srv/internal/model"
	"crm-alert-srv/pkg/paginator"
)

type listReq struct {
	OwnerID string `form:"owner_id"`
	Status  string `form:"status"`
	paginator.PaginateQuery
}

func (req listReq) toInput() marketingtask.ListInput {
	return marketingtask.ListInput{
		OwnerID:       req.OwnerID,
		Status:        req.Status,
		PaginateQuery: req.PaginateQuery,
	}
}

type listResp struct {
	Items []model.MarketingTask `json:"items"`
	Meta  paginator.Paginator   `json:"meta"`
}

type updateReq struct {
	Status *string `json:"status"`

	Likes               *int    `json:"likes"`
	Comments            *int    `json:"comments"`
	Shares              *int    `json:"shares"`
	Views               *int    `json:"views"`
	EmailsSent          *int    `json:"emails_sent"`
	EmailsOpened        *int    `json:"emails_opened"`
	EmailsReplied       *int    `json:"emails_replied"`
	Attendees           *int    `json:"attendees"`
	MeetingsBooked      *int    `json:"meetings_booked"`
	LeadsGeneratedCount *int    `json:"leads_generated_count"`
	ResponseType        *string `json:"response_type"`
	ConnectionAccepted  *bool   `json:"connection_accepted"`
	ICPEngagement       *bool   `json:"icp_engagement"`

	Outcome         *model.Outcome `json:"outcome"`
	OutcomeOverride *bool          `json:"outcome_override"`
	OverrideReason  *string        `json:"override_reason"`
}

func (req updateReq) toInput(taskID string) marketingtask.UpdateInput {
	return marketingtask.UpdateInput{
		TaskID: taskID,
		Status: req.Status,

		Likes:               req.Likes,
		Comments:            req.Comments,
		Shares:              req.Shares,
		Views:               req.Views,
		EmailsSent:          req.EmailsSent,
		EmailsOpened:        req.EmailsOpened,
		EmailsReplied:       req.EmailsReplied,
		Attendees:           req.Attendees,
		MeetingsBooked:      req.MeetingsBooked,
		LeadsGeneratedCount: req.LeadsGeneratedCount,
		ResponseType:        req.ResponseType,
		ConnectionAccepted:  req.ConnectionAccepted,
		ICPEngagement:       req.ICPEngagement,

		Outcome:         req.Outcome,
		OutcomeOverride: req.OutcomeOverride,
		OverrideReason:  req.OverrideReason,
	}
}
