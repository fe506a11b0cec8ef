package http

import (
	"time"

	"crm-alert-srv/internal/model"
	"crm-alert-srv/internal/settings"
)

type updateConfigReq struct {
	Enabled         *bool    `json:"enabled"`
	Schedule        *string  `json:"schedule"`
	RedThreshold    *float64 `json:"red_threshold"`
	YellowThreshold *float64 `json:"yellow_threshold"`
	GreenThreshold  *float64 `json:"green_threshold"`
	CCRecipients    []string `json:"cc_recipients"`
	BCCAdmin        *bool    `json:"bcc_admin"`
	TestMode        *bool    `json:"test_mode"`
}

func (req updateConfigReq) toInput(category model.Category) settings.UpdateConfigInput {
	return settings.UpdateConfigInput{
		Category:        category,
		Enabled:         req.Enabled,
		Schedule:        req.Schedule,
		RedThreshold:    req.RedThreshold,
		YellowThreshold: req.YellowThreshold,
		GreenThreshold:  req.GreenThreshold,
		CCRecipients:    req.CCRecipients,
		BCCAdmin:        req.BCCAdmin,
		TestMode:        req.TestMode,
	}
}

type updateGlobalReq struct {
	FromEmail       *string `json:"from_email"`
	AdminEmail      *string `json:"admin_email"`
	HREmail         *string `json:"hr_email"`
	LeadershipEmail *string `json:"leadership_email"`
	ReviewerEmail   *string `json:"reviewer_email"`
	BCCAllToAdmin   *bool   `json:"bcc_all_to_admin"`
	TestMode        *bool   `json:"test_mode"`
}

func (req updateGlobalReq) toInput() settings.UpdateGlobalInput {
	return settings.UpdateGlobalInput{
		FromEmail:       req.FromEmail,
		AdminEmail:      req.AdminEmail,
		HREmail:         req.HREmail,
		LeadershipEmail: req.LeadershipEmail,
		ReviewerEmail:   req.ReviewerEmail,
		BCCAllToAdmin:   req.BCCAllToAdmin,
		TestMode:        req.TestMode,
	}
}

type createExclusionReq struct {
	UserID    string    `json:"user_id" binding:"required"`
	StartDate time.Time `json:"start_date" binding:"required"`
	EndDate   time.Time `json:"end_date" binding:"required"`
	Reason    string    `json:"reason"`
}

func (req createExclusionReq) toInput() settings.CreateExclusionInput {
	return settings.CreateExclusionInput{
		UserID:    req.UserID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Reason:    req.Reason,
	}
}
