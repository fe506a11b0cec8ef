package settings

import (
	"time"

	"crm-alert-srv/internal/model"
)

// UpdateConfigInput updates one category's config row. Nil fields are left
// unchanged.
type UpdateConfigInput struct {
	Category        model.Category
	Enabled         *bool
	Schedule        *string
	RedThreshold    *float64
	YellowThreshold *float64
	GreenThreshold  *float64
	CCRecipients    []string
	BCCAdmin        *bool
	TestMode        *bool
}

// UpdateGlobalInput updates the global settings singleton. Nil fields are
// left unchanged.
type UpdateGlobalInput struct {
	FromEmail       *string
	AdminEmail      *string
	HREmail         *string
	LeadershipEmail *string
	ReviewerEmail   *string
	BCCAllToAdmin   *bool
	TestMode        *bool
}

// CreateExclusionInput creates a suppression window for a user.
type CreateExclusionInput struct {
	UserID    string
	StartDate time.Time
	EndDate   time.Time
	Reason    string
}
