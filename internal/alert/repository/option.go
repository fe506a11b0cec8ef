package repository

import (
	"time"

	"crm-alert-srv/internal/model"
	"crm-alert-srv/pkg/paginator"
)

// RecordAlertOptions contains the ledger key plus the graded severity.
type RecordAlertOptions struct {
	UserID    string
	AlertType model.Category
	Severity  model.Severity
	Period    string
}

// CreateEmailLogOptions contains one send attempt. SESMessageID is nil when
// the send failed.
type CreateEmailLogOptions struct {
	UserID        string
	AlertType     model.Category
	Severity      model.Severity
	RecipientTo   string
	RecipientsCC  []string
	Subject       string
	Body          string
	BodyObjectKey string
	QuotaTarget   float64
	QuotaActual   float64
	SESMessageID  *string
}

// ListEmailLogsOptions filters the audit log listing.
type ListEmailLogsOptions struct {
	Since         time.Time
	PaginateQuery paginator.PaginateQuery
}
