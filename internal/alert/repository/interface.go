package repository

import (
	"context"
	"errors"

	"crm-alert-srv/internal/model"
	"crm-alert-srv/pkg/paginator"
)

var (
	// ErrDuplicateAlert signals a unique-key conflict on the ledger. Callers
	// treat it as "already sent", never as a run failure.
	ErrDuplicateAlert = errors.New("alert already recorded for period")
	// ErrNotFound is returned when a requested row does not exist.
	ErrNotFound = errors.New("not found")
)

//go:generate mockery --name Repository
type Repository interface {
	// AlreadySent checks the dedup ledger for (user, alertType, period).
	AlreadySent(ctx context.Context, userID string, alertType model.Category, period string) (bool, error)

	// RecordAlert inserts a ledger row, returning ErrDuplicateAlert when the
	// unique key already exists.
	RecordAlert(ctx context.Context, opts RecordAlertOptions) (model.QuotaAlert, error)

	// CreateEmailLog appends one immutable audit row. Rows are never updated
	// or deleted.
	CreateEmailLog(ctx context.Context, opts CreateEmailLogOptions) (model.EmailLog, error)

	// ListEmailLogs returns audit rows within the window, newest first.
	ListEmailLogs(ctx context.Context, opts ListEmailLogsOptions) ([]model.EmailLog, paginator.Paginator, error)
}
