package marketingtask

import (
	"context"

	"crm-alert-srv/internal/model"
	"crm-alert-srv/pkg/paginator"
)

// UseCase is the task-management surface of marketing tasks: listing,
// detail with the explainability panel, and the metrics/status update that
// drives outcome classification.
type UseCase interface {
	// List returns the caller's tasks, or any owner's tasks for admins.
	List(ctx context.Context, sc model.Scope, ip ListInput) ([]model.MarketingTask, paginator.Paginator, error)

	// Detail returns one task plus the classifier's check panel for it.
	Detail(ctx context.Context, sc model.Scope, id string) (Detail, error)

	// Update patches engagement metrics and status. When status becomes
	// completed without an active override the engine classifies and
	// persists the outcome; an override stores the supplied outcome as-is
	// and requires a reason.
	Update(ctx context.Context, sc model.Scope, ip UpdateInput) (Detail, error)
}
