package alert

import (
	"context"

	"crm-alert-srv/internal/model"
	"crm-alert-srv/pkg/paginator"
)

// UseCase runs one scheduled evaluation pass per alert category and exposes
// the audit log to the admin surface.
type UseCase interface {
	// Run evaluates every candidate user for the category: aggregate,
	// classify, dedup, route, dispatch, record. One user's failure never
	// aborts the batch.
	Run(ctx context.Context, category model.Category) (RunResult, error)

	// EmailLogs lists audit rows from the last 30 days, newest first.
	EmailLogs(ctx context.Context, sc model.Scope, pq paginator.PaginateQuery) ([]model.EmailLog, paginator.Paginator, error)
}
