package crm

import (
	"context"
	"errors"
	"time"

	"crm-alert-srv/internal/model"
)

// ErrNotFound is returned when a requested entity does not exist.
var ErrNotFound = errors.New("not found")

// Reader is the engine's read-only view of the core CRM store. The engine
// never mutates these entities.
//
//go:generate mockery --name Reader
type Reader interface {
	// ListUsersByRoles returns active users holding any of the given roles.
	// Users flagged excluded-from-reporting are filtered out here.
	ListUsersByRoles(ctx context.Context, roles []string) ([]model.User, error)

	// ClosedWonRevenue sums closed-won deal amounts owned by the user inside
	// the window.
	ClosedWonRevenue(ctx context.Context, ownerID string, from, to time.Time) (float64, error)

	// ListOpenDeals returns the user's deals that are still in play.
	ListOpenDeals(ctx context.Context, ownerID string) ([]model.Deal, error)

	// ListUnconvertedLeads returns the user's leads not yet converted.
	ListUnconvertedLeads(ctx context.Context, ownerID string) ([]model.Lead, error)

	// CountActivities counts activities logged by the user inside the window.
	CountActivities(ctx context.Context, ownerID string, from, to time.Time) (int, error)

	// ListOverdueTasks returns incomplete tasks whose due date has passed.
	ListOverdueTasks(ctx context.Context, ownerID string, now time.Time) ([]model.Task, error)

	// ListCompletedMarketingTasks returns marketing tasks completed inside
	// the window.
	ListCompletedMarketingTasks(ctx context.Context, ownerID string, from, to time.Time) ([]model.MarketingTask, error)

	// CountPendingOutcomes counts the user's completed marketing tasks that
	// still have no outcome.
	CountPendingOutcomes(ctx context.Context, ownerID string) (int, error)
}
