package settings

import (
	"context"
	"time"

	"crm-alert-srv/internal/model"
)

// UseCase is the configuration surface of the alert engine. Admin operations
// take a Scope; Load* operations serve the internal trigger path, which has
// no user scope.
type UseCase interface {
	// LoadConfig resolves the category's config row, lazily creating it with
	// category defaults when absent. Absence is never an error.
	LoadConfig(ctx context.Context, category model.Category) (model.AlertConfig, error)

	// LoadGlobal resolves the global settings singleton, falling back to safe
	// defaults when the row is absent.
	LoadGlobal(ctx context.Context) (model.GlobalAlertSettings, error)

	// ActiveExclusions returns the exclusion windows covering now, keyed by
	// user id.
	ActiveExclusions(ctx context.Context, now time.Time) (map[string]model.UserAlertExclusion, error)

	// Admin surface.
	ListConfigs(ctx context.Context, sc model.Scope) ([]model.AlertConfig, error)
	UpdateConfig(ctx context.Context, sc model.Scope, ip UpdateConfigInput) (model.AlertConfig, error)
	GetGlobal(ctx context.Context, sc model.Scope) (model.GlobalAlertSettings, error)
	UpdateGlobal(ctx context.Context, sc model.Scope, ip UpdateGlobalInput) (model.GlobalAlertSettings, error)
	ListExclusions(ctx context.Context, sc model.Scope) ([]model.UserAlertExclusion, error)
	CreateExclusion(ctx context.Context, sc model.Scope, ip CreateExclusionInput) (model.UserAlertExclusion, error)
	DeleteExclusion(ctx context.Context, sc model.Scope, id string) error
}
