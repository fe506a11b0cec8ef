package repository

import (
	"context"
	"errors"
	"time"

	"crm-alert-srv/internal/model"
)

var (
	// ErrNotFound is returned when a requested row does not exist. The
	// usecase resolves it by creating defaults, never by failing.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateConfig signals a concurrent lazy creation of the same
	// category row; the caller re-reads instead of failing.
	ErrDuplicateConfig = errors.New("config already exists for category")
)

//go:generate mockery --name Repository
type Repository interface {
	GetConfig(ctx context.Context, category model.Category) (model.AlertConfig, error)
	CreateConfig(ctx context.Context, cfg model.AlertConfig) (model.AlertConfig, error)
	UpdateConfig(ctx context.Context, cfg model.AlertConfig) (model.AlertConfig, error)

	GetGlobal(ctx context.Context) (model.GlobalAlertSettings, error)
	UpsertGlobal(ctx context.Context, gs model.GlobalAlertSettings) (model.GlobalAlertSettings, error)

	ListExclusions(ctx context.Context) ([]model.UserAlertExclusion, error)
	ListActiveExclusions(ctx context.Context, now time.Time) ([]model.UserAlertExclusion, error)
	CreateExclusion(ctx context.Context, e model.UserAlertExclusion) (model.UserAlertExclusion, error)
	DeleteExclusion(ctx context.Context, id string) error
}
