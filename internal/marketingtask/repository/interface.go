package repository

import (
	"context"
	"errors"

	"crm-alert-srv/internal/model"
	"crm-alert-srv/pkg/paginator"
)

// ErrNotFound is returned when a requested task does not exist.
var ErrNotFound = errors.New("not found")

// ListTasksOptions filters the task listing.
type ListTasksOptions struct {
	OwnerID       string
	Status        string
	PaginateQuery paginator.PaginateQuery
}

//go:generate mockery --name Repository
type Repository interface {
	GetTask(ctx context.Context, id string) (model.MarketingTask, error)
	ListTasks(ctx context.Context, opts ListTasksOptions) ([]model.MarketingTask, paginator.Paginator, error)
	UpdateTask(ctx context.Context, task model.MarketingTask) (model.MarketingTask, error)
}
