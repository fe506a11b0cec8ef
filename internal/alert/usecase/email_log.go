package usecase

import (
	"context"

	"crm-alert-srv/internal/alert"
	"crm-alert-srv/internal/alert/repository"
	"crm-alert-srv/internal/model"
	"crm-alert-srv/pkg/paginator"
)

// emailLogWindowDays bounds the admin audit listing.
const emailLogWindowDays = 30

func (uc *implUsecase) EmailLogs(ctx context.Context, sc model.Scope, pq paginator.PaginateQuery) ([]model.EmailLog, paginator.Paginator, error) {
	if !sc.IsAdmin() {
		return nil, paginator.Paginator{}, alert.ErrForbidden
	}

	logs, pag, err := uc.repo.ListEmailLogs(ctx, repository.ListEmailLogsOptions{
		Since:         uc.clock().AddDate(0, 0, -emailLogWindowDays),
		PaginateQuery: pq,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.alert.usecase.EmailLogs: %v", err)
		return nil, paginator.Paginator{}, err
	}
	return logs, pag, nil
}
