package usecase

import (
	"context"
	"errors"
	"strings"

	"crm-alert-srv/internal/marketingtask"
	"crm-alert-srv/internal/marketingtask/repository"
	"crm-alert-srv/internal/model"
	"crm-alert-srv/pkg/paginator"
)

var validStatuses = map[string]struct{}{
	model.MarketingTaskStatusInProgress: {},
	model.MarketingTaskStatusCompleted:  {},
	model.MarketingTaskStatusNoResponse: {},
}

func (uc *implUsecase) List(ctx context.Context, sc model.Scope, ip marketingtask.ListInput) ([]model.MarketingTask, paginator.Paginator, error) {
	ownerID := sc.UserID
	if sc.IsAdmin() && ip.OwnerID != "" {
		ownerID = ip.OwnerID
	}

	tasks, pag, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{
		OwnerID:       ownerID,
		Status:        ip.Status,
		PaginateQuery: ip.PaginateQuery,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.marketingtask.usecase.List: %v", err)
		return nil, paginator.Paginator{}, err
	}
	return tasks, pag, nil
}

func (uc *implUsecase) Detail(ctx context.Context, sc model.Scope, id string) (marketingtask.Detail, error) {
	task, err := uc.getOwned(ctx, sc, id)
	if err != nil {
		return marketingtask.Detail{}, err
	}

	return marketingtask.Detail{
		Task:       task,
		Classified: uc.classifier.Classify(task.Type, task.Metrics),
	}, nil
}

func (uc *implUsecase) Update(ctx context.Context, sc model.Scope, ip marketingtask.UpdateInput) (marketingtask.Detail, error) {
	task, err := uc.getOwned(ctx, sc, ip.TaskID)
	if err != nil {
		return marketingtask.Detail{}, err
	}

	ip.ApplyMetrics(&task.Metrics)

	if ip.Status != nil {
		if _, ok := validStatuses[*ip.Status]; !ok {
			return marketingtask.Detail{}, marketingtask.ErrInvalidStatus
		}
		if *ip.Status == model.MarketingTaskStatusCompleted && task.CompletedAt == nil {
			now := uc.clock()
			task.CompletedAt = &now
		}
		task.Status = *ip.Status
	}

	override := task.OutcomeOverride
	if ip.OutcomeOverride != nil {
		override = *ip.OutcomeOverride
	}

	classified := uc.classifier.Classify(task.Type, task.Metrics)

	switch {
	case override:
		// A pinned outcome is stored as-is; the classifier result is still
		// computed above for the display panel.
		if ip.Outcome == nil && task.Outcome == nil {
			return marketingtask.Detail{}, marketingtask.ErrOutcomeRequired
		}
		reason := task.OverrideReason
		if ip.OverrideReason != nil {
			reason = *ip.OverrideReason
		}
		if strings.TrimSpace(reason) == "" {
			return marketingtask.Detail{}, marketingtask.ErrOverrideReasonRequired
		}
		if ip.Outcome != nil {
			task.Outcome = ip.Outcome
		}
		task.OutcomeOverride = true
		task.OverrideReason = reason

	case task.Status == model.MarketingTaskStatusCompleted:
		outcome := classified.Outcome
		task.Outcome = &outcome
		task.OutcomeOverride = false
		task.OverrideReason = ""
	}

	updated, err := uc.repo.UpdateTask(ctx, task)
	if err != nil {
		uc.l.Errorf(ctx, "internal.marketingtask.usecase.Update: %v", err)
		return marketingtask.Detail{}, err
	}

	return marketingtask.Detail{Task: updated, Classified: classified}, nil
}

func (uc *implUsecase) getOwned(ctx context.Context, sc model.Scope, id string) (model.MarketingTask, error) {
	task, err := uc.repo.GetTask(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.MarketingTask{}, marketingtask.ErrTaskNotFound
		}
		uc.l.Errorf(ctx, "internal.marketingtask.usecase.getOwned: %v", err)
		return model.MarketingTask{}, err
	}

	if task.OwnerID != sc.UserID && !sc.IsAdmin() {
		return model.MarketingTask{}, marketingtask.ErrForbidden
	}
	return task, nil
}
