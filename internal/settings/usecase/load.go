package usecase

import (
	"context"
	"errors"
	"time"

	"crm-alert-srv/internal/model"
	"crm-alert-srv/internal/settings"
	"crm-alert-srv/internal/settings/repository"
)

func (uc *implUsecase) LoadConfig(ctx context.Context, category model.Category) (model.AlertConfig, error) {
	if !category.Valid() {
		return model.AlertConfig{}, settings.ErrUnknownCategory
	}

	cfg, err := uc.repo.GetConfig(ctx, category)
	if err == nil {
		return cfg, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		uc.l.Errorf(ctx, "internal.settings.usecase.LoadConfig: %v", err)
		return model.AlertConfig{}, err
	}

	cfg, err = uc.repo.CreateConfig(ctx, settings.DefaultConfig(category))
	if err == nil {
		return cfg, nil
	}
	if errors.Is(err, repository.ErrDuplicateConfig) {
		// Another trigger created the row first; use theirs.
		return uc.repo.GetConfig(ctx, category)
	}

	uc.l.Errorf(ctx, "internal.settings.usecase.LoadConfig: %v", err)
	return model.AlertConfig{}, err
}

func (uc *implUsecase) LoadGlobal(ctx context.Context) (model.GlobalAlertSettings, error) {
	gs, err := uc.repo.GetGlobal(ctx)
	if err == nil {
		return gs, nil
	}
	if errors.Is(err, repository.ErrNotFound) {
		return settings.DefaultGlobal(), nil
	}

	uc.l.Errorf(ctx, "internal.settings.usecase.LoadGlobal: %v", err)
	return model.GlobalAlertSettings{}, err
}

func (uc *implUsecase) ActiveExclusions(ctx context.Context, now time.Time) (map[string]model.UserAlertExclusion, error) {
	exclusions, err := uc.repo.ListActiveExclusions(ctx, now)
	if err != nil {
		uc.l.Errorf(ctx, "internal.settings.usecase.ActiveExclusions: %v", err)
		return nil, err
	}

	byUser := make(map[string]model.UserAlertExclusion, len(exclusions))
	for _, e := range exclusions {
		byUser[e.UserID] = e
	}
	return byUser, nil
}
