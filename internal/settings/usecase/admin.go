package usecase

import (
	"context"
	"errors"

	"crm-alert-srv/internal/model"
	"crm-alert-srv/internal/settings"
	"crm-alert-srv/internal/settings/repository"
)

func (uc *implUsecase) ListConfigs(ctx context.Context, sc model.Scope) ([]model.AlertConfig, error) {
	if !sc.IsAdmin() {
		return nil, settings.ErrForbidden
	}

	configs := make([]model.AlertConfig, 0, len(model.Categories))
	for _, category := range model.Categories {
		cfg, err := uc.LoadConfig(ctx, category)
		if err != nil {
			uc.l.Errorf(ctx, "internal.settings.usecase.ListConfigs: %v", err)
			return nil, err
		}
		configs = append(configs, cfg)
	}
	return configs, nil
}

func (uc *implUsecase) UpdateConfig(ctx context.Context, sc model.Scope, ip settings.UpdateConfigInput) (model.AlertConfig, error) {
	if !sc.IsAdmin() {
		return model.AlertConfig{}, settings.ErrForbidden
	}

	cfg, err := uc.LoadConfig(ctx, ip.Category)
	if err != nil {
		return model.AlertConfig{}, err
	}

	if ip.Enabled != nil {
		cfg.Enabled = *ip.Enabled
	}
	if ip.Schedule != nil {
		cfg.Schedule = *ip.Schedule
	}
	if ip.RedThreshold != nil {
		cfg.RedThreshold = *ip.RedThreshold
	}
	if ip.YellowThreshold != nil {
		cfg.YellowThreshold = *ip.YellowThreshold
	}
	if ip.GreenThreshold != nil {
		cfg.GreenThreshold = *ip.GreenThreshold
	}
	if ip.CCRecipients != nil {
		cfg.CCRecipients = ip.CCRecipients
	}
	if ip.BCCAdmin != nil {
		cfg.BCCAdmin = *ip.BCCAdmin
	}
	if ip.TestMode != nil {
		cfg.TestMode = *ip.TestMode
	}

	updated, err := uc.repo.UpdateConfig(ctx, cfg)
	if err != nil {
		uc.l.Errorf(ctx, "internal.settings.usecase.UpdateConfig: %v", err)
		return model.AlertConfig{}, err
	}
	return updated, nil
}

func (uc *implUsecase) GetGlobal(ctx context.Context, sc model.Scope) (model.GlobalAlertSettings, error) {
	if !sc.IsAdmin() {
		return model.GlobalAlertSettings{}, settings.ErrForbidden
	}
	return uc.LoadGlobal(ctx)
}

func (uc *implUsecase) UpdateGlobal(ctx context.Context, sc model.Scope, ip settings.UpdateGlobalInput) (model.GlobalAlertSettings, error) {
	if !sc.IsAdmin() {
		return model.GlobalAlertSettings{}, settings.ErrForbidden
	}

	gs, err := uc.LoadGlobal(ctx)
	if err != nil {
		return model.GlobalAlertSettings{}, err
	}

	if ip.FromEmail != nil {
		gs.FromEmail = *ip.FromEmail
	}
	if ip.AdminEmail != nil {
		gs.AdminEmail = *ip.AdminEmail
	}
	if ip.HREmail != nil {
		gs.HREmail = *ip.HREmail
	}
	if ip.LeadershipEmail != nil {
		gs.LeadershipEmail = *ip.LeadershipEmail
	}
	if ip.ReviewerEmail != nil {
		gs.ReviewerEmail = *ip.ReviewerEmail
	}
	if ip.BCCAllToAdmin != nil {
		gs.BCCAllToAdmin = *ip.BCCAllToAdmin
	}
	if ip.TestMode != nil {
		gs.TestMode = *ip.TestMode
	}

	updated, err := uc.repo.UpsertGlobal(ctx, gs)
	if err != nil {
		uc.l.Errorf(ctx, "internal.settings.usecase.UpdateGlobal: %v", err)
		return model.GlobalAlertSettings{}, err
	}
	return updated, nil
}

func (uc *implUsecase) ListExclusions(ctx context.Context, sc model.Scope) ([]model.UserAlertExclusion, error) {
	if !sc.IsAdmin() {
		return nil, settings.ErrForbidden
	}

	exclusions, err := uc.repo.ListExclusions(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "internal.settings.usecase.ListExclusions: %v", err)
		return nil, err
	}
	return exclusions, nil
}

func (uc *implUsecase) CreateExclusion(ctx context.Context, sc model.Scope, ip settings.CreateExclusionInput) (model.UserAlertExclusion, error) {
	if !sc.IsAdmin() {
		return model.UserAlertExclusion{}, settings.ErrForbidden
	}
	if ip.EndDate.Before(ip.StartDate) {
		return model.UserAlertExclusion{}, settings.ErrInvalidDateRange
	}

	exclusion, err := uc.repo.CreateExclusion(ctx, model.UserAlertExclusion{
		UserID:    ip.UserID,
		StartDate: ip.StartDate,
		EndDate:   ip.EndDate,
		Reason:    ip.Reason,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.settings.usecase.CreateExclusion: %v", err)
		return model.UserAlertExclusion{}, err
	}
	return exclusion, nil
}

func (uc *implUsecase) DeleteExclusion(ctx context.Context, sc model.Scope, id string) error {
	if !sc.IsAdmin() {
		return settings.ErrForbidden
	}

	err := uc.repo.DeleteExclusion(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return settings.ErrExclusionNotFound
		}
		uc.l.Errorf(ctx, "internal.settings.usecase.DeleteExclusion: %v", err)
		return err
	}
	return nil
}
