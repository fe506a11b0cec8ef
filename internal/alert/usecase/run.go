package usecase

import (
	"context"
	"fmt"
	"time"

	"crm-alert-srv/internal/alert"
	"crm-alert-srv/internal/alert/repository"
	"crm-alert-srv/internal/model"

	"github.com/friendsofgo/errors"
)

func (uc *implUsecase) Run(ctx context.Context, category model.Category) (alert.RunResult, error) {
	strategy, ok := uc.strategyFor(category)
	if !ok {
		return alert.RunResult{}, alert.ErrUnknownCategory
	}

	cfg, err := uc.settings.LoadConfig(ctx, category)
	if err != nil {
		return alert.RunResult{}, uc.reportRunError(ctx, category, "load config", err)
	}
	if !cfg.Enabled {
		return alert.RunResult{}, alert.ErrCategoryDisabled
	}

	gs, err := uc.settings.LoadGlobal(ctx)
	if err != nil {
		return alert.RunResult{}, uc.reportRunError(ctx, category, "load global settings", err)
	}

	now := uc.clock()
	excluded, err := uc.settings.ActiveExclusions(ctx, now)
	if err != nil {
		return alert.RunResult{}, uc.reportRunError(ctx, category, "load exclusions", err)
	}

	users, err := uc.crm.ListUsersByRoles(ctx, strategy.roles)
	if err != nil {
		return alert.RunResult{}, uc.reportRunError(ctx, category, "list candidates", err)
	}

	run := runContext{
		category:   category,
		period:     periodKey(category, now),
		thresholds: alert.Thresholds{Red: cfg.RedThreshold, Yellow: cfg.YellowThreshold, Green: cfg.GreenThreshold},
		cfg:        cfg,
		global:     gs,
		strategy:   strategy,
		excluded:   excluded,
	}
	run.from, run.to = periodWindow(category, now)

	result := alert.RunResult{
		Category:  category,
		Results:   make([]alert.UserResult, 0, len(users)),
		Timestamp: now,
	}
	var failures int
	for _, user := range users {
		result.Processed++
		ur := uc.runUser(ctx, run, user)
		if ur.Status == alert.StatusFailed || ur.Status == alert.StatusEmailFailed {
			failures++
		}
		result.Results = append(result.Results, ur)
	}

	if failures > 0 && uc.discord != nil {
		title := fmt.Sprintf("Alert run degraded: %s", category)
		desc := fmt.Sprintf("%d of %d users failed in period %s", failures, result.Processed, run.period)
		if derr := uc.discord.SendError(ctx, title, desc, nil); derr != nil {
			uc.l.Warnf(ctx, "internal.alert.usecase.Run: %v", derr)
		}
	}

	uc.l.Infof(ctx, "alert run finished: category=%s processed=%d failed=%d period=%s", category, result.Processed, failures, run.period)
	return result, nil
}

// runContext carries the per-run constants through the candidate loop.
type runContext struct {
	category   model.Category
	period     string
	thresholds alert.Thresholds
	cfg        model.AlertConfig
	global     model.GlobalAlertSettings
	strategy   categoryStrategy
	excluded   map[string]model.UserAlertExclusion
	from, to   time.Time
}

// runUser walks one candidate through the evaluation state machine. Every
// path is terminal for this user; nothing here aborts the batch.
func (uc *implUsecase) runUser(ctx context.Context, run runContext, user model.User) alert.UserResult {
	if _, ok := run.excluded[user.ID]; ok {
		return alert.UserResult{UserID: user.ID, Status: alert.StatusSkipped}
	}

	metrics, err := run.strategy.aggregate(ctx, user, run.thresholds, run.from, run.to)
	if err != nil {
		uc.l.Errorf(ctx, "internal.alert.usecase.runUser: %v", err)
		return alert.UserResult{UserID: user.ID, Status: alert.StatusFailed}
	}

	severity := run.strategy.classify(metrics, run.thresholds)
	if severity == model.SeverityNone {
		return alert.UserResult{UserID: user.ID, Status: alert.StatusNoAlertNeeded}
	}

	sent, err := uc.repo.AlreadySent(ctx, user.ID, run.category, run.period)
	if err != nil {
		uc.l.Errorf(ctx, "internal.alert.usecase.runUser: %v", err)
		return alert.UserResult{UserID: user.ID, Status: alert.StatusFailed, Severity: severity}
	}
	if sent {
		return alert.UserResult{UserID: user.ID, Status: alert.StatusAlreadySent, Severity: severity}
	}

	if _, err := uc.dispatch(ctx, user, run.category, severity, metrics, run.cfg, run.global); err != nil {
		return alert.UserResult{UserID: user.ID, Status: alert.StatusEmailFailed, Severity: severity}
	}

	_, err = uc.repo.RecordAlert(ctx, repository.RecordAlertOptions{
		UserID:    user.ID,
		AlertType: run.category,
		Severity:  severity,
		Period:    run.period,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateAlert) {
			// An overlapping run recorded first; its send stands.
			return alert.UserResult{UserID: user.ID, Status: alert.StatusAlreadySent, Severity: severity}
		}
		uc.l.Errorf(ctx, "internal.alert.usecase.runUser: %v", err)
		return alert.UserResult{UserID: user.ID, Status: alert.StatusFailed, Severity: severity}
	}

	return alert.UserResult{UserID: user.ID, Status: alert.StatusSent, Severity: severity}
}

// reportRunError logs a run-level failure and forwards it to the ops
// channel. Per-user failures never come through here.
func (uc *implUsecase) reportRunError(ctx context.Context, category model.Category, step string, err error) error {
	uc.l.Errorf(ctx, "internal.alert.usecase.Run: %s: %v", step, err)
	if uc.discord != nil {
		title := fmt.Sprintf("Alert run failed: %s", category)
		if derr := uc.discord.SendError(ctx, title, step, err); derr != nil {
			uc.l.Warnf(ctx, "internal.alert.usecase.reportRunError: %v", derr)
		}
	}
	return err
}
