package usecase

import (
	"context"
	"time"

	"crm-alert-srv/internal/alert"
	"crm-alert-srv/internal/model"
)

func (uc *implUsecase) aggregateQuota(ctx context.Context, user model.User, _ alert.Thresholds, from, to time.Time) (alert.Metrics, error) {
	actual, err := uc.crm.ClosedWonRevenue(ctx, user.ID, from, to)
	if err != nil {
		uc.l.Errorf(ctx, "internal.alert.usecase.aggregateQuota: %v", err)
		return alert.Metrics{}, err
	}

	m := alert.Metrics{
		QuotaTarget: user.MonthlyQuota,
		QuotaActual: actual,
		PeriodStart: from,
		PeriodEnd:   to,
	}
	if user.MonthlyQuota > 0 {
		m.AttainmentPct = actual / user.MonthlyQuota * 100
	}
	return m, nil
}

// aggregateStale buckets open deals and unconverted leads by age since last
// update. Deal bounds come from the config thresholds, lead bounds are
// fixed.
func (uc *implUsecase) aggregateStale(ctx context.Context, user model.User, t alert.Thresholds, _, to time.Time) (alert.Metrics, error) {
	deals, err := uc.crm.ListOpenDeals(ctx, user.ID)
	if err != nil {
		uc.l.Errorf(ctx, "internal.alert.usecase.aggregateStale: %v", err)
		return alert.Metrics{}, err
	}

	leads, err := uc.crm.ListUnconvertedLeads(ctx, user.ID)
	if err != nil {
		uc.l.Errorf(ctx, "internal.alert.usecase.aggregateStale: %v", err)
		return alert.Metrics{}, err
	}

	m := alert.Metrics{PeriodStart: to, PeriodEnd: to}
	for _, d := range deals {
		age := d.DaysSinceUpdate(to)
		switch {
		case age > int(t.Red):
			m.StaleDealsRed = append(m.StaleDealsRed, d)
		case age >= int(t.Yellow):
			m.StaleDealsYellow = append(m.StaleDealsYellow, d)
		}
	}
	for _, l := range leads {
		age := l.DaysSinceUpdate(to)
		switch {
		case age > staleLeadRedDays:
			m.StaleLeadsRed = append(m.StaleLeadsRed, l)
		case age >= staleLeadYellowDays:
			m.StaleLeadsYellow = append(m.StaleLeadsYellow, l)
		}
	}
	return m, nil
}

func (uc *implUsecase) aggregateActivity(ctx context.Context, user model.User, _ alert.Thresholds, from, to time.Time) (alert.Metrics, error) {
	count, err := uc.crm.CountActivities(ctx, user.ID, from, to)
	if err != nil {
		uc.l.Errorf(ctx, "internal.alert.usecase.aggregateActivity: %v", err)
		return alert.Metrics{}, err
	}

	return alert.Metrics{
		ActivityCount: count,
		PeriodStart:   from,
		PeriodEnd:     to,
	}, nil
}

func (uc *implUsecase) aggregateTaskOverdue(ctx context.Context, user model.User, _ alert.Thresholds, _, to time.Time) (alert.Metrics, error) {
	tasks, err := uc.crm.ListOverdueTasks(ctx, user.ID, to)
	if err != nil {
		uc.l.Errorf(ctx, "internal.alert.usecase.aggregateTaskOverdue: %v", err)
		return alert.Metrics{}, err
	}

	return alert.Metrics{
		OverdueTasks: tasks,
		PeriodStart:  to,
		PeriodEnd:    to,
	}, nil
}

func (uc *implUsecase) aggregateMarketing(ctx context.Context, user model.User, _ alert.Thresholds, from, to time.Time) (alert.Metrics, error) {
	tasks, err := uc.crm.ListCompletedMarketingTasks(ctx, user.ID, from, to)
	if err != nil {
		uc.l.Errorf(ctx, "internal.alert.usecase.aggregateMarketing: %v", err)
		return alert.Metrics{}, err
	}

	pending, err := uc.crm.CountPendingOutcomes(ctx, user.ID)
	if err != nil {
		uc.l.Errorf(ctx, "internal.alert.usecase.aggregateMarketing: %v", err)
		return alert.Metrics{}, err
	}

	stats := alert.MarketingStats{PendingOutcome: pending}
	for _, task := range tasks {
		stats.LeadsGenerated += task.Metrics.LeadsGeneratedCount
		if task.Outcome == nil {
			continue
		}
		switch *task.Outcome {
		case model.OutcomeSuccess:
			stats.Success++
		case model.OutcomePartial:
			stats.Partial++
		case model.OutcomeFailed:
			stats.Failed++
		}
	}

	return alert.Metrics{
		Marketing:   stats,
		PeriodStart: from,
		PeriodEnd:   to,
	}, nil
}
