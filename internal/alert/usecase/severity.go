package usecase

import (
	"crm-alert-srv/internal/alert"
	"crm-alert-srv/internal/model"
)

// Stale lead age bounds in days. Leads go cold faster than deals, so they
// carry their own fixed bounds while deal bounds come from AlertConfig.
const (
	staleLeadRedDays    = 7
	staleLeadYellowDays = 3
)

// Marketing severity guards. A small sample produces noisy rates, so no
// severity fires below the minimum; the floor and cap catch users whose
// rate looks fine but who generate no pipeline or sit on unscored work.
const (
	marketingMinSample      = 5
	marketingLeadsFloor     = 1
	marketingPendingBacklog = 10
)

// classifyQuota grades month-to-date attainment. Users without a quota
// target are not graded.
func classifyQuota(m alert.Metrics, t alert.Thresholds) model.Severity {
	if m.QuotaTarget <= 0 {
		return model.SeverityNone
	}
	switch {
	case m.AttainmentPct < t.Red:
		return model.SeverityRed
	case m.AttainmentPct >= t.Green:
		return model.SeverityGreen
	default:
		return model.SeverityYellow
	}
}

// classifyStale grades the deal and lead age buckets. Any red bucket wins
// outright; yellow only fires when no bucket is red.
func classifyStale(m alert.Metrics, _ alert.Thresholds) model.Severity {
	if len(m.StaleDealsRed) > 0 || len(m.StaleLeadsRed) > 0 {
		return model.SeverityRed
	}
	if len(m.StaleDealsYellow) > 0 || len(m.StaleLeadsYellow) > 0 {
		return model.SeverityYellow
	}
	return model.SeverityNone
}

// classifyActivity grades the trailing-week activity count. Low counts are
// the problem here, so red sits below yellow.
func classifyActivity(m alert.Metrics, t alert.Thresholds) model.Severity {
	count := float64(m.ActivityCount)
	switch {
	case count < t.Red:
		return model.SeverityRed
	case count < t.Yellow:
		return model.SeverityYellow
	default:
		return model.SeverityNone
	}
}

// classifyTaskOverdue grades the overdue-task count.
func classifyTaskOverdue(m alert.Metrics, t alert.Thresholds) model.Severity {
	count := float64(len(m.OverdueTasks))
	switch {
	case count > t.Red:
		return model.SeverityRed
	case count >= t.Yellow && count > 0:
		return model.SeverityYellow
	default:
		return model.SeverityNone
	}
}

// classifyMarketing grades the weekly outcome mix. The sample gate applies
// to this weekly category only; the month-end review has no gate.
func classifyMarketing(m alert.Metrics, t alert.Thresholds) model.Severity {
	stats := m.Marketing
	if stats.Scored() < marketingMinSample {
		return model.SeverityNone
	}

	rate := stats.SuccessRate()
	switch {
	case rate < t.Red,
		stats.LeadsGenerated < marketingLeadsFloor,
		stats.PendingOutcome > marketingPendingBacklog:
		return model.SeverityRed
	case rate >= t.Green:
		return model.SeverityGreen
	case rate < t.Yellow:
		return model.SeverityYellow
	default:
		return model.SeverityNone
	}
}

// classifyMonthlyReview always grades; the month-end report goes out to
// everyone regardless of how the month went.
func classifyMonthlyReview(m alert.Metrics, t alert.Thresholds) model.Severity {
	switch {
	case m.AttainmentPct < t.Red:
		return model.SeverityRed
	case m.AttainmentPct >= t.Green:
		return model.SeverityGreen
	default:
		return model.SeverityYellow
	}
}
