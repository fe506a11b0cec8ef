package usecase

import (
	"context"
	"testing"
	"time"

	"crm-alert-srv/internal/alert"
	"crm-alert-srv/internal/model"
)

func defaultThresholds(category model.Category) alert.Thresholds {
	switch category {
	case model.CategoryQuota:
		return alert.Thresholds{Red: 50, Yellow: 80, Green: 100}
	case model.CategoryStaleItems:
		return alert.Thresholds{Red: 14, Yellow: 7}
	case model.CategoryActivity:
		return alert.Thresholds{Red: 5, Yellow: 10}
	case model.CategoryTaskOverdue:
		return alert.Thresholds{Red: 1, Yellow: 1}
	case model.CategoryMarketingWeekly:
		return alert.Thresholds{Red: 15, Yellow: 30, Green: 50}
	default:
		return alert.Thresholds{Red: 80, Yellow: 100, Green: 100}
	}
}

func TestClassifyQuota(t *testing.T) {
	tcs := []struct {
		name     string
		target   float64
		pct      float64
		expected model.Severity
	}{
		{"no quota target", 0, 0, model.SeverityNone},
		{"well below target", 10000, 30, model.SeverityRed},
		{"just under red bound", 10000, 49.9, model.SeverityRed},
		{"at red bound", 10000, 50, model.SeverityYellow},
		{"trailing target", 10000, 85, model.SeverityYellow},
		{"at target", 10000, 100, model.SeverityGreen},
		{"over target", 10000, 140, model.SeverityGreen},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			m := alert.Metrics{QuotaTarget: tc.target, AttainmentPct: tc.pct}
			got := classifyQuota(m, defaultThresholds(model.CategoryQuota))
			if got != tc.expected {
				t.Errorf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}

func TestClassifyStale(t *testing.T) {
	deal := model.Deal{ID: "d1"}
	lead := model.Lead{ID: "l1"}

	tcs := []struct {
		name     string
		metrics  alert.Metrics
		expected model.Severity
	}{
		{"nothing stale", alert.Metrics{}, model.SeverityNone},
		{"yellow deal only", alert.Metrics{StaleDealsYellow: []model.Deal{deal}}, model.SeverityYellow},
		{"yellow lead only", alert.Metrics{StaleLeadsYellow: []model.Lead{lead}}, model.SeverityYellow},
		{"red deal only", alert.Metrics{StaleDealsRed: []model.Deal{deal}}, model.SeverityRed},
		{"red lead only", alert.Metrics{StaleLeadsRed: []model.Lead{lead}}, model.SeverityRed},
		{
			"red deal suppresses yellow lead",
			alert.Metrics{
				StaleDealsRed:    []model.Deal{deal},
				StaleLeadsYellow: []model.Lead{lead},
			},
			model.SeverityRed,
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			got := classifyStale(tc.metrics, defaultThresholds(model.CategoryStaleItems))
			if got != tc.expected {
				t.Errorf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}

// A deal idle 20 days lands in the red bucket and a lead idle 4 days in the
// yellow bucket; the overall grade must be RED.
func TestAggregateStaleOrdering(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	uc := &implUsecase{
		l: testLogger(),
		crm: &fakeReader{
			openDeals: []model.Deal{
				{ID: "d1", Stage: model.DealStageProposal, UpdatedAt: now.AddDate(0, 0, -20)},
			},
			unconvertedLeads: []model.Lead{
				{ID: "l1", UpdatedAt: now.AddDate(0, 0, -4)},
			},
		},
		clock: func() time.Time { return now },
	}

	m, err := uc.aggregateStale(context.Background(), model.User{ID: "u1"}, defaultThresholds(model.CategoryStaleItems), now, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(m.StaleDealsRed) != 1 {
		t.Fatalf("expected 1 red deal, got %d", len(m.StaleDealsRed))
	}
	if len(m.StaleLeadsYellow) != 1 {
		t.Fatalf("expected 1 yellow lead, got %d", len(m.StaleLeadsYellow))
	}
	if got := classifyStale(m, defaultThresholds(model.CategoryStaleItems)); got != model.SeverityRed {
		t.Errorf("expected RED, got %q", got)
	}
}

func TestClassifyActivity(t *testing.T) {
	tcs := []struct {
		name     string
		count    int
		expected model.Severity
	}{
		{"no activity", 0, model.SeverityRed},
		{"below red bound", 4, model.SeverityRed},
		{"at red bound", 5, model.SeverityYellow},
		{"below yellow bound", 9, model.SeverityYellow},
		{"healthy", 10, model.SeverityNone},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			got := classifyActivity(alert.Metrics{ActivityCount: tc.count}, defaultThresholds(model.CategoryActivity))
			if got != tc.expected {
				t.Errorf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}

func TestClassifyTaskOverdue(t *testing.T) {
	tasks := func(n int) []model.Task {
		out := make([]model.Task, n)
		return out
	}

	tcs := []struct {
		name     string
		count    int
		expected model.Severity
	}{
		{"none overdue", 0, model.SeverityNone},
		{"one overdue", 1, model.SeverityYellow},
		{"two overdue", 2, model.SeverityRed},
		{"many overdue", 7, model.SeverityRed},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			got := classifyTaskOverdue(alert.Metrics{OverdueTasks: tasks(tc.count)}, defaultThresholds(model.CategoryTaskOverdue))
			if got != tc.expected {
				t.Errorf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}

func TestClassifyMarketing(t *testing.T) {
	tcs := []struct {
		name     string
		stats    alert.MarketingStats
		expected model.Severity
	}{
		{
			"small sample fires nothing",
			alert.MarketingStats{Success: 0, Partial: 1, Failed: 3, LeadsGenerated: 0},
			model.SeverityNone,
		},
		{
			"low success rate",
			alert.MarketingStats{Success: 0, Partial: 2, Failed: 4, LeadsGenerated: 2},
			model.SeverityRed,
		},
		{
			"good rate but no leads",
			alert.MarketingStats{Success: 4, Partial: 1, Failed: 1, LeadsGenerated: 0},
			model.SeverityRed,
		},
		{
			"good rate but unscored backlog",
			alert.MarketingStats{Success: 4, Partial: 1, Failed: 1, LeadsGenerated: 3, PendingOutcome: 11},
			model.SeverityRed,
		},
		{
			"high success rate",
			alert.MarketingStats{Success: 4, Partial: 1, Failed: 1, LeadsGenerated: 3},
			model.SeverityGreen,
		},
		{
			"below mid threshold",
			alert.MarketingStats{Success: 1, Partial: 2, Failed: 2, LeadsGenerated: 2},
			model.SeverityYellow,
		},
		{
			"between mid and high",
			alert.MarketingStats{Success: 2, Partial: 2, Failed: 1, LeadsGenerated: 2},
			model.SeverityNone,
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			got := classifyMarketing(alert.Metrics{Marketing: tc.stats}, defaultThresholds(model.CategoryMarketingWeekly))
			if got != tc.expected {
				t.Errorf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}

// The month-end review has no "none" branch; every graded user gets a report.
func TestClassifyMonthlyReviewAlwaysFires(t *testing.T) {
	tcs := []struct {
		name     string
		pct      float64
		expected model.Severity
	}{
		{"well below", 20, model.SeverityRed},
		{"just under red bound", 79.9, model.SeverityRed},
		{"at red bound", 80, model.SeverityYellow},
		{"just under target", 99.9, model.SeverityYellow},
		{"at target", 100, model.SeverityGreen},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			m := alert.Metrics{QuotaTarget: 10000, AttainmentPct: tc.pct}
			got := classifyMonthlyReview(m, defaultThresholds(model.CategoryMonthlyReview))
			if got == model.SeverityNone {
				t.Fatal("monthly review must always grade")
			}
			if got != tc.expected {
				t.Errorf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}
