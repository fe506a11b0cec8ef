package usecase

import (
	"testing"
	"time"

	"crm-alert-srv/internal/model"
)

func TestPeriodKey(t *testing.T) {
	// 2026-01-01 falls in ISO week 2026-W01; 2026-12-31 spills into 2027-W01.
	tcs := []struct {
		name     string
		category model.Category
		now      time.Time
		want     string
	}{
		{"quota keys on month", model.CategoryQuota, time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC), "2026-09"},
		{"monthly review keys on month", model.CategoryMonthlyReview, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), "2026-02"},
		{"marketing keys on iso week", model.CategoryMarketingWeekly, time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC), "2026-W38"},
		{"activity keys on iso week", model.CategoryActivity, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), "2026-W01"},
		{"iso week year rollover", model.CategoryActivity, time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC), "2027-W01"},
		{"stale keys on day", model.CategoryStaleItems, time.Date(2026, 9, 15, 23, 59, 0, 0, time.UTC), "2026-09-15"},
		{"task overdue keys on day", model.CategoryTaskOverdue, time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), "2026-09-15"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			if got := periodKey(tc.category, tc.now); got != tc.want {
				t.Errorf("periodKey(%s) = %q, want %q", tc.category, got, tc.want)
			}
		})
	}
}

func TestPeriodKeyStableWithinWindow(t *testing.T) {
	first := periodKey(model.CategoryQuota, time.Date(2026, 9, 1, 0, 0, 1, 0, time.UTC))
	last := periodKey(model.CategoryQuota, time.Date(2026, 9, 30, 23, 59, 59, 0, time.UTC))
	if first != last {
		t.Errorf("month key drifted within the month: %q vs %q", first, last)
	}
}

func TestPeriodWindow(t *testing.T) {
	now := time.Date(2026, 9, 15, 10, 30, 0, 0, time.UTC)

	from, to := periodWindow(model.CategoryQuota, now)
	if want := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC); !from.Equal(want) {
		t.Errorf("quota window start = %v, want %v", from, want)
	}
	if !to.Equal(now) {
		t.Errorf("quota window end = %v, want now", to)
	}

	from, to = periodWindow(model.CategoryMarketingWeekly, now)
	if want := now.AddDate(0, 0, -7); !from.Equal(want) {
		t.Errorf("weekly window start = %v, want %v", from, want)
	}
	if !to.Equal(now) {
		t.Errorf("weekly window end = %v, want now", to)
	}

	from, to = periodWindow(model.CategoryStaleItems, now)
	if !from.Equal(now) || !to.Equal(now) {
		t.Errorf("stale window = [%v, %v], want point in time", from, to)
	}
}
