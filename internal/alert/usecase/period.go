package usecase

import (
	"fmt"
	"time"

	"crm-alert-srv/internal/model"
)

// periodKey builds the dedup ledger key for the category's natural cadence.
// Monthly categories key on the calendar month, weekly ones on the ISO week,
// daily ones on the calendar day. Keys must stay stable within a cadence
// window or the ledger stops suppressing duplicates.
func periodKey(category model.Category, now time.Time) string {
	switch category {
	case model.CategoryQuota, model.CategoryMonthlyReview:
		return now.Format("2006-01")
	case model.CategoryMarketingWeekly, model.CategoryActivity:
		year, week := now.ISOWeek()
		return fmt.Sprintf("%04d-W%02d", year, week)
	default:
		return now.Format("2006-01-02")
	}
}

// periodWindow returns the aggregation window the category's metrics are
// computed over. Monthly categories cover the current calendar month so far,
// weekly ones the trailing seven days. Point-in-time categories (stale
// items, overdue tasks) have no window; both bounds are now.
func periodWindow(category model.Category, now time.Time) (time.Time, time.Time) {
	switch category {
	case model.CategoryQuota, model.CategoryMonthlyReview:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return start, now
	case model.CategoryMarketingWeekly, model.CategoryActivity:
		return now.AddDate(0, 0, -7), now
	default:
		return now, now
	}
}
