package usecase

import (
	"context"
	"time"

	"crm-alert-srv/internal/alert"
	"crm-alert-srv/internal/model"
)

type aggregateFunc func(ctx context.Context, user model.User, t alert.Thresholds, from, to time.Time) (alert.Metrics, error)

type classifyFunc func(m alert.Metrics, t alert.Thresholds) model.Severity

// categoryStrategy parameterizes the shared evaluation driver: who the
// candidates are, how their metrics are aggregated, and how the result is
// graded.
type categoryStrategy struct {
	roles     []string
	aggregate aggregateFunc
	classify  classifyFunc
}

var (
	salesAndMarketing = []string{model.RoleSales, model.RoleMarketing}
	marketingOnly     = []string{model.RoleMarketing}
)

func (uc *implUsecase) strategyFor(category model.Category) (categoryStrategy, bool) {
	switch category {
	case model.CategoryQuota:
		return categoryStrategy{salesAndMarketing, uc.aggregateQuota, classifyQuota}, true
	case model.CategoryStaleItems:
		return categoryStrategy{salesAndMarketing, uc.aggregateStale, classifyStale}, true
	case model.CategoryActivity:
		return categoryStrategy{salesAndMarketing, uc.aggregateActivity, classifyActivity}, true
	case model.CategoryTaskOverdue:
		return categoryStrategy{salesAndMarketing, uc.aggregateTaskOverdue, classifyTaskOverdue}, true
	case model.CategoryMarketingWeekly:
		return categoryStrategy{marketingOnly, uc.aggregateMarketing, classifyMarketing}, true
	case model.CategoryMonthlyReview:
		return categoryStrategy{salesAndMarketing, uc.aggregateQuota, classifyMonthlyReview}, true
	default:
		return categoryStrategy{}, false
	}
}
