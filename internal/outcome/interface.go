package outcome

import "crm-alert-srv/internal/model"

// Classifier deterministically scores a completed marketing task from its
// recorded engagement metrics. Classify is pure and total: every task type
// yields exactly one of SUCCESS, PARTIAL, FAILED and it never panics.
type Classifier interface {
	Classify(taskType model.TaskType, metrics model.EngagementMetrics) Result
}
