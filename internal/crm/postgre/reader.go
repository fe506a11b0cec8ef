package postgre

import (
	"context"
	"time"

	"crm-alert-srv/internal/model"

	"github.com/lib/pq"
)

func (r *implReader) ListUsersByRoles(ctx context.Context, roles []string) ([]model.User, error) {
	var rows []userRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT id, email, full_name, role, monthly_quota, hire_date,
		        excluded_from_reporting, is_active, created_at, updated_at
		 FROM users
		 WHERE role = ANY($1)
		   AND is_active = TRUE
		   AND excluded_from_reporting = FALSE
		 ORDER BY created_at`,
		pq.Array(roles),
	)
	if err != nil {
		r.l.Errorf(ctx, "internal.crm.postgre.ListUsersByRoles: %v", err)
		return nil, err
	}

	res := make([]model.User, len(rows))
	for i, row := range rows {
		res[i] = row.toModel()
	}
	return res, nil
}

func (r *implReader) ClosedWonRevenue(ctx context.Context, ownerID string, from, to time.Time) (float64, error) {
	var revenue float64
	err := r.db.GetContext(ctx, &revenue,
		`SELECT COALESCE(SUM(amount), 0)
		 FROM deals
		 WHERE owner_id = $1
		   AND stage = $2
		   AND closed_at >= $3 AND closed_at < $4`,
		ownerID, model.DealStageClosedWon, from, to,
	)
	if err != nil {
		r.l.Errorf(ctx, "internal.crm.postgre.ClosedWonRevenue: %v", err)
		return 0, err
	}
	return revenue, nil
}

func (r *implReader) ListOpenDeals(ctx context.Context, ownerID string) ([]model.Deal, error) {
	var rows []dealRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT id, owner_id, name, stage, amount, closed_at, created_at, updated_at
		 FROM deals
		 WHERE owner_id = $1
		   AND stage NOT IN ($2, $3)
		 ORDER BY updated_at`,
		ownerID, model.DealStageClosedWon, model.DealStageClosedLost,
	)
	if err != nil {
		r.l.Errorf(ctx, "internal.crm.postgre.ListOpenDeals: %v", err)
		return nil, err
	}

	res := make([]model.Deal, len(rows))
	for i, row := range rows {
		res[i] = row.toModel()
	}
	return res, nil
}

func (r *implReader) ListUnconvertedLeads(ctx context.Context, ownerID string) ([]model.Lead, error) {
	var rows []leadRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT id, owner_id, name, company, converted, created_at, updated_at
		 FROM leads
		 WHERE owner_id = $1 AND converted = FALSE
		 ORDER BY updated_at`,
		ownerID,
	)
	if err != nil {
		r.l.Errorf(ctx, "internal.crm.postgre.ListUnconvertedLeads: %v", err)
		return nil, err
	}

	res := make([]model.Lead, len(rows))
	for i, row := range rows {
		res[i] = row.toModel()
	}
	return res, nil
}

func (r *implReader) CountActivities(ctx context.Context, ownerID string, from, to time.Time) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*)
		 FROM activities
		 WHERE owner_id = $1
		   AND created_at >= $2 AND created_at < $3`,
		ownerID, from, to,
	)
	if err != nil {
		r.l.Errorf(ctx, "internal.crm.postgre.CountActivities: %v", err)
		return 0, err
	}
	return count, nil
}

func (r *implReader) ListOverdueTasks(ctx context.Context, ownerID string, now time.Time) ([]model.Task, error) {
	var rows []taskRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT id, owner_id, title, due_date, completed_at, created_at
		 FROM tasks
		 WHERE owner_id = $1
		   AND completed_at IS NULL
		   AND due_date IS NOT NULL
		   AND due_date < $2
		 ORDER BY due_date`,
		ownerID, now,
	)
	if err != nil {
		r.l.Errorf(ctx, "internal.crm.postgre.ListOverdueTasks: %v", err)
		return nil, err
	}

	res := make([]model.Task, len(rows))
	for i, row := range rows {
		res[i] = row.toModel()
	}
	return res, nil
}

func (r *implReader) ListCompletedMarketingTasks(ctx context.Context, ownerID string, from, to time.Time) ([]model.MarketingTask, error) {
	var rows []marketingTaskRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT id, owner_id, title, type, status, outcome, leads_generated_count, completed_at
		 FROM marketing_tasks
		 WHERE owner_id = $1
		   AND status = $2
		   AND completed_at >= $3 AND completed_at < $4
		 ORDER BY completed_at`,
		ownerID, model.MarketingTaskStatusCompleted, from, to,
	)
	if err != nil {
		r.l.Errorf(ctx, "internal.crm.postgre.ListCompletedMarketingTasks: %v", err)
		return nil, err
	}

	res := make([]model.MarketingTask, len(rows))
	for i, row := range rows {
		res[i] = row.toModel()
	}
	return res, nil
}

func (r *implReader) CountPendingOutcomes(ctx context.Context, ownerID string) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*)
		 FROM marketing_tasks
		 WHERE owner_id = $1
		   AND status = $2
		   AND outcome IS NULL`,
		ownerID, model.MarketingTaskStatusCompleted,
	)
	if err != nil {
		r.l.Errorf(ctx, "internal.crm.postgre.CountPendingOutcomes: %v", err)
		return 0, err
	}
	return count, nil
}
