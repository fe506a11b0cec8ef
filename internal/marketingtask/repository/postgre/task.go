package postgre

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"crm-alert-srv/internal/marketingtask/repository"
	"crm-alert-srv/internal/model"
	"crm-alert-srv/pkg/paginator"

	"github.com/aarondl/null/v8"
)

type taskRow struct {
	ID                  string      `db:"id"`
	OwnerID             string      `db:"owner_id"`
	Title               string      `db:"title"`
	Type                string      `db:"type"`
	Status              string      `db:"status"`
	Likes               int         `db:"likes"`
	Comments            int         `db:"comments"`
	Shares              int         `db:"shares"`
	Views               int         `db:"views"`
	EmailsSent          int         `db:"emails_sent"`
	EmailsOpened        int         `db:"emails_opened"`
	EmailsReplied       int         `db:"emails_replied"`
	Attendees           int         `db:"attendees"`
	MeetingsBooked      int         `db:"meetings_booked"`
	ResponseType        null.String `db:"response_type"`
	ConnectionAccepted  bool        `db:"connection_accepted"`
	ICPEngagement       bool        `db:"icp_engagement"`
	LeadsGeneratedCount int         `db:"leads_generated_count"`
	Outcome             null.String `db:"outcome"`
	OutcomeOverride     bool        `db:"outcome_override"`
	OverrideReason      null.String `db:"override_reason"`
	CompletedAt         null.Time   `db:"completed_at"`
	CreatedAt           time.Time   `db:"created_at"`
	UpdatedAt           time.Time   `db:"updated_at"`
}

func (r taskRow) toModel() model.MarketingTask {
	t := model.MarketingTask{
		ID:      r.ID,
		OwnerID: r.OwnerID,
		Title:   r.Title,
		Type:    model.TaskType(r.Type),
		Status:  r.Status,
		Metrics: model.EngagementMetrics{
			Likes:               r.Likes,
			Comments:            r.Comments,
			Shares:              r.Shares,
			Views:               r.Views,
			EmailsSent:          r.EmailsSent,
			EmailsOpened:        r.EmailsOpened,
			EmailsReplied:       r.EmailsReplied,
			Attendees:           r.Attendees,
			MeetingsBooked:      r.MeetingsBooked,
			ResponseType:        r.ResponseType.String,
			ConnectionAccepted:  r.ConnectionAccepted,
			ICPEngagement:       r.ICPEngagement,
			LeadsGeneratedCount: r.LeadsGeneratedCount,
		},
		OutcomeOverride: r.OutcomeOverride,
		OverrideReason:  r.OverrideReason.String,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
	if r.Outcome.Valid {
		o := model.Outcome(r.Outcome.String)
		t.Outcome = &o
	}
	if r.CompletedAt.Valid {
		t.CompletedAt = &r.CompletedAt.Time
	}
	return t
}

const taskColumns = `id, owner_id, title, type, status, likes, comments,
	shares, views, emails_sent, emails_opened, emails_replied, attendees,
	meetings_booked, response_type, connection_accepted, icp_engagement,
	leads_generated_count, outcome, outcome_override, override_reason,
	completed_at, created_at, updated_at`

func (r *implRepository) GetTask(ctx context.Context, id string) (model.MarketingTask, error) {
	var row taskRow
	err := r.db.GetContext(ctx, &row,
		`SELECT `+taskColumns+` FROM marketing_tasks WHERE id = $1`,
		id,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.MarketingTask{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.marketingtask.repository.postgre.GetTask: %v", err)
		return model.MarketingTask{}, err
	}
	return row.toModel(), nil
}

func (r *implRepository) ListTasks(ctx context.Context, opts repository.ListTasksOptions) ([]model.MarketingTask, paginator.Paginator, error) {
	pagQ := opts.PaginateQuery
	pagQ.Adjust()

	where := ` WHERE owner_id = ?`
	args := []interface{}{opts.OwnerID}
	if opts.Status != "" {
		where += ` AND status = ?`
		args = append(args, opts.Status)
	}

	var total int64
	if err := r.db.GetContext(ctx, &total,
		r.db.Rebind(`SELECT COUNT(*) FROM marketing_tasks`+where), args...,
	); err != nil {
		r.l.Errorf(ctx, "internal.marketingtask.repository.postgre.ListTasks: %v", err)
		return nil, paginator.Paginator{}, err
	}

	query := `SELECT ` + taskColumns + ` FROM marketing_tasks` + where +
		` ORDER BY created_at DESC LIMIT ? OFFSET ?`
	args = append(args, pagQ.Limit, pagQ.Offset())

	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		r.l.Errorf(ctx, "internal.marketingtask.repository.postgre.ListTasks: %v", err)
		return nil, paginator.Paginator{}, err
	}

	tasks := make([]model.MarketingTask, len(rows))
	for i, row := range rows {
		tasks[i] = row.toModel()
	}

	return tasks, paginator.Paginator{
		Total:       total,
		Count:       int64(len(tasks)),
		PerPage:     pagQ.Limit,
		CurrentPage: pagQ.Page,
	}, nil
}

func (r *implRepository) UpdateTask(ctx context.Context, task model.MarketingTask) (model.MarketingTask, error) {
	var outcome null.String
	if task.Outcome != nil {
		outcome = null.StringFrom(string(*task.Outcome))
	}

	res, err := r.db.ExecContext(ctx,
		`UPDATE marketing_tasks
		 SET status = $2, likes = $3, comments = $4, shares = $5, views = $6,
		     emails_sent = $7, emails_opened = $8, emails_replied = $9,
		     attendees = $10, meetings_booked = $11, response_type = $12,
		     connection_accepted = $13, icp_engagement = $14,
		     leads_generated_count = $15, outcome = $16,
		     outcome_override = $17, override_reason = $18,
		     completed_at = $19, updated_at = $20
		 WHERE id = $1`,
		task.ID, task.Status, task.Metrics.Likes, task.Metrics.Comments,
		task.Metrics.Shares, task.Metrics.Views, task.Metrics.EmailsSent,
		task.Metrics.EmailsOpened, task.Metrics.EmailsReplied,
		task.Metrics.Attendees, task.Metrics.MeetingsBooked,
		null.NewString(task.Metrics.ResponseType, task.Metrics.ResponseType != ""),
		task.Metrics.ConnectionAccepted, task.Metrics.ICPEngagement,
		task.Metrics.LeadsGeneratedCount, outcome, task.OutcomeOverride,
		null.NewString(task.OverrideReason, task.OverrideReason != ""),
		null.TimeFromPtr(task.CompletedAt), r.clock(),
	)
	if err != nil {
		r.l.Errorf(ctx, "internal.marketingtask.repository.postgre.UpdateTask: %v", err)
		return model.MarketingTask{}, err
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return model.MarketingTask{}, repository.ErrNotFound
	}

	return r.GetTask(ctx, task.ID)
}
