package postgre

import (
	"context"
	"time"

	"crm-alert-srv/internal/model"
	"crm-alert-srv/internal/settings/repository"
	postgrePkg "crm-alert-srv/pkg/postgre"

	"github.com/aarondl/null/v8"
)

type exclusionRow struct {
	ID        string      `db:"id"`
	UserID    string      `db:"user_id"`
	StartDate time.Time   `db:"start_date"`
	EndDate   time.Time   `db:"end_date"`
	Reason    null.String `db:"reason"`
	CreatedAt null.Time   `db:"created_at"`
}

func (r exclusionRow) toModel() model.UserAlertExclusion {
	return model.UserAlertExclusion{
		ID:        r.ID,
		UserID:    r.UserID,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		Reason:    r.Reason.String,
		CreatedAt: r.CreatedAt.Time,
	}
}

func (r *implRepository) ListExclusions(ctx context.Context) ([]model.UserAlertExclusion, error) {
	var rows []exclusionRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT id, user_id, start_date, end_date, reason, created_at
		 FROM user_alert_exclusions
		 ORDER BY start_date DESC, created_at DESC`,
	)
	if err != nil {
		r.l.Errorf(ctx, "internal.settings.repository.postgre.ListExclusions: %v", err)
		return nil, err
	}

	exclusions := make([]model.UserAlertExclusion, len(rows))
	for i, row := range rows {
		exclusions[i] = row.toModel()
	}
	return exclusions, nil
}

func (r *implRepository) ListActiveExclusions(ctx context.Context, now time.Time) ([]model.UserAlertExclusion, error) {
	var rows []exclusionRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT id, user_id, start_date, end_date, reason, created_at
		 FROM user_alert_exclusions
		 WHERE start_date <= $1 AND end_date >= $1`,
		now,
	)
	if err != nil {
		r.l.Errorf(ctx, "internal.settings.repository.postgre.ListActiveExclusions: %v", err)
		return nil, err
	}

	exclusions := make([]model.UserAlertExclusion, len(rows))
	for i, row := range rows {
		exclusions[i] = row.toModel()
	}
	return exclusions, nil
}

func (r *implRepository) CreateExclusion(ctx context.Context, e model.UserAlertExclusion) (model.UserAlertExclusion, error) {
	row := exclusionRow{
		ID:        postgrePkg.NewUUID(),
		UserID:    e.UserID,
		StartDate: e.StartDate,
		EndDate:   e.EndDate,
		Reason:    null.NewString(e.Reason, e.Reason != ""),
		CreatedAt: null.TimeFrom(r.clock()),
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO user_alert_exclusions
		   (id, user_id, start_date, end_date, reason, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		row.ID, row.UserID, row.StartDate, row.EndDate, row.Reason, row.CreatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "internal.settings.repository.postgre.CreateExclusion: %v", err)
		return model.UserAlertExclusion{}, err
	}

	return row.toModel(), nil
}

func (r *implRepository) DeleteExclusion(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM user_alert_exclusions WHERE id = $1`,
		id,
	)
	if err != nil {
		r.l.Errorf(ctx, "internal.settings.repository.postgre.DeleteExclusion: %v", err)
		return err
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return repository.ErrNotFound
	}
	return nil
}
