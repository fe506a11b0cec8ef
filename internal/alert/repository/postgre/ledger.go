package postgre

import (
	"context"
	"database/sql"

	"crm-alert-srv/internal/alert/repository"
	"crm-alert-srv/internal/model"
	postgrePkg "crm-alert-srv/pkg/postgre"
)

type quotaAlertRow struct {
	ID        string       `db:"id"`
	UserID    string       `db:"user_id"`
	AlertType string       `db:"alert_type"`
	Severity  string       `db:"severity"`
	Period    string       `db:"period"`
	CreatedAt sql.NullTime `db:"created_at"`
}

func (r quotaAlertRow) toModel() model.QuotaAlert {
	return model.QuotaAlert{
		ID:        r.ID,
		UserID:    r.UserID,
		AlertType: model.Category(r.AlertType),
		Severity:  model.Severity(r.Severity),
		Period:    r.Period,
		CreatedAt: r.CreatedAt.Time,
	}
}

func (r *implRepository) AlreadySent(ctx context.Context, userID string, alertType model.Category, period string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		`SELECT EXISTS (
			SELECT 1 FROM quota_alerts
			WHERE user_id = $1 AND alert_type = $2 AND period = $3
		)`,
		userID, string(alertType), period,
	)
	if err != nil {
		r.l.Errorf(ctx, "internal.alert.repository.postgre.AlreadySent: %v", err)
		return false, err
	}
	return exists, nil
}

func (r *implRepository) RecordAlert(ctx context.Context, opts repository.RecordAlertOptions) (model.QuotaAlert, error) {
	row := quotaAlertRow{
		ID:        postgrePkg.NewUUID(),
		UserID:    opts.UserID,
		AlertType: string(opts.AlertType),
		Severity:  string(opts.Severity),
		Period:    opts.Period,
	}

	err := r.db.GetContext(ctx, &row.CreatedAt,
		`INSERT INTO quota_alerts (id, user_id, alert_type, severity, period, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at`,
		row.ID, row.UserID, row.AlertType, row.Severity, row.Period, r.clock(),
	)
	if err != nil {
		if postgrePkg.IsUniqueViolation(err) {
			return model.QuotaAlert{}, repository.ErrDuplicateAlert
		}
		r.l.Errorf(ctx, "internal.alert.repository.postgre.RecordAlert: %v", err)
		return model.QuotaAlert{}, err
	}

	return row.toModel(), nil
}
