package postgre

import (
	"context"
	"database/sql"
	"errors"

	"crm-alert-srv/internal/model"
	"crm-alert-srv/internal/settings/repository"

	"github.com/aarondl/null/v8"
)

// global_alert_settings is a singleton table keyed by a constant id.
const globalSettingsID = 1

type globalSettingsRow struct {
	FromEmail       string      `db:"from_email"`
	AdminEmail      null.String `db:"admin_email"`
	HREmail         null.String `db:"hr_email"`
	LeadershipEmail null.String `db:"leadership_email"`
	ReviewerEmail   null.String `db:"reviewer_email"`
	BCCAllToAdmin   bool        `db:"bcc_all_to_admin"`
	TestMode        bool        `db:"test_mode"`
	UpdatedAt       null.Time   `db:"updated_at"`
}

func (r globalSettingsRow) toModel() model.GlobalAlertSettings {
	return model.GlobalAlertSettings{
		FromEmail:       r.FromEmail,
		AdminEmail:      r.AdminEmail.String,
		HREmail:         r.HREmail.String,
		LeadershipEmail: r.LeadershipEmail.String,
		ReviewerEmail:   r.ReviewerEmail.String,
		BCCAllToAdmin:   r.BCCAllToAdmin,
		TestMode:        r.TestMode,
		UpdatedAt:       r.UpdatedAt.Time,
	}
}

func (r *implRepository) GetGlobal(ctx context.Context) (model.GlobalAlertSettings, error) {
	var row globalSettingsRow
	err := r.db.GetContext(ctx, &row,
		`SELECT from_email, admin_email, hr_email, leadership_email,
		        reviewer_email, bcc_all_to_admin, test_mode, updated_at
		 FROM global_alert_settings WHERE id = $1`,
		globalSettingsID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.GlobalAlertSettings{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.settings.repository.postgre.GetGlobal: %v", err)
		return model.GlobalAlertSettings{}, err
	}
	return row.toModel(), nil
}

func (r *implRepository) UpsertGlobal(ctx context.Context, gs model.GlobalAlertSettings) (model.GlobalAlertSettings, error) {
	now := r.clock()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO global_alert_settings
		   (id, from_email, admin_email, hr_email, leadership_email,
		    reviewer_email, bcc_all_to_admin, test_mode, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 ON CONFLICT (id) DO UPDATE SET
		   from_email = EXCLUDED.from_email,
		   admin_email = EXCLUDED.admin_email,
		   hr_email = EXCLUDED.hr_email,
		   leadership_email = EXCLUDED.leadership_email,
		   reviewer_email = EXCLUDED.reviewer_email,
		   bcc_all_to_admin = EXCLUDED.bcc_all_to_admin,
		   test_mode = EXCLUDED.test_mode,
		   updated_at = EXCLUDED.updated_at`,
		globalSettingsID, gs.FromEmail,
		null.NewString(gs.AdminEmail, gs.AdminEmail != ""),
		null.NewString(gs.HREmail, gs.HREmail != ""),
		null.NewString(gs.LeadershipEmail, gs.LeadershipEmail != ""),
		null.NewString(gs.ReviewerEmail, gs.ReviewerEmail != ""),
		gs.BCCAllToAdmin, gs.TestMode, now,
	)
	if err != nil {
		r.l.Errorf(ctx, "internal.settings.repository.postgre.UpsertGlobal: %v", err)
		return model.GlobalAlertSettings{}, err
	}

	gs.UpdatedAt = now
	return gs, nil
}
