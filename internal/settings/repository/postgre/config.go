package postgre

import (
	"context"
	"database/sql"
	"errors"

	"crm-alert-srv/internal/model"
	"crm-alert-srv/internal/settings/repository"
	postgrePkg "crm-alert-srv/pkg/postgre"

	"github.com/aarondl/null/v8"
	"github.com/lib/pq"
)

type alertConfigRow struct {
	ID              string         `db:"id"`
	Category        string         `db:"category"`
	Enabled         bool           `db:"enabled"`
	Schedule        null.String    `db:"schedule"`
	RedThreshold    float64        `db:"red_threshold"`
	YellowThreshold float64        `db:"yellow_threshold"`
	GreenThreshold  float64        `db:"green_threshold"`
	CCRecipients    pq.StringArray `db:"cc_recipients"`
	BCCAdmin        bool           `db:"bcc_admin"`
	TestMode        bool           `db:"test_mode"`
	CreatedAt       null.Time      `db:"created_at"`
	UpdatedAt       null.Time      `db:"updated_at"`
}

func (r alertConfigRow) toModel() model.AlertConfig {
	return model.AlertConfig{
		ID:              r.ID,
		Category:        model.Category(r.Category),
		Enabled:         r.Enabled,
		Schedule:        r.Schedule.String,
		RedThreshold:    r.RedThreshold,
		YellowThreshold: r.YellowThreshold,
		GreenThreshold:  r.GreenThreshold,
		CCRecipients:    []string(r.CCRecipients),
		BCCAdmin:        r.BCCAdmin,
		TestMode:        r.TestMode,
		CreatedAt:       r.CreatedAt.Time,
		UpdatedAt:       r.UpdatedAt.Time,
	}
}

const configColumns = `id, category, enabled, schedule, red_threshold,
	yellow_threshold, green_threshold, cc_recipients, bcc_admin, test_mode,
	created_at, updated_at`

func (r *implRepository) GetConfig(ctx context.Context, category model.Category) (model.AlertConfig, error) {
	var row alertConfigRow
	err := r.db.GetContext(ctx, &row,
		`SELECT `+configColumns+` FROM alert_configs WHERE category = $1`,
		string(category),
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.AlertConfig{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.settings.repository.postgre.GetConfig: %v", err)
		return model.AlertConfig{}, err
	}
	return row.toModel(), nil
}

func (r *implRepository) CreateConfig(ctx context.Context, cfg model.AlertConfig) (model.AlertConfig, error) {
	now := r.clock()
	row := alertConfigRow{
		ID:              postgrePkg.NewUUID(),
		Category:        string(cfg.Category),
		Enabled:         cfg.Enabled,
		Schedule:        null.NewString(cfg.Schedule, cfg.Schedule != ""),
		RedThreshold:    cfg.RedThreshold,
		YellowThreshold: cfg.YellowThreshold,
		GreenThreshold:  cfg.GreenThreshold,
		CCRecipients:    pq.StringArray(cfg.CCRecipients),
		BCCAdmin:        cfg.BCCAdmin,
		TestMode:        cfg.TestMode,
		CreatedAt:       null.TimeFrom(now),
		UpdatedAt:       null.TimeFrom(now),
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO alert_configs (`+configColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		row.ID, row.Category, row.Enabled, row.Schedule, row.RedThreshold,
		row.YellowThreshold, row.GreenThreshold, row.CCRecipients, row.BCCAdmin,
		row.TestMode, row.CreatedAt, row.UpdatedAt,
	)
	if err != nil {
		if postgrePkg.IsUniqueViolation(err) {
			return model.AlertConfig{}, repository.ErrDuplicateConfig
		}
		r.l.Errorf(ctx, "internal.settings.repository.postgre.CreateConfig: %v", err)
		return model.AlertConfig{}, err
	}

	return row.toModel(), nil
}

func (r *implRepository) UpdateConfig(ctx context.Context, cfg model.AlertConfig) (model.AlertConfig, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE alert_configs
		 SET enabled = $2, schedule = $3, red_threshold = $4,
		     yellow_threshold = $5, green_threshold = $6, cc_recipients = $7,
		     bcc_admin = $8, test_mode = $9, updated_at = $10
		 WHERE category = $1`,
		string(cfg.Category), cfg.Enabled, null.NewString(cfg.Schedule, cfg.Schedule != ""),
		cfg.RedThreshold, cfg.YellowThreshold, cfg.GreenThreshold,
		pq.StringArray(cfg.CCRecipients), cfg.BCCAdmin, cfg.TestMode, r.clock(),
	)
	if err != nil {
		r.l.Errorf(ctx, "internal.settings.repository.postgre.UpdateConfig: %v", err)
		return model.AlertConfig{}, err
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return model.AlertConfig{}, repository.ErrNotFound
	}

	return r.GetConfig(ctx, cfg.Category)
}
