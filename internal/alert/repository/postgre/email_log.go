package postgre

import (
	"context"

	"crm-alert-srv/internal/alert/repository"
	"crm-alert-srv/internal/model"
	postgrePkg "crm-alert-srv/pkg/postgre"
	"crm-alert-srv/pkg/paginator"

	"github.com/aarondl/null/v8"
	"github.com/lib/pq"
)

type emailLogRow struct {
	ID            string         `db:"id"`
	UserID        string         `db:"user_id"`
	AlertType     string         `db:"alert_type"`
	Severity      string         `db:"severity"`
	RecipientTo   string         `db:"recipient_to"`
	RecipientsCC  pq.StringArray `db:"recipients_cc"`
	Subject       string         `db:"subject"`
	Body          string         `db:"body"`
	BodyObjectKey null.String    `db:"body_object_key"`
	QuotaTarget   float64        `db:"quota_target"`
	QuotaActual   float64        `db:"quota_actual"`
	SESMessageID  null.String    `db:"ses_message_id"`
	SentAt        null.Time      `db:"sent_at"`
}

func (r emailLogRow) toModel() model.EmailLog {
	log := model.EmailLog{
		ID:           r.ID,
		UserID:       r.UserID,
		AlertType:    model.Category(r.AlertType),
		Severity:     model.Severity(r.Severity),
		RecipientTo:  r.RecipientTo,
		RecipientsCC: []string(r.RecipientsCC),
		Subject:      r.Subject,
		Body:         r.Body,
		QuotaTarget:  r.QuotaTarget,
		QuotaActual:  r.QuotaActual,
		SentAt:       r.SentAt.Time,
	}
	if r.BodyObjectKey.Valid {
		log.BodyObjectKey = r.BodyObjectKey.String
	}
	if r.SESMessageID.Valid {
		log.SESMessageID = &r.SESMessageID.String
	}
	return log
}

func (r *implRepository) CreateEmailLog(ctx context.Context, opts repository.CreateEmailLogOptions) (model.EmailLog, error) {
	row := emailLogRow{
		ID:            postgrePkg.NewUUID(),
		UserID:        opts.UserID,
		AlertType:     string(opts.AlertType),
		Severity:      string(opts.Severity),
		RecipientTo:   opts.RecipientTo,
		RecipientsCC:  pq.StringArray(opts.RecipientsCC),
		Subject:       opts.Subject,
		Body:          opts.Body,
		BodyObjectKey: null.NewString(opts.BodyObjectKey, opts.BodyObjectKey != ""),
		QuotaTarget:   opts.QuotaTarget,
		QuotaActual:   opts.QuotaActual,
		SESMessageID:  null.StringFromPtr(opts.SESMessageID),
		SentAt:        null.TimeFrom(r.clock()),
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO email_logs (
			id, user_id, alert_type, severity, recipient_to, recipients_cc,
			subject, body, body_object_key, quota_target, quota_actual,
			ses_message_id, sent_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		row.ID, row.UserID, row.AlertType, row.Severity, row.RecipientTo, row.RecipientsCC,
		row.Subject, row.Body, row.BodyObjectKey, row.QuotaTarget, row.QuotaActual,
		row.SESMessageID, row.SentAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "internal.alert.repository.postgre.CreateEmailLog: %v", err)
		return model.EmailLog{}, err
	}

	return row.toModel(), nil
}

func (r *implRepository) ListEmailLogs(ctx context.Context, opts repository.ListEmailLogsOptions) ([]model.EmailLog, paginator.Paginator, error) {
	var total int64
	if err := r.db.GetContext(ctx, &total,
		`SELECT COUNT(*) FROM email_logs WHERE sent_at >= $1`, opts.Since,
	); err != nil {
		r.l.Errorf(ctx, "internal.alert.repository.postgre.ListEmailLogs.Count: %v", err)
		return nil, paginator.Paginator{}, err
	}

	pagQ := opts.PaginateQuery
	pagQ.Adjust()

	var rows []emailLogRow
	if err := r.db.SelectContext(ctx, &rows,
		`SELECT id, user_id, alert_type, severity, recipient_to, recipients_cc,
		        subject, body, body_object_key, quota_target, quota_actual,
		        ses_message_id, sent_at
		 FROM email_logs
		 WHERE sent_at >= $1
		 ORDER BY sent_at DESC
		 LIMIT $2 OFFSET $3`,
		opts.Since, pagQ.Limit, pagQ.Offset(),
	); err != nil {
		r.l.Errorf(ctx, "internal.alert.repository.postgre.ListEmailLogs.Select: %v", err)
		return nil, paginator.Paginator{}, err
	}

	res := make([]model.EmailLog, len(rows))
	for i, row := range rows {
		res[i] = row.toModel()
	}

	pag := paginator.Paginator{
		Total:       total,
		Count:       int64(len(res)),
		PerPage:     pagQ.Limit,
		CurrentPage: pagQ.Page,
	}
	return res, pag, nil
}
