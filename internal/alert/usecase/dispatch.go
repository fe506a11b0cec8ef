package usecase

import (
	"context"
	"fmt"

	"crm-alert-srv/internal/alert"
	"crm-alert-srv/internal/alert/repository"
	"crm-alert-srv/internal/model"
	"crm-alert-srv/pkg/mailer"
	postgrePkg "crm-alert-srv/pkg/postgre"

	"github.com/friendsofgo/errors"
)

// dispatch renders and sends one alert, then writes the audit row. Exactly
// one EmailLog row is written per attempt, with a null message id on
// failure; send errors are returned after logging so the driver can mark
// the user failed without aborting the batch.
func (uc *implUsecase) dispatch(
	ctx context.Context,
	user model.User,
	category model.Category,
	severity model.Severity,
	m alert.Metrics,
	cfg model.AlertConfig,
	gs model.GlobalAlertSettings,
) (string, error) {
	subject, htmlBody, textBody := renderEmail(category, severity, user, m)
	if user.InGracePeriod(uc.clock(), model.DefaultGracePeriodDays) {
		subject = onboardingPrefix + subject
	}

	to := user.Email
	cc := routeRecipients(severity, category, cfg, gs)
	if testModeEnabled(cfg, gs) {
		// Redirect to the admin inbox with production-representative
		// content so testers see exactly what the user would have.
		to = gs.AdminEmail
		cc = nil
	}

	var bcc []string
	if cfg.BCCAdmin || gs.BCCAllToAdmin {
		if gs.AdminEmail != "" && gs.AdminEmail != to {
			bcc = []string{gs.AdminEmail}
		}
	}

	bodyObjectKey := uc.archiveBody(ctx, category, htmlBody)

	messageID, sendErr := uc.mailer.Send(ctx, mailer.Message{
		From:     gs.FromEmail,
		To:       to,
		CC:       cc,
		BCC:      bcc,
		Subject:  subject,
		HTMLBody: htmlBody,
		TextBody: textBody,
	})
	if sendErr != nil {
		uc.l.Errorf(ctx, "internal.alert.usecase.dispatch: %v", sendErr)
	}

	logOpts := repository.CreateEmailLogOptions{
		UserID:        user.ID,
		AlertType:     category,
		Severity:      severity,
		RecipientTo:   to,
		RecipientsCC:  cc,
		Subject:       subject,
		Body:          textBody,
		BodyObjectKey: bodyObjectKey,
		QuotaTarget:   m.QuotaTarget,
		QuotaActual:   m.QuotaActual,
	}
	if sendErr == nil {
		logOpts.SESMessageID = &messageID
	}

	if _, err := uc.repo.CreateEmailLog(ctx, logOpts); err != nil {
		uc.l.Errorf(ctx, "internal.alert.usecase.dispatch: %v", err)
	}

	if sendErr != nil {
		return "", errors.Wrap(alert.ErrDispatchFailed, sendErr.Error())
	}
	return messageID, nil
}

// archiveBody stores the rendered HTML in the object archive. Archival is
// best effort; a failure never blocks the send.
func (uc *implUsecase) archiveBody(ctx context.Context, category model.Category, htmlBody string) string {
	if uc.storage == nil {
		return ""
	}

	objectKey := fmt.Sprintf("email-bodies/%s/%s.html", category, postgrePkg.NewUUID())
	if err := uc.storage.Put(ctx, objectKey, []byte(htmlBody), "text/html"); err != nil {
		uc.l.Warnf(ctx, "internal.alert.usecase.archiveBody: %v", err)
		return ""
	}
	return objectKey
}
