package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"crm-alert-srv/internal/alert/repository"
	"crm-alert-srv/internal/model"
	"crm-alert-srv/internal/settings"
	pkgLog "crm-alert-srv/pkg/log"
	"crm-alert-srv/pkg/mailer"
	"crm-alert-srv/pkg/paginator"
)

type noopLogger struct{}

func (noopLogger) Debug(context.Context, ...any)          {}
func (noopLogger) Debugf(context.Context, string, ...any) {}
func (noopLogger) Info(context.Context, ...any)           {}
func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warn(context.Context, ...any)           {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Error(context.Context, ...any)          {}
func (noopLogger) Errorf(context.Context, string, ...any) {}
func (noopLogger) Fatal(context.Context, ...any)          {}
func (noopLogger) Fatalf(context.Context, string, ...any) {}

func testLogger() pkgLog.Logger { return noopLogger{} }

// fakeReader serves canned CRM data for every user.
type fakeReader struct {
	users            []model.User
	closedWonRevenue float64
	openDeals        []model.Deal
	unconvertedLeads []model.Lead
	activityCount    int
	overdueTasks     []model.Task
	marketingTasks   []model.MarketingTask
	pendingOutcomes  int

	err error
}

func (f *fakeReader) ListUsersByRoles(_ context.Context, _ []string) ([]model.User, error) {
	return f.users, f.err
}

func (f *fakeReader) ClosedWonRevenue(_ context.Context, _ string, _, _ time.Time) (float64, error) {
	return f.closedWonRevenue, f.err
}

func (f *fakeReader) ListOpenDeals(_ context.Context, _ string) ([]model.Deal, error) {
	return f.openDeals, f.err
}

func (f *fakeReader) ListUnconvertedLeads(_ context.Context, _ string) ([]model.Lead, error) {
	return f.unconvertedLeads, f.err
}

func (f *fakeReader) CountActivities(_ context.Context, _ string, _, _ time.Time) (int, error) {
	return f.activityCount, f.err
}

func (f *fakeReader) ListOverdueTasks(_ context.Context, _ string, _ time.Time) ([]model.Task, error) {
	return f.overdueTasks, f.err
}

func (f *fakeReader) ListCompletedMarketingTasks(_ context.Context, _ string, _, _ time.Time) ([]model.MarketingTask, error) {
	return f.marketingTasks, f.err
}

func (f *fakeReader) CountPendingOutcomes(_ context.Context, _ string) (int, error) {
	return f.pendingOutcomes, f.err
}

// fakeRepo is an in-memory ledger and audit log.
type fakeRepo struct {
	ledger    map[string]model.QuotaAlert
	emailLogs []model.EmailLog
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{ledger: map[string]model.QuotaAlert{}}
}

func ledgerKey(userID string, alertType model.Category, period string) string {
	return fmt.Sprintf("%s|%s|%s", userID, alertType, period)
}

func (f *fakeRepo) AlreadySent(_ context.Context, userID string, alertType model.Category, period string) (bool, error) {
	_, ok := f.ledger[ledgerKey(userID, alertType, period)]
	return ok, nil
}

func (f *fakeRepo) RecordAlert(_ context.Context, opts repository.RecordAlertOptions) (model.QuotaAlert, error) {
	key := ledgerKey(opts.UserID, opts.AlertType, opts.Period)
	if _, ok := f.ledger[key]; ok {
		return model.QuotaAlert{}, repository.ErrDuplicateAlert
	}
	row := model.QuotaAlert{
		ID:        key,
		UserID:    opts.UserID,
		AlertType: opts.AlertType,
		Severity:  opts.Severity,
		Period:    opts.Period,
	}
	f.ledger[key] = row
	return row, nil
}

func (f *fakeRepo) CreateEmailLog(_ context.Context, opts repository.CreateEmailLogOptions) (model.EmailLog, error) {
	row := model.EmailLog{
		ID:           fmt.Sprintf("log-%d", len(f.emailLogs)+1),
		UserID:       opts.UserID,
		AlertType:    opts.AlertType,
		Severity:     opts.Severity,
		RecipientTo:  opts.RecipientTo,
		RecipientsCC: opts.RecipientsCC,
		Subject:      opts.Subject,
		Body:         opts.Body,
		SESMessageID: opts.SESMessageID,
	}
	f.emailLogs = append(f.emailLogs, row)
	return row, nil
}

func (f *fakeRepo) ListEmailLogs(_ context.Context, _ repository.ListEmailLogsOptions) ([]model.EmailLog, paginator.Paginator, error) {
	return f.emailLogs, paginator.Paginator{Total: int64(len(f.emailLogs))}, nil
}

// fakeSettings serves a fixed config and global settings.
type fakeSettings struct {
	cfg      model.AlertConfig
	global   model.GlobalAlertSettings
	excluded map[string]model.UserAlertExclusion
}

func (f *fakeSettings) LoadConfig(_ context.Context, category model.Category) (model.AlertConfig, error) {
	cfg := f.cfg
	cfg.Category = category
	return cfg, nil
}

func (f *fakeSettings) LoadGlobal(_ context.Context) (model.GlobalAlertSettings, error) {
	return f.global, nil
}

func (f *fakeSettings) ActiveExclusions(_ context.Context, _ time.Time) (map[string]model.UserAlertExclusion, error) {
	if f.excluded == nil {
		return map[string]model.UserAlertExclusion{}, nil
	}
	return f.excluded, nil
}

func (f *fakeSettings) ListConfigs(_ context.Context, _ model.Scope) ([]model.AlertConfig, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeSettings) UpdateConfig(_ context.Context, _ model.Scope, _ settings.UpdateConfigInput) (model.AlertConfig, error) {
	return model.AlertConfig{}, errors.New("not implemented")
}

func (f *fakeSettings) GetGlobal(_ context.Context, _ model.Scope) (model.GlobalAlertSettings, error) {
	return f.global, nil
}

func (f *fakeSettings) UpdateGlobal(_ context.Context, _ model.Scope, _ settings.UpdateGlobalInput) (model.GlobalAlertSettings, error) {
	return model.GlobalAlertSettings{}, errors.New("not implemented")
}

func (f *fakeSettings) ListExclusions(_ context.Context, _ model.Scope) ([]model.UserAlertExclusion, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeSettings) CreateExclusion(_ context.Context, _ model.Scope, _ settings.CreateExclusionInput) (model.UserAlertExclusion, error) {
	return model.UserAlertExclusion{}, errors.New("not implemented")
}

func (f *fakeSettings) DeleteExclusion(_ context.Context, _ model.Scope, _ string) error {
	return errors.New("not implemented")
}

// fakeMailer records sent messages and can be forced to fail.
type fakeMailer struct {
	sent    []mailer.Message
	sendErr error
}

func (f *fakeMailer) Send(_ context.Context, msg mailer.Message) (string, error) {
	if f.sendErr != nil {
		return "", f.sendErr
	}
	f.sent = append(f.sent, msg)
	return fmt.Sprintf("msg-%d", len(f.sent)), nil
}

func (f *fakeMailer) Close() error { return nil }
