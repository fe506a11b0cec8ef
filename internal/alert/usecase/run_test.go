package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"crm-alert-srv/internal/alert"
	"crm-alert-srv/internal/model"
)

func newTestUsecase(reader *fakeReader, repo *fakeRepo, stg *fakeSettings, m *fakeMailer, now time.Time) *implUsecase {
	return &implUsecase{
		l:        testLogger(),
		repo:     repo,
		crm:      reader,
		settings: stg,
		mailer:   m,
		clock:    func() time.Time { return now },
	}
}

func quotaSettings() *fakeSettings {
	return &fakeSettings{
		cfg: model.AlertConfig{
			Enabled:         true,
			RedThreshold:    50,
			YellowThreshold: 80,
			GreenThreshold:  100,
		},
		global: model.GlobalAlertSettings{
			FromEmail:     "alerts@example.com",
			AdminEmail:    "admin@example.com",
			HREmail:       "hr@example.com",
			ReviewerEmail: "reviewer@example.com",
		},
	}
}

func TestRunUnknownCategory(t *testing.T) {
	uc := newTestUsecase(&fakeReader{}, newFakeRepo(), quotaSettings(), &fakeMailer{}, time.Now())

	_, err := uc.Run(context.Background(), model.Category("bogus"))
	if !errors.Is(err, alert.ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}
}

func TestRunDisabledCategory(t *testing.T) {
	stg := quotaSettings()
	stg.cfg.Enabled = false
	uc := newTestUsecase(&fakeReader{}, newFakeRepo(), stg, &fakeMailer{}, time.Now())

	_, err := uc.Run(context.Background(), model.CategoryQuota)
	if !errors.Is(err, alert.ErrCategoryDisabled) {
		t.Fatalf("expected ErrCategoryDisabled, got %v", err)
	}
}

func TestRunSendsAndRecords(t *testing.T) {
	now := time.Date(2026, 9, 15, 8, 0, 0, 0, time.UTC)
	reader := &fakeReader{
		users:            []model.User{{ID: "u1", Email: "rep@example.com", FullName: "Pat Rep", Role: model.RoleSales, MonthlyQuota: 10000}},
		closedWonRevenue: 3000, // 30 percent, RED
	}
	repo := newFakeRepo()
	m := &fakeMailer{}
	uc := newTestUsecase(reader, repo, quotaSettings(), m, now)

	res, err := uc.Run(context.Background(), model.CategoryQuota)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Processed != 1 {
		t.Fatalf("expected 1 processed, got %d", res.Processed)
	}
	if res.Results[0].Status != alert.StatusSent {
		t.Fatalf("expected status %q, got %q", alert.StatusSent, res.Results[0].Status)
	}
	if res.Results[0].Severity != model.SeverityRed {
		t.Errorf("expected RED, got %q", res.Results[0].Severity)
	}

	if len(m.sent) != 1 {
		t.Fatalf("expected 1 send, got %d", len(m.sent))
	}
	if len(repo.emailLogs) != 1 {
		t.Fatalf("expected 1 email log, got %d", len(repo.emailLogs))
	}
	if repo.emailLogs[0].SESMessageID == nil {
		t.Error("expected message id on successful send")
	}
	if len(repo.ledger) != 1 {
		t.Fatalf("expected 1 ledger row, got %d", len(repo.ledger))
	}

	// RED quota routes to HR.
	if got := m.sent[0].CC; len(got) != 1 || got[0] != "hr@example.com" {
		t.Errorf("expected CC [hr@example.com], got %v", got)
	}
}

// Two runs in the same period must produce exactly one send; the second run
// reports already_sent.
func TestRunIdempotentWithinPeriod(t *testing.T) {
	now := time.Date(2026, 9, 15, 8, 0, 0, 0, time.UTC)
	reader := &fakeReader{
		users:            []model.User{{ID: "u1", Email: "rep@example.com", FullName: "Pat Rep", Role: model.RoleSales, MonthlyQuota: 10000}},
		closedWonRevenue: 3000,
	}
	repo := newFakeRepo()
	m := &fakeMailer{}
	uc := newTestUsecase(reader, repo, quotaSettings(), m, now)

	if _, err := uc.Run(context.Background(), model.CategoryQuota); err != nil {
		t.Fatalf("first run: %v", err)
	}
	res, err := uc.Run(context.Background(), model.CategoryQuota)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}

	if res.Results[0].Status != alert.StatusAlreadySent {
		t.Fatalf("expected status %q, got %q", alert.StatusAlreadySent, res.Results[0].Status)
	}
	if len(m.sent) != 1 {
		t.Errorf("expected exactly 1 send, got %d", len(m.sent))
	}
	if len(repo.ledger) != 1 {
		t.Errorf("expected exactly 1 ledger row, got %d", len(repo.ledger))
	}
}

// A forced delivery failure still writes exactly one audit row with a null
// message id, and the user's result is email_failed rather than a run error.
func TestRunDeliveryFailureIsLogged(t *testing.T) {
	now := time.Date(2026, 9, 15, 8, 0, 0, 0, time.UTC)
	reader := &fakeReader{
		users:            []model.User{{ID: "u1", Email: "rep@example.com", FullName: "Pat Rep", Role: model.RoleSales, MonthlyQuota: 10000}},
		closedWonRevenue: 3000,
	}
	repo := newFakeRepo()
	m := &fakeMailer{sendErr: errors.New("provider unavailable")}
	uc := newTestUsecase(reader, repo, quotaSettings(), m, now)

	res, err := uc.Run(context.Background(), model.CategoryQuota)
	if err != nil {
		t.Fatalf("unexpected run error: %v", err)
	}

	if res.Results[0].Status != alert.StatusEmailFailed {
		t.Fatalf("expected status %q, got %q", alert.StatusEmailFailed, res.Results[0].Status)
	}
	if len(repo.emailLogs) != 1 {
		t.Fatalf("expected 1 email log, got %d", len(repo.emailLogs))
	}
	if repo.emailLogs[0].SESMessageID != nil {
		t.Error("expected null message id on failed send")
	}
	// No ledger row: the next tick retries.
	if len(repo.ledger) != 0 {
		t.Errorf("expected no ledger rows, got %d", len(repo.ledger))
	}
}

func TestRunSkipsExcludedUser(t *testing.T) {
	now := time.Date(2026, 9, 15, 8, 0, 0, 0, time.UTC)
	reader := &fakeReader{
		users:            []model.User{{ID: "u1", Email: "rep@example.com", Role: model.RoleSales, MonthlyQuota: 10000}},
		closedWonRevenue: 3000,
	}
	stg := quotaSettings()
	stg.excluded = map[string]model.UserAlertExclusion{
		"u1": {UserID: "u1", StartDate: now.AddDate(0, 0, -1), EndDate: now.AddDate(0, 0, 7)},
	}
	m := &fakeMailer{}
	uc := newTestUsecase(reader, newFakeRepo(), stg, m, now)

	res, err := uc.Run(context.Background(), model.CategoryQuota)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Results[0].Status != alert.StatusSkipped {
		t.Fatalf("expected status %q, got %q", alert.StatusSkipped, res.Results[0].Status)
	}
	if len(m.sent) != 0 {
		t.Errorf("expected no sends, got %d", len(m.sent))
	}
}

func TestRunNoAlertNeeded(t *testing.T) {
	now := time.Date(2026, 9, 15, 8, 0, 0, 0, time.UTC)
	reader := &fakeReader{
		users:         []model.User{{ID: "u1", Email: "rep@example.com", Role: model.RoleSales}},
		activityCount: 20,
	}
	// A healthy activity count yields no severity at all.
	stg := quotaSettings()
	stg.cfg.RedThreshold = 5
	stg.cfg.YellowThreshold = 10
	uc := newTestUsecase(reader, newFakeRepo(), stg, &fakeMailer{}, now)

	res, err := uc.Run(context.Background(), model.CategoryActivity)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Results[0].Status != alert.StatusNoAlertNeeded {
		t.Fatalf("expected status %q, got %q", alert.StatusNoAlertNeeded, res.Results[0].Status)
	}
}

// A user hired 5 days ago gets the onboarding marker; one hired 30 days ago
// does not.
func TestRunGracePeriodSubjectPrefix(t *testing.T) {
	now := time.Date(2026, 9, 15, 8, 0, 0, 0, time.UTC)
	recentHire := now.AddDate(0, 0, -5)
	oldHire := now.AddDate(0, 0, -30)
	reader := &fakeReader{
		users: []model.User{
			{ID: "u1", Email: "new@example.com", FullName: "New Rep", Role: model.RoleSales, MonthlyQuota: 10000, HireDate: &recentHire},
			{ID: "u2", Email: "old@example.com", FullName: "Old Rep", Role: model.RoleSales, MonthlyQuota: 10000, HireDate: &oldHire},
		},
		closedWonRevenue: 3000,
	}
	m := &fakeMailer{}
	uc := newTestUsecase(reader, newFakeRepo(), quotaSettings(), m, now)

	if _, err := uc.Run(context.Background(), model.CategoryQuota); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(m.sent) != 2 {
		t.Fatalf("expected 2 sends, got %d", len(m.sent))
	}

	if !strings.HasPrefix(m.sent[0].Subject, onboardingPrefix) {
		t.Errorf("expected onboarding prefix on %q", m.sent[0].Subject)
	}
	if strings.HasPrefix(m.sent[1].Subject, onboardingPrefix) {
		t.Errorf("unexpected onboarding prefix on %q", m.sent[1].Subject)
	}
}

// Test mode redirects the To address to the admin inbox and suppresses CC,
// while the subject stays production representative.
func TestRunTestModeRedirect(t *testing.T) {
	now := time.Date(2026, 9, 15, 8, 0, 0, 0, time.UTC)
	reader := &fakeReader{
		users:            []model.User{{ID: "u1", Email: "rep@example.com", FullName: "Pat Rep", Role: model.RoleSales, MonthlyQuota: 10000}},
		closedWonRevenue: 3000,
	}
	stg := quotaSettings()
	stg.global.TestMode = true
	m := &fakeMailer{}
	uc := newTestUsecase(reader, newFakeRepo(), stg, m, now)

	if _, err := uc.Run(context.Background(), model.CategoryQuota); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sent := m.sent[0]
	if sent.To != "admin@example.com" {
		t.Errorf("expected redirect to admin inbox, got %q", sent.To)
	}
	if len(sent.CC) != 0 {
		t.Errorf("expected suppressed CC, got %v", sent.CC)
	}
	if !strings.Contains(sent.Subject, "Pat Rep") {
		t.Errorf("expected production-representative subject, got %q", sent.Subject)
	}
}
