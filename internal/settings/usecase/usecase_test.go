package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"crm-alert-srv/internal/model"
	"crm-alert-srv/internal/settings"
	"crm-alert-srv/internal/settings/repository"
	pkgLog "crm-alert-srv/pkg/log"
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

var _ pkgLog.Logger = noopLogger{}

// fakeRepo is an in-memory settings store. createErr lets tests force the
// concurrent-creation race on CreateConfig.
type fakeRepo struct {
	configs    map[model.Category]model.AlertConfig
	global     *model.GlobalAlertSettings
	exclusions []model.UserAlertExclusion

	createErr   error
	raceWinner  *model.AlertConfig
	createCalls int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{configs: map[model.Category]model.AlertConfig{}}
}

func (f *fakeRepo) GetConfig(_ context.Context, category model.Category) (model.AlertConfig, error) {
	cfg, ok := f.configs[category]
	if !ok {
		return model.AlertConfig{}, repository.ErrNotFound
	}
	return cfg, nil
}

func (f *fakeRepo) CreateConfig(_ context.Context, cfg model.AlertConfig) (model.AlertConfig, error) {
	f.createCalls++
	if f.createErr != nil {
		if f.raceWinner != nil {
			// The concurrent winner's row becomes visible with the error.
			f.configs[f.raceWinner.Category] = *f.raceWinner
		}
		return model.AlertConfig{}, f.createErr
	}
	cfg.ID = fmt.Sprintf("cfg-%d", f.createCalls)
	f.configs[cfg.Category] = cfg
	return cfg, nil
}

func (f *fakeRepo) UpdateConfig(_ context.Context, cfg model.AlertConfig) (model.AlertConfig, error) {
	if _, ok := f.configs[cfg.Category]; !ok {
		return model.AlertConfig{}, repository.ErrNotFound
	}
	f.configs[cfg.Category] = cfg
	return cfg, nil
}

func (f *fakeRepo) GetGlobal(_ context.Context) (model.GlobalAlertSettings, error) {
	if f.global == nil {
		return model.GlobalAlertSettings{}, repository.ErrNotFound
	}
	return *f.global, nil
}

func (f *fakeRepo) UpsertGlobal(_ context.Context, gs model.GlobalAlertSettings) (model.GlobalAlertSettings, error) {
	f.global = &gs
	return gs, nil
}

func (f *fakeRepo) ListExclusions(_ context.Context) ([]model.UserAlertExclusion, error) {
	return f.exclusions, nil
}

func (f *fakeRepo) ListActiveExclusions(_ context.Context, now time.Time) ([]model.UserAlertExclusion, error) {
	var active []model.UserAlertExclusion
	for _, e := range f.exclusions {
		if e.Covers(now) {
			active = append(active, e)
		}
	}
	return active, nil
}

func (f *fakeRepo) CreateExclusion(_ context.Context, e model.UserAlertExclusion) (model.UserAlertExclusion, error) {
	e.ID = fmt.Sprintf("excl-%d", len(f.exclusions)+1)
	f.exclusions = append(f.exclusions, e)
	return e, nil
}

func (f *fakeRepo) DeleteExclusion(_ context.Context, id string) error {
	for i, e := range f.exclusions {
		if e.ID == id {
			f.exclusions = append(f.exclusions[:i], f.exclusions[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

var _ repository.Repository = &fakeRepo{}

func newUsecase(repo *fakeRepo) *implUsecase {
	return New(noopLogger{}, repo)
}

var (
	adminScope = model.Scope{UserID: "admin-1", Role: model.RoleAdmin}
	salesScope = model.Scope{UserID: "sales-1", Role: model.RoleSales}
)

func TestLoadConfigCreatesDefaults(t *testing.T) {
	repo := newFakeRepo()
	uc := newUsecase(repo)

	cfg, err := uc.LoadConfig(context.Background(), model.CategoryQuota)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.Enabled {
		t.Error("expected lazily created config to be enabled")
	}
	if cfg.RedThreshold != 50 || cfg.YellowThreshold != 80 || cfg.GreenThreshold != 100 {
		t.Errorf("unexpected quota defaults: %+v", cfg)
	}
	if repo.createCalls != 1 {
		t.Errorf("expected 1 create, got %d", repo.createCalls)
	}

	// Second load reads the stored row, no second create.
	if _, err := uc.LoadConfig(context.Background(), model.CategoryQuota); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.createCalls != 1 {
		t.Errorf("expected still 1 create, got %d", repo.createCalls)
	}
}

func TestLoadConfigUnknownCategory(t *testing.T) {
	uc := newUsecase(newFakeRepo())

	_, err := uc.LoadConfig(context.Background(), model.Category("bogus"))
	if !errors.Is(err, settings.ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}
}

// A concurrent trigger already created the row; LoadConfig re-reads it
// instead of failing.
func TestLoadConfigDuplicateCreateReReads(t *testing.T) {
	repo := newFakeRepo()
	repo.createErr = repository.ErrDuplicateConfig
	winner := settings.DefaultConfig(model.CategoryQuota)
	winner.ID = "cfg-winner"
	repo.raceWinner = &winner
	uc := newUsecase(repo)

	cfg, err := uc.LoadConfig(context.Background(), model.CategoryQuota)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ID != "cfg-winner" {
		t.Errorf("expected the winner's row, got %+v", cfg)
	}
}

func TestLoadGlobalFallsBackToDefaults(t *testing.T) {
	uc := newUsecase(newFakeRepo())

	gs, err := uc.LoadGlobal(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !gs.TestMode {
		t.Error("expected default global settings to have test mode on")
	}
}

func TestActiveExclusionsKeyedByUser(t *testing.T) {
	now := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	repo := newFakeRepo()
	repo.exclusions = []model.UserAlertExclusion{
		{ID: "e1", UserID: "u1", StartDate: now.AddDate(0, 0, -2), EndDate: now.AddDate(0, 0, 2)},
		{ID: "e2", UserID: "u2", StartDate: now.AddDate(0, 0, -10), EndDate: now.AddDate(0, 0, -5)},
	}
	uc := newUsecase(repo)

	active, err := uc.ActiveExclusions(context.Background(), now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(active) != 1 {
		t.Fatalf("expected 1 active exclusion, got %d", len(active))
	}
	if _, ok := active["u1"]; !ok {
		t.Error("expected u1 to be excluded")
	}
}

func TestAdminOpsForbiddenForNonAdmin(t *testing.T) {
	uc := newUsecase(newFakeRepo())
	ctx := context.Background()

	if _, err := uc.ListConfigs(ctx, salesScope); !errors.Is(err, settings.ErrForbidden) {
		t.Errorf("ListConfigs: expected ErrForbidden, got %v", err)
	}
	if _, err := uc.UpdateConfig(ctx, salesScope, settings.UpdateConfigInput{Category: model.CategoryQuota}); !errors.Is(err, settings.ErrForbidden) {
		t.Errorf("UpdateConfig: expected ErrForbidden, got %v", err)
	}
	if _, err := uc.GetGlobal(ctx, salesScope); !errors.Is(err, settings.ErrForbidden) {
		t.Errorf("GetGlobal: expected ErrForbidden, got %v", err)
	}
	if _, err := uc.UpdateGlobal(ctx, salesScope, settings.UpdateGlobalInput{}); !errors.Is(err, settings.ErrForbidden) {
		t.Errorf("UpdateGlobal: expected ErrForbidden, got %v", err)
	}
	if _, err := uc.ListExclusions(ctx, salesScope); !errors.Is(err, settings.ErrForbidden) {
		t.Errorf("ListExclusions: expected ErrForbidden, got %v", err)
	}
	if _, err := uc.CreateExclusion(ctx, salesScope, settings.CreateExclusionInput{}); !errors.Is(err, settings.ErrForbidden) {
		t.Errorf("CreateExclusion: expected ErrForbidden, got %v", err)
	}
	if err := uc.DeleteExclusion(ctx, salesScope, "e1"); !errors.Is(err, settings.ErrForbidden) {
		t.Errorf("DeleteExclusion: expected ErrForbidden, got %v", err)
	}
}

func TestListConfigsCoversEveryCategory(t *testing.T) {
	uc := newUsecase(newFakeRepo())

	configs, err := uc.ListConfigs(context.Background(), adminScope)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(configs) != len(model.Categories) {
		t.Fatalf("expected %d configs, got %d", len(model.Categories), len(configs))
	}
}

func TestUpdateConfigPatchesOnlyProvidedFields(t *testing.T) {
	uc := newUsecase(newFakeRepo())
	enabled := false
	red := 40.0

	cfg, err := uc.UpdateConfig(context.Background(), adminScope, settings.UpdateConfigInput{
		Category:     model.CategoryQuota,
		Enabled:      &enabled,
		RedThreshold: &red,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Enabled {
		t.Error("expected enabled to be patched off")
	}
	if cfg.RedThreshold != 40 {
		t.Errorf("expected red threshold 40, got %v", cfg.RedThreshold)
	}
	// Untouched fields keep their defaults.
	if cfg.YellowThreshold != 80 {
		t.Errorf("expected yellow threshold 80, got %v", cfg.YellowThreshold)
	}
}

func TestUpdateGlobalPersists(t *testing.T) {
	repo := newFakeRepo()
	uc := newUsecase(repo)
	admin := "ops@example.com"
	testMode := false

	gs, err := uc.UpdateGlobal(context.Background(), adminScope, settings.UpdateGlobalInput{
		AdminEmail: &admin,
		TestMode:   &testMode,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gs.AdminEmail != admin {
		t.Errorf("expected admin email %q, got %q", admin, gs.AdminEmail)
	}
	if gs.TestMode {
		t.Error("expected test mode off")
	}

	reread, err := uc.LoadGlobal(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reread.AdminEmail != admin {
		t.Errorf("expected persisted admin email, got %q", reread.AdminEmail)
	}
}

func TestCreateExclusionValidatesDateRange(t *testing.T) {
	uc := newUsecase(newFakeRepo())
	now := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	_, err := uc.CreateExclusion(context.Background(), adminScope, settings.CreateExclusionInput{
		UserID:    "u1",
		StartDate: now,
		EndDate:   now.AddDate(0, 0, -1),
	})
	if !errors.Is(err, settings.ErrInvalidDateRange) {
		t.Fatalf("expected ErrInvalidDateRange, got %v", err)
	}
}

func TestDeleteExclusion(t *testing.T) {
	repo := newFakeRepo()
	uc := newUsecase(repo)
	now := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	created, err := uc.CreateExclusion(context.Background(), adminScope, settings.CreateExclusionInput{
		UserID:    "u1",
		StartDate: now,
		EndDate:   now.AddDate(0, 0, 7),
		Reason:    "leave",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := uc.DeleteExclusion(context.Background(), adminScope, created.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := uc.DeleteExclusion(context.Background(), adminScope, created.ID); !errors.Is(err, settings.ErrExclusionNotFound) {
		t.Fatalf("expected ErrExclusionNotFound, got %v", err)
	}
}
