package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"crm-alert-srv/internal/marketingtask"
	"crm-alert-srv/internal/marketingtask/repository"
	"crm-alert-srv/internal/model"
	outcomeUC "crm-alert-srv/internal/outcome/usecase"
	pkgLog "crm-alert-srv/pkg/log"
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

var _ pkgLog.Logger = noopLogger{}

type fakeRepo struct {
	tasks map[string]model.MarketingTask
}

func newFakeRepo(tasks ...model.MarketingTask) *fakeRepo {
	f := &fakeRepo{tasks: map[string]model.MarketingTask{}}
	for _, task := range tasks {
		f.tasks[task.ID] = task
	}
	return f
}

func (f *fakeRepo) GetTask(_ context.Context, id string) (model.MarketingTask, error) {
	task, ok := f.tasks[id]
	if !ok {
		return model.MarketingTask{}, repository.ErrNotFound
	}
	return task, nil
}

func (f *fakeRepo) ListTasks(_ context.Context, opts repository.ListTasksOptions) ([]model.MarketingTask, paginator.Paginator, error) {
	var out []model.MarketingTask
	for _, task := range f.tasks {
		if opts.OwnerID != "" && task.OwnerID != opts.OwnerID {
			continue
		}
		if opts.Status != "" && task.Status != opts.Status {
			continue
		}
		out = append(out, task)
	}
	return out, paginator.Paginator{Total: int64(len(out))}, nil
}

func (f *fakeRepo) UpdateTask(_ context.Context, task model.MarketingTask) (model.MarketingTask, error) {
	if _, ok := f.tasks[task.ID]; !ok {
		return model.MarketingTask{}, repository.ErrNotFound
	}
	f.tasks[task.ID] = task
	return task, nil
}

var _ repository.Repository = &fakeRepo{}

var taskClock = time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)

func newTaskUsecase(repo *fakeRepo) *implUsecase {
	uc := New(noopLogger{}, repo, outcomeUC.New())
	uc.clock = func() time.Time { return taskClock }
	return uc
}

func socialTask(owner string) model.MarketingTask {
	return model.MarketingTask{
		ID:      "t1",
		OwnerID: owner,
		Title:   "Launch post",
		Type:    model.TaskTypeSocialPost,
		Status:  model.MarketingTaskStatusInProgress,
	}
}

func strptr(s string) *string { return &s }
func intptr(n int) *int       { return &n }
func boolptr(b bool) *bool    { return &b }

func TestUpdateCompletionClassifiesOutcome(t *testing.T) {
	repo := newFakeRepo(socialTask("mkt-1"))
	uc := newTaskUsecase(repo)
	sc := model.Scope{UserID: "mkt-1", Role: model.RoleMarketing}

	detail, err := uc.Update(context.Background(), sc, marketingtask.UpdateInput{
		TaskID:              "t1",
		Status:              strptr(model.MarketingTaskStatusCompleted),
		LeadsGeneratedCount: intptr(2),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if detail.Task.Outcome == nil || *detail.Task.Outcome != model.OutcomeSuccess {
		t.Errorf("expected classified SUCCESS outcome, got %v", detail.Task.Outcome)
	}
	if detail.Task.CompletedAt == nil || !detail.Task.CompletedAt.Equal(taskClock) {
		t.Errorf("expected completion timestamp %v, got %v", taskClock, detail.Task.CompletedAt)
	}
	if detail.Classified.Outcome != model.OutcomeSuccess {
		t.Errorf("expected classifier result SUCCESS, got %v", detail.Classified.Outcome)
	}
	if len(detail.Classified.Checks) == 0 {
		t.Error("expected explainability checks")
	}
}

func TestUpdateOverrideStoresOutcomeAsIs(t *testing.T) {
	task := socialTask("mkt-1")
	task.Status = model.MarketingTaskStatusCompleted
	completed := taskClock.AddDate(0, 0, -1)
	task.CompletedAt = &completed
	repo := newFakeRepo(task)
	uc := newTaskUsecase(repo)
	sc := model.Scope{UserID: "mkt-1", Role: model.RoleMarketing}

	pinned := model.OutcomeSuccess
	detail, err := uc.Update(context.Background(), sc, marketingtask.UpdateInput{
		TaskID:          "t1",
		Outcome:         &pinned,
		OutcomeOverride: boolptr(true),
		OverrideReason:  strptr("client confirmed the deal offline"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if detail.Task.Outcome == nil || *detail.Task.Outcome != model.OutcomeSuccess {
		t.Errorf("expected pinned SUCCESS, got %v", detail.Task.Outcome)
	}
	if !detail.Task.OutcomeOverride {
		t.Error("expected override flag set")
	}
	// The classifier would grade this task FAILED; the pin wins for storage
	// while the classifier view is still returned.
	if detail.Classified.Outcome != model.OutcomeFailed {
		t.Errorf("expected classifier view FAILED, got %v", detail.Classified.Outcome)
	}
}

func TestUpdateOverrideRequiresReason(t *testing.T) {
	repo := newFakeRepo(socialTask("mkt-1"))
	uc := newTaskUsecase(repo)
	sc := model.Scope{UserID: "mkt-1", Role: model.RoleMarketing}

	pinned := model.OutcomePartial
	_, err := uc.Update(context.Background(), sc, marketingtask.UpdateInput{
		TaskID:          "t1",
		Outcome:         &pinned,
		OutcomeOverride: boolptr(true),
		OverrideReason:  strptr("   "),
	})
	if !errors.Is(err, marketingtask.ErrOverrideReasonRequired) {
		t.Fatalf("expected ErrOverrideReasonRequired, got %v", err)
	}
}

func TestUpdateOverrideRequiresOutcome(t *testing.T) {
	repo := newFakeRepo(socialTask("mkt-1"))
	uc := newTaskUsecase(repo)
	sc := model.Scope{UserID: "mkt-1", Role: model.RoleMarketing}

	_, err := uc.Update(context.Background(), sc, marketingtask.UpdateInput{
		TaskID:          "t1",
		OutcomeOverride: boolptr(true),
		OverrideReason:  strptr("pinning without a value"),
	})
	if !errors.Is(err, marketingtask.ErrOutcomeRequired) {
		t.Fatalf("expected ErrOutcomeRequired, got %v", err)
	}
}

func TestUpdateRejectsInvalidStatus(t *testing.T) {
	repo := newFakeRepo(socialTask("mkt-1"))
	uc := newTaskUsecase(repo)
	sc := model.Scope{UserID: "mkt-1", Role: model.RoleMarketing}

	_, err := uc.Update(context.Background(), sc, marketingtask.UpdateInput{
		TaskID: "t1",
		Status: strptr("DONE"),
	})
	if !errors.Is(err, marketingtask.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestUpdateForbiddenForNonOwner(t *testing.T) {
	repo := newFakeRepo(socialTask("mkt-1"))
	uc := newTaskUsecase(repo)
	sc := model.Scope{UserID: "mkt-2", Role: model.RoleMarketing}

	_, err := uc.Update(context.Background(), sc, marketingtask.UpdateInput{TaskID: "t1"})
	if !errors.Is(err, marketingtask.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	// Admins bypass ownership.
	admin := model.Scope{UserID: "admin-1", Role: model.RoleAdmin}
	if _, err := uc.Detail(context.Background(), admin, "t1"); err != nil {
		t.Fatalf("unexpected admin error: %v", err)
	}
}

func TestDetailNotFound(t *testing.T) {
	uc := newTaskUsecase(newFakeRepo())
	sc := model.Scope{UserID: "mkt-1", Role: model.RoleMarketing}

	_, err := uc.Detail(context.Background(), sc, "missing")
	if !errors.Is(err, marketingtask.ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestListScopesToCaller(t *testing.T) {
	repo := newFakeRepo(
		model.MarketingTask{ID: "t1", OwnerID: "mkt-1", Type: model.TaskTypeSocialPost, Status: model.MarketingTaskStatusInProgress},
		model.MarketingTask{ID: "t2", OwnerID: "mkt-2", Type: model.TaskTypeColdEmail, Status: model.MarketingTaskStatusCompleted},
	)
	uc := newTaskUsecase(repo)

	// Non-admins always see their own tasks, even when asking for another
	// owner.
	tasks, _, err := uc.List(context.Background(), model.Scope{UserID: "mkt-1", Role: model.RoleMarketing}, marketingtask.ListInput{OwnerID: "mkt-2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tasks) != 1 || tasks[0].ID != "t1" {
		t.Errorf("expected only own task, got %v", taskIDs(tasks))
	}

	// Admins may filter by owner.
	tasks, _, err = uc.List(context.Background(), model.Scope{UserID: "admin-1", Role: model.RoleAdmin}, marketingtask.ListInput{OwnerID: "mkt-2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tasks) != 1 || tasks[0].ID != "t2" {
		t.Errorf("expected the filtered owner's task, got %v", taskIDs(tasks))
	}
}

func taskIDs(tasks []model.MarketingTask) string {
	ids := make([]string, 0, len(tasks))
	for _, task := range tasks {
		ids = append(ids, task.ID)
	}
	return fmt.Sprintf("%v", ids)
}
