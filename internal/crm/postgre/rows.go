package postgre

import (
	"crm-alert-srv/internal/model"

	"github.com/aarondl/null/v8"
)

type userRow struct {
	ID                    string      `db:"id"`
	Email                 string      `db:"email"`
	FullName              null.String `db:"full_name"`
	Role                  string      `db:"role"`
	MonthlyQuota          float64     `db:"monthly_quota"`
	HireDate              null.Time   `db:"hire_date"`
	ExcludedFromReporting bool        `db:"excluded_from_reporting"`
	IsActive              bool        `db:"is_active"`
	CreatedAt             null.Time   `db:"created_at"`
	UpdatedAt             null.Time   `db:"updated_at"`
}

func (r userRow) toModel() model.User {
	u := model.User{
		ID:                    r.ID,
		Email:                 r.Email,
		FullName:              r.FullName.String,
		Role:                  r.Role,
		MonthlyQuota:          r.MonthlyQuota,
		ExcludedFromReporting: r.ExcludedFromReporting,
		IsActive:              r.IsActive,
		CreatedAt:             r.CreatedAt.Time,
		UpdatedAt:             r.UpdatedAt.Time,
	}
	if r.HireDate.Valid {
		u.HireDate = &r.HireDate.Time
	}
	return u
}

type dealRow struct {
	ID        string    `db:"id"`
	OwnerID   string    `db:"owner_id"`
	Name      string    `db:"name"`
	Stage     string    `db:"stage"`
	Amount    float64   `db:"amount"`
	ClosedAt  null.Time `db:"closed_at"`
	CreatedAt null.Time `db:"created_at"`
	UpdatedAt null.Time `db:"updated_at"`
}

func (r dealRow) toModel() model.Deal {
	d := model.Deal{
		ID:        r.ID,
		OwnerID:   r.OwnerID,
		Name:      r.Name,
		Stage:     r.Stage,
		Amount:    r.Amount,
		CreatedAt: r.CreatedAt.Time,
		UpdatedAt: r.UpdatedAt.Time,
	}
	if r.ClosedAt.Valid {
		d.ClosedAt = &r.ClosedAt.Time
	}
	return d
}

type leadRow struct {
	ID        string      `db:"id"`
	OwnerID   string      `db:"owner_id"`
	Name      string      `db:"name"`
	Company   null.String `db:"company"`
	Converted bool        `db:"converted"`
	CreatedAt null.Time   `db:"created_at"`
	UpdatedAt null.Time   `db:"updated_at"`
}

func (r leadRow) toModel() model.Lead {
	return model.Lead{
		ID:        r.ID,
		OwnerID:   r.OwnerID,
		Name:      r.Name,
		Company:   r.Company.String,
		Converted: r.Converted,
		CreatedAt: r.CreatedAt.Time,
		UpdatedAt: r.UpdatedAt.Time,
	}
}

type taskRow struct {
	ID          string    `db:"id"`
	OwnerID     string    `db:"owner_id"`
	Title       string    `db:"title"`
	DueDate     null.Time `db:"due_date"`
	CompletedAt null.Time `db:"completed_at"`
	CreatedAt   null.Time `db:"created_at"`
}

func (r taskRow) toModel() model.Task {
	t := model.Task{
		ID:        r.ID,
		OwnerID:   r.OwnerID,
		Title:     r.Title,
		CreatedAt: r.CreatedAt.Time,
	}
	if r.DueDate.Valid {
		t.DueDate = &r.DueDate.Time
	}
	if r.CompletedAt.Valid {
		t.CompletedAt = &r.CompletedAt.Time
	}
	return t
}

type marketingTaskRow struct {
	ID                  string      `db:"id"`
	OwnerID             string      `db:"owner_id"`
	Title               string      `db:"title"`
	Type                string      `db:"type"`
	Status              string      `db:"status"`
	Outcome             null.String `db:"outcome"`
	LeadsGeneratedCount int         `db:"leads_generated_count"`
	CompletedAt         null.Time   `db:"completed_at"`
}

func (r marketingTaskRow) toModel() model.MarketingTask {
	t := model.MarketingTask{
		ID:      r.ID,
		OwnerID: r.OwnerID,
		Title:   r.Title,
		Type:    model.TaskType(r.Type),
		Status:  r.Status,
		Metrics: model.EngagementMetrics{LeadsGeneratedCount: r.LeadsGeneratedCount},
	}
	if r.Outcome.Valid {
		o := model.Outcome(r.Outcome.String)
		t.Outcome = &o
	}
	if r.CompletedAt.Valid {
		t.CompletedAt = &r.CompletedAt.Time
	}
	return t
}
