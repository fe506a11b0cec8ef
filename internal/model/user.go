package model

import "time"

// DefaultGracePeriodDays is the onboarding window after hire during which
// alerts are still sent but tagged so recipients weigh them less harshly.
const DefaultGracePeriodDays = 14

// User represents a CRM user as seen by the alert engine. The engine never
// mutates users; they are owned by the core CRM.
type User struct {
	ID                    string     `json:"id"`
	Email                 string     `json:"email"`
	FullName              string     `json:"full_name"`
	Role                  string     `json:"role"` // SALES, MARKETING, or ADMIN
	MonthlyQuota          float64    `json:"monthly_quota"`
	HireDate              *time.Time `json:"hire_date,omitempty"`
	ExcludedFromReporting bool       `json:"excluded_from_reporting"`
	IsActive              bool       `json:"is_active"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}

// InGracePeriod reports whether the user is still inside the onboarding
// window of graceDays after their hire date. Users without a hire date are
// never in grace.
func (u User) InGracePeriod(now time.Time, graceDays int) bool {
	if u.HireDate == nil {
		return false
	}
	if graceDays <= 0 {
		graceDays = DefaultGracePeriodDays
	}
	return now.Before(u.HireDate.AddDate(0, 0, graceDays))
}
