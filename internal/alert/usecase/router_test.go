package usecase

import (
	"reflect"
	"testing"

	"crm-alert-srv/internal/model"
)

func routingGlobal() model.GlobalAlertSettings {
	return model.GlobalAlertSettings{
		HREmail:         "hr@example.com",
		LeadershipEmail: "lead@example.com",
		ReviewerEmail:   "reviewer@example.com",
	}
}

func TestRouteRecipients(t *testing.T) {
	tcs := []struct {
		name     string
		severity model.Severity
		category model.Category
		cfg      model.AlertConfig
		want     []string
	}{
		{
			name:     "red goes to hr",
			severity: model.SeverityRed,
			category: model.CategoryQuota,
			want:     []string{"hr@example.com"},
		},
		{
			name:     "red monthly review adds leadership",
			severity: model.SeverityRed,
			category: model.CategoryMonthlyReview,
			want:     []string{"hr@example.com", "lead@example.com"},
		},
		{
			name:     "yellow goes to reviewer",
			severity: model.SeverityYellow,
			category: model.CategoryQuota,
			want:     []string{"reviewer@example.com"},
		},
		{
			name:     "green goes to hr",
			severity: model.SeverityGreen,
			category: model.CategoryMonthlyReview,
			want:     []string{"hr@example.com"},
		},
		{
			name:     "marketing weekly always reaches leadership",
			severity: model.SeverityYellow,
			category: model.CategoryMarketingWeekly,
			want:     []string{"lead@example.com", "reviewer@example.com"},
		},
		{
			name:     "config cc unions and dedups",
			severity: model.SeverityRed,
			category: model.CategoryQuota,
			cfg:      model.AlertConfig{CCRecipients: []string{"ops@example.com", "hr@example.com"}},
			want:     []string{"hr@example.com", "ops@example.com"},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			got := routeRecipients(tc.severity, tc.category, tc.cfg, routingGlobal())
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("routeRecipients() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestRouteRecipientsSkipsBlankAddresses(t *testing.T) {
	gs := routingGlobal()
	gs.HREmail = ""

	got := routeRecipients(model.SeverityRed, model.CategoryQuota, model.AlertConfig{}, gs)
	if len(got) != 0 {
		t.Errorf("expected no recipients with blank hr address, got %v", got)
	}
}

func TestTestModeEnabled(t *testing.T) {
	tcs := []struct {
		name   string
		cfg    model.AlertConfig
		global model.GlobalAlertSettings
		want   bool
	}{
		{"both off", model.AlertConfig{}, model.GlobalAlertSettings{}, false},
		{"global flag", model.AlertConfig{}, model.GlobalAlertSettings{TestMode: true}, true},
		{"category flag", model.AlertConfig{TestMode: true}, model.GlobalAlertSettings{}, true},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			if got := testModeEnabled(tc.cfg, tc.global); got != tc.want {
				t.Errorf("testModeEnabled() = %v, want %v", got, tc.want)
			}
		})
	}
}
