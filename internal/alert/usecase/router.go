package usecase

import (
	"sort"

	"crm-alert-srv/internal/model"
)

// routeRecipients resolves the stakeholder CC list for one alert. The user
// themselves is always the To address; this only decides who else sees it.
// Category overrides union with the severity policy, they never replace it.
func routeRecipients(severity model.Severity, category model.Category, cfg model.AlertConfig, gs model.GlobalAlertSettings) []string {
	set := map[string]struct{}{}
	add := func(addr string) {
		if addr != "" {
			set[addr] = struct{}{}
		}
	}

	switch severity {
	case model.SeverityRed:
		add(gs.HREmail)
		if category == model.CategoryMonthlyReview {
			add(gs.LeadershipEmail)
		}
	case model.SeverityYellow:
		add(gs.ReviewerEmail)
	case model.SeverityGreen:
		add(gs.HREmail)
	}

	// Marketing weekly reports always reach leadership.
	if category == model.CategoryMarketingWeekly {
		add(gs.LeadershipEmail)
	}

	for _, addr := range cfg.CCRecipients {
		add(addr)
	}

	recipients := make([]string, 0, len(set))
	for addr := range set {
		recipients = append(recipients, addr)
	}
	sort.Strings(recipients)
	return recipients
}

// testModeEnabled reports whether sends must be redirected to the admin
// inbox. Either the global flag or the category flag suffices.
func testModeEnabled(cfg model.AlertConfig, gs model.GlobalAlertSettings) bool {
	return gs.TestMode || cfg.TestMode
}
