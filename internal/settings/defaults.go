package settings

import "crm-alert-srv/internal/model"

// DefaultGlobal is applied when the global settings row is absent. Test mode
// defaults on so a fresh deployment never mails real users by accident.
func DefaultGlobal() model.GlobalAlertSettings {
	return model.GlobalAlertSettings{
		FromEmail: "alerts@example.com",
		TestMode:  true,
	}
}

// categoryDefault holds the hardcoded per-category threshold defaults used
// when a config row is lazily created.
type categoryDefault struct {
	Schedule        string
	RedThreshold    float64
	YellowThreshold float64
	GreenThreshold  float64
}

/// Category defaults: quota and monthly review grade attainment percent,
// stale items grade deal age in days, activity grades weekly counts, task
// overdue grades counts, marketing grades success-rate percent.
var categoryDefaults = map[model.Category]categoryDefault{
	model.CategoryQuota:           {Schedule: "@monthly", RedThreshold: 50, YellowThreshold: 80, GreenThreshold: 100},
	model.CategoryStaleItems:      {Schedule: "@daily", RedThreshold: 14, YellowThreshold: 7},
	model.CategoryActivity:        {Schedule: "@weekly", RedThreshold: 5, YellowThreshold: 10},
	model.CategoryTaskOverdue:     {Schedule: "@daily", RedThreshold: 1, YellowThreshold: 1},
	model.CategoryMarketingWeekly: {Schedule: "@weekly", RedThreshold: 15, YellowThreshold: 30, GreenThreshold: 50},
	model.CategoryMonthlyReview:   {Schedule: "@monthly", RedThreshold: 80, YellowThreshold: 100, GreenThreshold: 100},
}

// DefaultConfig builds the lazily-created config row for a category.
func DefaultConfig(category model.Category) model.AlertConfig {
	def := categoryDefaults[category]
	return model.AlertConfig{
		Category:        category,
		Enabled:         true,
		Schedule:        def.Schedule,
		RedThreshold:    def.RedThreshold,
		YellowThreshold: def.YellowThreshold,
		GreenThreshold:  def.GreenThreshold,
		CCRecipients:    []string{},
	}
}
