package usecase

import (
	"fmt"
	"strings"

	"crm-alert-srv/internal/alert"
	"crm-alert-srv/internal/model"
)

// onboardingPrefix marks alerts for users still inside the hire-date grace
// window so recipients weigh them less harshly.
const onboardingPrefix = "[Onboarding] "

var categoryTitles = map[model.Category]string{
	model.CategoryQuota:           "Quota Alert",
	model.CategoryStaleItems:      "Stale Pipeline Items",
	model.CategoryActivity:        "Low Activity Alert",
	model.CategoryTaskOverdue:     "Overdue Tasks",
	model.CategoryMarketingWeekly: "Weekly Marketing Performance",
	model.CategoryMonthlyReview:   "Monthly Performance Review",
}

// renderEmail builds the subject and both bodies for one alert. Content is
// always production-representative; test-mode redirection happens at the
// send step, never here.
func renderEmail(category model.Category, severity model.Severity, user model.User, m alert.Metrics) (subject, htmlBody, textBody string) {
	subject = fmt.Sprintf("[%s] %s - %s", severity, categoryTitles[category], user.FullName)

	lines := bodyLines(category, severity, user, m)

	var html strings.Builder
	html.WriteString("<html><body>")
	html.WriteString(fmt.Sprintf("<h2>%s</h2>", categoryTitles[category]))
	html.WriteString(fmt.Sprintf("<p>Hi %s,</p>", user.FullName))
	for _, line := range lines {
		html.WriteString(fmt.Sprintf("<p>%s</p>", line))
	}
	html.WriteString("<p>This is an automated performance alert.</p>")
	html.WriteString("</body></html>")

	var text strings.Builder
	text.WriteString(fmt.Sprintf("Hi %s,\n\n", user.FullName))
	for _, line := range lines {
		text.WriteString(line)
		text.WriteString("\n")
	}
	text.WriteString("\nThis is an automated performance alert.\n")

	return subject, html.String(), text.String()
}

func bodyLines(category model.Category, severity model.Severity, user model.User, m alert.Metrics) []string {
	switch category {
	case model.CategoryQuota, model.CategoryMonthlyReview:
		lines := []string{
			fmt.Sprintf("Quota attainment for the period: %.1f%% ($%.2f of $%.2f).",
				m.AttainmentPct, m.QuotaActual, m.QuotaTarget),
		}
		switch severity {
		case model.SeverityGreen:
			lines = append(lines, "Great work, you have met your quota for this period.")
		case model.SeverityRed:
			lines = append(lines, "Attainment is well below target. Please review your pipeline with your manager.")
		default:
			lines = append(lines, "Attainment is trailing target. There is still time to close the gap.")
		}
		return lines

	case model.CategoryStaleItems:
		var lines []string
		if n := len(m.StaleDealsRed); n > 0 {
			lines = append(lines, fmt.Sprintf("%d deal(s) have had no updates for a critically long time:", n))
			lines = append(lines, dealLines(m.StaleDealsRed)...)
		}
		if n := len(m.StaleDealsYellow); n > 0 {
			lines = append(lines, fmt.Sprintf("%d deal(s) are going stale:", n))
			lines = append(lines, dealLines(m.StaleDealsYellow)...)
		}
		if n := len(m.StaleLeadsRed); n > 0 {
			lines = append(lines, fmt.Sprintf("%d lead(s) have gone cold:", n))
			lines = append(lines, leadLines(m.StaleLeadsRed)...)
		}
		if n := len(m.StaleLeadsYellow); n > 0 {
			lines = append(lines, fmt.Sprintf("%d lead(s) need a follow-up soon:", n))
			lines = append(lines, leadLines(m.StaleLeadsYellow)...)
		}
		lines = append(lines, "Please update or close out these items.")
		return lines

	case model.CategoryActivity:
		return []string{
			fmt.Sprintf("Only %d activities were logged in the last 7 days.", m.ActivityCount),
			"Consistent outreach keeps the pipeline healthy. Please log your calls, meetings and emails.",
		}

	case model.CategoryTaskOverdue:
		lines := []string{fmt.Sprintf("You have %d overdue task(s):", len(m.OverdueTasks))}
		for _, t := range m.OverdueTasks {
			if t.DueDate != nil {
				lines = append(lines, fmt.Sprintf("- %s (due %s)", t.Title, t.DueDate.Format("2006-01-02")))
			} else {
				lines = append(lines, fmt.Sprintf("- %s", t.Title))
			}
		}
		lines = append(lines, "Please complete or reschedule them.")
		return lines

	case model.CategoryMarketingWeekly:
		stats := m.Marketing
		lines := []string{
			fmt.Sprintf("Weekly marketing results: %d scored task(s), %.1f%% success rate (%d success / %d partial / %d failed).",
				stats.Scored(), stats.SuccessRate(), stats.Success, stats.Partial, stats.Failed),
			fmt.Sprintf("Leads generated this week: %d.", stats.LeadsGenerated),
		}
		if stats.PendingOutcome > 0 {
			lines = append(lines, fmt.Sprintf("%d completed task(s) are still waiting for an outcome.", stats.PendingOutcome))
		}
		if severity == model.SeverityGreen {
			lines = append(lines, "Strong week, keep it up.")
		}
		return lines

	default:
		return nil
	}
}

func dealLines(deals []model.Deal) []string {
	lines := make([]string, 0, len(deals))
	for _, d := range deals {
		lines = append(lines, fmt.Sprintf("- %s ($%.2f, %s)", d.Name, d.Amount, d.Stage))
	}
	return lines
}

func leadLines(leads []model.Lead) []string {
	lines := make([]string, 0, len(leads))
	for _, l := range leads {
		lines = append(lines, fmt.Sprintf("- %s (%s)", l.Name, l.Company))
	}
	return lines
}
