package usecase

import (
	"fmt"
	"math"

	"crm-alert-srv/internal/model"
	"crm-alert-srv/internal/outcome"
)

// Classify applies the type-keyed rule table. Rules within a type are
// evaluated in priority order; the first matching rule wins. Absent metric
// fields are zero values and rate divisors are clamped to 1, so every branch
// is total over its input domain.
func (c *implClassifier) Classify(taskType model.TaskType, m model.EngagementMetrics) outcome.Result {
	switch taskType {
	case model.TaskTypeSocialPost:
		return classifySocialPost(m)
	case model.TaskTypeLinkedInOutreach:
		return classifyLinkedIn(m)
	case model.TaskTypeBlogPost:
		return classifyBlogPost(m)
	case model.TaskTypeEmailCampaign, model.TaskTypeColdEmail:
		return classifyEmail(m)
	case model.TaskTypeEvent, model.TaskTypeWebinar:
		return classifyEvent(m)
	case model.TaskTypeContent, model.TaskTypeOther:
		return classifyGeneric(m)
	default:
		// Unknown tags from older records fall back to the generic rule.
		return classifyGeneric(m)
	}
}

func check(label string, passed bool, observed, threshold string) outcome.Check {
	return outcome.Check{Label: label, Passed: passed, Observed: observed, Threshold: threshold}
}

func classifySocialPost(m model.EngagementMetrics) outcome.Result {
	leads := m.LeadsGeneratedCount >= 1
	strong := m.Likes >= 10 && m.Comments >= 5 && m.ICPEngagement
	moderate := (m.Likes >= 5 && m.Likes < 10) || (m.Comments >= 2 && m.Comments < 5)

	checks := []outcome.Check{
		check("Leads generated", leads, fmt.Sprintf("%d", m.LeadsGeneratedCount), ">= 1"),
		check("Strong engagement (likes, comments, ICP)", strong,
			fmt.Sprintf("likes=%d comments=%d icp=%t", m.Likes, m.Comments, m.ICPEngagement),
			"likes >= 10 and comments >= 5 and ICP engaged"),
		check("Moderate engagement", moderate,
			fmt.Sprintf("likes=%d comments=%d", m.Likes, m.Comments),
			"likes 5-9 or comments 2-4"),
	}

	switch {
	case leads, strong:
		return outcome.Result{Outcome: model.OutcomeSuccess, Checks: checks}
	case moderate:
		return outcome.Result{Outcome: model.OutcomePartial, Checks: checks}
	default:
		return outcome.Result{Outcome: model.OutcomeFailed, Checks: checks}
	}
}

func classifyLinkedIn(m model.EngagementMetrics) outcome.Result {
	interested := m.ResponseType == model.ResponseInterested
	leads := m.LeadsGeneratedCount >= 1
	connected := m.ConnectionAccepted || m.ResponseType == model.ResponseNotInterested

	checks := []outcome.Check{
		check("Interested response", interested, m.ResponseType, model.ResponseInterested),
		check("Leads generated", leads, fmt.Sprintf("%d", m.LeadsGeneratedCount), ">= 1"),
		check("Connection accepted or responded", connected,
			fmt.Sprintf("connection=%t response=%s", m.ConnectionAccepted, m.ResponseType), ""),
	}

	switch {
	case interested, leads:
		return outcome.Result{Outcome: model.OutcomeSuccess, Checks: checks}
	case connected:
		return outcome.Result{Outcome: model.OutcomePartial, Checks: checks}
	default:
		return outcome.Result{Outcome: model.OutcomeFailed, Checks: checks}
	}
}

func classifyBlogPost(m model.EngagementMetrics) outcome.Result {
	leads := m.LeadsGeneratedCount >= 1
	strong := m.Views >= 100 && m.ICPEngagement
	moderate := m.Views >= 50 && m.Views < 100

	checks := []outcome.Check{
		check("Leads generated", leads, fmt.Sprintf("%d", m.LeadsGeneratedCount), ">= 1"),
		check("High readership with ICP engagement", strong,
			fmt.Sprintf("views=%d icp=%t", m.Views, m.ICPEngagement), "views >= 100 and ICP engaged"),
		check("Moderate readership", moderate, fmt.Sprintf("%d", m.Views), "views 50-99"),
	}

	switch {
	case leads, strong:
		return outcome.Result{Outcome: model.OutcomeSuccess, Checks: checks}
	case moderate:
		return outcome.Result{Outcome: model.OutcomePartial, Checks: checks}
	default:
		return outcome.Result{Outcome: model.OutcomeFailed, Checks: checks}
	}
}

// ratePercent computes a whole-number percentage with the divisor clamped
// to 1 so zero-sent campaigns never divide by zero.
func ratePercent(part, total int) int {
	if total < 1 {
		total = 1
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

func classifyEmail(m model.EngagementMetrics) outcome.Result {
	openRate := ratePercent(m.EmailsOpened, m.EmailsSent)
	replyRate := ratePercent(m.EmailsReplied, m.EmailsSent)
	replied := replyRate >= 5
	leads := m.LeadsGeneratedCount >= 1
	opened := openRate >= 20

	checks := []outcome.Check{
		check("Reply rate", replied, fmt.Sprintf("%d%%", replyRate), ">= 5%"),
		check("Leads generated", leads, fmt.Sprintf("%d", m.LeadsGeneratedCount), ">= 1"),
		check("Open rate", opened, fmt.Sprintf("%d%%", openRate), ">= 20%"),
	}

	switch {
	case replied, leads:
		return outcome.Result{Outcome: model.OutcomeSuccess, Checks: checks}
	case opened:
		return outcome.Result{Outcome: model.OutcomePartial, Checks: checks}
	default:
		return outcome.Result{Outcome: model.OutcomeFailed, Checks: checks}
	}
}

func classifyEvent(m model.EngagementMetrics) outcome.Result {
	converted := m.LeadsGeneratedCount >= 1 || m.MeetingsBooked >= 1
	attended := m.Attendees >= 10

	checks := []outcome.Check{
		check("Leads or meetings booked", converted,
			fmt.Sprintf("leads=%d meetings=%d", m.LeadsGeneratedCount, m.MeetingsBooked), ">= 1"),
		check("Attendance", attended, fmt.Sprintf("%d", m.Attendees), ">= 10"),
	}

	switch {
	case converted:
		return outcome.Result{Outcome: model.OutcomeSuccess, Checks: checks}
	case attended:
		return outcome.Result{Outcome: model.OutcomePartial, Checks: checks}
	default:
		return outcome.Result{Outcome: model.OutcomeFailed, Checks: checks}
	}
}

// classifyGeneric covers content and untyped tasks: engagement alone never
// yields FAILED here, absent leads the task is PARTIAL by default.
func classifyGeneric(m model.EngagementMetrics) outcome.Result {
	leads := m.LeadsGeneratedCount >= 1

	checks := []outcome.Check{
		check("Leads generated", leads, fmt.Sprintf("%d", m.LeadsGeneratedCount), ">= 1"),
	}

	if leads {
		return outcome.Result{Outcome: model.OutcomeSuccess, Checks: checks}
	}
	return outcome.Result{Outcome: model.OutcomePartial, Checks: checks}
}
