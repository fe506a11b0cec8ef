package http

import (
	"time"

	"crm-alert-srv/internal/alert"
	"crm-alert-srv/internal/model"
	"crm-alert-srv/pkg/paginator"
)

type triggerResp struct {
	Category  model.Category     `json:"category"`
	Processed int                `json:"processed"`
	Results   []alert.UserResult `json:"results"`
	Timestamp time.Time          `json:"timestamp"`
}

func newTriggerResp(res alert.RunResult) triggerResp {
	return triggerResp{
		Category:  res.Category,
		Processed: res.Processed,
		Results:   res.Results,
		Timestamp: res.Timestamp,
	}
}

type emailLogItem struct {
	ID           string         `json:"id"`
	UserID       string         `json:"user_id"`
	AlertType    model.Category `json:"alert_type"`
	Severity     model.Severity `json:"severity"`
	RecipientTo  string         `json:"recipient_to"`
	RecipientsCC []string       `json:"recipients_cc"`
	Subject      string         `json:"subject"`
	SESMessageID *string        `json:"ses_message_id"`
	SentAt       time.Time      `json:"sent_at"`
}

type listEmailLogsResp struct {
	Items []emailLogItem      `json:"items"`
	Meta  paginator.Paginator `json:"meta"`
}

func newListEmailLogsResp(logs []model.EmailLog, pag paginator.Paginator) listEmailLogsResp {
	items := make([]emailLogItem, len(logs))
	for i, l := range logs {
		items[i] = emailLogItem{
			ID:           l.ID,
			UserID:       l.UserID,
			AlertType:    l.AlertType,
			Severity:     l.Severity,
			RecipientTo:  l.RecipientTo,
			RecipientsCC: l.RecipientsCC,
			Subject:      l.Subject,
			SESMessageID: l.SESMessageID,
			SentAt:       l.SentAt,
		}
	}
	return listEmailLogsResp{Items: items, Meta: pag}
}
