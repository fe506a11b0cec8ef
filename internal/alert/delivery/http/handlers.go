package http

import (
	"crm-alert-srv/internal/model"
	"crm-alert-srv/pkg/paginator"
	"crm-alert-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Trigger runs one evaluation pass for the category in the path.
// @Summary Trigger an alert category run
// @Description Evaluate every candidate user for the category and dispatch due alerts. Internal scheduler endpoint.
// @Tags Alerts
// @Produce json
// @Param category path string true "Alert category"
// @Success 200 {object} response.Resp "Run summary"
// @Failure 400 {object} response.Resp "Unknown category"
// @Router /internal/api/v1/alerts/{category}/trigger [POST]
func (h *Handler) Trigger(c *gin.Context) {
	ctx := c.Request.Context()

	category := model.Category(c.Param("category"))
	res, err := h.uc.Run(ctx, category)
	if err != nil {
		h.l.Errorf(ctx, "internal.alert.delivery.http.Trigger: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newTriggerResp(res))
}

// ListEmailLogs returns the last 30 days of send attempts, newest first.
// @Summary List alert email logs
// @Description Paginated audit log of alert send attempts. Admin only.
// @Tags Alerts
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Resp "Email logs"
// @Router /api/v1/alerts/email-logs [GET]
func (h *Handler) ListEmailLogs(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scopeFromContext(ctx)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var pq paginator.PaginateQuery
	if err := c.ShouldBindQuery(&pq); err != nil {
		h.l.Warnf(ctx, "internal.alert.delivery.http.ListEmailLogs: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	logs, pag, err := h.uc.EmailLogs(ctx, sc, pq)
	if err != nil {
		h.l.Errorf(ctx, "internal.alert.delivery.http.ListEmailLogs: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newListEmailLogsResp(logs, pag))
}
