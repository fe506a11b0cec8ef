package http

import (
	"context"

	"crm-alert-srv/internal/model"
	"crm-alert-srv/pkg/response"
	"crm-alert-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func scopeFromContext(ctx context.Context) (model.Scope, bool) {
	payload, ok := scope.GetPayloadFromContext(ctx)
	if !ok {
		return model.Scope{}, false
	}
	return model.Scope{
		UserID: payload.UserID(),
		Email:  payload.Email,
		Role:   payload.Role,
	}, true
}

// List returns the caller's marketing tasks.
// @Summary List marketing tasks
// @Tags MarketingTasks
// @Produce json
// @Param status query string false "Status filter"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Resp "Tasks"
// @Router /api/v1/marketing-tasks [GET]
func (h *Handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scopeFromContext(ctx)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(ctx, "internal.marketingtask.delivery.http.List: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	tasks, pag, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "internal.marketingtask.delivery.http.List: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, listResp{Items: tasks, Meta: pag})
}

// Detail returns one task plus its classification checks.
// @Summary Get a marketing task
// @Tags MarketingTasks
// @Produce json
// @Param id path string true "Task id"
// @Success 200 {object} response.Resp "Task detail"
// @Router /api/v1/marketing-tasks/{id} [GET]
func (h *Handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scopeFromContext(ctx)
	if !ok {
		response.Unauthorized(c)
		return
	}

	detail, err := h.uc.Detail(ctx, sc, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "internal.marketingtask.delivery.http.Detail: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, detail)
}

// Update patches engagement metrics and status on a task. Completing a task
// without an override returns the engine-computed outcome.
// @Summary Update a marketing task
// @Tags MarketingTasks
// @Accept json
// @Produce json
// @Param id path string true "Task id"
// @Success 200 {object} response.Resp "Updated task with classification"
// @Router /api/v1/marketing-tasks/{id} [PATCH]
func (h *Handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scopeFromContext(ctx)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.marketingtask.delivery.http.Update: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	detail, err := h.uc.Update(ctx, sc, req.toInput(c.Param("id")))
	if err != nil {
		h.l.Errorf(ctx, "internal.marketingtask.delivery.http.Update: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, detail)
}
