package http

import (
	"crm-alert-srv/internal/model"
	"crm-alert-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// ListConfigs returns every category's config, lazily creating missing rows.
// @Summary List alert configs
// @Tags Settings
// @Produce json
// @Success 200 {object} response.Resp "Configs"
// @Router /api/v1/alert-settings/configs [GET]
func (h *Handler) ListConfigs(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scopeFromContext(ctx)
	if !ok {
		response.Unauthorized(c)
		return
	}

	configs, err := h.uc.ListConfigs(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "internal.settings.delivery.http.ListConfigs: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, configs)
}

// UpdateConfig patches one category's thresholds and flags.
// @Summary Update an alert config
// @Tags Settings
// @Accept json
// @Produce json
// @Param category path string true "Alert category"
// @Success 200 {object} response.Resp "Updated config"
// @Router /api/v1/alert-settings/configs/{category} [PATCH]
func (h *Handler) UpdateConfig(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scopeFromContext(ctx)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req updateConfigReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.settings.delivery.http.UpdateConfig: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	cfg, err := h.uc.UpdateConfig(ctx, sc, req.toInput(model.Category(c.Param("category"))))
	if err != nil {
		h.l.Errorf(ctx, "internal.settings.delivery.http.UpdateConfig: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, cfg)
}

// GetGlobal returns the global mail policy singleton.
// @Summary Get global alert settings
// @Tags Settings
// @Produce json
// @Success 200 {object} response.Resp "Global settings"
// @Router /api/v1/alert-settings/global [GET]
func (h *Handler) GetGlobal(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scopeFromContext(ctx)
	if !ok {
		response.Unauthorized(c)
		return
	}

	gs, err := h.uc.GetGlobal(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "internal.settings.delivery.http.GetGlobal: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, gs)
}

// UpdateGlobal patches the global mail policy singleton.
// @Summary Update global alert settings
// @Tags Settings
// @Accept json
// @Produce json
// @Success 200 {object} response.Resp "Updated settings"
// @Router /api/v1/alert-settings/global [PATCH]
func (h *Handler) UpdateGlobal(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scopeFromContext(ctx)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req updateGlobalReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.settings.delivery.http.UpdateGlobal: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	gs, err := h.uc.UpdateGlobal(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "internal.settings.delivery.http.UpdateGlobal: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, gs)
}

// ListExclusions returns every exclusion window, newest first.
// @Summary List alert exclusions
// @Tags Settings
// @Produce json
// @Success 200 {object} response.Resp "Exclusions"
// @Router /api/v1/alert-settings/exclusions [GET]
func (h *Handler) ListExclusions(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scopeFromContext(ctx)
	if !ok {
		response.Unauthorized(c)
		return
	}

	exclusions, err := h.uc.ListExclusions(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "internal.settings.delivery.http.ListExclusions: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, exclusions)
}

// CreateExclusion opens a suppression window for a user.
// @Summary Create an alert exclusion
// @Tags Settings
// @Accept json
// @Produce json
// @Success 200 {object} response.Resp "Created exclusion"
// @Router /api/v1/alert-settings/exclusions [POST]
func (h *Handler) CreateExclusion(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scopeFromContext(ctx)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req createExclusionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.settings.delivery.http.CreateExclusion: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	exclusion, err := h.uc.CreateExclusion(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "internal.settings.delivery.http.CreateExclusion: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, exclusion)
}

// DeleteExclusion removes a suppression window.
// @Summary Delete an alert exclusion
// @Tags Settings
// @Produce json
// @Param id path string true "Exclusion id"
// @Success 200 {object} response.Resp "Deleted"
// @Router /api/v1/alert-settings/exclusions/{id} [DELETE]
func (h *Handler) DeleteExclusion(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scopeFromContext(ctx)
	if !ok {
		response.Unauthorized(c)
		return
	}

	if err := h.uc.DeleteExclusion(ctx, sc, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "internal.settings.delivery.http.DeleteExclusion: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, gin.H{"deleted": true})
}
