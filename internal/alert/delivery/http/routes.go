package http

import (
	"crm-alert-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the admin audit surface. Triggers live on the
// internal group, see RegisterInternalRoutes.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	alerts := r.Group("/alerts", mw.Auth())
	{
		alerts.GET("/email-logs", h.ListEmailLogs)
	}
}

// RegisterInternalRoutes wires the scheduler trigger endpoints. They
// authenticate with the shared internal key, not a user token.
func (h *Handler) RegisterInternalRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	alerts := r.Group("/alerts", mw.TriggerAuth(), mw.TriggerRateLimit())
	{
		alerts.POST("/:category/trigger", h.Trigger)
	}
}
