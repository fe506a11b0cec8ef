package http

import (
	"crm-alert-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the admin configuration surface.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	cfg := r.Group("/alert-settings", mw.Auth())
	{
		cfg.GET("/configs", h.ListConfigs)
		cfg.PATCH("/configs/:category", h.UpdateConfig)
		cfg.GET("/global", h.GetGlobal)
		cfg.PATCH("/global", h.UpdateGlobal)
		cfg.GET("/exclusions", h.ListExclusions)
		cfg.POST("/exclusions", h.CreateExclusion)
		cfg.DELETE("/exclusions/:id", h.DeleteExclusion)
	}
}
