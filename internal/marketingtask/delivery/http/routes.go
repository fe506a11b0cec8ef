package http

import (
	"crm-alert-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the marketing task surface consumed by the task UI.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	tasks := r.Group("/marketing-tasks", mw.Auth())
	{
		tasks.GET("", h.List)
		tasks.GET("/:id", h.Detail)
		tasks.PATCH("/:id", h.Update)
	}
}
