package httpserver

import (
	"crm-alert-srv/pkg/errors"
	"crm-alert-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// healthCheck verifies every backing store is reachable.
// @Summary Health Check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	ctx := c.Request.Context()

	if err := srv.db.PingContext(ctx); err != nil {
		response.HttpError(c, errors.NewHTTPError(50301, "PostgreSQL connection failed", 503))
		return
	}

	redisStatus := "disabled"
	if srv.redis != nil {
		if err := srv.redis.Ping(ctx); err != nil {
			response.HttpError(c, errors.NewHTTPError(50302, "Redis connection failed", 503))
			return
		}
		redisStatus = "connected"
	}

	response.OK(c, gin.H{
		"status":   "healthy",
		"service":  "crm-alert-srv",
		"version":  "1.0.0",
		"postgres": "connected",
		"redis":    redisStatus,
	})
}

// readyCheck reports whether the service can serve traffic.
// @Summary Readiness Check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is ready"
// @Failure 503 {object} map[string]interface{} "Service is not ready"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()

	if err := srv.db.PingContext(ctx); err != nil {
		response.HttpError(c, errors.NewHTTPError(50301, "PostgreSQL connection not available", 503))
		return
	}

	response.OK(c, gin.H{
		"status":  "ready",
		"service": "crm-alert-srv",
		"version": "1.0.0",
	})
}

// liveCheck reports process liveness only.
// @Summary Liveness Check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"service": "crm-alert-srv",
		"version": "1.0.0",
	})
}
