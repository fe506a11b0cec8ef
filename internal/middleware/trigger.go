package middleware

import (
	"crypto/subtle"
	"fmt"
	"time"

	"crm-alert-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	internalKeyHeader = "X-Internal-Key"

	// Rate bounds for the trigger surface. External schedulers fire each
	// category a handful of times per day; anything past this is a
	// misconfigured cron or a replay.
	triggerRateLimit  = 30
	triggerRateWindow = time.Hour
)

// TriggerAuth guards the internal scheduler endpoints with a shared secret.
// The comparison is constant time so the key cannot be probed byte by byte.
func (m Middleware) TriggerAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(internalKeyHeader)
		if m.internalKey == "" ||
			subtle.ConstantTimeCompare([]byte(key), []byte(m.internalKey)) != 1 {
			m.l.Warnf(c.Request.Context(), "Rejected trigger call | Path: %s", c.Request.URL.Path)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Next()
	}
}

// TriggerRateLimit counts trigger calls per category in a rolling window.
// A Redis outage fails open; the shared-secret check already gates access.
func (m Middleware) TriggerRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.redis == nil {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		key := fmt.Sprintf("trigger:rate:%s", c.Param("category"))
		count, err := m.redis.IncrWithTTL(ctx, key, triggerRateWindow)
		if err != nil {
			m.l.Warnf(ctx, "Trigger rate limit check failed: %v", err)
			c.Next()
			return
		}
		if count > triggerRateLimit {
			m.l.Warnf(ctx, "Trigger rate limit exceeded | Path: %s", c.Request.URL.Path)
			c.AbortWithStatus(429)
			return
		}

		c.Next()
	}
}
