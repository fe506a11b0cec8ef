package middleware

import (
	"crm-alert-srv/pkg/discord"
	pkgLog "crm-alert-srv/pkg/log"
	"crm-alert-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

func Recovery(logger pkgLog.Logger, discordClient discord.IDiscord) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				ctx := c.Request.Context()
				logger.Errorf(ctx, "Panic recovered: %v | Method: %s | Path: %s",
					err, c.Request.Method, c.Request.URL.Path)

				response.PanicError(c, err, discordClient)
				c.Abort()
			}
		}()
		c.Next()
	}
}
