package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"finverse/internal/config"
)

// CORS returns a middleware that handles Cross-Origin Resource Sharing.
// In production only the configured frontend URL is allowed; any other
// environment allows the local development origin.
func CORS(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := cfg.CORS.DevOrigin
		if cfg.Server.IsProduction() {
			allowed = cfg.CORS.FrontendURL
		}

		if origin != "" && origin == allowed {
			c.Header("Access-Control-Allow-Origin", origin)
		}

		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		c.Header("Access-Control-Max-Age", "86400")

		// Handle preflight request
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
