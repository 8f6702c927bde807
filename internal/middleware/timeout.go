package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"userhub/internal/config"
)

// RequestTimeout attaches a deadline to every request context so each
// store/cache call is bounded. gin's request context is already cancelled
// when the client disconnects; this adds the upper bound.
func RequestTimeout(cfg *config.Config) gin.HandlerFunc {
	timeout := time.Duration(cfg.RequestTimeout) * time.Second

	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
