package middlewares

import (
	"net/http"

	"github.com/Kariqs/vastra-api/limiter"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RateLimit rejects requests over budget per route and client IP. Limiter
// errors fail open.
func RateLimit(l limiter.Limiter, logger zerolog.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		allowed, err := l.Allow(ctx.Request.Context(), ctx.FullPath()+"|"+ctx.ClientIP())
		if err != nil {
			logger.Warn().Err(err).Msg("rate limiter unavailable")
			ctx.Next()
			return
		}
		if !allowed {
			ctx.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"message": "Too many requests, try again later"})
			return
		}
		ctx.Next()
	}
}
