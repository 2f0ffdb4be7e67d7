package middlewares

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RequestLogger logs one line per request and turns panics into a 500.
func RequestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()

		defer func() {
			if rec := recover(); rec != nil {
				logger.Error().
					Str("method", ctx.Request.Method).
					Str("path", ctx.Request.URL.Path).
					Interface("panic", rec).
					Msg("request panicked")
				ctx.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
			}
		}()

		ctx.Next()

		status := ctx.Writer.Status()
		event := logger.Info()
		switch {
		case status >= http.StatusInternalServerError:
			event = logger.Error()
		case status >= http.StatusBadRequest:
			event = logger.Warn()
		}

		if principal, ok := GetPrincipal(ctx); ok {
			event = event.Uint("user_id", principal.UserID)
		}
		if len(ctx.Errors) > 0 {
			event = event.Str("error", ctx.Errors.String())
		}
		event.
			Str("method", ctx.Request.Method).
			Str("path", ctx.Request.URL.Path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("client_ip", ctx.ClientIP()).
			Msg("request completed")
	}
}
