package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"cvmatch-backend/internal/analysis"
	"cvmatch-backend/internal/server/respond"
	"cvmatch-backend/internal/shared/telemetry"
)

// Recovery recovers from panics and returns a standardized error response.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				telemetry.Error("panic", map[string]any{
					"request_id": RequestIDFromContext(c),
					"error":      rec,
					"stack":      string(debug.Stack()),
				})
				respond.Error(c, http.StatusInternalServerError, analysis.ErrorCodeInternal, "internal server error", nil)
			}
		}()
		c.Next()
	}
}
