package http

import (
	"github.com/gin-gonic/gin"

	"study-slot-scheduler/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// The single /events resource dispatches on an action parameter, matching the
// client the service was built for.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	events := rg.Group("/events")
	{
		events.GET("", mw.RateLimit(), h.Read)
		events.POST("", mw.RateLimit(), h.Write)
	}
}
