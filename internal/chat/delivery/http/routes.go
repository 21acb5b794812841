package http

import (
	"github.com/gin-gonic/gin"

	"smart-planner/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Chat routes are rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	chat := rg.Group("/chat")
	{
		chat.POST("", mw.RateLimit(), h.Chat)
		chat.POST("/reset", mw.RateLimit(), h.Reset)
		chat.GET("/:session_id/context", h.Context)
	}

	plan := rg.Group("/plan")
	{
		plan.POST("/export", mw.RateLimit(), h.ExportPlan)
	}
}
