package http

import (
	"github.com/gin-gonic/gin"

	"task-command-interpreter/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Interpretation and resolution are rate limited per session.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	commands := rg.Group("/commands")
	{
		commands.POST("/interpret", mw.RateLimit(), h.Interpret)
	}

	entities := rg.Group("/entities")
	{
		entities.POST("/resolve", mw.RateLimit(), h.Resolve)
		entities.POST("/selections", mw.RateLimit(), h.RecordSelection)
	}
}
