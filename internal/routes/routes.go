package routes

import (
	"github.com/gin-gonic/gin"

	"jobmatch_backend/internal/handlers"
)

// RegisterRoutes wires every handler group under /api/v1 plus the root
// health endpoint.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	appHandlers.HealthHandler.RegisterRoutes(ginRouter)

	api := ginRouter.Group("/api/v1")
	{
		appHandlers.SearchHandler.RegisterRoutes(api)
		appHandlers.SignalHandler.RegisterRoutes(api)
		appHandlers.EvaluationHandler.RegisterRoutes(api)
	}
}
