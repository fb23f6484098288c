package v1

import (
	"io"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-task-tracker/internal/services"
)

// NewRouter builds the gin engine serving the task API and health check.
// allowOrigins configures CORS for the browser UI; "*" allows any origin.
func NewRouter(
	logger zerolog.Logger,
	taskService services.TaskService,
	allowOrigins []string,
) *gin.Engine {
	h := New(logger, taskService)

	router := gin.New()
	router.Use(h.HandleRequestLog)
	router.Use(gin.CustomRecoveryWithWriter(io.Discard, h.HandleRecovery))
	router.Use(newCORSMiddleware(allowOrigins))
	router.NoRoute(h.HandleNoRoute)

	RegisterRoutes(router, h)
	return router
}

func RegisterRoutes(router gin.IRouter, h Handler) {
	router.GET("/health", h.HandleHealth)

	tasksRouter := router.Group("/api/tasks")
	tasksRouter.GET("", h.HandleListTasks)
	tasksRouter.POST("", h.HandleCreateTask)
	tasksRouter.GET("/:id", h.HandleGetTask)
	tasksRouter.PATCH("/:id", h.HandleUpdateTask)
	tasksRouter.DELETE("/:id", h.HandleDeleteTask)
}
