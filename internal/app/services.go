package app

import "github.com/adanyl0v/go-task-tracker/internal/services"

var globalTaskService services.TaskService

// InitTaskService creates the single task service, and with it the task
// store, for the lifetime of the process.
func InitTaskService() {
	globalTaskService = services.NewTaskService(
		globalLogger.With().Str("component", "task_service").Logger(),
	)
	globalLogger.Info().Msg("initialized task service")
}
