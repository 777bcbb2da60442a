package app

import (
	"log/slog"

	"github.com/felixgeelhaar/tasklist/internal/shared/infrastructure/eventbus"
	"github.com/felixgeelhaar/tasklist/internal/tasks/application/commands"
	"github.com/felixgeelhaar/tasklist/internal/tasks/application/queries"
	"github.com/felixgeelhaar/tasklist/internal/tasks/application/subscribers"
	"github.com/felixgeelhaar/tasklist/internal/tasks/domain/task"
	"github.com/felixgeelhaar/tasklist/pkg/config"
)

// Container holds all application dependencies for one run.
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// In-memory task collection
	Tasks *task.Collection

	// Events
	EventBus *eventbus.InProcessEventBus

	// Task Command Handlers
	AddTaskHandler      *commands.AddTaskHandler
	CompleteTaskHandler *commands.CompleteTaskHandler
	ReopenTaskHandler   *commands.ReopenTaskHandler
	DeleteTaskHandler   *commands.DeleteTaskHandler

	// Task Query Handlers
	ListTasksHandler *queries.ListTasksHandler
}

// NewContainer wires an empty collection, the in-process event bus and the
// task handlers.
func NewContainer(cfg *config.Config, logger *slog.Logger) *Container {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = slog.Default()
	}

	tasks := task.NewCollection()
	bus := eventbus.NewInProcessEventBus(logger)

	activityLevel := slog.LevelDebug
	if cfg.ActivityLog {
		activityLevel = slog.LevelInfo
	}
	bus.RegisterConsumer(subscribers.NewActivityLogger(logger, activityLevel))

	return &Container{
		Config:   cfg,
		Logger:   logger,
		Tasks:    tasks,
		EventBus: bus,

		AddTaskHandler:      commands.NewAddTaskHandler(tasks, bus),
		CompleteTaskHandler: commands.NewCompleteTaskHandler(tasks, bus),
		ReopenTaskHandler:   commands.NewReopenTaskHandler(tasks, bus),
		DeleteTaskHandler:   commands.NewDeleteTaskHandler(tasks, bus),

		ListTasksHandler: queries.NewListTasksHandler(tasks),
	}
}
