package cli

import (
	"github.com/felixgeelhaar/tasklist/internal/tasks/application/commands"
	"github.com/felixgeelhaar/tasklist/internal/tasks/application/queries"
)

// App holds the CLI application dependencies.
type App struct {
	// Task Command Handlers
	AddTaskHandler      *commands.AddTaskHandler
	CompleteTaskHandler *commands.CompleteTaskHandler
	DeleteTaskHandler   *commands.DeleteTaskHandler

	// Task Query Handlers
	ListTasksHandler *queries.ListTasksHandler

	// ShowBanner prints a greeting when the shell starts.
	ShowBanner bool
}

// NewApp creates a new CLI application with the given handlers.
func NewApp(
	addTaskHandler *commands.AddTaskHandler,
	completeTaskHandler *commands.CompleteTaskHandler,
	deleteTaskHandler *commands.DeleteTaskHandler,
	listTasksHandler *queries.ListTasksHandler,
) *App {
	return &App{
		AddTaskHandler:      addTaskHandler,
		CompleteTaskHandler: completeTaskHandler,
		DeleteTaskHandler:   deleteTaskHandler,
		ListTasksHandler:    listTasksHandler,
	}
}

// Ready reports whether every handler the shell needs is wired.
func (a *App) Ready() bool {
	return a != nil &&
		a.AddTaskHandler != nil &&
		a.CompleteTaskHandler != nil &&
		a.DeleteTaskHandler != nil &&
		a.ListTasksHandler != nil
}

// app is the global CLI application instance
var app *App

// SetApp sets the global CLI application instance.
func SetApp(a *App) {
	app = a
}

// GetApp returns the global CLI application instance.
func GetApp() *App {
	return app
}
