package commands

import (
	"context"

	sharedApplication "github.com/felixgeelhaar/tasklist/internal/shared/application"
	"github.com/felixgeelhaar/tasklist/internal/tasks/domain/task"
)

// CompleteTaskCommand identifies the task to complete by description.
type CompleteTaskCommand struct {
	Description string
}

// CompleteTaskHandler handles the CompleteTaskCommand.
type CompleteTaskHandler struct {
	tasks     *task.Collection
	publisher sharedApplication.EventPublisher
}

// NewCompleteTaskHandler creates a new CompleteTaskHandler.
func NewCompleteTaskHandler(tasks *task.Collection, publisher sharedApplication.EventPublisher) *CompleteTaskHandler {
	return &CompleteTaskHandler{
		tasks:     tasks,
		publisher: publisher,
	}
}

// Handle executes the CompleteTaskCommand. Only the first task with the
// description is completed; task.ErrTaskNotFound is returned when none match.
func (h *CompleteTaskHandler) Handle(ctx context.Context, cmd CompleteTaskCommand) error {
	t, err := h.tasks.MarkCompleted(cmd.Description)
	if err != nil {
		return err
	}

	return sharedApplication.PublishAll(ctx, h.publisher, task.NewTaskCompleted(t))
}
