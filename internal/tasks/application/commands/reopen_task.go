package commands

import (
	"context"

	sharedApplication "github.com/felixgeelhaar/tasklist/internal/shared/application"
	"github.com/felixgeelhaar/tasklist/internal/tasks/domain/task"
)

// ReopenTaskCommand identifies the task to mark pending by description.
type ReopenTaskCommand struct {
	Description string
}

// ReopenTaskHandler handles the ReopenTaskCommand.
type ReopenTaskHandler struct {
	tasks     *task.Collection
	publisher sharedApplication.EventPublisher
}

// NewReopenTaskHandler creates a new ReopenTaskHandler.
func NewReopenTaskHandler(tasks *task.Collection, publisher sharedApplication.EventPublisher) *ReopenTaskHandler {
	return &ReopenTaskHandler{
		tasks:     tasks,
		publisher: publisher,
	}
}

// Handle executes the ReopenTaskCommand using the same first-match lookup
// as completion.
func (h *ReopenTaskHandler) Handle(ctx context.Context, cmd ReopenTaskCommand) error {
	t, err := h.tasks.MarkPending(cmd.Description)
	if err != nil {
		return err
	}

	return sharedApplication.PublishAll(ctx, h.publisher, task.NewTaskReopened(t))
}
