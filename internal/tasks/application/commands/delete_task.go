package commands

import (
	"context"

	sharedApplication "github.com/felixgeelhaar/tasklist/internal/shared/application"
	"github.com/felixgeelhaar/tasklist/internal/shared/domain"
	"github.com/felixgeelhaar/tasklist/internal/tasks/domain/task"
)

// DeleteTaskCommand identifies the tasks to delete by description.
type DeleteTaskCommand struct {
	Description string
}

// DeleteTaskResult reports how many tasks were removed.
type DeleteTaskResult struct {
	Removed int
}

// DeleteTaskHandler handles the DeleteTaskCommand.
type DeleteTaskHandler struct {
	tasks     *task.Collection
	publisher sharedApplication.EventPublisher
}

// NewDeleteTaskHandler creates a new DeleteTaskHandler.
func NewDeleteTaskHandler(tasks *task.Collection, publisher sharedApplication.EventPublisher) *DeleteTaskHandler {
	return &DeleteTaskHandler{
		tasks:     tasks,
		publisher: publisher,
	}
}

// Handle executes the DeleteTaskCommand. Unlike completion, every task with
// the description is removed.
func (h *DeleteTaskHandler) Handle(ctx context.Context, cmd DeleteTaskCommand) (*DeleteTaskResult, error) {
	removed, err := h.tasks.Delete(cmd.Description)
	if err != nil {
		return nil, err
	}

	events := make([]domain.DomainEvent, 0, len(removed))
	for _, t := range removed {
		events = append(events, task.NewTaskDeleted(t))
	}
	if err := sharedApplication.PublishAll(ctx, h.publisher, events...); err != nil {
		return nil, err
	}

	return &DeleteTaskResult{Removed: len(removed)}, nil
}
