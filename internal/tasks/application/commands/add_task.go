package commands

import (
	"context"
	"errors"
	"strings"

	sharedApplication "github.com/felixgeelhaar/tasklist/internal/shared/application"
	"github.com/felixgeelhaar/tasklist/internal/tasks/domain/task"
	"github.com/google/uuid"
)

// ErrEmptyDescription is returned when a task description is blank.
var ErrEmptyDescription = errors.New("task description cannot be empty")

// AddTaskCommand contains the data needed to add a task. DueDate and Tags
// are optional; DueDate is expected to be validated by the caller.
type AddTaskCommand struct {
	Description string
	DueDate     string
	Tags        string
}

// AddTaskResult contains the result of adding a task.
type AddTaskResult struct {
	TaskID uuid.UUID
}

// AddTaskHandler handles the AddTaskCommand.
type AddTaskHandler struct {
	tasks     *task.Collection
	publisher sharedApplication.EventPublisher
}

// NewAddTaskHandler creates a new AddTaskHandler.
func NewAddTaskHandler(tasks *task.Collection, publisher sharedApplication.EventPublisher) *AddTaskHandler {
	return &AddTaskHandler{
		tasks:     tasks,
		publisher: publisher,
	}
}

// Handle executes the AddTaskCommand.
func (h *AddTaskHandler) Handle(ctx context.Context, cmd AddTaskCommand) (*AddTaskResult, error) {
	if strings.TrimSpace(cmd.Description) == "" {
		return nil, ErrEmptyDescription
	}

	builder := task.NewBuilder(cmd.Description)
	if cmd.DueDate != "" {
		builder.WithDueDate(cmd.DueDate)
	}
	if cmd.Tags != "" {
		builder.WithTags(cmd.Tags)
	}
	t := builder.Build()

	h.tasks.Add(t)

	if err := sharedApplication.PublishAll(ctx, h.publisher, task.NewTaskAdded(t)); err != nil {
		return nil, err
	}

	return &AddTaskResult{TaskID: t.ID()}, nil
}
