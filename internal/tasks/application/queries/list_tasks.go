package queries

import (
	"context"
	"time"

	"github.com/felixgeelhaar/tasklist/internal/tasks/domain/task"
	"github.com/google/uuid"
)

// TaskDTO is a data transfer object for tasks.
type TaskDTO struct {
	ID          uuid.UUID
	Description string
	Status      string
	Completed   bool
	DueDate     string
	Tags        string
	CreatedAt   time.Time
}

// ListTasksQuery contains the parameters for listing tasks.
type ListTasksQuery struct {
	Filter task.Filter
}

// ListTasksHandler handles the ListTasksQuery.
type ListTasksHandler struct {
	tasks *task.Collection
}

// NewListTasksHandler creates a new ListTasksHandler.
func NewListTasksHandler(tasks *task.Collection) *ListTasksHandler {
	return &ListTasksHandler{tasks: tasks}
}

// Handle executes the ListTasksQuery. Results keep insertion order.
func (h *ListTasksHandler) Handle(ctx context.Context, query ListTasksQuery) ([]TaskDTO, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return toTaskDTOs(h.tasks.List(query.Filter)), nil
}

func toTaskDTOs(tasks []task.Task) []TaskDTO {
	dtos := make([]TaskDTO, 0, len(tasks))
	for _, t := range tasks {
		dtos = append(dtos, TaskDTO{
			ID:          t.ID(),
			Description: t.Description(),
			Status:      t.Status().String(),
			Completed:   t.IsCompleted(),
			DueDate:     t.DueDate(),
			Tags:        t.Tags(),
			CreatedAt:   t.CreatedAt(),
		})
	}
	return dtos
}
