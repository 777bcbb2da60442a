package task

import (
	"github.com/felixgeelhaar/tasklist/internal/shared/domain"
)

const (
	AggregateType = "Task"

	RoutingKeyAdded     = "tasks.task.added"
	RoutingKeyCompleted = "tasks.task.completed"
	RoutingKeyReopened  = "tasks.task.reopened"
	RoutingKeyDeleted   = "tasks.task.deleted"
)

// TaskAdded is emitted when a task joins the collection.
type TaskAdded struct {
	domain.BaseEvent
	Description string `json:"description"`
	DueDate     string `json:"due_date,omitempty"`
	Tags        string `json:"tags,omitempty"`
}

// NewTaskAdded creates a TaskAdded event.
func NewTaskAdded(t Task) *TaskAdded {
	return &TaskAdded{
		BaseEvent:   domain.NewBaseEvent(t.ID(), AggregateType, RoutingKeyAdded),
		Description: t.Description(),
		DueDate:     t.DueDate(),
		Tags:        t.Tags(),
	}
}

// TaskCompleted is emitted when a task is marked completed.
type TaskCompleted struct {
	domain.BaseEvent
	Description string `json:"description"`
}

// NewTaskCompleted creates a TaskCompleted event.
func NewTaskCompleted(t Task) *TaskCompleted {
	return &TaskCompleted{
		BaseEvent:   domain.NewBaseEvent(t.ID(), AggregateType, RoutingKeyCompleted),
		Description: t.Description(),
	}
}

// TaskReopened is emitted when a completed task is marked pending again.
type TaskReopened struct {
	domain.BaseEvent
	Description string `json:"description"`
}

// NewTaskReopened creates a TaskReopened event.
func NewTaskReopened(t Task) *TaskReopened {
	return &TaskReopened{
		BaseEvent:   domain.NewBaseEvent(t.ID(), AggregateType, RoutingKeyReopened),
		Description: t.Description(),
	}
}

// TaskDeleted is emitted once for every task removed from the collection.
type TaskDeleted struct {
	domain.BaseEvent
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// NewTaskDeleted creates a TaskDeleted event.
func NewTaskDeleted(t Task) *TaskDeleted {
	return &TaskDeleted{
		BaseEvent:   domain.NewBaseEvent(t.ID(), AggregateType, RoutingKeyDeleted),
		Description: t.Description(),
		Completed:   t.IsCompleted(),
	}
}
