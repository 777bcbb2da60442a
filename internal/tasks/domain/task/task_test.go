package task_test

import (
	"testing"

	"github.com/felixgeelhaar/tasklist/internal/tasks/domain/task"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	tsk := task.New("Buy milk")

	assert.NotEqual(t, uuid.Nil, tsk.ID())
	assert.Equal(t, "Buy milk", tsk.Description())
	assert.False(t, tsk.IsCompleted())
	assert.Equal(t, task.StatusPending, tsk.Status())
	assert.Empty(t, tsk.DueDate())
	assert.Empty(t, tsk.Tags())
	assert.False(t, tsk.HasDueDate())
	assert.False(t, tsk.HasTags())
}

func TestNew_StoresDescriptionVerbatim(t *testing.T) {
	tests := []string{"  padded  ", "", "tab\tinside"}
	for _, description := range tests {
		t.Run(description, func(t *testing.T) {
			tsk := task.New(description)
			assert.Equal(t, description, tsk.Description())
		})
	}
}

func TestTask_MarkCompleted(t *testing.T) {
	tsk := task.New("Write report")

	tsk.MarkCompleted()

	assert.True(t, tsk.IsCompleted())
	assert.Equal(t, task.StatusCompleted, tsk.Status())
}

func TestTask_MarkCompleted_Idempotent(t *testing.T) {
	tsk := task.New("Write report")
	tsk.MarkCompleted()
	updatedAt := tsk.UpdatedAt()

	tsk.MarkCompleted()

	assert.True(t, tsk.IsCompleted())
	assert.Equal(t, updatedAt, tsk.UpdatedAt())
}

func TestTask_MarkPending(t *testing.T) {
	tsk := task.New("Write report")
	tsk.MarkCompleted()

	tsk.MarkPending()

	assert.False(t, tsk.IsCompleted())
	assert.Equal(t, task.StatusPending, tsk.Status())
}

func TestTask_MarkPending_OnPendingTask(t *testing.T) {
	tsk := task.New("Write report")

	tsk.MarkPending()

	assert.False(t, tsk.IsCompleted())
}

func TestTask_SetDueDate(t *testing.T) {
	tsk := task.New("Pay rent")

	tsk.SetDueDate("2024-02-01")

	assert.Equal(t, "2024-02-01", tsk.DueDate())
	assert.True(t, tsk.HasDueDate())
}

func TestTask_SetDueDate_NotValidated(t *testing.T) {
	tsk := task.New("Pay rent")

	tsk.SetDueDate("next week")

	assert.Equal(t, "next week", tsk.DueDate())
}

func TestTask_SetTags(t *testing.T) {
	tsk := task.New("Pay rent")

	tsk.SetTags("home, finance")
	assert.Equal(t, "home, finance", tsk.Tags())
	assert.True(t, tsk.HasTags())

	tsk.SetTags("")
	assert.False(t, tsk.HasTags())
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Pending", task.StatusPending.String())
	assert.Equal(t, "Completed", task.StatusCompleted.String())
	assert.Equal(t, "Unknown", task.Status(42).String())
}
