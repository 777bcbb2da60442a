package commands

import (
	"context"
	"testing"

	"github.com/felixgeelhaar/tasklist/internal/tasks/domain/task"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteTaskHandler_Handle(t *testing.T) {
	t.Run("removes every match", func(t *testing.T) {
		tasks := task.NewCollection()
		tasks.Add(task.New("A"))
		tasks.Add(task.New("keep"))
		tasks.Add(task.New("A"))
		publisher := new(mockPublisher)
		handler := NewDeleteTaskHandler(tasks, publisher)
		ctx := context.Background()

		publisher.On("Publish", ctx, mock.AnythingOfType("*task.TaskDeleted")).Return(nil)

		result, err := handler.Handle(ctx, DeleteTaskCommand{Description: "A"})

		require.NoError(t, err)
		assert.Equal(t, 2, result.Removed)
		all := tasks.All()
		require.Len(t, all, 1)
		assert.Equal(t, "keep", all[0].Description())
		publisher.AssertNumberOfCalls(t, "Publish", 2)
	})

	t.Run("duplicate-only collection ends empty", func(t *testing.T) {
		tasks := task.NewCollection()
		tasks.Add(task.New("A"))
		tasks.Add(task.New("A"))
		handler := NewDeleteTaskHandler(tasks, nil)

		result, err := handler.Handle(context.Background(), DeleteTaskCommand{Description: "A"})

		require.NoError(t, err)
		assert.Equal(t, 2, result.Removed)
		assert.Empty(t, tasks.All())
	})

	t.Run("fails when task not found", func(t *testing.T) {
		tasks := task.NewCollection()
		tasks.Add(task.New("keep"))
		publisher := new(mockPublisher)
		handler := NewDeleteTaskHandler(tasks, publisher)

		result, err := handler.Handle(context.Background(), DeleteTaskCommand{Description: "missing"})

		assert.Nil(t, result)
		assert.ErrorIs(t, err, task.ErrTaskNotFound)
		assert.Equal(t, 1, tasks.Len())
		publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	})
}
