package commands

import (
	"context"
	"errors"
	"testing"

	"github.com/felixgeelhaar/tasklist/internal/tasks/domain/task"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddTaskHandler_Handle(t *testing.T) {
	t.Run("adds task with all fields", func(t *testing.T) {
		tasks := task.NewCollection()
		publisher := new(mockPublisher)
		handler := NewAddTaskHandler(tasks, publisher)
		ctx := context.Background()

		publisher.On("Publish", ctx, mock.AnythingOfType("*task.TaskAdded")).Return(nil)

		result, err := handler.Handle(ctx, AddTaskCommand{
			Description: "Buy milk",
			DueDate:     "2024-01-15",
			Tags:        "errand",
		})

		require.NoError(t, err)
		all := tasks.All()
		require.Len(t, all, 1)
		assert.Equal(t, result.TaskID, all[0].ID())
		assert.Equal(t, "Buy milk", all[0].Description())
		assert.Equal(t, "2024-01-15", all[0].DueDate())
		assert.Equal(t, "errand", all[0].Tags())
		assert.False(t, all[0].IsCompleted())

		publisher.AssertExpectations(t)
		event := publisher.Calls[0].Arguments.Get(1).(*task.TaskAdded)
		assert.Equal(t, result.TaskID, event.AggregateID())
		assert.Equal(t, "Buy milk", event.Description)
	})

	t.Run("adds task without optional fields", func(t *testing.T) {
		tasks := task.NewCollection()
		handler := NewAddTaskHandler(tasks, nil)

		_, err := handler.Handle(context.Background(), AddTaskCommand{Description: "Call mom"})

		require.NoError(t, err)
		all := tasks.All()
		require.Len(t, all, 1)
		assert.False(t, all[0].HasDueDate())
		assert.False(t, all[0].HasTags())
	})

	t.Run("keeps description verbatim", func(t *testing.T) {
		tasks := task.NewCollection()
		handler := NewAddTaskHandler(tasks, nil)

		_, err := handler.Handle(context.Background(), AddTaskCommand{Description: " spaced "})

		require.NoError(t, err)
		assert.Equal(t, " spaced ", tasks.All()[0].Description())
	})

	t.Run("rejects empty description", func(t *testing.T) {
		tasks := task.NewCollection()
		publisher := new(mockPublisher)
		handler := NewAddTaskHandler(tasks, publisher)

		for _, description := range []string{"", "   ", "\t"} {
			result, err := handler.Handle(context.Background(), AddTaskCommand{Description: description})

			assert.Nil(t, result)
			assert.ErrorIs(t, err, ErrEmptyDescription)
		}
		assert.Equal(t, 0, tasks.Len())
		publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	})

	t.Run("duplicates are allowed", func(t *testing.T) {
		tasks := task.NewCollection()
		handler := NewAddTaskHandler(tasks, nil)

		first, err := handler.Handle(context.Background(), AddTaskCommand{Description: "A"})
		require.NoError(t, err)
		second, err := handler.Handle(context.Background(), AddTaskCommand{Description: "A"})
		require.NoError(t, err)

		assert.NotEqual(t, first.TaskID, second.TaskID)
		assert.Equal(t, 2, tasks.Len())
	})

	t.Run("returns publisher error", func(t *testing.T) {
		tasks := task.NewCollection()
		publisher := new(mockPublisher)
		handler := NewAddTaskHandler(tasks, publisher)
		ctx := context.Background()

		publisher.On("Publish", ctx, mock.Anything).Return(errors.New("bus unavailable"))

		_, err := handler.Handle(ctx, AddTaskCommand{Description: "A"})

		assert.EqualError(t, err, "bus unavailable")
		publisher.AssertExpectations(t)
	})
}
