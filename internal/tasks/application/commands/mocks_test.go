package commands

import (
	"context"

	"github.com/felixgeelhaar/tasklist/internal/shared/domain"
	"github.com/stretchr/testify/mock"
)

// mockPublisher is a mock implementation of application.EventPublisher.
type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(ctx context.Context, event domain.DomainEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
