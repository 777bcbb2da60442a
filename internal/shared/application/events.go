package application

import (
	"context"

	"github.com/felixgeelhaar/tasklist/internal/shared/domain"
	"github.com/felixgeelhaar/tasklist/pkg/observability"
)

// EventPublisher delivers domain events once a command has succeeded.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.DomainEvent) error
}

type metadataSetter interface {
	SetMetadata(metadata domain.EventMetadata)
}

// EventMetadataFromContext builds event metadata from the command context.
func EventMetadataFromContext(ctx context.Context) domain.EventMetadata {
	return domain.EventMetadata{
		CorrelationID: observability.CorrelationIDFromContext(ctx),
	}
}

// ApplyEventMetadata sets metadata on all events that support it.
func ApplyEventMetadata(events []domain.DomainEvent, metadata domain.EventMetadata) {
	for _, event := range events {
		if setter, ok := event.(metadataSetter); ok {
			setter.SetMetadata(metadata)
		}
	}
}

// PublishAll stamps events with metadata from ctx and publishes them in order.
// It stops at the first publish error.
func PublishAll(ctx context.Context, publisher EventPublisher, events ...domain.DomainEvent) error {
	if publisher == nil || len(events) == 0 {
		return nil
	}
	ApplyEventMetadata(events, EventMetadataFromContext(ctx))
	for _, event := range events {
		if err := publisher.Publish(ctx, event); err != nil {
			return err
		}
	}
	return nil
}
