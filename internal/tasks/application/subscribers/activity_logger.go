package subscribers

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/felixgeelhaar/tasklist/internal/shared/infrastructure/eventbus"
	"github.com/felixgeelhaar/tasklist/pkg/observability"
)

// ActivityLogger writes one structured log line per task event.
type ActivityLogger struct {
	logger *slog.Logger
	level  slog.Level
}

// NewActivityLogger creates an activity logger that logs at the given level.
func NewActivityLogger(logger *slog.Logger, level slog.Level) *ActivityLogger {
	if logger == nil {
		logger = slog.Default()
	}
	return &ActivityLogger{
		logger: logger,
		level:  level,
	}
}

// EventTypes returns the event types this subscriber handles.
func (a *ActivityLogger) EventTypes() []string {
	return []string{"tasks.task.*"}
}

type activityPayload struct {
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
	Tags        string `json:"tags"`
}

// Handle logs the event.
func (a *ActivityLogger) Handle(ctx context.Context, event *eventbus.ConsumedEvent) error {
	var payload activityPayload
	if len(event.Payload) > 0 {
		if err := json.Unmarshal(event.Payload, &payload); err != nil {
			return err
		}
	}

	attrs := []any{
		"routing_key", event.RoutingKey,
		"task_id", event.AggregateID.String(),
		"description", payload.Description,
	}
	if payload.DueDate != "" {
		attrs = append(attrs, "due_date", payload.DueDate)
	}
	if payload.Tags != "" {
		attrs = append(attrs, "tags", payload.Tags)
	}
	if event.CorrelationID != "" && observability.CorrelationIDFromContext(ctx) == "" {
		attrs = append(attrs, observability.CorrelationIDKey, event.CorrelationID)
	}

	a.logger.Log(ctx, a.level, "task activity", attrs...)
	return nil
}
