package service

import (
	"context"

	"teamsync-be/internal/pkg/logger"
	"teamsync-be/pkg/events"
)

// EventPublisher is satisfied by *nats.Publisher. A nil publisher disables events.
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

func publishEvent(ctx context.Context, pub EventPublisher, log logger.ILogger, module string, event events.Event) {
	if pub == nil {
		return
	}
	if err := pub.Publish(ctx, event); err != nil {
		log.Warn(module, "Failed to publish event", map[string]interface{}{
			"type":  event.EventType(),
			"error": err.Error(),
		})
	}
}
