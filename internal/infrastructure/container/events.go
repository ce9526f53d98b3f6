package container

import (
	"context"

	"go.uber.org/zap"

	"github.com/kondate-ai/kondate/internal/domain/recipe"
	"github.com/kondate-ai/kondate/internal/domain/shared"
	"github.com/kondate-ai/kondate/internal/infrastructure/monitoring"
)

// EventPublisher dispatches domain events to observability sinks.
// Publishing is best-effort and never fails the originating request.
type EventPublisher struct {
	metrics *monitoring.Metrics
	logger  *zap.Logger
}

// NewEventPublisher creates a new event publisher
func NewEventPublisher(metrics *monitoring.Metrics, logger *zap.Logger) *EventPublisher {
	return &EventPublisher{
		metrics: metrics,
		logger:  logger.Named("events"),
	}
}

// Publish handles a batch of domain events
func (p *EventPublisher) Publish(ctx context.Context, events []shared.DomainEvent) {
	for _, event := range events {
		switch e := event.(type) {
		case recipe.GeneratedEvent:
			p.metrics.RecordRecipeGenerated()
			p.logger.Info("Recipe generated event",
				zap.String("record_id", e.RecordID.String()),
				zap.String("recipe_name", e.Name),
			)
		default:
			p.logger.Debug("Unhandled domain event",
				zap.String("event", event.EventName()),
			)
		}
	}
}
