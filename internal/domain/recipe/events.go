package recipe

import (
	"time"

	"github.com/google/uuid"
)

// Domain Events - Events that occur within the recipe domain

// GeneratedEvent is raised when a recipe generation succeeds
type GeneratedEvent struct {
	RecordID    uuid.UUID
	Name        string
	GeneratedAt time.Time
}

func (e GeneratedEvent) EventName() string {
	return "recipe.generated"
}

func (e GeneratedEvent) OccurredAt() time.Time {
	return e.GeneratedAt
}
