// Package outbound defines the interfaces for outbound ports (secondary/driven adapters)
// These are the interfaces that the application uses to interact with external systems
package outbound

import (
	"context"

	"github.com/kondate-ai/kondate/internal/domain/recipe"
	"github.com/kondate-ai/kondate/internal/domain/shared"
)

// AIService defines the interface to the external text-generation
// collaborator. One prompt in, one raw text blob out; any transport or
// service failure is returned unchanged. The call is a single blocking
// exchange: no retries, no streaming, no cancellation once issued.
type AIService interface {
	GenerateRecipe(ctx context.Context, prompt string) (string, error)
}

// RecipeLog is the append-only session store for generation results.
// Append must produce exactly one record and one ledger row; the two
// sequences never diverge in count or order.
type RecipeLog interface {
	Append(record *recipe.Record) error
	Records() []*recipe.Record
	LedgerRows() []recipe.LedgerRow
}

// EventPublisher dispatches domain events raised during a use case.
// Publishing is best-effort: a failing handler never fails the request.
type EventPublisher interface {
	Publish(ctx context.Context, events []shared.DomainEvent)
}
