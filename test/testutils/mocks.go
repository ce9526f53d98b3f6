package testutils

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/kondate-ai/kondate/internal/domain/shared"
)

// MockAIService is a mock implementation of outbound.AIService
type MockAIService struct {
	mock.Mock
}

func (m *MockAIService) GenerateRecipe(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

// MockEventPublisher is a mock implementation of outbound.EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, events []shared.DomainEvent) {
	m.Called(ctx, events)
}
