// Package gemini provides the Gemini integration for recipe generation
// Implements the AIService interface over the official genai SDK
package gemini

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/kondate-ai/kondate/internal/infrastructure/config"
	"github.com/kondate-ai/kondate/internal/infrastructure/monitoring"
)

// Client implements the AIService interface using the Gemini API
type Client struct {
	client  *genai.Client
	model   string
	cfg     config.AIConfig
	metrics *monitoring.Metrics
	logger  *zap.Logger
}

// NewClient creates a new Gemini client. The underlying HTTP client
// carries the configured timeout; no retry or per-request deadline is
// layered on top of the single blocking exchange.
func NewClient(ctx context.Context, cfg config.AIConfig, metrics *monitoring.Metrics, logger *zap.Logger) (*Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
		HTTPClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	logger.Info("Gemini client initialized",
		zap.String("model", cfg.Model),
		zap.Duration("timeout", cfg.Timeout))

	return &Client{
		client:  client,
		model:   cfg.Model,
		cfg:     cfg,
		metrics: metrics,
		logger:  logger.Named("gemini-client"),
	}, nil
}

// GenerateRecipe sends one prompt and returns the raw response text.
// Any SDK or transport error is returned to the caller unchanged in
// meaning; nothing is retried.
func (c *Client) GenerateRecipe(ctx context.Context, prompt string) (string, error) {
	start := time.Now()

	result, err := c.client.Models.GenerateContent(
		ctx,
		c.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			Temperature:     genai.Ptr[float32](float32(c.cfg.Temperature)),
			MaxOutputTokens: int32(c.cfg.MaxOutputTokens),
		},
	)
	if err != nil {
		c.metrics.RecordAIRequest("error", time.Since(start))
		c.logger.Error("Gemini generation failed", zap.Error(err))
		return "", fmt.Errorf("gemini generate content: %w", err)
	}

	text := result.Text()
	c.metrics.RecordAIRequest("success", time.Since(start))

	if usage := result.UsageMetadata; usage != nil {
		c.logger.Debug("Gemini generation complete",
			zap.Int32("prompt_tokens", usage.PromptTokenCount),
			zap.Int32("total_tokens", usage.TotalTokenCount),
			zap.Duration("duration", time.Since(start)))
	}

	return text, nil
}
