// Package container provides dependency injection using Uber FX
// This implements the Dependency Inversion Principle from SOLID
package container

import (
	"context"
	"net/http"

	"go.uber.org/fx"
	"go.uber.org/zap"

	apprecipe "github.com/kondate-ai/kondate/internal/application/recipe"
	"github.com/kondate-ai/kondate/internal/domain/nutrition"
	"github.com/kondate-ai/kondate/internal/infrastructure/ai/gemini"
	"github.com/kondate-ai/kondate/internal/infrastructure/config"
	"github.com/kondate-ai/kondate/internal/infrastructure/http/server"
	"github.com/kondate-ai/kondate/internal/infrastructure/monitoring"
	"github.com/kondate-ai/kondate/internal/infrastructure/session"
	"github.com/kondate-ai/kondate/internal/ports/outbound"
	"github.com/kondate-ai/kondate/pkg/logger"
)

// Module provides all dependency injection modules
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	MonitoringModule,
	AIModule,
	ServiceModule,
	SessionModule,
	HTTPModule,
	LifecycleModule,
)

// ConfigModule provides configuration
var ConfigModule = fx.Provide(
	func() (*config.Config, error) {
		cfg, err := config.Load("")
		if err != nil {
			return nil, err
		}
		// The collaborator credential is the one secret in scope; ask
		// for it interactively when configuration carries none.
		if err := cfg.ResolveAPIKey(); err != nil {
			return nil, err
		}
		return cfg, nil
	},
)

// LoggerModule provides logging
var LoggerModule = fx.Provide(
	func(cfg *config.Config) (*zap.Logger, error) {
		return logger.New(logger.Config{
			Level:       cfg.App.LogLevel,
			Format:      cfg.App.LogFormat,
			Development: cfg.App.Debug,
		})
	},
)

// MonitoringModule provides metrics collection
var MonitoringModule = fx.Provide(
	monitoring.NewMetrics,
)

// AIModule provides the text-generation collaborator client
var AIModule = fx.Provide(
	fx.Annotate(
		func(cfg *config.Config, metrics *monitoring.Metrics, log *zap.Logger) (*gemini.Client, error) {
			return gemini.NewClient(context.Background(), cfg.AI, metrics, log)
		},
		fx.As(new(outbound.AIService)),
	),
)

// ServiceModule provides application services
var ServiceModule = fx.Provide(
	func(log *zap.Logger) *nutrition.Extractor {
		return nutrition.NewExtractor(log)
	},

	fx.Annotate(
		NewEventPublisher,
		fx.As(new(outbound.EventPublisher)),
	),

	apprecipe.NewGenerateService,
)

// SessionModule provides the per-session state store
var SessionModule = fx.Provide(
	func(cfg *config.Config, metrics *monitoring.Metrics, log *zap.Logger) *session.Store {
		return session.NewStore(cfg.Session, metrics, log)
	},
)

// HTTPModule provides the HTTP server
var HTTPModule = fx.Provide(
	server.NewServer,
)

// LifecycleModule provides lifecycle hooks
var LifecycleModule = fx.Invoke(
	RegisterLifecycleHooks,
)

// RegisterLifecycleHooks registers application lifecycle hooks
func RegisterLifecycleHooks(
	lc fx.Lifecycle,
	cfg *config.Config,
	log *zap.Logger,
	sessions *session.Store,
	server *server.Server,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("Starting Kondate application",
				zap.String("version", cfg.App.Version),
				zap.String("environment", cfg.App.Environment),
			)

			go func() {
				if err := server.Start(); err != nil && err != http.ErrServerClosed {
					log.Fatal("Failed to start HTTP server", zap.Error(err))
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down Kondate application")

			if err := server.Shutdown(ctx); err != nil {
				log.Error("Failed to shutdown HTTP server", zap.Error(err))
			}

			sessions.Close()

			_ = log.Sync()

			return nil
		},
	})
}
