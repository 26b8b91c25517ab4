package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	_ "github.com/artem13815/kirana/docs"

	// internal imports
	apihttp "github.com/artem13815/kirana/api/http"
	"github.com/artem13815/kirana/api/http/handlers"
	"github.com/artem13815/kirana/pkg/assistant"
	"github.com/artem13815/kirana/pkg/config"
	"github.com/artem13815/kirana/pkg/health"
	"github.com/artem13815/kirana/pkg/health/checkers"
	"github.com/artem13815/kirana/pkg/inventory"
	"github.com/artem13815/kirana/pkg/llm"
	"github.com/artem13815/kirana/pkg/llm/conversation"
	"github.com/artem13815/kirana/pkg/llm/groq"
	"github.com/artem13815/kirana/pkg/logger"
	"github.com/artem13815/kirana/pkg/metrics"
	pgrepo "github.com/artem13815/kirana/pkg/repository/postgres"
	"github.com/artem13815/kirana/pkg/security/jwt"
	"github.com/artem13815/kirana/pkg/session"
	"github.com/artem13815/kirana/pkg/storage/postgres"
)

const shutdownTimeout = 10 * time.Second

func run(ctx context.Context, envFiles []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := config.Load(envFiles...)
	if err != nil {
		return err
	}
	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, cleanup, err := buildApp(ctx, cfg, log, prometheus.DefaultRegisterer)
	if err != nil {
		return err
	}
	defer cleanup()

	errCh := make(chan error, 1)
	go func() {
		log.Info("HTTP server listening", zap.String("port", cfg.Port), zap.String("mode", cfg.Mode))
		errCh <- app.Listen(":" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server stopped: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return app.ShutdownWithContext(shutdownCtx)
}

// buildApp wires dependencies and registers routes. cleanup releases the
// database pool when one was opened.
func buildApp(ctx context.Context, cfg config.Config, log *zap.Logger, reg prometheus.Registerer) (*fiber.App, func(), error) {
	cleanup := func() {}

	if cfg.SessionSecret == config.DevSessionSecret {
		log.Warn("SESSION_SECRET is not set, using the development default")
	}

	// Catalog source: DATABASE_URL, then CATALOG_FILE, then built-in items.
	var (
		pool *pgxpool.Pool
		src  inventory.Source
	)
	switch {
	case cfg.DatabaseURL != "":
		p, err := postgres.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, cleanup, fmt.Errorf("postgres connect: %w", err)
		}
		pool = p
		cleanup = pool.Close
		repo, err := pgrepo.NewInventoryRepository(ctx, pool, inventory.DefaultItems())
		if err != nil {
			cleanup()
			return nil, func() {}, fmt.Errorf("init inventory repo: %w", err)
		}
		src = repo
	case cfg.CatalogFile != "":
		src = inventory.FileSource{Path: cfg.CatalogFile}
	default:
		src = inventory.Static(inventory.DefaultItems())
	}
	catalog, err := inventory.Load(ctx, src)
	if err != nil {
		cleanup()
		return nil, func() {}, err
	}
	log.Info("catalog loaded", zap.Int("items", catalog.Len()))

	rec := metrics.New(reg)

	groqOpts := groq.Options{
		BaseURL:      cfg.GroqBaseURL,
		Model:        cfg.GroqModel,
		SystemPrompt: cfg.SystemPrompt,
		Timeout:      cfg.LLMTimeout,
	}
	var factory llm.Factory
	switch cfg.Mode {
	case config.ModeMemory:
		factory = conversation.NewFactory(conversation.Options{
			NewModel:     conversation.GroqModel(cfg.GroqBaseURL, cfg.GroqModel),
			SystemPrompt: cfg.SystemPrompt,
			Window:       cfg.HistoryWindow,
			Timeout:      cfg.LLMTimeout,
		})
	default:
		factory = groq.NewFactory(groqOpts)
	}

	sessions := session.NewRegistry(cfg.ChatRatePerMinute, rec)
	keys := session.NewKeyStore(groq.NewValidator(groqOpts), factory, log, rec)
	chatUC := assistant.NewService(catalog, cfg.Mode, log, rec)

	healthCheckers := []health.Checker{checkers.NewCatalogChecker(catalog)}
	if pool != nil {
		healthCheckers = append(healthCheckers, checkers.NewPostgresChecker(pool))
	}

	tokens := jwt.NewGenerator(cfg.SessionSecret, "kirana", cfg.SessionTTL)

	app := fiber.New(fiber.Config{AppName: "kirana"})
	app.Use(recover.New())
	app.Use(fiberlogger.New())

	apihttp.Register(app,
		jwt.NewSessionMiddleware(tokens, cfg.CookieSecure),
		handlers.NewPageHandler(catalog, sessions),
		handlers.NewChatHandler(keys, chatUC, sessions, log),
		handlers.NewHealthHandler(health.NewService(healthCheckers...)),
		adaptor.HTTPHandler(promhttp.Handler()),
	)

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	return app, cleanup, nil
}
