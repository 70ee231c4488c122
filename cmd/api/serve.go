package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"artistly/internal/app"
	"artistly/internal/config"
	"artistly/internal/dataset"
	apphttp "artistly/internal/http"
	"artistly/internal/http/handlers"
	"artistly/internal/http/metrics"
	httpmw "artistly/internal/http/middleware"
	"artistly/internal/http/response"
	"artistly/internal/observability"
	"artistly/internal/repository/memory"
)

func serve(cmd *cobra.Command, flags cliFlags) error {
	cfg, err := loadConfig(cmd, flags)
	if err != nil {
		return err
	}
	logger := observability.NewLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	redisClient := connectRedis(ctx, cfg.RedisURL, logger)
	if redisClient != nil {
		defer func() {
			if err := redisClient.Close(); err != nil {
				logger.Error("redis close failed", slog.String("error", err.Error()))
			}
		}()
	}

	srv, err := newServer(ctx, cfg, redisClient, logger)
	if err != nil {
		return err
	}
	if cfg.CatalogWatch {
		watcher := dataset.NewWatcher(cfg.CatalogPath, 0, srv.catalog.Replace, logger)
		go func() {
			if err := watcher.Run(ctx); err != nil {
				logger.Error("catalog watcher stopped", slog.String("error", err.Error()))
			}
		}()
	}

	httpServer := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           srv.handler,
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("api listening", slog.String("port", cfg.HTTPPort))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("api shutdown error", slog.String("error", err.Error()))
	}
	return nil
}

type server struct {
	handler http.Handler
	catalog *app.CatalogService
}

// newServer wires the services and router. A nil redisClient keeps rate limits in
// process memory.
func newServer(ctx context.Context, cfg config.Config, redisClient *redis.Client, logger *slog.Logger) (*server, error) {
	collector := metrics.NewCollector()
	response.SetErrorCollector(collector)

	catalogService, err := app.LoadCatalogService(ctx, dataset.NewLoader(cfg.CatalogPath, cfg.CategoriesPath), collector, logger)
	if err != nil {
		return nil, err
	}

	sessionRepo := memory.NewSessionRepository()
	draftRepo := memory.NewDraftRepository()
	submissionRepo := memory.NewSubmissionRepository()

	browseService := app.NewBrowseService(sessionRepo, catalogService, cfg.SessionTTL, logger)
	draftService := app.NewDraftService(draftRepo)
	submitter := app.NewSimulatedSubmitter(cfg.SubmitDelay)
	workflow := app.NewSubmissionWorkflow(draftRepo, submissionRepo, submitter, cfg.SubmitTimeout, collector, logger)
	reviewService := app.NewReviewService(submissionRepo, collector, logger)

	seed, err := dataset.Submissions()
	if err != nil {
		return nil, err
	}
	if err := reviewService.Seed(ctx, seed); err != nil {
		return nil, fmt.Errorf("seed review queue: %w", err)
	}

	var limiter httpmw.Limiter = httpmw.NewMemoryLimiter()
	if redisClient != nil {
		limiter = httpmw.NewRedisLimiter(redisClient, appName)
	}
	onboardingHandler, err := handlers.NewOnboardingHandler(draftService, workflow, limiter, cfg.SubmitRateLimitPerMin)
	if err != nil {
		return nil, err
	}

	router := apphttp.NewRouter(apphttp.RouterDependencies{
		CatalogHandler:    handlers.NewCatalogHandler(catalogService),
		BrowseHandler:     handlers.NewBrowseHandler(browseService),
		OnboardingHandler: onboardingHandler,
		ReviewHandler:     handlers.NewReviewHandler(reviewService),
		MetricsHandler:    handlers.NewMetricsHandler(collector.Handler()),
		Metrics:           collector,
		RequestTimeout:    cfg.RequestTimeout,
	})
	return &server{handler: router, catalog: catalogService}, nil
}

func connectRedis(ctx context.Context, url string, logger *slog.Logger) *redis.Client {
	if url == "" {
		return nil
	}
	opts, err := redis.ParseURL(url)
	if err != nil {
		logger.Error("redis url parse failed", slog.String("error", err.Error()))
		return nil
	}
	client := redis.NewClient(opts)
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		logger.Error("redis ping failed, using in-memory rate limits", slog.String("error", err.Error()))
		_ = client.Close()
		return nil
	}
	return client
}
