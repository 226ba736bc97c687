package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/fr0stylo/socialsync/internal/adapters/sqlite"
	"github.com/fr0stylo/socialsync/internal/app/services"
	"github.com/fr0stylo/socialsync/internal/config"
	"github.com/fr0stylo/socialsync/internal/db"
	"github.com/fr0stylo/socialsync/internal/notify"
	"github.com/fr0stylo/socialsync/internal/observability"
	"github.com/fr0stylo/socialsync/internal/provider/graph"
	"github.com/fr0stylo/socialsync/internal/server"
	"github.com/fr0stylo/socialsync/internal/server/routes"
	socialwebhook "github.com/fr0stylo/socialsync/internal/webhooks/social"
)

const shutdownTimeout = 10 * time.Second

func main() {
	log := observability.NewLogger(os.Stdout, slog.LevelInfo)
	slog.SetDefault(log)

	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file loaded", "error", err)
	}

	if err := run(log); err != nil {
		log.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(log *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := observability.Setup(ctx, log, telemetryConfig(cfg))
	if err != nil {
		return fmt.Errorf("setup telemetry: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(flushCtx); err != nil {
			log.Error("Failed to flush telemetry", "error", err)
		}
	}()

	database, err := db.New(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer func() {
		if cfg.Database.LogTiming {
			database.LogQueryLatency(log)
		}
		if err := database.Close(); err != nil {
			log.Error("Failed to close database", "error", err)
		}
	}()

	provider, err := graph.NewClient(cfg.Provider.GraphBaseURL, cfg.ProviderTimeout())
	if err != nil {
		return fmt.Errorf("build provider client: %w", err)
	}
	notifier, err := notify.New(notify.Config{SinkURL: cfg.Notify.SinkURL, Source: cfg.Notify.Source})
	if err != nil {
		return fmt.Errorf("build notifier: %w", err)
	}

	stores := sqlite.NewStores(database)
	metrics := observability.NewPipelineMetrics()
	importer := services.NewPostImporter(stores.Catalog, notifier, metrics, log, services.WithDefaultCurrency(cfg.Sync.DefaultCurrency))
	jobs := services.NewJobTracker(stores.Jobs)
	syncer := services.NewSyncOrchestrator(stores.Accounts, provider, importer, jobs, metrics, services.SyncOptions{
		MaxPosts: cfg.Sync.MaxPosts,
		Workers:  cfg.Sync.Workers,
	}, log)
	ingest := services.NewWebhookIngestService(services.WebhookConfig{
		AppSecret:   cfg.Webhook.AppSecret,
		VerifyToken: cfg.Webhook.VerifyToken,
	}, stores.Accounts, provider, importer, metrics, log)

	if cfg.IsLocalDevelopment() && cfg.Webhook.AppSecret == "" {
		log.Warn("SOCIALSYNC_WEBHOOK_APP_SECRET not set, every webhook delivery will be rejected")
	}

	srv := server.New(log, cfg.Observability.ServiceName)
	srv.RegisterRouter(routes.HealthRoutes{})
	srv.RegisterRouter(routes.NewWebhookRoutes(socialwebhook.NewHandler(ingest, log)))
	srv.RegisterRouter(routes.NewImportRoutes(syncer, jobs, cfg.Server.APIToken, log))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	errCh := make(chan error, 1)
	go func() {
		log.Info("Starting server", "port", cfg.Server.Port, "env", cfg.Environment)
		errCh <- srv.Start(addr)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down server")
	drainCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(drainCtx)
}

func telemetryConfig(cfg config.Config) observability.Config {
	return observability.Config{
		Enabled:           cfg.Observability.Enabled,
		OTLPEndpoint:      cfg.Observability.OTLPEndpoint,
		OTLPTraceHeaders:  cfg.Observability.OTLPTraceHeaders,
		OTLPMetricHeaders: cfg.Observability.OTLPMetricHeaders,
		ServiceName:       cfg.Observability.ServiceName,
		ServiceVersion:    cfg.Observability.ServiceVer,
		SamplingRatio:     cfg.Observability.SamplingRatio,
		MetricsConsole:    cfg.Observability.MetricsConsole,
	}
}
