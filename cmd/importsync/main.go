package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
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
)

func main() {
	storeID := flag.String("store", "", "store id whose connected account should be synced")
	maxPosts := flag.Int("max", 0, "maximum posts to import (defaults to SOCIALSYNC_SYNC_MAX_POSTS)")
	flag.Parse()

	log := observability.NewLogger(os.Stdout, slog.LevelInfo)
	slog.SetDefault(log)

	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file loaded", "error", err)
	}

	if strings.TrimSpace(*storeID) == "" {
		fmt.Fprintln(os.Stderr, "usage: importsync -store <store-id> [-max N]")
		os.Exit(2)
	}

	if err := run(log, *storeID, *maxPosts); err != nil {
		log.Error("Import sync failed", "store_id", *storeID, "error", err)
		os.Exit(1)
	}
}

func run(log *slog.Logger, storeID string, maxPosts int) error {
	cfg, err := config.LoadForTool()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if maxPosts <= 0 {
		maxPosts = cfg.Sync.MaxPosts
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := observability.Setup(ctx, log, observability.Config{
		Enabled:           cfg.Observability.Enabled,
		OTLPEndpoint:      cfg.Observability.OTLPEndpoint,
		OTLPTraceHeaders:  cfg.Observability.OTLPTraceHeaders,
		OTLPMetricHeaders: cfg.Observability.OTLPMetricHeaders,
		ServiceName:       cfg.Observability.ServiceName + "-importsync",
		ServiceVersion:    cfg.Observability.ServiceVer,
		SamplingRatio:     cfg.Observability.SamplingRatio,
		MetricsConsole:    cfg.Observability.MetricsConsole,
	})
	if err != nil {
		return fmt.Errorf("setup telemetry: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTelemetry(flushCtx)
	}()

	database, err := db.New(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer func() {
		if cfg.Database.LogTiming {
			database.LogQueryLatency(log)
		}
		_ = database.Close()
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
	syncer := services.NewSyncOrchestrator(stores.Accounts, provider, importer, services.NewJobTracker(stores.Jobs), metrics, services.SyncOptions{
		MaxPosts: maxPosts,
		Workers:  cfg.Sync.Workers,
	}, log)

	result, err := syncer.Run(ctx, storeID)
	if err != nil {
		return err
	}

	log.Info(result.Message(),
		"job_id", result.JobID,
		"fetched", result.Fetched,
		"created", result.Created,
		"skipped", result.Skipped,
		"failed", len(result.Failures),
	)
	for _, failure := range result.Failures {
		log.Warn("Post not imported", "external_id", failure.ExternalID, "reason", failure.Reason)
	}
	return nil
}
