// Package main provides a standalone ingest CLI: run one or every dataset
// for a given day without starting the HTTP control server, for cron jobs
// and manual backfills.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/galnet-relay/relay/internal/galnet"
	"github.com/galnet-relay/relay/internal/ingest/archive"
	"github.com/galnet-relay/relay/internal/ingest/dispatch"
	"github.com/galnet-relay/relay/internal/ingest/freshness"
	"github.com/galnet-relay/relay/internal/ingest/pipeline"
	"github.com/galnet-relay/relay/internal/storage"
)

const name = "relay-ingest"

func main() {
	day := flag.String("day", time.Now().UTC().Format("2006-01-02"), "archive day to ingest, YYYY-MM-DD")
	dataset := flag.String("dataset", "", "dataset name to ingest (empty runs every dataset)")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: getEnvLogLevel()}))

	dbConfig := storage.LoadConfig()
	if err := dbConfig.Validate(); err != nil {
		logger.Error("Invalid database configuration", slog.Any("err", err))
		os.Exit(1)
	}

	conn, err := storage.NewConnection(dbConfig)
	if err != nil {
		logger.Error("Failed to connect to database", slog.Any("err", err))
		os.Exit(1)
	}
	defer func() { _ = conn.Close() }()

	store := storage.NewStore(conn, logger)
	cache := freshness.NewCache(getEnvInt("RELAY_CACHE_SIZE", freshness.DefaultCacheSize))
	gate := freshness.NewGate(cache, getEnvDuration("RELAY_FRESHNESS_GUARD", freshness.DefaultGuard), logger)
	reader := archive.NewReader(getEnvStr("RELAY_ARCHIVE_BASE_URL", ""))
	driver := pipeline.NewDriver(reader, store, gate, conn, getEnvDuration("RELAY_LOCK_TIMEOUT", pipeline.DefaultLockTimeout), logger)
	dispatcher := dispatch.NewDispatcher(driver, getEnvInt("RELAY_MAX_CONCURRENT_DATASETS", dispatch.DefaultMaxConcurrent), logger)

	ctx := context.Background()

	if *dataset != "" {
		ds, ok := galnet.ByName(*dataset)
		if !ok {
			log.Fatalf("%s: unknown dataset %q", name, *dataset)
		}
		report := dispatcher.RunDataset(ctx, ds, *day)
		logReport(logger, report)
		return
	}

	reports := dispatcher.RunDay(ctx, galnet.AllDatasets, *day)
	for _, report := range reports {
		logReport(logger, report)
	}
}

func logReport(logger *slog.Logger, report pipeline.Report) {
	logger.Info("dataset ingest complete",
		slog.String("dataset", report.Dataset),
		slog.String("day", report.Day),
		slog.String("status", report.Status()),
		slog.Int("total", report.Total),
		slog.Int("success", report.Success),
		slog.Int("skipped", report.Skipped),
		slog.Int("failure", report.Failure),
	)
}

func getEnvStr(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvLogLevel() slog.Level {
	switch os.Getenv("LOG_LEVEL") {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
