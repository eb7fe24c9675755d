// Package main provides the relay control service: an HTTP server exposing
// ingest trigger and health endpoints backed by the ingest pipeline.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/galnet-relay/relay/internal/api"
	"github.com/galnet-relay/relay/internal/ingest/archive"
	"github.com/galnet-relay/relay/internal/ingest/dispatch"
	"github.com/galnet-relay/relay/internal/ingest/freshness"
	"github.com/galnet-relay/relay/internal/ingest/pipeline"
	"github.com/galnet-relay/relay/internal/storage"
)

// Version information.
const (
	version = "1.0.0-dev"
	name    = "relay"
)

func main() {
	versionFlag := flag.Bool("version", false, "show version information")
	flag.Parse()

	if *versionFlag {
		log.Printf("%s v%s\n", name, version)
		os.Exit(0)
	}

	serverConfig := api.LoadServerConfig()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: serverConfig.LogLevel}))

	logger.Info("Starting relay control service",
		slog.String("service", name),
		slog.String("version", version),
	)

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

	store := storage.NewStore(conn, logger)
	cache := freshness.NewCache(getEnvInt("RELAY_CACHE_SIZE", freshness.DefaultCacheSize))
	gate := freshness.NewGate(cache, getEnvDuration("RELAY_FRESHNESS_GUARD", freshness.DefaultGuard), logger)
	reader := archive.NewReader(getEnvStr("RELAY_ARCHIVE_BASE_URL", ""))
	driver := pipeline.NewDriver(reader, store, gate, conn, getEnvDuration("RELAY_LOCK_TIMEOUT", pipeline.DefaultLockTimeout), logger)
	dispatcher := dispatch.NewDispatcher(driver, getEnvInt("RELAY_MAX_CONCURRENT_DATASETS", dispatch.DefaultMaxConcurrent), logger)

	apiKeyStore := buildAPIKeyStore(logger)

	server := api.NewServer(&serverConfig, apiKeyStore, nil, dispatcher, conn)

	if err := server.Start(); err != nil {
		logger.Error("Server failed to start", slog.Any("err", err))
		os.Exit(1)
	}

	logger.Info("relay control service stopped")
}

// buildAPIKeyStore seeds an in-memory key store with the single static key
// configured via RELAY_API_KEY. A blank RELAY_API_KEY disables auth (control
// endpoints are reachable without a key), matching the teacher's convention
// of a nil APIKeyStore meaning authentication is off.
func buildAPIKeyStore(logger *slog.Logger) storage.APIKeyStore {
	key := getEnvStr("RELAY_API_KEY", "")
	if key == "" {
		logger.Warn("RELAY_API_KEY not set - ingest trigger endpoints are unauthenticated")
		return nil
	}

	keyStore := storage.NewInMemoryKeyStore()
	if err := keyStore.Add(context.Background(), &storage.APIKey{
		ID:          "relay-control",
		Key:         key,
		PluginID:    "relay-control",
		Name:        "relay control API key",
		Permissions: []string{"ingest:trigger"},
		Active:      true,
	}); err != nil {
		logger.Error("Failed to seed API key store", slog.Any("err", err))
	}

	return keyStore
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
