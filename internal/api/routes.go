// Package api provides the HTTP control surface for the relay: ingest trigger
// endpoints and health checks.
package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/galnet-relay/relay/internal/api/middleware"
	"github.com/galnet-relay/relay/internal/galnet"
	"github.com/galnet-relay/relay/internal/ingest/pipeline"
)

const (
	healthCheckTimeout = 2 * time.Second
	expectedURLParts   = 2
)

// Route represents an HTTP route configuration with a path and handler.
// Used for declarative route registration with middleware bypass support.
type Route struct {
	Path    string           // The URL path for this route (e.g., "/ping", "/api/v1/health")
	Handler http.HandlerFunc // The HTTP handler function for this route
}

// Routes sets up all HTTP routes for the API server.
func (s *Server) setupRoutes(mux *http.ServeMux) {
	// Public health endpoints
	s.registerPublicRoutes(
		mux,
		Route{"GET /healthz", s.handleHealthz}, // liveness probe
		Route{"GET /readyz", s.handleReadyz},   // readiness probe, checks storage
		Route{"/", s.handleNotFound},           // catch-all 404 handler
	)

	// Ingest trigger endpoints (auth-gated via the plugin auth middleware)
	mux.HandleFunc("POST /ingest/today", s.handleIngestToday)
	mux.HandleFunc("POST /ingest/{day}", s.handleIngestDay)
	mux.HandleFunc("POST /ingest/{day}/{dataset}", s.handleIngestDataset)
}

// registerPublicRoutes registers HTTP routes that bypass authentication. They still
// pass through the rate limiter, which counts them as unauthenticated requests.
// This is a convenience method that:
//  1. Registers the route handler with the HTTP mux
//  2. Automatically registers the path as a public endpoint (bypasses auth middleware)
//
// Public routes should only be used for health check endpoints that need to be accessible
// without authentication (e.g., liveness/readiness probes, monitoring tools).
func (s *Server) registerPublicRoutes(mux *http.ServeMux, routes ...Route) {
	validHTTPMethods := map[string]bool{
		"GET":    true,
		"POST":   true,
		"PUT":    true,
		"PATCH":  true,
		"DELETE": true,
	}

	for _, route := range routes {
		mux.Handle(route.Path, route.Handler)

		path := route.Path
		parts := strings.Fields(path)
		if len(parts) == expectedURLParts && validHTTPMethods[parts[0]] {
			path = strings.TrimSpace(parts[1])
		}

		if path == "" {
			s.logger.Warn("Malformed route path detected, ignoring route", slog.String("path", path))
			continue
		}

		middleware.RegisterPublicEndpoint(path)
	}
}

// handleHealthz responds to liveness probes with a basic OK.
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	var uptime string
	if !s.startTime.IsZero() {
		uptime = time.Since(s.startTime).Round(time.Second).String()
	}

	health := HealthStatus{
		Status:      "healthy",
		ServiceName: "galnet-relay",
		Version:     "v1.0.0",
		Uptime:      uptime,
	}

	data, err := json.Marshal(health)
	if err != nil {
		s.logger.Error("Failed to encode health response", slog.Any("err", err))
		WriteErrorResponse(w, r, s.logger, InternalServerError("Failed to encode health response"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		s.logger.Error("Failed to write health response", slog.Any("err", err))
	}
}

// handleReadyz responds to readiness probes with a storage backend health check.
func (s *Server) handleReadyz(w http.ResponseWriter, r *http.Request) {
	correlationID := middleware.GetCorrelationID(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	if err := s.conn.HealthCheck(ctx); err != nil {
		s.logger.Error("Storage health check failed",
			slog.String("correlation_id", correlationID),
			slog.Any("err", err),
		)
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("storage unavailable"))
		return
	}

	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

// handleNotFound returns RFC 7807 compliant 404 responses for unknown endpoints.
func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	WriteErrorResponse(w, r, s.logger, NotFound("The requested resource was not found"))
}

// handleIngestToday triggers an ingest run for every dataset for today's day.
func (s *Server) handleIngestToday(w http.ResponseWriter, r *http.Request) {
	s.runIngest(w, r, time.Now().UTC().Format("2006-01-02"), "")
}

// handleIngestDay triggers an ingest run for every dataset for the given day.
func (s *Server) handleIngestDay(w http.ResponseWriter, r *http.Request) {
	s.runIngest(w, r, r.PathValue("day"), "")
}

// handleIngestDataset triggers an ingest run for a single dataset/day pair.
func (s *Server) handleIngestDataset(w http.ResponseWriter, r *http.Request) {
	s.runIngest(w, r, r.PathValue("day"), r.PathValue("dataset"))
}

// runIngest dispatches one day's ingest, across every dataset or a single
// named one, and writes the aggregated run report.
func (s *Server) runIngest(w http.ResponseWriter, r *http.Request, day, datasetName string) {
	startTime := time.Now()
	correlationID := middleware.GetCorrelationID(r.Context())

	if datasetName == "" {
		reports := s.dispatcher.RunDay(r.Context(), galnet.AllDatasets, day)
		s.writeIngestResponse(w, r, day, reports, correlationID, startTime)
		return
	}

	ds, ok := galnet.ByName(datasetName)
	if !ok {
		WriteErrorResponse(w, r, s.logger, BadRequest("unknown dataset: "+datasetName))
		return
	}
	report := s.dispatcher.RunDataset(r.Context(), ds, day)
	s.writeIngestResponse(w, r, day, []pipeline.Report{report}, correlationID, startTime)
}

func (s *Server) writeIngestResponse(
	w http.ResponseWriter,
	r *http.Request,
	day string,
	reports []pipeline.Report,
	correlationID string,
	startTime time.Time,
) {
	response := IngestRunResponse{
		Day:     day,
		Status:  overallStatus(reports),
		Reports: reports,
	}

	data, err := json.Marshal(response)
	if err != nil {
		s.logger.Error("Failed to marshal ingest response", slog.Any("err", err))
		WriteErrorResponse(w, r, s.logger, InternalServerError("Failed to encode response"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		s.logger.Error("Failed to write ingest response", slog.Any("err", err))
	}

	s.logger.Info("ingest run triggered",
		slog.String("correlation_id", correlationID),
		slog.String("day", day),
		slog.String("status", response.Status),
		slog.Int("datasets", len(reports)),
		slog.Duration("duration", time.Since(startTime)),
	)
}
