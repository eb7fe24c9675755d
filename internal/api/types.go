// Package api provides the HTTP control surface for the relay: ingest trigger
// endpoints and health checks.
package api

import "github.com/galnet-relay/relay/internal/ingest/pipeline"

type (
	// HealthStatus represents the health check response structure.
	HealthStatus struct {
		Status      string `json:"status"`
		ServiceName string `json:"serviceName"`
		Version     string `json:"version"`
		Uptime      string `json:"uptime,omitempty"`
	}

	// IngestRunResponse is the response body for every /ingest/* trigger
	// endpoint: one report per dataset that was run.
	IngestRunResponse struct {
		Day     string            `json:"day"`
		Status  string            `json:"status"`
		Reports []pipeline.Report `json:"reports"`
	}
)

// overallStatus returns "degraded" if any dataset report in reports failed
// at least one line, "ok" otherwise.
func overallStatus(reports []pipeline.Report) string {
	for _, r := range reports {
		if r.Status() != "ok" {
			return "degraded"
		}
	}
	return "ok"
}
