// Package normalize turns decoded EDDN-style events into galnet entity
// bundles ready for the upsert engine. Each dataset has exactly one pure
// function here: given an envelope and its strictly-decoded event, return
// the rows it implies. A function never touches the database or the
// network; all of its inputs are arguments and all of its outputs are the
// returned Bundle.
package normalize

import "github.com/galnet-relay/relay/internal/galnet"

func strPtr(s string) *string    { return &s }
func intPtr(i int64) *int64      { return &i }
func floatPtr(f float64) *float64 { return &f }
func boolPtr(b bool) *bool       { return &b }

func strOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}
