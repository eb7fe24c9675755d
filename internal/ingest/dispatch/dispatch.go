// Package dispatch runs the pipeline driver across several datasets at
// once, bounded to a fixed concurrency so one trigger request cannot open
// more archive downloads and transactions than the database can absorb.
package dispatch

import (
	"context"
	"log/slog"
	"sync"

	"github.com/galnet-relay/relay/internal/galnet"
	"github.com/galnet-relay/relay/internal/ingest/pipeline"
)

// DefaultMaxConcurrent is the number of datasets a Dispatcher will run at
// once when none is configured.
const DefaultMaxConcurrent = 4

// Dispatcher fans a single day's ingest out across datasets, capping how
// many run concurrently with a buffered semaphore channel.
type Dispatcher struct {
	driver *pipeline.Driver
	sem    chan struct{}
	log    *slog.Logger
}

// NewDispatcher builds a Dispatcher that runs at most maxConcurrent
// datasets at a time. A non-positive maxConcurrent falls back to
// DefaultMaxConcurrent.
func NewDispatcher(driver *pipeline.Driver, maxConcurrent int, log *slog.Logger) *Dispatcher {
	if maxConcurrent <= 0 {
		maxConcurrent = DefaultMaxConcurrent
	}
	if log == nil {
		log = slog.Default()
	}
	return &Dispatcher{driver: driver, sem: make(chan struct{}, maxConcurrent), log: log}
}

// RunDay ingests every dataset in datasets for day, running up to the
// dispatcher's configured concurrency limit at once. One dataset's run
// failing does not stop the others; every dataset gets a Report. A run error
// or panic is only logged: the Report carries no error and holds the counts
// the driver returned (zero counts after a panic).
func (d *Dispatcher) RunDay(ctx context.Context, datasets []galnet.Dataset, day string) []pipeline.Report {
	reports := make([]pipeline.Report, len(datasets))
	var wg sync.WaitGroup

	for i, ds := range datasets {
		i, ds := i, ds
		wg.Add(1)
		go func() {
			defer wg.Done()

			select {
			case d.sem <- struct{}{}:
			case <-ctx.Done():
				reports[i] = pipeline.Report{Dataset: ds.Name, Day: day}
				return
			}
			defer func() { <-d.sem }()

			reports[i] = d.runOne(ctx, ds, day)
		}()
	}

	wg.Wait()
	return reports
}

// RunDataset ingests a single dataset/day pair, bypassing the
// concurrency-limited fan-out; used by the per-dataset trigger endpoint.
func (d *Dispatcher) RunDataset(ctx context.Context, ds galnet.Dataset, day string) pipeline.Report {
	return d.runOne(ctx, ds, day)
}

func (d *Dispatcher) runOne(ctx context.Context, ds galnet.Dataset, day string) pipeline.Report {
	report, err := func() (report pipeline.Report, runErr error) {
		defer func() {
			if r := recover(); r != nil {
				d.log.Error("dispatch: dataset run panicked", slog.String("dataset", ds.Name), slog.Any("panic", r))
				report = pipeline.Report{Dataset: ds.Name, Day: day}
				runErr = nil
			}
		}()
		return d.driver.Run(ctx, ds, day)
	}()
	if err != nil {
		d.log.Error("dispatch: dataset run failed", slog.String("dataset", ds.Name), slog.String("day", day), slog.Any("err", err))
	}
	return report
}
