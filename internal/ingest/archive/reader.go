// Package archive fetches and streams daily EDDN-style journal archives:
// bzip2-compressed, newline-delimited JSON, one file per dataset per day.
package archive

import (
	"bufio"
	"compress/bzip2"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/galnet-relay/relay/internal/galnet"
)

// ErrFetchFailed wraps a non-2xx response or transport failure fetching an
// archive file.
var ErrFetchFailed = errors.New("archive: fetch failed")

// Config holds the options governing archive retrieval.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
}

// Option configures a Config.
type Option func(*Config)

// WithHTTPClient overrides the default http.Client.
func WithHTTPClient(c *http.Client) Option {
	return func(cfg *Config) { cfg.HTTPClient = c }
}

// WithTimeout overrides the default per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(cfg *Config) { cfg.Timeout = d }
}

const defaultTimeout = 5 * time.Minute

// Reader fetches daily archive files and streams their decompressed lines.
type Reader struct {
	baseURL string
	client  *http.Client
	timeout time.Duration
}

// NewReader builds a Reader rooted at baseURL, e.g.
// "https://eddn.example.org/archive".
func NewReader(baseURL string, opts ...Option) *Reader {
	cfg := Config{BaseURL: baseURL, HTTPClient: http.DefaultClient, Timeout: defaultTimeout}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Reader{baseURL: cfg.BaseURL, client: cfg.HTTPClient, timeout: cfg.Timeout}
}

// URL returns the archive URL for one dataset on one day (YYYY-MM-DD).
func (r *Reader) URL(ds galnet.Dataset, day string) string {
	month := day
	if len(day) >= 7 {
		month = day[:7]
	}
	return fmt.Sprintf("%s/%s/%s-%s.jsonl.bz2", r.baseURL, month, ds.FileBase, day)
}

// Lines fetches one dataset's archive for one day and invokes fn for each
// decompressed line, stopping and returning its error if fn fails. Lines
// are delivered without their trailing newline.
func (r *Reader) Lines(ctx context.Context, ds galnet.Dataset, day string, fn func(line []byte) error) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	url := r.URL(ds, day)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: building request: %w", ErrFetchFailed, err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrFetchFailed, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %s: status %d", ErrFetchFailed, url, resp.StatusCode)
	}

	scanner := bufio.NewScanner(bzip2.NewReader(resp.Body))
	scanner.Buffer(make([]byte, 0, 64*1024), 8*1024*1024)
	for scanner.Scan() {
		if err := fn(scanner.Bytes()); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return fmt.Errorf("%w: %s: truncated stream: %w", ErrFetchFailed, url, err)
		}
		return fmt.Errorf("%w: %s: %w", ErrFetchFailed, url, err)
	}

	return nil
}
