// Package fetch downloads source videos into memory.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
)

// HTTPDoer abstracts the HTTP client for testing.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

var (
	// ErrEmptyBody indicates a 2xx response with no content.
	ErrEmptyBody = errors.New("empty response body")
	// ErrTooLarge indicates the response exceeded the download cap.
	ErrTooLarge = errors.New("response exceeds download limit")
)

// StatusError reports a non-2xx response.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("download %s: unexpected status %d", e.URL, e.StatusCode)
}

// Downloader fetches source videos over HTTP. It performs no retries and
// never writes to disk; callers own persistence.
type Downloader struct {
	client   HTTPDoer
	maxBytes int64
	logger   zerolog.Logger
}

// NewDownloader returns a Downloader using client, rejecting bodies larger
// than maxBytes.
func NewDownloader(client HTTPDoer, maxBytes int64, logger zerolog.Logger) *Downloader {
	if client == nil {
		client = &http.Client{}
	}
	return &Downloader{client: client, maxBytes: maxBytes, logger: logger}
}

// Fetch downloads rawURL and returns the body bytes. Any non-2xx status,
// empty body, or oversized body is an error.
func (d *Downloader) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse url %q: %w", rawURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported url scheme %q", u.Scheme)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", rawURL, err)
	}

	start := time.Now()
	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{URL: rawURL, StatusCode: resp.StatusCode}
	}

	// Read one byte past the cap so an exactly-at-cap body passes.
	body, err := io.ReadAll(io.LimitReader(resp.Body, d.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read body of %s: %w", rawURL, err)
	}
	if int64(len(body)) > d.maxBytes {
		return nil, fmt.Errorf("download %s: %w (limit %d bytes)", rawURL, ErrTooLarge, d.maxBytes)
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("download %s: %w", rawURL, ErrEmptyBody)
	}

	d.logger.Debug().
		Str("url", rawURL).
		Int("bytes", len(body)).
		Dur("elapsed", time.Since(start)).
		Msg("downloaded source")
	return body, nil
}
