// Package http provides the network implementation of zeirishi.Fetcher used
// for listing and detail pages.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	zeirishi "github.com/valukujp-oss/zeirishi-scraper"
)

// Ensure Fetcher implements zeirishi.Fetcher at compile time.
var _ zeirishi.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML with plain GET requests. The underlying client
// reuses connections, so sequential requests to the directory share one
// keep-alive session.
type Fetcher struct {
	client    *http.Client
	userAgent string
	timeout   time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to zeirishi.DefaultTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent on every request.
// Defaults to zeirishi.DefaultUserAgent if not specified.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   zeirishi.DefaultTimeout,
		userAgent: zeirishi.DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL. Network failures and
// non-200 responses surface as EUNAVAILABLE; the caller decides whether that
// is fatal (listing pages) or absorbed (detail pages).
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", zeirishi.Errorf(zeirishi.EINVALID, "invalid request URL %q: %v", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", zeirishi.Errorf(zeirishi.EUNAVAILABLE, "GET %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", zeirishi.Errorf(zeirishi.EUNAVAILABLE, "GET %s: HTTP %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", zeirishi.Errorf(zeirishi.EUNAVAILABLE, "GET %s: reading body: %v", url, err)
	}

	return string(body), nil
}

// Close releases idle connections held by the client.
func (f *Fetcher) Close() error {
	f.client.CloseIdleConnections()
	return nil
}
