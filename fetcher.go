package zeirishi

import "context"

// Fetcher retrieves HTML documents over the network.
type Fetcher interface {
	// Fetch performs a single GET request for url and returns the response
	// body. The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases client resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}

// Limiter paces listing-page fetches as a courtesy to the remote site.
type Limiter interface {
	// Wait blocks until the next request is allowed.
	// Returns an error if the context is canceled before the wait completes.
	Wait(ctx context.Context) error
}
