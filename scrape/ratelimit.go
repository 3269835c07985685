package scrape

import (
	"context"
	"time"

	zeirishi "github.com/valukujp-oss/zeirishi-scraper"
	"golang.org/x/time/rate"
)

var _ zeirishi.Limiter = (*PageLimiter)(nil)

// PageLimiter enforces the courtesy delay between listing-page fetches
// using a token bucket with a burst of 1 (no bursting allowed). The first
// wait is immediate; later waits are spaced at least delay apart.
type PageLimiter struct {
	limiter *rate.Limiter
}

// NewPageLimiter creates a PageLimiter with the given inter-page delay.
// A non-positive delay disables pacing.
func NewPageLimiter(delay time.Duration) *PageLimiter {
	if delay <= 0 {
		return &PageLimiter{limiter: rate.NewLimiter(rate.Inf, 1)}
	}
	return &PageLimiter{limiter: rate.NewLimiter(rate.Every(delay), 1)}
}

// Wait blocks until the next page fetch is allowed.
// Returns an error if the context is canceled before the wait completes.
func (l *PageLimiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}
