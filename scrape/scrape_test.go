package scrape_test

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	zeirishi "github.com/valukujp-oss/zeirishi-scraper"
	"github.com/valukujp-oss/zeirishi-scraper/goquery"
	"github.com/valukujp-oss/zeirishi-scraper/mock"
	"github.com/valukujp-oss/zeirishi-scraper/scrape"
)

func testConfig() zeirishi.Config {
	cfg := zeirishi.DefaultConfig()
	cfg.BaseURL = "https://example.com/search"
	cfg.Delay = 0
	return cfg
}

// pageQuery returns the page parameter of a fetched URL, or -1 for URLs
// without one (detail pages).
func pageQuery(t *testing.T, rawURL string) int {
	t.Helper()
	u, err := url.Parse(rawURL)
	require.NoError(t, err)
	if !u.Query().Has("page") {
		return -1
	}
	var page int
	_, err = fmt.Sscanf(u.Query().Get("page"), "%d", &page)
	require.NoError(t, err)
	return page
}

// listingPage builds a fixture page with n cards. Cards carry a marker so
// pages hash differently.
func listingPage(page, n int) string {
	var b strings.Builder
	b.WriteString("<html><body>")
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, `<div class="resultItem">
<a href="/detail/%d-%d">詳細</a>
<span class="officeName">事務所%d-%d</span>
<span class="tel">03-%04d-%04d</span>
</div>`, page, i, page, i, page, i)
	}
	b.WriteString("</body></html>")
	return b.String()
}

func TestScraper_Run(t *testing.T) {
	t.Parallel()

	t.Run("stops after the first empty page", func(t *testing.T) {
		t.Parallel()

		var listingFetches int
		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, rawURL string) (string, error) {
				page := pageQuery(t, rawURL)
				if page < 0 {
					return `<html><body><a href="mailto:x@example.jp">mail</a></body></html>`, nil
				}
				listingFetches++
				switch page {
				case 1:
					return listingPage(1, 2), nil
				case 2:
					return listingPage(2, 1), nil
				default:
					return "<html><body></body></html>", nil
				}
			},
		}

		s := &scrape.Scraper{
			Config:  testConfig(),
			Fetcher: fetcher,
			Parser:  goquery.NewListingParser(),
			Emails:  goquery.NewEmailExtractor(),
		}

		result, err := s.Run(context.Background(), "静岡", nil)

		require.NoError(t, err)
		assert.Equal(t, 3, listingFetches, "pages 1, 2 and the empty probe page 3")
		assert.Equal(t, 2, result.Pages)
		require.Len(t, result.Records, 3)
		for _, rec := range result.Records {
			assert.Equal(t, "静岡", rec.Prefecture)
			assert.Equal(t, "x@example.jp", rec.Email.Address)
		}
	})

	t.Run("empty first page yields no records", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, rawURL string) (string, error) {
				return "<html><body></body></html>", nil
			},
		}

		s := &scrape.Scraper{
			Config:  testConfig(),
			Fetcher: fetcher,
			Parser:  goquery.NewListingParser(),
			Emails:  goquery.NewEmailExtractor(),
		}

		result, err := s.Run(context.Background(), "静岡", nil)

		require.NoError(t, err)
		assert.Empty(t, result.Records)
		assert.Zero(t, result.Pages)
	})

	t.Run("listing page failure is fatal", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, rawURL string) (string, error) {
				if pageQuery(t, rawURL) == 2 {
					return "", zeirishi.Errorf(zeirishi.EUNAVAILABLE, "GET %s: HTTP 502", rawURL)
				}
				return listingPage(1, 1), nil
			},
		}

		s := &scrape.Scraper{
			Config:  testConfig(),
			Fetcher: fetcher,
			Parser:  goquery.NewListingParser(),
			Emails:  goquery.NewEmailExtractor(),
		}

		_, err := s.Run(context.Background(), "静岡", nil)

		require.Error(t, err)
		assert.Equal(t, zeirishi.EUNAVAILABLE, zeirishi.ErrorCode(err))
		assert.Contains(t, err.Error(), "page 2")
	})

	t.Run("detail page failure is absorbed as no email", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, rawURL string) (string, error) {
				page := pageQuery(t, rawURL)
				if page < 0 {
					return "", errors.New("connection refused")
				}
				if page == 1 {
					return listingPage(1, 1), nil
				}
				return "<html><body></body></html>", nil
			},
		}

		var failures []scrape.ProgressEvent
		progress := func(event scrape.ProgressEvent) {
			if event.Type == scrape.ProgressDetailFailed {
				failures = append(failures, event)
			}
		}

		s := &scrape.Scraper{
			Config:  testConfig(),
			Fetcher: fetcher,
			Parser:  goquery.NewListingParser(),
			Emails:  goquery.NewEmailExtractor(),
		}

		result, err := s.Run(context.Background(), "静岡", progress)

		require.NoError(t, err)
		require.Len(t, result.Records, 1)
		assert.False(t, result.Records[0].Email.Found)
		assert.Equal(t, zeirishi.NoEmailSentinel, result.Records[0].Email.Export())
		require.Len(t, failures, 1)
		assert.Error(t, failures[0].Err)
	})

	t.Run("record without a detail link skips the lookup", func(t *testing.T) {
		t.Parallel()

		var detailFetches int
		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, rawURL string) (string, error) {
				page := pageQuery(t, rawURL)
				if page < 0 {
					detailFetches++
					return "<html></html>", nil
				}
				if page == 1 {
					return `<html><body><div class="resultItem"><span class="officeName">A</span></div></body></html>`, nil
				}
				return "<html><body></body></html>", nil
			},
		}

		s := &scrape.Scraper{
			Config:  testConfig(),
			Fetcher: fetcher,
			Parser:  goquery.NewListingParser(),
			Emails:  goquery.NewEmailExtractor(),
		}

		result, err := s.Run(context.Background(), "静岡", nil)

		require.NoError(t, err)
		require.Len(t, result.Records, 1)
		assert.Zero(t, detailFetches)
		assert.False(t, result.Records[0].Email.Found)
	})

	t.Run("stops when a page repeats the previous page's content", func(t *testing.T) {
		t.Parallel()

		// The site ignores out-of-range page numbers and serves page 1
		// forever; the hash guard must end the run.
		repeated := listingPage(1, 2)
		var listingFetches int
		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, rawURL string) (string, error) {
				if pageQuery(t, rawURL) < 0 {
					return "<html></html>", nil
				}
				listingFetches++
				return repeated, nil
			},
		}

		s := &scrape.Scraper{
			Config:  testConfig(),
			Fetcher: fetcher,
			Parser:  goquery.NewListingParser(),
			Emails:  goquery.NewEmailExtractor(),
		}

		result, err := s.Run(context.Background(), "静岡", nil)

		require.NoError(t, err)
		assert.Equal(t, 2, listingFetches)
		assert.Equal(t, 1, result.Pages)
		assert.Len(t, result.Records, 2)
	})

	t.Run("waits on the limiter before each listing fetch", func(t *testing.T) {
		t.Parallel()

		var waits int
		limiter := &mock.Limiter{
			WaitFn: func(ctx context.Context) error {
				waits++
				return nil
			},
		}
		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, rawURL string) (string, error) {
				if pageQuery(t, rawURL) == 1 {
					return `<html><body><div class="resultItem"><span class="officeName">A</span></div></body></html>`, nil
				}
				return "<html><body></body></html>", nil
			},
		}

		s := &scrape.Scraper{
			Config:  testConfig(),
			Fetcher: fetcher,
			Parser:  goquery.NewListingParser(),
			Emails:  goquery.NewEmailExtractor(),
			Limiter: limiter,
		}

		_, err := s.Run(context.Background(), "静岡", nil)

		require.NoError(t, err)
		assert.Equal(t, 2, waits, "one wait per listing page, none for details")
	})

	t.Run("reports per-page progress with the raw HTML", func(t *testing.T) {
		t.Parallel()

		page1 := listingPage(1, 2)
		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, rawURL string) (string, error) {
				if pageQuery(t, rawURL) < 0 {
					return "<html></html>", nil
				}
				if pageQuery(t, rawURL) == 1 {
					return page1, nil
				}
				return "<html><body></body></html>", nil
			},
		}

		var events []scrape.ProgressEvent
		s := &scrape.Scraper{
			Config:  testConfig(),
			Fetcher: fetcher,
			Parser:  goquery.NewListingParser(),
			Emails:  goquery.NewEmailExtractor(),
		}

		result, err := s.Run(context.Background(), "静岡", func(event scrape.ProgressEvent) {
			events = append(events, event)
		})

		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, scrape.ProgressPage, events[0].Type)
		assert.Equal(t, 1, events[0].Page)
		assert.Equal(t, 2, events[0].Count)
		assert.Equal(t, page1, events[0].HTML)
		assert.Equal(t, scrape.ProgressFinished, events[1].Type)
		assert.Equal(t, len(result.Records), events[1].Count)
	})

	t.Run("empty prefecture is rejected", func(t *testing.T) {
		t.Parallel()

		s := &scrape.Scraper{Config: testConfig()}

		_, err := s.Run(context.Background(), "", nil)

		require.Error(t, err)
		assert.Equal(t, zeirishi.EINVALID, zeirishi.ErrorCode(err))
	})

	t.Run("canceled context aborts the run", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, rawURL string) (string, error) {
				return listingPage(1, 1), nil
			},
		}

		s := &scrape.Scraper{
			Config:  testConfig(),
			Fetcher: fetcher,
			Parser:  goquery.NewListingParser(),
			Emails:  goquery.NewEmailExtractor(),
		}

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := s.Run(ctx, "静岡", nil)

		require.ErrorIs(t, err, context.Canceled)
	})
}
