// Package scrape orchestrates the paginated scrape of one prefecture: fetch
// a results page, parse its listings, look up each listing's email on its
// detail page, and advance the page number until the site runs out of
// results. The loop is strictly sequential; the only pacing is the courtesy
// delay between listing pages.
package scrape

import (
	"context"
	"fmt"

	"github.com/cespare/xxhash/v2"
	zeirishi "github.com/valukujp-oss/zeirishi-scraper"
)

// Scraper drives the page loop. All collaborators are interfaces so the
// loop can be exercised against fixtures without a network.
type Scraper struct {
	Config  zeirishi.Config
	Fetcher zeirishi.Fetcher
	Parser  zeirishi.ListingParser
	Emails  zeirishi.EmailExtractor
	Limiter zeirishi.Limiter
}

// Result holds the outcome of one scrape run.
type Result struct {
	// Records are all parsed listings in encounter order, emails attached.
	Records []*zeirishi.Record

	// Pages counts the listing pages that contributed records.
	Pages int
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	// ProgressPage reports a parsed listing page.
	ProgressPage ProgressType = iota
	// ProgressDetailFailed reports an absorbed detail-page failure.
	ProgressDetailFailed
	// ProgressFinished reports run completion.
	ProgressFinished
)

// ProgressEvent reports progress during a scrape run.
type ProgressEvent struct {
	Type  ProgressType
	Page  int
	Count int
	URL   string
	// HTML carries the raw page source on ProgressPage events so callers
	// can dump it for selector debugging.
	HTML string
	Err  error
}

// ProgressFunc is a callback for reporting scrape progress.
type ProgressFunc func(event ProgressEvent)

// Run scrapes all result pages for pref starting at page 1. It stops when a
// page parses to zero listings, or when a page's content repeats the
// previous page's (some sites serve the last page again for out-of-range
// page numbers).
//
// A listing-page fetch or parse failure aborts the run: pagination cannot
// tell "end of results" from a transient failure. Detail-page failures are
// absorbed as "no email" and reported through the progress callback.
func (s *Scraper) Run(ctx context.Context, pref string, progress ProgressFunc) (*Result, error) {
	if pref == "" {
		return nil, zeirishi.Errorf(zeirishi.EINVALID, "prefecture required")
	}

	result := &Result{}
	var prevHash uint64
	for page := 1; ; page++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if s.Limiter != nil {
			if err := s.Limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}

		pageURL := s.Config.SearchPageURL(pref, page)
		html, err := s.fetch(ctx, pageURL)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", page, err)
		}

		records, err := s.Parser.ParseListings(html, s.Config.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", page, err)
		}
		if len(records) == 0 {
			break
		}

		hash := xxhash.Sum64String(html)
		if page > 1 && hash == prevHash {
			break
		}
		prevHash = hash

		if progress != nil {
			progress(ProgressEvent{
				Type:  ProgressPage,
				Page:  page,
				Count: len(records),
				URL:   pageURL,
				HTML:  html,
			})
		}

		for _, rec := range records {
			rec.Prefecture = pref
			rec.Email = s.lookupEmail(ctx, rec.DetailURL, progress)
		}
		result.Records = append(result.Records, records...)
		result.Pages++
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Count: len(result.Records)})
	}
	return result, nil
}

// fetch performs one request bounded by the configured timeout.
func (s *Scraper) fetch(ctx context.Context, url string) (string, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, s.Config.Timeout)
	defer cancel()
	return s.Fetcher.Fetch(fetchCtx, url)
}

// lookupEmail fetches the record's detail page and extracts an address.
// Any failure yields a not-found email; one bad record must never sink the
// run.
func (s *Scraper) lookupEmail(ctx context.Context, detailURL string, progress ProgressFunc) zeirishi.Email {
	if detailURL == "" {
		return zeirishi.Email{}
	}

	html, err := s.fetch(ctx, detailURL)
	if err != nil {
		if progress != nil {
			progress(ProgressEvent{Type: ProgressDetailFailed, URL: detailURL, Err: err})
		}
		return zeirishi.Email{}
	}

	email, err := s.Emails.ExtractEmail(html)
	if err != nil {
		if progress != nil {
			progress(ProgressEvent{Type: ProgressDetailFailed, URL: detailURL, Err: err})
		}
		return zeirishi.Email{}
	}
	return email
}
