package mock

import (
	zeirishi "github.com/valukujp-oss/zeirishi-scraper"
)

var _ zeirishi.ListingParser = (*ListingParser)(nil)

// ListingParser is a mock implementation of zeirishi.ListingParser.
type ListingParser struct {
	ParseListingsFn func(html, baseURL string) ([]*zeirishi.Record, error)
}

func (p *ListingParser) ParseListings(html, baseURL string) ([]*zeirishi.Record, error) {
	return p.ParseListingsFn(html, baseURL)
}

var _ zeirishi.EmailExtractor = (*EmailExtractor)(nil)

// EmailExtractor is a mock implementation of zeirishi.EmailExtractor.
type EmailExtractor struct {
	ExtractEmailFn func(html string) (zeirishi.Email, error)
}

func (e *EmailExtractor) ExtractEmail(html string) (zeirishi.Email, error) {
	return e.ExtractEmailFn(html)
}
