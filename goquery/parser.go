// Package goquery implements HTML extraction using CSS selector fallback
// lists. The directory's markup is unstable, so listing cards and every
// field within a card are located by trying an ordered list of selectors
// and taking the first hit.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	zeirishi "github.com/valukujp-oss/zeirishi-scraper"
)

// Ensure ListingParser implements zeirishi.ListingParser at compile time.
var _ zeirishi.ListingParser = (*ListingParser)(nil)

// cardSelectors locate one listing card each; any match is accepted.
var cardSelectors = []string{".resultItem", ".search-result-item", ".listItem"}

// Per-field selector fallback lists, tried in order. The first matching
// element wins; no match leaves the field not-found.
var (
	officeSelectors         = []string{".officeName", ".name", "h3"}
	representativeSelectors = []string{".rep", ".representative", ".owner"}
	phoneSelectors          = []string{".tel", ".phone"}
	addressSelectors        = []string{".addr", ".address"}
	registrationSelectors   = []string{".registered", ".register", ".reg"}
)

// ListingParser extracts records from search result pages.
type ListingParser struct{}

// NewListingParser creates a new ListingParser.
func NewListingParser() *ListingParser {
	return &ListingParser{}
}

// ParseListings returns one record per listing card found in html. A card
// missing a field still yields a record; only the field stays not-found.
func (p *ListingParser) ParseListings(html, baseURL string) ([]*zeirishi.Record, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, zeirishi.Errorf(zeirishi.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, zeirishi.Errorf(zeirishi.EINVALID, "failed to parse HTML: %v", err)
	}

	var records []*zeirishi.Record
	doc.Find(strings.Join(cardSelectors, ", ")).Each(func(_ int, card *goquery.Selection) {
		rec := &zeirishi.Record{
			OfficeName:     firstMatch(card, officeSelectors),
			Representative: firstMatch(card, representativeSelectors),
			Phone:          firstMatch(card, phoneSelectors),
			Address:        firstMatch(card, addressSelectors),
			DetailURL:      detailURL(card, base),
		}
		rec.RegistrationEra = zeirishi.NormalizeEra(firstMatch(card, registrationSelectors).String())
		records = append(records, rec)
	})
	return records, nil
}

// firstMatch tries selectors in order and returns the first matching
// element's trimmed text as a found Field.
func firstMatch(card *goquery.Selection, selectors []string) zeirishi.Field {
	for _, selector := range selectors {
		if el := card.Find(selector).First(); el.Length() > 0 {
			return zeirishi.NewField(strings.TrimSpace(el.Text()))
		}
	}
	return zeirishi.Field{}
}

// detailURL returns the card's first link resolved against base, or the
// empty string when the card has no usable anchor.
func detailURL(card *goquery.Selection, base *url.URL) string {
	href, ok := card.Find("a[href]").First().Attr("href")
	if !ok || href == "" {
		return ""
	}
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}
