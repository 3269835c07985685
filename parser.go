package zeirishi

// ListingParser extracts directory records from one page of search results.
type ListingParser interface {
	// ParseListings returns one Record per listing card found in html.
	// Relative detail links are resolved against baseURL. A missing field
	// never fails the record; it is left not-found. A page with no
	// recognizable cards yields an empty slice, which the pagination
	// driver treats as the end of the result set.
	ParseListings(html, baseURL string) ([]*Record, error)
}

// EmailExtractor recovers a contact email address from a detail page.
type EmailExtractor interface {
	// ExtractEmail prefers an explicit mailto: link and falls back to
	// scanning the page's visible text for an address-shaped token.
	// A page without either yields a not-found Email, not an error.
	ExtractEmail(html string) (Email, error)
}
