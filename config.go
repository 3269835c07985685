package zeirishi

import (
	"net/url"
	"strconv"
	"time"
)

// DefaultBaseURL is the search endpoint of the tax accountant directory.
const DefaultBaseURL = "https://www.zeirishikensaku.jp/NzSearchContentPerson"

// DefaultUserAgent is sent with every request so traffic is identifiable as
// a regular desktop browser session.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
	"AppleWebKit/537.36 (KHTML, like Gecko) " +
	"Chrome/124.0.0.0 Safari/537.36"

// Default request parameters.
const (
	DefaultTimeout = 20 * time.Second
	DefaultDelay   = 1 * time.Second
)

// Config holds the fixed parameters of a scrape run. It is constructed once
// at startup and passed explicitly to each component; nothing reads it as
// ambient state.
type Config struct {
	// BaseURL is the search endpoint queried with pref and page parameters.
	BaseURL string

	// UserAgent is sent on every HTTP request.
	UserAgent string

	// Timeout bounds each individual request.
	Timeout time.Duration

	// Delay is the courtesy pause between listing-page fetches.
	Delay time.Duration
}

// DefaultConfig returns a Config populated with the directory's defaults.
func DefaultConfig() Config {
	return Config{
		BaseURL:   DefaultBaseURL,
		UserAgent: DefaultUserAgent,
		Timeout:   DefaultTimeout,
		Delay:     DefaultDelay,
	}
}

// Validate returns an error if the config contains invalid fields.
func (c Config) Validate() error {
	if c.BaseURL == "" {
		return Errorf(EINVALID, "base URL required")
	}
	if _, err := url.Parse(c.BaseURL); err != nil {
		return Errorf(EINVALID, "invalid base URL: %v", err)
	}
	if c.Timeout <= 0 {
		return Errorf(EINVALID, "timeout must be positive")
	}
	if c.Delay < 0 {
		return Errorf(EINVALID, "delay must not be negative")
	}
	return nil
}

// SearchPageURL returns the listing URL for one prefecture and page number.
func (c Config) SearchPageURL(pref string, page int) string {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return c.BaseURL
	}
	q := u.Query()
	q.Set("pref", pref)
	q.Set("page", strconv.Itoa(page))
	u.RawQuery = q.Encode()
	return u.String()
}
