package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	zeirishi "github.com/valukujp-oss/zeirishi-scraper"
	"golang.org/x/net/html"
)

// Ensure EmailExtractor implements zeirishi.EmailExtractor at compile time.
var _ zeirishi.EmailExtractor = (*EmailExtractor)(nil)

// emailPattern is a pragmatic address shape, not RFC 5322 validation.
// The full local@domain.tld shape is required so stray @ characters in page
// text don't produce false positives.
var emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)

// EmailExtractor finds contact addresses in detail pages.
type EmailExtractor struct{}

// NewEmailExtractor creates a new EmailExtractor.
func NewEmailExtractor() *EmailExtractor {
	return &EmailExtractor{}
}

// ExtractEmail prefers an explicit mailto: link, then falls back to scanning
// the page's visible text for the first address-shaped token. Obfuscated
// addresses are missed rather than guessed at.
func (e *EmailExtractor) ExtractEmail(htmlSrc string) (zeirishi.Email, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlSrc))
	if err != nil {
		return zeirishi.Email{}, zeirishi.Errorf(zeirishi.EINVALID, "failed to parse HTML: %v", err)
	}

	if href, ok := doc.Find("a[href^='mailto:']").First().Attr("href"); ok {
		addr := strings.TrimSpace(strings.TrimPrefix(href, "mailto:"))
		if addr != "" {
			return zeirishi.Email{Address: addr, Found: true}, nil
		}
	}

	if m := emailPattern.FindString(visibleText(doc)); m != "" {
		return zeirishi.Email{Address: m, Found: true}, nil
	}
	return zeirishi.Email{}, nil
}

// visibleText flattens the document to whitespace-joined text, skipping
// script and style contents.
func visibleText(doc *goquery.Document) string {
	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				if b.Len() > 0 {
					b.WriteByte(' ')
				}
				b.WriteString(t)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range doc.Nodes {
		walk(n)
	}
	return b.String()
}
