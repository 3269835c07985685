// Package rod captures debug snapshots of the search site using Chrome
// browser automation. The snapshot (rendered HTML plus a full-page
// screenshot) exists to verify the CSS selectors the parser relies on
// against the site's live markup.
package rod

import (
	"context"
	"fmt"
	"os"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Default snapshot filenames, written to the working directory.
const (
	DefaultHTMLPath  = "first_page.html"
	DefaultImagePath = "first_page.png"
)

// Snapshotter renders pages in a headless Chrome browser and persists what
// it sees.
type Snapshotter struct {
	browser *rod.Browser
}

// NewSnapshotter creates a new Snapshotter that launches a headless Chrome
// browser. Close must be called when the Snapshotter is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewSnapshotter() (*Snapshotter, error) {
	l := launcher.New().Headless(true)
	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill() // Clean up launched process on connection failure
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	return &Snapshotter{browser: browser}, nil
}

// Snapshot navigates to url, waits for the page to load, and writes the
// rendered HTML to htmlPath and a full-page PNG screenshot to imagePath.
func (s *Snapshotter) Snapshot(ctx context.Context, url, htmlPath, imagePath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	page, err := s.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return err
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return err
	}
	if err := page.WaitLoad(); err != nil {
		return err
	}

	html, err := page.HTML()
	if err != nil {
		return err
	}
	if err := os.WriteFile(htmlPath, []byte(html), 0644); err != nil {
		return err
	}

	img, err := page.Screenshot(true, &proto.PageCaptureScreenshot{
		Format: proto.PageCaptureScreenshotFormatPng,
	})
	if err != nil {
		return err
	}
	return os.WriteFile(imagePath, img, 0644)
}

// Close releases browser resources.
func (s *Snapshotter) Close() error {
	return s.browser.Close()
}
