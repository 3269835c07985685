// Command snapshot renders the first search results page in a headless
// browser and saves its HTML and a full-page screenshot, so the parser's
// CSS selectors can be checked against the site's live markup.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kong"
	zeirishi "github.com/valukujp-oss/zeirishi-scraper"
	"github.com/valukujp-oss/zeirishi-scraper/rod"
)

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Pref    string        `default:"静岡" help:"Prefecture preset into the search URL."`
	HTML    string        `default:"first_page.html" type:"path" help:"Where to write the rendered HTML."`
	Image   string        `default:"first_page.png" type:"path" help:"Where to write the full-page screenshot."`
	Timeout time.Duration `default:"60s" help:"Overall snapshot timeout."`
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("snapshot"),
		kong.Description("Save the first results page as HTML and a screenshot for selector debugging."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}
	if _, err := parser.Parse(args); err != nil {
		return err
	}

	snap, err := rod.NewSnapshotter()
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
		return fmt.Errorf("failed to start browser: %w", err)
	}
	defer snap.Close()

	ctx, cancel := context.WithTimeout(ctx, cli.Timeout)
	defer cancel()

	url := zeirishi.DefaultConfig().SearchPageURL(cli.Pref, 1)
	if err := snap.Snapshot(ctx, url, cli.HTML, cli.Image); err != nil {
		return fmt.Errorf("snapshot %s: %w", url, err)
	}

	fmt.Fprintf(stdout, "Saved %s and %s\n", cli.HTML, cli.Image)
	return nil
}
