package main

import (
	"context"
	"fmt"
	"io"
	"os"

	zeirishi "github.com/valukujp-oss/zeirishi-scraper"
	"github.com/valukujp-oss/zeirishi-scraper/scrape"
)

// debugHTMLPath is where --debug dumps the first result page's raw HTML.
const debugHTMLPath = "first_page.html"

// Dependencies holds the wired services for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Scraper *scrape.Scraper
	Writer  zeirishi.WorkbookWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Pref  string  `required:"" help:"Prefecture name used as the search parameter and the region label (e.g. 静岡)."`
	Out   string  `required:"" type:"path" help:"Output XLSX file path."`
	Delay float64 `default:"1.0" help:"Seconds to wait between result-page fetches."`
	Debug bool    `help:"Dump the first page's HTML to first_page.html and print per-page record counts."`
}

// Run executes the scrape and writes the workbook.
func (c *CLI) Run(deps *Dependencies) error {
	progress := func(event scrape.ProgressEvent) {
		switch event.Type {
		case scrape.ProgressPage:
			if !c.Debug {
				return
			}
			fmt.Fprintf(deps.Stdout, "page %d: %d records\n", event.Page, event.Count)
			if event.Page == 1 {
				if err := os.WriteFile(debugHTMLPath, []byte(event.HTML), 0644); err != nil {
					fmt.Fprintf(deps.Stderr, "warning: could not write %s: %v\n", debugHTMLPath, err)
				}
			}
		case scrape.ProgressDetailFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", event.URL, event.Err)
		}
	}

	result, err := deps.Scraper.Run(deps.Ctx, c.Pref, progress)
	if err != nil {
		return err
	}

	if len(result.Records) == 0 {
		fmt.Fprintln(deps.Stdout, "検索結果が取得できませんでした。")
		return nil
	}

	wb := zeirishi.BuildWorkbook(c.Pref, result.Records)
	if err := deps.Writer.WriteWorkbook(deps.Ctx, c.Out, wb); err != nil {
		return fmt.Errorf("writing %s: %w", c.Out, err)
	}

	fmt.Fprintf(deps.Stdout, "Done. -> %s\n", c.Out)
	return nil
}
