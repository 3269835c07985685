package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"
	zeirishi "github.com/valukujp-oss/zeirishi-scraper"
	"github.com/valukujp-oss/zeirishi-scraper/excelize"
	"github.com/valukujp-oss/zeirishi-scraper/goquery"
	zhttp "github.com/valukujp-oss/zeirishi-scraper/http"
	"github.com/valukujp-oss/zeirishi-scraper/scrape"
	zslog "github.com/valukujp-oss/zeirishi-scraper/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Config holds the fixed request parameters. Override BaseURL before
	// calling Run() to point the scraper at a test server.
	Config zeirishi.Config
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Config: zeirishi.DefaultConfig(),
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("zeirishi"),
		kong.Description("Scrape the tax accountant directory by prefecture and export the results to XLSX."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cfg := m.Config
	cfg.Delay = time.Duration(cli.Delay * float64(time.Second))
	if err := cfg.Validate(); err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})).
		With("run_id", uuid.NewString(), "pref", cli.Pref)

	fetcher := zslog.NewLoggingFetcher(
		zhttp.NewFetcher(zhttp.WithTimeout(cfg.Timeout), zhttp.WithUserAgent(cfg.UserAgent)),
		logger,
	)
	defer fetcher.Close()

	deps.Scraper = &scrape.Scraper{
		Config:  cfg,
		Fetcher: fetcher,
		Parser:  goquery.NewListingParser(),
		Emails:  goquery.NewEmailExtractor(),
		Limiter: scrape.NewPageLimiter(cfg.Delay),
	}
	deps.Writer = excelize.NewWriter()

	return kongCtx.Run(deps)
}
