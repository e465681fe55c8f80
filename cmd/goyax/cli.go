package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/goyax"
	"github.com/fwojciec/goyax/scrape"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Scraper   *scrape.Scraper
	Snapshots goyax.SnapshotService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Scrape  ScrapeCmd  `cmd:"" help:"Scrape an instrument page and save its data"`
	History HistoryCmd `cmd:"" help:"List recorded scrape snapshots"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	URL       string        `arg:"" optional:"" help:"Instrument page URL (defaults to the built-in instrument page)"`
	Out       string        `short:"o" default:"data/data.json" help:"Output JSON file"`
	DB        string        `help:"SQLite database for snapshot history (disabled when empty)"`
	Browser   bool          `short:"b" help:"Render the page with headless Chrome"`
	Timeout   time.Duration `default:"10s" help:"Fetch timeout"`
	UserAgent string        `name:"user-agent" help:"User-Agent header for HTTP requests"`
	LogFile   string        `name:"log-file" default:"scraper.log" help:"Log file (disabled when empty)"`
	Verbose   bool          `short:"v" help:"Enable debug logging"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	DB    string `required:"" help:"SQLite database holding the snapshot history"`
	URL   string `name:"url" help:"Only show snapshots of this URL"`
	Limit int    `short:"n" default:"20" help:"Maximum number of snapshots to show"`
}
