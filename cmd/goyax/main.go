package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/goyax"
	"github.com/fwojciec/goyax/fs"
	"github.com/fwojciec/goyax/goquery"
	goyaxhttp "github.com/fwojciec/goyax/http"
	"github.com/fwojciec/goyax/rod"
	"github.com/fwojciec/goyax/scrape"
	goyaxslog "github.com/fwojciec/goyax/slog"
	"github.com/fwojciec/goyax/sqlite"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	m := NewMain()

	err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite database used by the snapshot history, if configured.
	DB *sqlite.DB

	// Fetcher used by the scrape command, closed by Close.
	Fetcher goyax.Fetcher

	logFile *os.File
}

// NewMain returns a new instance of Main.
func NewMain() *Main {
	return &Main{}
}

// Close releases the fetcher, database and log file.
func (m *Main) Close() error {
	var err error
	if m.Fetcher != nil {
		if e := m.Fetcher.Close(); e != nil && err == nil {
			err = e
		}
	}
	if m.DB != nil {
		if e := m.DB.Close(); e != nil && err == nil {
			err = e
		}
	}
	if m.logFile != nil {
		if e := m.logFile.Close(); e != nil && err == nil {
			err = e
		}
	}
	return err
}

// Run executes the CLI with the given arguments. Failures are reported on
// stderr as "error: <message>" before being returned.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) (err error) {
	defer func() {
		if err != nil {
			fmt.Fprintf(stderr, "error: %s\n", goyax.ErrorMessage(err))
		}
	}()

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("goyax"),
		kong.Description("Scrape instrument data from goyax.de."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'goyax --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	if wantsHelp(args) {
		return nil
	}
	defer m.Close()

	switch cmd {
	case "scrape":
		if err := m.wireScrape(deps, &cli.Scrape); err != nil {
			return err
		}
	case "history":
		if err := m.openDB(cli.History.DB); err != nil {
			return err
		}
		deps.Snapshots = sqlite.NewSnapshotService(m.DB)
	}

	return kongCtx.Run(deps)
}

// wireScrape builds the logger and the scrape pipeline from the command flags.
func (m *Main) wireScrape(deps *Dependencies, c *ScrapeCmd) error {
	var file io.Writer
	if c.LogFile != "" {
		f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file %q: %w", c.LogFile, err)
		}
		m.logFile = f
		file = f
	}
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(goyaxslog.NewHandler(deps.Stderr, file, level))
	deps.Logger = logger

	if m.Fetcher == nil {
		if c.Browser {
			fetcher, err := rod.NewFetcher(rod.WithFetchTimeout(c.Timeout))
			if err != nil {
				fmt.Fprintln(deps.Stderr, "Hint: Chrome or Chromium must be installed")
				return fmt.Errorf("failed to start browser: %w", err)
			}
			m.Fetcher = fetcher
		} else {
			opts := []goyaxhttp.Option{goyaxhttp.WithTimeout(c.Timeout)}
			if c.UserAgent != "" {
				opts = append(opts, goyaxhttp.WithUserAgent(c.UserAgent))
			}
			m.Fetcher = goyaxhttp.NewFetcher(opts...)
		}
	}

	writer := fs.NewWriter(c.Out)
	scraper := &scrape.Scraper{
		Fetcher:   goyaxslog.NewLoggingFetcher(m.Fetcher, logger),
		Extractor: goyaxslog.NewLoggingExtractor(goquery.NewExtractor(goyaxslog.LogFunc(logger)), logger),
		Writer:    goyaxslog.NewLoggingReportWriter(writer, logger, writer.Path()),
	}

	if c.DB != "" {
		if err := m.openDB(c.DB); err != nil {
			return err
		}
		scraper.Snapshots = sqlite.NewSnapshotService(m.DB)
		deps.Snapshots = scraper.Snapshots
	}

	deps.Scraper = scraper
	return nil
}

func (m *Main) openDB(path string) error {
	m.DB = sqlite.NewDB(path)
	if err := m.DB.Open(); err != nil {
		return fmt.Errorf("failed to open database at %q: %w", path, err)
	}
	return nil
}

// wantsHelp reports whether args request subcommand help, which Kong has
// already printed during Parse.
func wantsHelp(args []string) bool {
	for _, arg := range args {
		if arg == "--help" || arg == "-h" {
			return true
		}
	}
	return false
}
