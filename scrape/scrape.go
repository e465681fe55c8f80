// Package scrape coordinates a single scrape run: fetching an instrument
// page, extracting its report and persisting the result.
package scrape

import (
	"context"

	"github.com/fwojciec/goyax"
)

// Scraper runs fetch, extraction and persistence in sequence.
// Snapshots is optional; when nil no history is recorded.
type Scraper struct {
	Fetcher   goyax.Fetcher
	Extractor goyax.Extractor
	Writer    goyax.ReportWriter
	Snapshots goyax.SnapshotService
}

// Run scrapes url once. Nothing is persisted unless fetch and extraction
// succeed. Errors carry EREQUEST, EEXTRACT or EPERSIST depending on the
// stage that failed.
func (s *Scraper) Run(ctx context.Context, url string) (*goyax.Report, error) {
	html, err := s.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, recode(goyax.EREQUEST, err, "request error")
	}

	report, err := s.Extractor.Extract(html)
	if err != nil {
		return nil, recode(goyax.EEXTRACT, err, "data extraction error")
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := s.Writer.WriteReport(ctx, report); err != nil {
		return nil, recode(goyax.EPERSIST, err, "file save error")
	}

	if s.Snapshots != nil {
		snapshot := &goyax.Snapshot{SourceURL: url, Report: report}
		if err := s.Snapshots.CreateSnapshot(ctx, snapshot); err != nil {
			return nil, recode(goyax.EPERSIST, err, "snapshot save error")
		}
	}

	return report, nil
}

// recode wraps err with code unless it already carries an application code.
func recode(code string, err error, prefix string) error {
	if goyax.ErrorCode(err) != goyax.EINTERNAL {
		return err
	}
	return goyax.WrapError(code, err, "%s", prefix)
}
