package goquery

import (
	"log/slog"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/goyax"
)

// Ensure Extractor implements goyax.Extractor at compile time.
var _ goyax.Extractor = (*Extractor)(nil)

// Extractor assembles a report from the primary fields, the statistics
// table and the side data of an instrument page.
type Extractor struct {
	log goyax.LogFunc
}

// NewExtractor creates a new Extractor reporting progress to log.
// A nil log discards progress messages.
func NewExtractor(log goyax.LogFunc) *Extractor {
	return &Extractor{log: log}
}

// Extract parses markup and extracts the report.
func (e *Extractor) Extract(markup string) (*goyax.Report, error) {
	doc, err := NewDocument(markup)
	if err != nil {
		return nil, err
	}
	return e.ExtractDocument(doc)
}

// ExtractDocument extracts the report from a parsed document.
// Every failure is returned as EEXTRACT wrapping the failure that caused it,
// so goyax.HasErrorCode can still tell a missing table (ETABLE) or side
// panel (EUNLISTED) from a missing name.
func (e *Extractor) ExtractDocument(doc *goquery.Document) (*goyax.Report, error) {
	e.log.Log(slog.LevelInfo, "extracting main stock data")

	report, err := e.extract(doc)
	if err != nil {
		err = goyax.WrapError(goyax.EEXTRACT, err, "data extraction error")
		e.log.Log(slog.LevelError, "error extracting main stock data", "err", goyax.ErrorMessage(err))
		return nil, err
	}

	e.log.Log(slog.LevelInfo, "main stock data extracted")
	return report, nil
}

func (e *Extractor) extract(doc *goquery.Document) (*goyax.Report, error) {
	base, err := ExtractPrimary(doc)
	if err != nil {
		return nil, err
	}

	e.log.Log(slog.LevelInfo, "extracting table data")
	stats, err := ExtractStatistics(doc)
	if err != nil {
		return nil, err
	}
	e.log.Log(slog.LevelInfo, "table data extracted", "headers", len(stats.Headers), "rows", len(stats.Rows))

	e.log.Log(slog.LevelInfo, "extracting unlisted data")
	side, err := ExtractSideData(doc)
	if err != nil {
		return nil, err
	}
	e.log.Log(slog.LevelInfo, "unlisted data extracted", "sections", len(side))

	return goyax.NewReport(*base, stats, side), nil
}
