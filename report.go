package goyax

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
)

// StatisticsTable holds the instrument's statistics table.
// Each row starts with its label cell; row width is not reconciled with the
// number of headers.
type StatisticsTable struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// IsEmpty reports whether the table has neither headers nor rows.
func (t *StatisticsTable) IsEmpty() bool {
	return t == nil || (len(t.Headers) == 0 && len(t.Rows) == 0)
}

// SideDataSection maps a side-panel label to its value.
type SideDataSection map[string]string

// SideData maps a side-panel section title to its label/value pairs.
type SideData map[string]SideDataSection

// Badges maps a normalized badge label (e.g. "isin", "wahrung") to its value.
type Badges map[string]string

// StockRecord is the normalized record extracted from an instrument page.
type StockRecord struct {
	Name       string           `json:"name"`
	Price      string           `json:"price"`
	Badges     Badges           `json:"badges,omitempty"`
	Statistics *StatisticsTable `json:"statistiken,omitempty"`
	SideData   SideData         `json:"side_data,omitempty"`
}

// Report is the persisted document. All data is grouped under one key.
type Report struct {
	MainStockData StockRecord `json:"main_stock_data"`
}

// NewReport assembles a report from the primary fields in base and the
// optional statistics and side data. Empty statistics, side data and badges
// are left out.
func NewReport(base StockRecord, stats *StatisticsTable, side SideData) *Report {
	record := StockRecord{
		Name:  base.Name,
		Price: base.Price,
	}
	if len(base.Badges) > 0 {
		record.Badges = base.Badges
	}
	if !stats.IsEmpty() {
		record.Statistics = &StatisticsTable{
			Headers: nonNil(stats.Headers),
			Rows:    stats.Rows,
		}
		if record.Statistics.Rows == nil {
			record.Statistics.Rows = [][]string{}
		}
	}
	if len(side) > 0 {
		record.SideData = side
	}
	return &Report{MainStockData: record}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// Validate returns an error if the report is missing required fields.
func (r *Report) Validate() error {
	if r.MainStockData.Name == "" {
		return Errorf(EINVALID, "report name required")
	}
	if r.MainStockData.Price == "" {
		return Errorf(EINVALID, "report price required")
	}
	return nil
}

// EncodeReport writes the canonical JSON form of r to w: UTF-8, four-space
// indentation, no HTML escaping, terminated by a newline.
func EncodeReport(w io.Writer, r *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	enc.SetEscapeHTML(false)
	return enc.Encode(r)
}

// MarshalReport returns the canonical JSON form of r.
func MarshalReport(r *Report) ([]byte, error) {
	var buf bytes.Buffer
	if err := EncodeReport(&buf, r); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Extractor turns raw instrument page markup into a report.
type Extractor interface {
	// Extract parses html and extracts the report.
	// Returns EEXTRACT on failure; the cause chain keeps ETABLE or
	// EUNLISTED when one of those regions was the reason.
	Extract(html string) (*Report, error)
}

// ReportWriter persists reports.
type ReportWriter interface {
	// WriteReport durably stores the report, replacing any previous one.
	// Returns EPERSIST on failure.
	WriteReport(ctx context.Context, r *Report) error
}
