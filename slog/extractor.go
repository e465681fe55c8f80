package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/goyax"
)

// Ensure LoggingExtractor implements goyax.Extractor.
var _ goyax.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging.
type LoggingExtractor struct {
	next   goyax.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next goyax.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs what was found.
func (e *LoggingExtractor) Extract(html string) (report *goyax.Report, err error) {
	defer func(begin time.Time) {
		if err != nil {
			e.logger.Error("extract",
				"bytes", len(html),
				"duration", time.Since(begin),
				"code", goyax.ErrorCode(err),
				"err", goyax.ErrorMessage(err),
			)
			return
		}
		record := report.MainStockData
		e.logger.Info("extract",
			"bytes", len(html),
			"name", record.Name,
			"price", record.Price,
			"badges", len(record.Badges),
			"statistics", record.Statistics != nil,
			"sections", len(record.SideData),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return e.next.Extract(html)
}

// LogFunc adapts logger to a goyax.LogFunc.
func LogFunc(logger *slog.Logger) goyax.LogFunc {
	return func(level slog.Level, msg string, args ...any) {
		logger.Log(context.Background(), level, msg, args...)
	}
}
