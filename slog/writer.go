package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/goyax"
)

// Ensure LoggingReportWriter implements goyax.ReportWriter.
var _ goyax.ReportWriter = (*LoggingReportWriter)(nil)

// LoggingReportWriter wraps a ReportWriter with logging.
type LoggingReportWriter struct {
	next   goyax.ReportWriter
	logger *slog.Logger
	target string
}

// NewLoggingReportWriter creates a new LoggingReportWriter.
// target names the destination in log output, e.g. a file path.
func NewLoggingReportWriter(next goyax.ReportWriter, logger *slog.Logger, target string) *LoggingReportWriter {
	return &LoggingReportWriter{next: next, logger: logger, target: target}
}

// WriteReport delegates to the wrapped writer and logs the outcome.
func (w *LoggingReportWriter) WriteReport(ctx context.Context, r *goyax.Report) (err error) {
	defer func(begin time.Time) {
		level := slog.LevelInfo
		if err != nil {
			level = slog.LevelError
		}
		w.logger.Log(ctx, level, "write report",
			"target", w.target,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteReport(ctx, r)
}
