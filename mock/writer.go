package mock

import (
	"context"

	"github.com/fwojciec/goyax"
)

var _ goyax.ReportWriter = (*ReportWriter)(nil)

// ReportWriter is a mock implementation of goyax.ReportWriter.
type ReportWriter struct {
	WriteReportFn func(ctx context.Context, r *goyax.Report) error
}

func (w *ReportWriter) WriteReport(ctx context.Context, r *goyax.Report) error {
	return w.WriteReportFn(ctx, r)
}
