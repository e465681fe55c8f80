package mock_test

import (
	"context"
	"testing"

	"github.com/fwojciec/goyax"
	"github.com/fwojciec/goyax/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportWriter_ImplementsInterface(t *testing.T) {
	t.Parallel()

	var _ goyax.ReportWriter = &mock.ReportWriter{}
}

func TestReportWriter_WriteReport(t *testing.T) {
	t.Parallel()

	t.Run("delegates to WriteReportFn", func(t *testing.T) {
		t.Parallel()

		var calledWith *goyax.Report
		w := &mock.ReportWriter{
			WriteReportFn: func(_ context.Context, r *goyax.Report) error {
				calledWith = r
				return nil
			},
		}

		report := goyax.NewReport(goyax.StockRecord{Name: "Acme AG", Price: "1,00 EUR"}, nil, nil)

		err := w.WriteReport(context.Background(), report)

		require.NoError(t, err)
		assert.Equal(t, report, calledWith)
	})
}
