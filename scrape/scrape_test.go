package scrape_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/goyax"
	"github.com/fwojciec/goyax/mock"
	"github.com/fwojciec/goyax/scrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testURL = "https://www.goyax.de/aktien/X"

func testReport() *goyax.Report {
	return goyax.NewReport(goyax.StockRecord{Name: "Acme AG", Price: "1,00 EUR"}, nil, nil)
}

func TestScraper_Run(t *testing.T) {
	t.Parallel()

	t.Run("fetches, extracts and writes the report", func(t *testing.T) {
		t.Parallel()

		report := testReport()
		var fetchedURL, extractedHTML string
		var written *goyax.Report
		s := &scrape.Scraper{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, url string) (string, error) {
					fetchedURL = url
					return "<html>page</html>", nil
				},
			},
			Extractor: &mock.Extractor{
				ExtractFn: func(html string) (*goyax.Report, error) {
					extractedHTML = html
					return report, nil
				},
			},
			Writer: &mock.ReportWriter{
				WriteReportFn: func(_ context.Context, r *goyax.Report) error {
					written = r
					return nil
				},
			},
		}

		got, err := s.Run(context.Background(), testURL)

		require.NoError(t, err)
		assert.Same(t, report, got)
		assert.Equal(t, testURL, fetchedURL)
		assert.Equal(t, "<html>page</html>", extractedHTML)
		assert.Same(t, report, written)
	})

	t.Run("records a snapshot when history is configured", func(t *testing.T) {
		t.Parallel()

		report := testReport()
		var recorded *goyax.Snapshot
		s := &scrape.Scraper{
			Fetcher: &mock.Fetcher{
				FetchFn: func(context.Context, string) (string, error) { return "<html></html>", nil },
			},
			Extractor: &mock.Extractor{
				ExtractFn: func(string) (*goyax.Report, error) { return report, nil },
			},
			Writer: &mock.ReportWriter{
				WriteReportFn: func(context.Context, *goyax.Report) error { return nil },
			},
			Snapshots: &mock.SnapshotService{
				CreateSnapshotFn: func(_ context.Context, snapshot *goyax.Snapshot) error {
					recorded = snapshot
					return nil
				},
			},
		}

		_, err := s.Run(context.Background(), testURL)

		require.NoError(t, err)
		require.NotNil(t, recorded)
		assert.Equal(t, testURL, recorded.SourceURL)
		assert.Same(t, report, recorded.Report)
	})

	t.Run("fetch failure writes nothing", func(t *testing.T) {
		t.Parallel()

		s := &scrape.Scraper{
			Fetcher: &mock.Fetcher{
				FetchFn: func(context.Context, string) (string, error) {
					return "", errors.New("connection refused")
				},
			},
			Extractor: &mock.Extractor{
				ExtractFn: func(string) (*goyax.Report, error) {
					t.Fatal("extract must not be called")
					return nil, nil
				},
			},
			Writer: &mock.ReportWriter{
				WriteReportFn: func(context.Context, *goyax.Report) error {
					t.Fatal("write must not be called")
					return nil
				},
			},
		}

		_, err := s.Run(context.Background(), testURL)

		require.Error(t, err)
		assert.Equal(t, goyax.EREQUEST, goyax.ErrorCode(err))
		assert.Equal(t, "request error: connection refused", goyax.ErrorMessage(err))
	})

	t.Run("coded fetch errors pass through unchanged", func(t *testing.T) {
		t.Parallel()

		fetchErr := goyax.Errorf(goyax.EREQUEST, "request error: status 404")
		s := &scrape.Scraper{
			Fetcher: &mock.Fetcher{
				FetchFn: func(context.Context, string) (string, error) { return "", fetchErr },
			},
		}

		_, err := s.Run(context.Background(), testURL)

		assert.Same(t, fetchErr, err)
	})

	t.Run("extraction failure writes nothing", func(t *testing.T) {
		t.Parallel()

		extractErr := goyax.WrapError(goyax.EEXTRACT,
			goyax.Errorf(goyax.ETABLE, "statistics region not found"),
			"data extraction error")
		s := &scrape.Scraper{
			Fetcher: &mock.Fetcher{
				FetchFn: func(context.Context, string) (string, error) { return "<html></html>", nil },
			},
			Extractor: &mock.Extractor{
				ExtractFn: func(string) (*goyax.Report, error) { return nil, extractErr },
			},
			Writer: &mock.ReportWriter{
				WriteReportFn: func(context.Context, *goyax.Report) error {
					t.Fatal("write must not be called")
					return nil
				},
			},
		}

		_, err := s.Run(context.Background(), testURL)

		require.Error(t, err)
		assert.Equal(t, goyax.EEXTRACT, goyax.ErrorCode(err))
		assert.True(t, goyax.HasErrorCode(err, goyax.ETABLE))
	})

	t.Run("uncoded write failure becomes persist error", func(t *testing.T) {
		t.Parallel()

		s := &scrape.Scraper{
			Fetcher: &mock.Fetcher{
				FetchFn: func(context.Context, string) (string, error) { return "<html></html>", nil },
			},
			Extractor: &mock.Extractor{
				ExtractFn: func(string) (*goyax.Report, error) { return testReport(), nil },
			},
			Writer: &mock.ReportWriter{
				WriteReportFn: func(context.Context, *goyax.Report) error {
					return errors.New("disk full")
				},
			},
			Snapshots: &mock.SnapshotService{
				CreateSnapshotFn: func(context.Context, *goyax.Snapshot) error {
					t.Fatal("snapshot must not be recorded")
					return nil
				},
			},
		}

		_, err := s.Run(context.Background(), testURL)

		require.Error(t, err)
		assert.Equal(t, goyax.EPERSIST, goyax.ErrorCode(err))
		assert.Equal(t, "file save error: disk full", goyax.ErrorMessage(err))
	})

	t.Run("snapshot failure is reported as persist error", func(t *testing.T) {
		t.Parallel()

		s := &scrape.Scraper{
			Fetcher: &mock.Fetcher{
				FetchFn: func(context.Context, string) (string, error) { return "<html></html>", nil },
			},
			Extractor: &mock.Extractor{
				ExtractFn: func(string) (*goyax.Report, error) { return testReport(), nil },
			},
			Writer: &mock.ReportWriter{
				WriteReportFn: func(context.Context, *goyax.Report) error { return nil },
			},
			Snapshots: &mock.SnapshotService{
				CreateSnapshotFn: func(context.Context, *goyax.Snapshot) error {
					return errors.New("database is locked")
				},
			},
		}

		_, err := s.Run(context.Background(), testURL)

		require.Error(t, err)
		assert.Equal(t, goyax.EPERSIST, goyax.ErrorCode(err))
	})

	t.Run("cancelled context stops before writing", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		s := &scrape.Scraper{
			Fetcher: &mock.Fetcher{
				FetchFn: func(context.Context, string) (string, error) { return "<html></html>", nil },
			},
			Extractor: &mock.Extractor{
				ExtractFn: func(string) (*goyax.Report, error) {
					cancel()
					return testReport(), nil
				},
			},
			Writer: &mock.ReportWriter{
				WriteReportFn: func(context.Context, *goyax.Report) error {
					t.Fatal("write must not be called")
					return nil
				},
			},
		}

		_, err := s.Run(ctx, testURL)

		require.ErrorIs(t, err, context.Canceled)
	})
}
