// Package fs provides file-based storage for reports.
package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/goyax"
)

// DefaultPath is where reports are written when no path is configured.
const DefaultPath = "data/data.json"

// Ensure Writer implements goyax.ReportWriter at compile time.
var _ goyax.ReportWriter = (*Writer)(nil)

// Writer writes a report as a JSON file.
// Each write replaces the previous file as a whole.
type Writer struct {
	path string
}

// NewWriter creates a new Writer that writes to path.
// An empty path selects DefaultPath.
func NewWriter(path string) *Writer {
	if path == "" {
		path = DefaultPath
	}
	return &Writer{path: path}
}

// Path returns the file the Writer writes to.
func (w *Writer) Path() string {
	return w.path
}

// WriteReport encodes the report and atomically replaces the target file.
// Parent directories are created as needed.
func (w *Writer) WriteReport(ctx context.Context, r *goyax.Report) error {
	if err := r.Validate(); err != nil {
		return err
	}

	data, err := goyax.MarshalReport(r)
	if err != nil {
		return goyax.WrapError(goyax.EPERSIST, err, "file save error")
	}

	dir := filepath.Dir(w.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return goyax.WrapError(goyax.EPERSIST, err, "file save error")
	}

	// Write next to the target so the rename stays on one filesystem.
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(w.path)+".*.tmp")
	if err != nil {
		return goyax.WrapError(goyax.EPERSIST, err, "file save error")
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return goyax.WrapError(goyax.EPERSIST, err, "file save error")
	}
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return goyax.WrapError(goyax.EPERSIST, err, "file save error")
	}
	if err := tmp.Close(); err != nil {
		return goyax.WrapError(goyax.EPERSIST, err, "file save error")
	}

	if err := os.Rename(tmp.Name(), w.path); err != nil {
		return goyax.WrapError(goyax.EPERSIST, err, "file save error")
	}
	return nil
}
