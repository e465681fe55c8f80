package mock

import "github.com/fwojciec/goyax"

var _ goyax.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of goyax.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*goyax.Report, error)
}

func (e *Extractor) Extract(html string) (*goyax.Report, error) {
	return e.ExtractFn(html)
}
