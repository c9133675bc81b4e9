package mock

import "github.com/fwojciec/kinolist"

var _ kinolist.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of kinolist.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*kinolist.Extraction, error)
}

func (e *Extractor) Extract(html string) (*kinolist.Extraction, error) {
	return e.ExtractFn(html)
}
