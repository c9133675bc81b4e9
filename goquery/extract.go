// Package goquery implements list page parsing with github.com/PuerkitoBio/goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/kinolist"
)

// Ensure Extractor implements kinolist.Extractor at compile time.
var _ kinolist.Extractor = (*Extractor)(nil)

// Extractor detects the layout of a list page and extracts its records
// with the extractor registered for that layout.
type Extractor struct {
	detector *Detector
	registry *Registry
}

// NewExtractor creates an Extractor with every known layout registered.
func NewExtractor() *Extractor {
	return NewExtractorWithRegistry(NewDefaultRegistry())
}

// NewExtractorWithRegistry creates an Extractor backed by registry.
func NewExtractorWithRegistry(registry *Registry) *Extractor {
	return &Extractor{
		detector: NewDetector(),
		registry: registry,
	}
}

// Extract parses html and returns its records in document order.
// Items without a title are reported in Skipped rather than failing the page.
func (e *Extractor) Extract(html string) (*kinolist.Extraction, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, kinolist.Errorf(kinolist.EINVALID, "failed to parse HTML: %v", err)
	}

	layout := e.detector.DetectDocument(doc)
	if layout == kinolist.LayoutUnknown {
		return nil, kinolist.Errorf(kinolist.ELAYOUT, "list container not found")
	}

	ie := e.registry.Get(layout)
	if ie == nil {
		return nil, kinolist.Errorf(kinolist.ELAYOUT, "no extractor registered for %s layout", layout)
	}

	result := &kinolist.Extraction{Layout: layout}
	ie.Items(doc).Each(func(i int, item *goquery.Selection) {
		rec, err := ie.Record(item)
		if err != nil {
			result.Skipped = append(result.Skipped, &kinolist.ItemError{Index: i, Err: err})
			return
		}
		result.Records = append(result.Records, rec)
	})

	return result, nil
}
