package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/kinolist"
)

// ItemExtractor turns the items of one list layout into records.
type ItemExtractor interface {
	// Items returns the list items of the page in document order.
	Items(doc *goquery.Document) *goquery.Selection

	// Record builds a record from one item.
	// Returns ELAYOUT if a mandatory field is missing.
	Record(item *goquery.Selection) (*kinolist.MovieRecord, error)
}

// Registry maps list layouts to their item extractors.
type Registry struct {
	extractors map[kinolist.Layout]ItemExtractor
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		extractors: make(map[kinolist.Layout]ItemExtractor),
	}
}

// NewDefaultRegistry creates a Registry with all known layouts registered.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(kinolist.LayoutVotes, NewVotesExtractor())
	r.Register(kinolist.LayoutWatched, NewWatchedExtractor())
	return r
}

// Get returns the extractor for a layout.
// Returns nil if no extractor is registered for the layout.
func (r *Registry) Get(layout kinolist.Layout) ItemExtractor {
	return r.extractors[layout]
}

// Register adds an extractor for a layout.
// If an extractor is already registered for the layout, it is replaced.
func (r *Registry) Register(layout kinolist.Layout, e ItemExtractor) {
	r.extractors[layout] = e
}

// List returns all registered layouts.
func (r *Registry) List() []kinolist.Layout {
	layouts := make([]kinolist.Layout, 0, len(r.extractors))
	for l := range r.extractors {
		layouts = append(layouts, l)
	}
	return layouts
}
