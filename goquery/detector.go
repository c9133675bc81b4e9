package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/kinolist"
)

// Layout containers. Each list page has exactly one of them.
const (
	votesContainer   = "ul#itemList"
	watchedContainer = "div.profileFilmsList"
)

// Detector identifies the list layout of a page from its container element.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Detect analyzes HTML and returns the identified layout.
// Returns LayoutUnknown if no list container is present.
func (d *Detector) Detect(html string) kinolist.Layout {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return kinolist.LayoutUnknown
	}
	return d.DetectDocument(doc)
}

// DetectDocument is like Detect for an already parsed document.
func (d *Detector) DetectDocument(doc *goquery.Document) kinolist.Layout {
	switch {
	case doc.Find(votesContainer).Length() > 0:
		return kinolist.LayoutVotes
	case doc.Find(watchedContainer).Length() > 0:
		return kinolist.LayoutWatched
	default:
		return kinolist.LayoutUnknown
	}
}
