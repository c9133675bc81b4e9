package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/kinolist"
)

// seriesMarker tags series titles, whose parenthetical holds a year range.
const seriesMarker = "сериал"

// WatchedExtractor reads the watched films list: div.profileFilmsList > div.item.
type WatchedExtractor struct {
	title     []FieldStrategy
	year      []FieldStrategy
	duration  []FieldStrategy
	dateAdded []FieldStrategy
}

// NewWatchedExtractor creates a WatchedExtractor.
func NewWatchedExtractor() *WatchedExtractor {
	name := textOf("div.nameRus")
	return &WatchedExtractor{
		title: []FieldStrategy{derivedFrom(name, cleanWatchedTitle)},
		year:  []FieldStrategy{derivedFrom(name, ExtractYear)},
		duration: []FieldStrategy{
			lastRatingSpan,
			derivedFrom(textOf("span"), ExtractDuration),
		},
		dateAdded: []FieldStrategy{textOf("div.date")},
	}
}

func (e *WatchedExtractor) Items(doc *goquery.Document) *goquery.Selection {
	return doc.Find(watchedContainer).First().Find("div.item")
}

func (e *WatchedExtractor) Record(item *goquery.Selection) (*kinolist.MovieRecord, error) {
	rec := &kinolist.MovieRecord{
		Title:     FirstOf(item, e.title...),
		Year:      FirstOf(item, e.year...),
		Duration:  FirstOf(item, e.duration...),
		DateAdded: FirstOf(item, e.dateAdded...),
	}
	if err := rec.Validate(); err != nil {
		return nil, kinolist.Errorf(kinolist.ELAYOUT, "div.nameRus not found")
	}
	return rec, nil
}

func cleanWatchedTitle(name string) (string, bool) {
	if strings.Contains(name, seriesMarker) {
		return StripSeriesYears(name), true
	}
	title := DropLastToken(name)
	return title, title != ""
}

// lastRatingSpan reads "(120)"-style runtimes that follow the rating value.
func lastRatingSpan(item *goquery.Selection) (string, bool) {
	spans := item.Find("div.rating span")
	if spans.Length() < 2 {
		return "", false
	}
	v := strings.Trim(normSpace(spans.Last().Text()), "()")
	return v, v != ""
}
