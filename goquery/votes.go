package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/kinolist"
)

// VotesExtractor reads the votes and folder lists: ul#itemList > li.
type VotesExtractor struct {
	title    []FieldStrategy
	year     []FieldStrategy
	duration []FieldStrategy
	director []FieldStrategy
}

// NewVotesExtractor creates a VotesExtractor.
func NewVotesExtractor() *VotesExtractor {
	yearInfo := textOf("span")
	return &VotesExtractor{
		title:    []FieldStrategy{textOf("div.name_rating")},
		year:     []FieldStrategy{derivedFrom(yearInfo, ExtractYear)},
		duration: []FieldStrategy{derivedFrom(yearInfo, ExtractDuration)},
		director: []FieldStrategy{
			textOf("i a"),
			joinedTextOf("div.info a.lined", ", "),
		},
	}
}

func (e *VotesExtractor) Items(doc *goquery.Document) *goquery.Selection {
	return doc.Find(votesContainer).First().ChildrenFiltered("li")
}

func (e *VotesExtractor) Record(item *goquery.Selection) (*kinolist.MovieRecord, error) {
	rec := &kinolist.MovieRecord{
		Title:    FirstOf(item, e.title...),
		Year:     FirstOf(item, e.year...),
		Duration: FirstOf(item, e.duration...),
		Director: FirstOf(item, e.director...),
	}
	if err := rec.Validate(); err != nil {
		return nil, kinolist.Errorf(kinolist.ELAYOUT, "div.name_rating not found")
	}
	return rec, nil
}
