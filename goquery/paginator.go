package goquery

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/kinolist"
)

// Ensure Paginator implements kinolist.PageCounter at compile time.
var _ kinolist.PageCounter = (*Paginator)(nil)

var pageIndexRe = regexp.MustCompile(`page[/=](\d{1,3})`)

// Paginator reads the page count from the list navigator.
// The last navigator entry links to the final page.
type Paginator struct{}

// NewPaginator creates a new Paginator.
func NewPaginator() *Paginator {
	return &Paginator{}
}

// CountPages returns the number of list pages advertised by html.
func (p *Paginator) CountPages(html string) (int, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return 0, kinolist.Errorf(kinolist.EINVALID, "failed to parse HTML: %v", err)
	}

	entries := doc.Find("div.navigator ul.list").First().Find("li")
	if entries.Length() == 0 {
		return 0, kinolist.Errorf(kinolist.ELAYOUT, "navigation not found")
	}

	href, ok := entries.Last().Find("a").First().Attr("href")
	if !ok {
		return 0, kinolist.Errorf(kinolist.ELAYOUT, "navigation not found: last entry has no link")
	}

	m := pageIndexRe.FindStringSubmatch(href)
	if m == nil {
		return 0, kinolist.Errorf(kinolist.ELAYOUT, "page index not found in %q", href)
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n < 1 {
		return 0, kinolist.Errorf(kinolist.ELAYOUT, "invalid page index in %q", href)
	}
	return n, nil
}
