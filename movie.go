package kinolist

import (
	"context"
	"time"
)

// MovieRecord is one movie extracted from a list page.
// Empty fields are absent on the page.
type MovieRecord struct {
	Title     string `json:"title"`
	Year      string `json:"year,omitempty"`
	Duration  string `json:"duration,omitempty"`
	Director  string `json:"director,omitempty"`
	DateAdded string `json:"dateAdded,omitempty"`
}

// Validate returns an error if the record has no title.
func (r *MovieRecord) Validate() error {
	if r.Title == "" {
		return Errorf(ELAYOUT, "movie title required")
	}
	return nil
}

// Row returns the record's cells in the column order of layout.
func (r *MovieRecord) Row(layout Layout) []string {
	last := r.Director
	if layout == LayoutWatched {
		last = r.DateAdded
	}
	return []string{r.Title, r.Year, r.Duration, last}
}

// Table is the ordered set of records extracted from a list.
type Table struct {
	Name    string
	Layout  Layout
	Records []*MovieRecord
}

// Header returns the column names of the table.
func (t *Table) Header() []string {
	return t.Layout.Header()
}

// RecordSink writes an extracted table to a tabular format.
type RecordSink interface {
	WriteTable(ctx context.Context, t *Table) error
}

// OutputFileName returns the name of the table file written for list on date,
// for example "Watched-2026-01-31.xlsx".
func OutputFileName(list string, date time.Time, ext string) string {
	return list + "-" + date.Format(time.DateOnly) + "." + ext
}
