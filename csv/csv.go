// Package csv writes movie tables as semicolon-separated text.
package csv

import (
	"context"
	"encoding/csv"
	"io"
	"os"

	"github.com/fwojciec/kinolist"
)

// Ext is the file extension of written tables.
const Ext = "csv"

// Comma separates fields. Titles and director lists often contain commas.
const Comma = ';'

// Compile-time interface verification.
var _ kinolist.RecordSink = (*Sink)(nil)

// Sink writes a table to a file, replacing any existing file.
type Sink struct {
	path string
}

// NewSink creates a Sink writing to path.
func NewSink(path string) *Sink {
	return &Sink{path: path}
}

// WriteTable writes t with a header row.
func (s *Sink) WriteTable(ctx context.Context, t *kinolist.Table) error {
	f, err := os.Create(s.path)
	if err != nil {
		return err
	}
	if err := Encode(f, t); err != nil {
		f.Close()
		os.Remove(s.path)
		return err
	}
	return f.Close()
}

// Encode writes t to w. Absent fields are written as empty cells.
func Encode(w io.Writer, t *kinolist.Table) error {
	cw := csv.NewWriter(w)
	cw.Comma = Comma

	if err := cw.Write(t.Header()); err != nil {
		return err
	}
	for _, r := range t.Records {
		if err := cw.Write(r.Row(t.Layout)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
