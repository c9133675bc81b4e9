// Package xlsx writes movie tables as single-sheet Excel workbooks.
package xlsx

import (
	"context"
	"io"
	"strings"

	"github.com/fwojciec/kinolist"
	"github.com/xuri/excelize/v2"
)

// Ext is the file extension of written workbooks.
const Ext = "xlsx"

// DefaultSheet is the sheet a new workbook starts with.
const DefaultSheet = "Sheet1"

// maxSheetName is the longest sheet name spreadsheet applications accept.
const maxSheetName = 31

// Compile-time interface verification.
var _ kinolist.RecordSink = (*Sink)(nil)

// Sink writes a table to a workbook file, replacing any existing file.
type Sink struct {
	path string
}

// NewSink creates a Sink writing to path.
func NewSink(path string) *Sink {
	return &Sink{path: path}
}

// WriteTable writes t as a single-sheet workbook.
func (s *Sink) WriteTable(ctx context.Context, t *kinolist.Table) error {
	f, err := workbook(t)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.SaveAs(s.path)
}

// Encode writes t to w as a workbook with a header row followed by one row
// per record. Absent fields produce no cell.
func Encode(w io.Writer, t *kinolist.Table) error {
	f, err := workbook(t)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Write(w)
}

func workbook(t *kinolist.Table) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := SheetName(t.Name)
	if sheet != DefaultSheet {
		if err := f.SetSheetName(DefaultSheet, sheet); err != nil {
			f.Close()
			return nil, kinolist.Errorf(kinolist.EINVALID, "sheet name %q: %v", sheet, err)
		}
	}

	if err := writeRow(f, sheet, 1, t.Header()); err != nil {
		f.Close()
		return nil, err
	}
	for i, r := range t.Records {
		if err := writeRow(f, sheet, i+2, r.Row(t.Layout)); err != nil {
			f.Close()
			return nil, err
		}
	}
	return f, nil
}

func writeRow(f *excelize.File, sheet string, row int, cells []string) error {
	for i, v := range cells {
		if v == "" {
			continue
		}
		ref, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellStr(sheet, ref, v); err != nil {
			return err
		}
	}
	return nil
}

// SheetName converts a list name into a valid sheet name.
func SheetName(name string) string {
	name = strings.Map(func(r rune) rune {
		if strings.ContainsRune(`[]:*?/\`, r) {
			return '_'
		}
		return r
	}, name)
	name = strings.Trim(name, "'")
	if r := []rune(name); len(r) > maxSheetName {
		name = strings.TrimRight(string(r[:maxSheetName]), "'")
	}
	if name == "" {
		return DefaultSheet
	}
	return name
}
