package main

import (
	"fmt"
	"path/filepath"

	"github.com/fwojciec/kinolist"
	"github.com/fwojciec/kinolist/crawl"
	"github.com/fwojciec/kinolist/csv"
	"github.com/fwojciec/kinolist/fs"
	"github.com/fwojciec/kinolist/goquery"
	kslog "github.com/fwojciec/kinolist/slog"
	"github.com/fwojciec/kinolist/sqlite"
	"github.com/fwojciec/kinolist/xlsx"
)

// Run executes the parse command.
func (c *ParseCmd) Run(deps *Dependencies) error {
	return parseList(deps, c.FolderName, &c.ParseFlags)
}

func parseList(deps *Dependencies, folder string, p *ParseFlags) error {
	if folder == "" {
		return kinolist.Errorf(kinolist.EINVALID, "folder name required")
	}

	pages := fs.NewPageStore(deps.BaseDir, folder)
	parser := &crawl.Parser{
		Extractor: kslog.NewLoggingExtractor(goquery.NewExtractor(), deps.Logger),
		Strict:    p.Strict,
	}

	progress := func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.ProgressSkipped:
			fmt.Fprintf(deps.Stderr, "skip movie on page %d: %v\n", event.Page, event.Error)
		case crawl.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "\r[%d/%d] page %d", event.Completed, event.Total, event.Page)
		}
	}

	table, err := parser.Parse(deps.Ctx, pages, progress)

	// Clear progress line
	fmt.Fprintf(deps.Stdout, "\r%60s\r", "")

	if err != nil {
		if kinolist.ErrorCode(err) == kinolist.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "Hint: run 'kinolist fetch --folder-name %s' first\n", folder)
		}
		return err
	}
	table.Name = folder

	sink, path, closeFn, err := openSink(p.Format, pages.Dir(), folder, deps)
	if err != nil {
		return err
	}
	defer closeFn()

	if err := kslog.NewLoggingSink(sink, deps.Logger.With("path", path)).WriteTable(deps.Ctx, table); err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Wrote %d movies to %s\n", len(table.Records), path)
	return nil
}

// openSink returns the sink for format writing into dir, and its output path.
func openSink(format, dir, folder string, deps *Dependencies) (kinolist.RecordSink, string, func() error, error) {
	noop := func() error { return nil }
	date := deps.Now()
	switch format {
	case "csv":
		path := filepath.Join(dir, kinolist.OutputFileName(folder, date, csv.Ext))
		return csv.NewSink(path), path, noop, nil
	case "sqlite":
		path := filepath.Join(dir, kinolist.OutputFileName(folder, date, sqlite.Ext))
		db := sqlite.NewDB(path)
		if err := db.Open(); err != nil {
			return nil, "", nil, err
		}
		return sqlite.NewSink(db), path, db.Close, nil
	case "", "xlsx":
		path := filepath.Join(dir, kinolist.OutputFileName(folder, date, xlsx.Ext))
		return xlsx.NewSink(path), path, noop, nil
	}
	return nil, "", nil, kinolist.Errorf(kinolist.EINVALID, "unknown format %q", format)
}
