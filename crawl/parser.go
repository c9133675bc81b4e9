package crawl

import (
	"context"
	"fmt"

	"github.com/fwojciec/kinolist"
)

// Parser turns stored list pages into one table.
type Parser struct {
	Extractor kinolist.Extractor

	// Strict aborts on the first item lacking a mandatory field.
	// Otherwise such items are reported as ProgressSkipped and left out.
	Strict bool
}

// Parse reads every page in source in ascending page order and returns
// their records in that order. All pages must share one layout.
func (p *Parser) Parse(ctx context.Context, source kinolist.PageSource, progress ProgressFunc) (*kinolist.Table, error) {
	pages, err := source.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(pages) == 0 {
		return nil, kinolist.Errorf(kinolist.ENOTFOUND, "no stored pages")
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: len(pages)})
	}

	table := &kinolist.Table{}
	for i, n := range pages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		html, err := source.Read(ctx, n)
		if err != nil {
			return nil, err
		}

		ex, err := p.Extractor.Extract(html)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", n, err)
		}

		if table.Layout == kinolist.LayoutUnknown {
			table.Layout = ex.Layout
		} else if ex.Layout != table.Layout {
			return nil, kinolist.Errorf(kinolist.ELAYOUT, "page %d has %s layout, expected %s", n, ex.Layout, table.Layout)
		}

		for _, skipped := range ex.Skipped {
			if p.Strict {
				return nil, fmt.Errorf("page %d: %w", n, skipped)
			}
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressSkipped,
					Completed: i,
					Total:     len(pages),
					Page:      n,
					Error:     skipped,
				})
			}
		}

		table.Records = append(table.Records, ex.Records...)

		if progress != nil {
			progress(ProgressEvent{
				Type:      ProgressCompleted,
				Completed: i + 1,
				Total:     len(pages),
				Page:      n,
			})
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: len(pages), Total: len(pages)})
	}

	return table, nil
}
