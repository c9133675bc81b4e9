package crawl

import (
	"context"
	"fmt"

	"github.com/fwojciec/kinolist"
)

// Probe fetches the first page of target and returns the number of pages in the list.
// A blocked first page is returned as EBLOCKED; a page without a readable
// pagination widget is ELAYOUT.
func Probe(ctx context.Context, fetcher kinolist.Fetcher, counter kinolist.PageCounter, target kinolist.Target) (int, error) {
	first, err := target.PageURL(1)
	if err != nil {
		return 0, err
	}

	html, err := fetcher.Fetch(ctx, first)
	if err != nil {
		if kinolist.ErrorCode(err) == kinolist.EBLOCKED {
			return 0, kinolist.Errorf(kinolist.EBLOCKED, "captcha detected on page 1")
		}
		return 0, fmt.Errorf("probe %s: %w", first, err)
	}

	return counter.CountPages(html)
}
