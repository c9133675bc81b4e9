package main

import (
	"fmt"

	"github.com/fwojciec/kinolist"
	"github.com/fwojciec/kinolist/crawl"
	"github.com/fwojciec/kinolist/fs"
	"github.com/fwojciec/kinolist/goquery"
	kinohttp "github.com/fwojciec/kinolist/http"
	kslog "github.com/fwojciec/kinolist/slog"
)

// Run executes the fetch command.
func (c *FetchCmd) Run(deps *Dependencies) error {
	return fetchList(deps, c.FolderName, &c.FetchFlags)
}

// target resolves the list to fetch. Without explicit IDs the logged-in
// user's votes are used.
func (f *FetchFlags) target(creds kinolist.Credentials) (kinolist.Target, error) {
	t := kinolist.Target{Site: f.Site, UserID: f.UserID, FolderID: f.FolderID}
	if t.UserID == "" && t.FolderID == "" {
		t.UserID = creds.UserID()
	}
	return t, t.Validate()
}

func fetchList(deps *Dependencies, folder string, f *FetchFlags) error {
	if folder == "" {
		return kinolist.Errorf(kinolist.EINVALID, "folder name required")
	}

	store := kslog.NewLoggingCredentialStore(fs.NewCredentialStore(f.Cookies, f.CookiesTxt), deps.Logger)
	creds, err := store.Load(deps.Ctx)
	if err != nil {
		if kinolist.ErrorCode(err) == kinolist.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "Hint: export your kinopoisk.ru cookies from the browser to %s\n", f.CookiesTxt)
		}
		return err
	}

	target, err := f.target(creds)
	if err != nil {
		fmt.Fprintln(deps.Stderr, "Hint: pass --user-id or --folder-id")
		return err
	}

	fetcher := kslog.NewLoggingFetcher(kinohttp.NewFetcher(creds, kinohttp.WithTimeout(f.Timeout)), deps.Logger)
	defer fetcher.Close()

	pageCount, err := crawl.Probe(deps.Ctx, fetcher, goquery.NewPaginator(), target)
	if err != nil {
		return err
	}
	fmt.Fprintf(deps.Stdout, "Found %d pages\n", pageCount)

	crawler := &crawl.Crawler{
		Fetcher:     fetcher,
		Store:       fs.NewPageStore(deps.BaseDir, folder),
		Concurrency: f.Concurrency,
	}
	if f.Rate > 0 {
		crawler.RateLimiter = crawl.NewDomainLimiter(f.Rate)
	}

	progress := func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.ProgressCompleted, crawl.ProgressFailed, crawl.ProgressSkipped:
			if event.Error != nil {
				fmt.Fprintf(deps.Stderr, "skip page %d: %s\n", event.Page, kinolist.ErrorMessage(event.Error))
			}
			fmt.Fprintf(deps.Stdout, "\r[%d/%d] %s", event.Completed, event.Total, crawl.ShortenURL(event.URL, 40))
		}
	}

	result, err := crawler.Run(deps.Ctx, target, pageCount, progress)

	// Clear progress line
	fmt.Fprintf(deps.Stdout, "\r%60s\r", "")

	if err != nil {
		if kinolist.ErrorCode(err) == kinolist.EBLOCKED {
			fmt.Fprintln(deps.Stderr, "Hint: open the site in a browser, solve the captcha and export fresh cookies")
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved %d pages (%s)\n", result.Saved, crawl.FormatBytes(result.Bytes))
	if len(result.Failed) > 0 {
		fmt.Fprintf(deps.Stderr, "Failed pages: %s\n", crawl.FormatPages(result.Failed))
	}
	if result.Duplicates > 0 {
		deps.Logger.Warn("duplicate pages", "count", result.Duplicates)
	}
	return nil
}
