package kinolist

import "context"

// Fetcher retrieves raw list pages with the run's credentials attached.
type Fetcher interface {
	// Fetch performs one GET and returns the page body.
	// Returns EBLOCKED when the site answers with a captcha or redirect,
	// and ETRANSPORT for network failures and non-2xx statuses.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases the underlying connections.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}

// PageCounter derives the number of list pages from the first page.
type PageCounter interface {
	// CountPages parses the pagination widget.
	// Returns ELAYOUT if the widget is missing or unreadable.
	CountPages(html string) (int, error)
}

// DomainLimiter spaces out requests to a host.
type DomainLimiter interface {
	// Wait blocks until a request to domain is allowed.
	// Returns an error if ctx is canceled first.
	Wait(ctx context.Context, domain string) error
}
