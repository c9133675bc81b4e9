package mock

import (
	"context"

	"github.com/fwojciec/kinolist"
)

// Compile-time interface verification.
var (
	_ kinolist.Fetcher       = (*Fetcher)(nil)
	_ kinolist.PageCounter   = (*PageCounter)(nil)
	_ kinolist.DomainLimiter = (*DomainLimiter)(nil)
)

// Fetcher is a mock implementation of kinolist.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}

// PageCounter is a mock implementation of kinolist.PageCounter.
type PageCounter struct {
	CountPagesFn func(html string) (int, error)
}

func (c *PageCounter) CountPages(html string) (int, error) {
	return c.CountPagesFn(html)
}

// DomainLimiter is a mock implementation of kinolist.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
