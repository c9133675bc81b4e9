// Package crawl orchestrates fetching list pages and turning stored pages
// into movie tables.
package crawl

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/kinolist"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of pages fetched at once when
// Crawler.Concurrency is not set.
const DefaultConcurrency = 10

// Crawler fetches every page of a list and saves successful pages to Store.
type Crawler struct {
	Fetcher     kinolist.Fetcher
	Store       kinolist.PageStore
	RateLimiter kinolist.DomainLimiter
	Concurrency int
}

// Result holds the outcome of a fetch run.
type Result struct {
	Saved int
	// Failed lists pages that hit a transport error, in ascending order.
	Failed []int
	Bytes  int
	// Duplicates counts saved pages whose content matched an earlier page.
	Duplicates int
}

// ProgressEvent reports progress during a run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Page      int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressSkipped
	ProgressFinished
)

// ProgressFunc is a callback for reporting progress.
type ProgressFunc func(event ProgressEvent)

type fetchResult struct {
	*kinolist.PageResult
	url string
}

// Run fetches pages 1 through pageCount of target.
//
// A captcha on any page stops the run: pending pages are not requested,
// nothing is committed and an EBLOCKED error is returned. Transport errors
// are recorded in Result.Failed and the run continues.
func (c *Crawler) Run(ctx context.Context, target kinolist.Target, pageCount int, progress ProgressFunc) (*Result, error) {
	if pageCount < 1 {
		return nil, kinolist.Errorf(kinolist.EINVALID, "page count must be positive, got %d", pageCount)
	}
	if err := target.Validate(); err != nil {
		return nil, err
	}

	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	resultCh := make(chan fetchResult, pageCount)
	var completed atomic.Int64

	if progress != nil {
		progress(ProgressEvent{
			Type:  ProgressStarted,
			Total: pageCount,
		})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		defer close(resultCh)
		for n := 1; n <= pageCount; n++ {
			if gctx.Err() != nil {
				break
			}
			g.Go(func() error {
				return c.fetchPage(gctx, target, n, resultCh)
			})
		}
		_ = g.Wait()
	}()

	var (
		result  Result
		blocked int
		saveErr error
		hashes  = make(map[uint64]struct{})
	)
	for r := range resultCh {
		done := int(completed.Add(1))
		event := ProgressEvent{
			Completed: done,
			Total:     pageCount,
			Page:      r.Number,
			URL:       r.url,
		}

		switch r.Outcome {
		case kinolist.OutcomeCaptchaBlocked:
			if blocked == 0 {
				blocked = r.Number
			}
			event.Type = ProgressFailed
			event.Error = r.Err
		case kinolist.OutcomeTransportError:
			result.Failed = append(result.Failed, r.Number)
			event.Type = ProgressFailed
			event.Error = r.Err
		default:
			if blocked != 0 || saveErr != nil {
				event.Type = ProgressSkipped
				break
			}
			if err := c.Store.Save(ctx, r.PageResult); err != nil {
				saveErr = fmt.Errorf("save page %d: %w", r.Number, err)
				cancel()
				event.Type = ProgressFailed
				event.Error = err
				break
			}
			h := xxhash.Sum64String(r.Body)
			if _, ok := hashes[h]; ok {
				result.Duplicates++
			}
			hashes[h] = struct{}{}
			result.Saved++
			result.Bytes += len(r.Body)
			event.Type = ProgressCompleted
		}

		if progress != nil {
			progress(event)
		}
	}

	switch {
	case blocked != 0:
		_ = c.Store.Abort()
		return nil, kinolist.Errorf(kinolist.EBLOCKED, "captcha detected on page %d", blocked)
	case saveErr != nil:
		_ = c.Store.Abort()
		return nil, saveErr
	case ctx.Err() != nil:
		_ = c.Store.Abort()
		return nil, ctx.Err()
	}

	if err := c.Store.Commit(); err != nil {
		return nil, fmt.Errorf("commit pages: %w", err)
	}

	sort.Ints(result.Failed)

	if progress != nil {
		progress(ProgressEvent{
			Type:      ProgressFinished,
			Completed: int(completed.Load()),
			Total:     pageCount,
		})
	}

	return &result, nil
}

// fetchPage fetches page n and sends the classified result.
// It returns an error for a blocked page so the group cancels the rest.
func (c *Crawler) fetchPage(ctx context.Context, target kinolist.Target, n int, out chan<- fetchResult) error {
	if ctx.Err() != nil {
		return nil
	}

	pageURL, err := target.PageURL(n)
	if err != nil {
		return err
	}

	if c.RateLimiter != nil {
		u, err := url.Parse(pageURL)
		if err != nil {
			return err
		}
		if err := c.RateLimiter.Wait(ctx, u.Host); err != nil {
			return nil
		}
	}

	html, err := c.Fetcher.Fetch(ctx, pageURL)
	if err != nil && ctx.Err() != nil && kinolist.ErrorCode(err) != kinolist.EBLOCKED {
		// Cancelled in flight; the page was never really answered.
		return nil
	}

	r := kinolist.NewPageResult(n, html, err)
	out <- fetchResult{PageResult: r, url: pageURL}
	if r.Outcome == kinolist.OutcomeCaptchaBlocked {
		return r.Err
	}
	return nil
}
