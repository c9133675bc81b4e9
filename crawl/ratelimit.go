package crawl

import (
	"context"
	"sync"

	"github.com/fwojciec/kinolist"
	"golang.org/x/time/rate"
)

var _ kinolist.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter keeps one token bucket per host.
// A non-positive rate disables limiting.
type DomainLimiter struct {
	mu    sync.Mutex
	hosts map[string]*rate.Limiter
	limit rate.Limit
}

// NewDomainLimiter returns a limiter allowing rps requests per second to each host, without bursts.
func NewDomainLimiter(rps float64) *DomainLimiter {
	limit := rate.Limit(rps)
	if rps <= 0 {
		limit = rate.Inf
	}
	return &DomainLimiter{
		hosts: make(map[string]*rate.Limiter),
		limit: limit,
	}
}

// Wait blocks until a request to domain is allowed.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return d.limiter(domain).Wait(ctx)
}

func (d *DomainLimiter) limiter(domain string) *rate.Limiter {
	d.mu.Lock()
	defer d.mu.Unlock()
	l, ok := d.hosts[domain]
	if !ok {
		l = rate.NewLimiter(d.limit, 1)
		d.hosts[domain] = l
	}
	return l
}
