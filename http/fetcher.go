// Package http provides an HTTP-based implementation of kinolist.Fetcher
// that presents the run's cookies and detects captcha interception.
package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/kinolist"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// CaptchaMarker appears in the URL of the site's anti-bot challenge page.
const CaptchaMarker = "captcha"

// DefaultHeaders are sent with every request so the site serves the
// regular desktop markup.
var DefaultHeaders = map[string]string{
	"User-Agent":      "Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0",
	"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9",
	"Accept-Language": "ru-RU,ru;q=0.8,en-US;q=0.5,en;q=0.3",
}

// Ensure Fetcher implements kinolist.Fetcher at compile time.
var _ kinolist.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves list pages using one shared HTTP client.
// Any redirect is treated as a captcha: the site only redirects
// list pages when it challenges the session.
type Fetcher struct {
	client      *http.Client
	timeout     time.Duration
	credentials kinolist.Credentials
	headers     map[string]string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithHeaders replaces the default request headers.
func WithHeaders(headers map[string]string) Option {
	return func(f *Fetcher) {
		f.headers = headers
	}
}

// NewFetcher creates a new Fetcher that attaches credentials to every request.
func NewFetcher(credentials kinolist.Credentials, opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:     DefaultFetchTimeout,
		credentials: credentials,
		headers:     DefaultHeaders,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout:       f.timeout,
		CheckRedirect: refuseRedirect,
	}

	return f
}

// refuseRedirect stops the client at the first redirect and reports it as a block.
func refuseRedirect(req *http.Request, via []*http.Request) error {
	return kinolist.Errorf(kinolist.EBLOCKED, "redirected to %s", req.URL)
}

// Fetch retrieves the HTML content from the given URL.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", kinolist.Errorf(kinolist.EINVALID, "invalid URL %q: %v", url, err)
	}
	for k, v := range f.headers {
		req.Header.Set(k, v)
	}
	for _, name := range f.credentials.Names() {
		value, _ := f.credentials.Get(name)
		req.AddCookie(&http.Cookie{Name: name, Value: value})
	}

	resp, err := f.client.Do(req)
	if err != nil {
		var e *kinolist.Error
		if errors.As(err, &e) {
			return "", e
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		return "", kinolist.Errorf(kinolist.ETRANSPORT, "GET %s: %v", url, err)
	}
	defer resp.Body.Close()

	if isCaptcha(resp) {
		return "", kinolist.Errorf(kinolist.EBLOCKED, "captcha page at %s", resp.Request.URL)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", kinolist.Errorf(kinolist.ETRANSPORT, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", kinolist.Errorf(kinolist.ETRANSPORT, "read %s: %v", url, err)
	}

	return string(body), nil
}

func isCaptcha(resp *http.Response) bool {
	if resp.Request == nil || resp.Request.URL == nil {
		return false
	}
	return strings.Contains(resp.Request.URL.String(), CaptchaMarker)
}

// Close releases idle connections held by the client.
func (f *Fetcher) Close() error {
	f.client.CloseIdleConnections()
	return nil
}
