package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fwojciec/kinolist"
	kinohttp "github.com/fwojciec/kinolist/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCredentials() kinolist.Credentials {
	return kinolist.NewCredentials(map[string]string{
		kinolist.SessionCookie: "session-value",
		"uid":                  "42",
	})
}

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns HTML body from server", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte("<html><body>Hello World</body></html>"))
		}))
		defer server.Close()

		fetcher := kinohttp.NewFetcher(testCredentials())
		defer fetcher.Close()

		html, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, "<html><body>Hello World</body></html>", html)
	})

	t.Run("sends credentials as cookies", func(t *testing.T) {
		t.Parallel()

		got := make(chan map[string]string, 1)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookies := make(map[string]string)
			for _, c := range r.Cookies() {
				cookies[c.Name] = c.Value
			}
			got <- cookies
			_, _ = w.Write([]byte("ok"))
		}))
		defer server.Close()

		fetcher := kinohttp.NewFetcher(testCredentials())
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"Session_id": "session-value", "uid": "42"}, <-got)
	})

	t.Run("sends browser headers", func(t *testing.T) {
		t.Parallel()

		got := make(chan http.Header, 1)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got <- r.Header.Clone()
			_, _ = w.Write([]byte("ok"))
		}))
		defer server.Close()

		fetcher := kinohttp.NewFetcher(testCredentials())
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		h := <-got
		assert.Contains(t, h.Get("User-Agent"), "Mozilla")
		assert.Contains(t, h.Get("Accept-Language"), "ru-RU")
	})

	t.Run("replaces browser headers with custom headers option", func(t *testing.T) {
		t.Parallel()

		got := make(chan http.Header, 1)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got <- r.Header.Clone()
			_, _ = w.Write([]byte("ok"))
		}))
		defer server.Close()

		fetcher := kinohttp.NewFetcher(testCredentials(), kinohttp.WithHeaders(map[string]string{
			"User-Agent": "kinolist-test",
			"X-Trace":    "1",
		}))
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		h := <-got
		assert.Equal(t, "kinolist-test", h.Get("User-Agent"))
		assert.Equal(t, "1", h.Get("X-Trace"))
		assert.Empty(t, h.Get("Accept-Language"))
		assert.Contains(t, h.Get("Cookie"), "Session_id=")
	})

	t.Run("reports redirect as blocked", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/showcaptcha" {
				_, _ = w.Write([]byte("are you a robot?"))
				return
			}
			http.Redirect(w, r, "/showcaptcha?retpath=x", http.StatusFound)
		}))
		defer server.Close()

		fetcher := kinohttp.NewFetcher(testCredentials())
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), server.URL+"/user/1/votes/page/1/")
		require.Error(t, err)
		assert.Equal(t, kinolist.EBLOCKED, kinolist.ErrorCode(err))
		assert.Contains(t, kinolist.ErrorMessage(err), "showcaptcha")
	})

	t.Run("reports captcha URL as blocked", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("challenge"))
		}))
		defer server.Close()

		fetcher := kinohttp.NewFetcher(testCredentials())
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), server.URL+"/checkcaptcha")
		require.Error(t, err)
		assert.Equal(t, kinolist.EBLOCKED, kinolist.ErrorCode(err))
	})

	t.Run("respects custom timeout option", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte("response"))
		}))
		defer server.Close()

		// Use a very short timeout that will expire before server responds
		fetcher := kinohttp.NewFetcher(testCredentials(), kinohttp.WithTimeout(10*time.Millisecond))
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.Error(t, err)
		assert.Equal(t, kinolist.ETRANSPORT, kinolist.ErrorCode(err))
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte("response"))
		}))
		defer server.Close()

		fetcher := kinohttp.NewFetcher(testCredentials())
		defer fetcher.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel() // Cancel immediately

		_, err := fetcher.Fetch(ctx, server.URL)
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("returns error for non-existent host", func(t *testing.T) {
		t.Parallel()

		fetcher := kinohttp.NewFetcher(testCredentials(), kinohttp.WithTimeout(100*time.Millisecond))
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), "http://non-existent-host.invalid/page")
		require.Error(t, err)
		assert.Equal(t, kinolist.ETRANSPORT, kinolist.ErrorCode(err))
	})

	t.Run("returns transport error for non-2xx status codes", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte("404 Not Found"))
		}))
		defer server.Close()

		fetcher := kinohttp.NewFetcher(testCredentials())
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.Error(t, err)
		assert.Equal(t, kinolist.ETRANSPORT, kinolist.ErrorCode(err))
		assert.Contains(t, kinolist.ErrorMessage(err), "404")
	})
}

// Compile-time verification that Fetcher implements kinolist.Fetcher
var _ kinolist.Fetcher = (*kinohttp.Fetcher)(nil)
