// Package wiktionary fetches entry pages whose inflection tables feed the
// noun extractor.
package wiktionary

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/ankigreek/ankigreek"
)

// maxPageSize caps how much of a page is read.
const maxPageSize = 16 << 20

// ErrOffline is returned by a client that was told not to use the network.
var ErrOffline = errors.New("wiktionary: offline")

// Client fetches Wiktionary pages, at most one per interval.
type Client struct {
	base      string
	userAgent string
	http      *http.Client
	limiter   *rate.Limiter
	offline   bool
}

// Options configure a Client.
type Options struct {
	// BaseURL is the page URL prefix, e.g. "https://en.wiktionary.org/wiki/".
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
	// Interval is the minimum time between two requests; zero disables
	// throttling.
	Interval time.Duration
	Offline  bool
}

// New returns a client for opts.
func New(opts Options) *Client {
	base := opts.BaseURL
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	limit := rate.Inf
	if opts.Interval > 0 {
		limit = rate.Every(opts.Interval)
	}
	return &Client{
		base:      base,
		userAgent: opts.UserAgent,
		http:      &http.Client{Timeout: opts.Timeout},
		limiter:   rate.NewLimiter(limit, 1),
		offline:   opts.Offline,
	}
}

// PageURL returns the address of the page for word. Nouns are cited with
// their article; the page is titled by the headword alone.
func (c *Client) PageURL(word string) string {
	return c.base + url.PathEscape(ankigreek.Headword(word))
}

// Fetch returns the markup of the page for word.
func (c *Client) Fetch(ctx context.Context, word string) (string, error) {
	if c.offline {
		return "", ErrOffline
	}
	if ankigreek.Headword(word) == "" {
		return "", fmt.Errorf("fetch %q: empty headword", word)
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("fetch %s: %w", word, err)
	}

	u := c.PageURL(word)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", word, err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", word, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return "", fmt.Errorf("fetch %s: %w", word, ankigreek.ErrNotFound)
	case resp.StatusCode != http.StatusOK:
		return "", fmt.Errorf("HTTP GET %s: unexpected status %s", u, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPageSize))
	if err != nil {
		return "", fmt.Errorf("read %s: %w", u, err)
	}
	return string(body), nil
}
