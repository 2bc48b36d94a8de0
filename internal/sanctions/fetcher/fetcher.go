package fetcher

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"regguard/pkg/platform/sentinel"
)

// Official OFAC SDN list location. Republished in full on the upstream's own
// cadence; every fetch replaces the whole dataset.
const sdnURL = "https://www.treasury.gov/ofac/downloads/sdn.xml"

const (
	// The treasury download host is slow on cold responses; be generous.
	fetchTimeout = 180 * time.Second
	// Upstream outage pages are short HTML documents served with a 200.
	// Anything under this size is not a list.
	minPayloadBytes = 1000
)

// Client retrieves the raw watchlist document. It validates transport-level
// health only; retry and fallback policy belong to the cache.
type Client struct {
	url    string
	http   *http.Client
	logger *slog.Logger
}

type Option func(*Client)

// WithURL overrides the list location. Test seam; production uses the constant.
func WithURL(url string) Option {
	return func(c *Client) {
		c.url = url
	}
}

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.http = h
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

func New(opts ...Option) *Client {
	c := &Client{
		url: sdnURL,
		// Redirects are followed by the default client policy.
		http:   &http.Client{Timeout: fetchTimeout},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch downloads the current list and returns the raw bytes after the
// status, content-type, and minimum-size checks pass.
func (c *Client) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("building sdn request: %w", err)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", sentinel.ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: HTTP %d", sentinel.ErrTransport, resp.StatusCode)
	}

	contentType := strings.ToLower(resp.Header.Get("Content-Type"))
	if !strings.Contains(contentType, "xml") && !strings.Contains(contentType, "text") {
		return nil, fmt.Errorf("%w: unexpected content type %q", sentinel.ErrFormat, contentType)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", sentinel.ErrTransport, err)
	}
	if len(body) < minPayloadBytes {
		return nil, fmt.Errorf("%w: %d bytes", sentinel.ErrPayloadTooSmall, len(body))
	}

	c.logger.Debug("sdn list downloaded",
		"bytes", len(body),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return body, nil
}
