package gtfsrt

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// DefaultUserAgent is sent with every HTTP request unless overridden.
const DefaultUserAgent = "gtfsrt-to-tables/1.0"

// Client fetches raw GTFS-RT and dictionary payloads.
type Client struct {
	httpClient  *http.Client
	userAgent   string
	parallelism int
	logger      zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// WithParallelism bounds the number of concurrent fetches in FetchAll.
// Zero or negative means one worker per resource.
func WithParallelism(n int) Option {
	return func(c *Client) { c.parallelism = n }
}

// WithLogger sets the logger used for per-resource debug output.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// NewClient creates a new client. The default http.Client has no timeout.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{},
		userAgent:  DefaultUserAgent,
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch retrieves a single resource from a URL or a local file path.
func (c *Client) Fetch(ctx context.Context, urlOrPath string) ([]byte, error) {
	if !strings.HasPrefix(urlOrPath, "http://") && !strings.HasPrefix(urlOrPath, "https://") {
		b, err := os.ReadFile(urlOrPath)
		if err != nil {
			return nil, &FetchError{Resource: urlOrPath, Err: err}
		}
		return b, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlOrPath, nil)
	if err != nil {
		return nil, &FetchError{Resource: urlOrPath, Err: err}
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{Resource: urlOrPath, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{
			Resource:   urlOrPath,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status %s", resp.Status),
		}
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{Resource: urlOrPath, Err: err}
	}
	return b, nil
}

// FetchAll retrieves every resource concurrently. The result is index-aligned
// with resources regardless of completion order. If any fetch fails the first
// error is returned and no payloads are. Fetches not yet started are skipped;
// fetches already in flight are left to finish and their bytes are dropped.
func (c *Client) FetchAll(ctx context.Context, resources []string) ([][]byte, error) {
	payloads := make([][]byte, len(resources))

	limit := c.parallelism
	if limit <= 0 || limit > len(resources) {
		limit = len(resources)
	}

	// gctx only signals failure; in-flight requests run on ctx
	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, res := range resources {
		g.Go(func() error {
			if gctx.Err() != nil {
				// nil after a sibling failure, the cause if ctx itself ended
				return ctx.Err()
			}
			b, err := c.Fetch(ctx, res)
			if err != nil {
				return err
			}
			c.logger.Debug().Str("resource", res).Int("bytes", len(b)).Msg("fetched resource")
			payloads[i] = b
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return payloads, nil
}
