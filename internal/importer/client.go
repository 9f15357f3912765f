package importer

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/ronginooth/citepress/internal/style"
)

const (
	// DefaultTimeout is the HTTP request timeout for style fetches.
	DefaultTimeout = 30 * time.Second

	// RateLimit caps style fetches; shared repositories throttle
	// anonymous clients aggressively.
	RateLimit = 2.0

	// MaxStyleSize bounds a fetched style definition.
	MaxStyleSize = 1 << 20
)

// cslContentTypes are CSL/XML content types we recognize but do not
// support. They are rejected with a specific error rather than being
// mis-parsed as JSON.
var cslContentTypes = []string{
	"application/vnd.citationstyles.style+xml",
	"application/xml",
	"text/xml",
}

// Client fetches style definitions over HTTP with rate limiting.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	authToken  string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithAuthToken sets a bearer token for fetches from private style
// repositories.
func WithAuthToken(token string) ClientOption {
	return func(c *Client) {
		c.authToken = token
	}
}

// NewClient creates a style-fetching client. A CITE_IMPORT_TOKEN in the
// environment is picked up automatically.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		limiter:    rate.NewLimiter(rate.Limit(RateLimit), 1),
	}

	if token := os.Getenv("CITE_IMPORT_TOKEN"); token != "" {
		c.authToken = token
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// ImportURL fetches a style definition from url and validates it. JSON
// responses are accepted; a CSL/XML content type is rejected as not yet
// implemented. Transport failures propagate as errors.
func (c *Client) ImportURL(ctx context.Context, url string) (*style.Style, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("waiting for rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching style from %s: %w: %v", url, ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching style from %s: %w: unexpected status %s", url, ErrFetchFailed, resp.Status)
	}

	if ct := contentType(resp); isCSL(ct) {
		return nil, fmt.Errorf("importing style from %s: %w (%s); supply a JSON style definition", url, ErrUnsupportedFormat, ct)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxStyleSize))
	if err != nil {
		return nil, fmt.Errorf("reading style body: %w", err)
	}

	return ImportJSON(data)
}

// contentType extracts the bare media type of a response, ignoring
// charset parameters.
func contentType(resp *http.Response) string {
	ct := resp.Header.Get("Content-Type")
	media, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(ct))
	}
	return media
}

func isCSL(mediaType string) bool {
	for _, csl := range cslContentTypes {
		if mediaType == csl {
			return true
		}
	}
	return false
}
