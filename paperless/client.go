// Package paperless is a REST client for the Paperless-ngx API.
//
// Docuhook's reconciler only needs the workflow operations; the rest of the
// surface (documents, tags, correspondents, document types, custom fields)
// exists so callbacks can act on the events they receive without a second
// client.
package paperless

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/xraph/docuhook/ratelimit"
)

const (
	defaultTimeout = 10 * time.Second
	userAgent      = "docuhook/1.0"

	// maxErrorBody caps how much of an error response body is kept on APIError.
	maxErrorBody = 2048
)

// Client talks to a Paperless-ngx instance.
//
// The client holds no mutable state beyond its connection pool, so a single
// instance is safe to share between the reconciler and concurrently running
// webhook callbacks.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	logger  *slog.Logger
	limiter *ratelimit.Limiter
	rate    int
	host    string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets the underlying HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.http = hc }
}

// WithTimeout sets the per-request timeout on the default HTTP client.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) { c.http.Timeout = d }
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) { c.logger = logger }
}

// WithRateLimit caps outbound API calls at n requests per second.
// Zero means unlimited.
func WithRateLimit(n int) ClientOption {
	return func(c *Client) { c.rate = n }
}

// NewClient creates a Paperless API client for the given base URL,
// authenticating with the given API token.
func NewClient(baseURL, token string, opts ...ClientOption) (*Client, error) {
	if token == "" {
		return nil, ErrMissingToken
	}

	u, err := url.Parse(baseURL)
	if err != nil || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, baseURL)
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: defaultTimeout},
		logger:  slog.Default(),
		host:    u.Host,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.limiter = ratelimit.New(c.rate)
	return c, nil
}

// do performs an API request. in (when non-nil) is marshaled as the JSON
// body; out (when non-nil) receives the decoded JSON response.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	body, err := c.request(ctx, method, path, query, in)
	if err != nil {
		return err
	}
	defer body.Close()

	if out == nil {
		io.Copy(io.Discard, body) //nolint:errcheck // drain for connection reuse
		return nil
	}

	if err := json.NewDecoder(body).Decode(out); err != nil {
		return &APIError{Method: method, Path: path, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

// doRaw performs an API request and returns the raw response bytes.
func (c *Client) doRaw(ctx context.Context, method, path string) ([]byte, error) {
	body, err := c.request(ctx, method, path, nil, nil)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, &APIError{Method: method, Path: path, Err: fmt.Errorf("read response: %w", err)}
	}
	return data, nil
}

func (c *Client) request(ctx context.Context, method, path string, query url.Values, in any) (io.ReadCloser, error) {
	if err := c.limiter.Wait(ctx, c.host); err != nil {
		return nil, &APIError{Method: method, Path: path, Err: err}
	}

	target := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reqBody io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return nil, &APIError{Method: method, Path: path, Err: fmt.Errorf("marshal request: %w", err)}
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return nil, &APIError{Method: method, Path: path, Err: err}
	}

	req.Header.Set("Authorization", "Token "+c.token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.DebugContext(ctx, "paperless request", "method", method, "path", path)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &APIError{Method: method, Path: path, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		resp.Body.Close()
		apiErr := &APIError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       string(snippet),
		}
		c.logger.ErrorContext(ctx, "paperless request failed",
			"method", method, "path", path, "status", resp.StatusCode)
		return nil, apiErr
	}

	return resp.Body, nil
}

// Page is one page of a paginated listing.
type Page[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
	All      []int   `json:"all,omitempty"`
}

// collectPages walks a paginated listing to exhaustion.
func collectPages[T any](ctx context.Context, fetch func(ctx context.Context, page int) (*Page[T], error)) ([]T, error) {
	var out []T
	for page := 1; ; page++ {
		p, err := fetch(ctx, page)
		if err != nil {
			return nil, err
		}
		out = append(out, p.Results...)
		if p.Next == nil || *p.Next == "" {
			return out, nil
		}
	}
}

func pageQuery(page int) url.Values {
	return url.Values{"page": []string{fmt.Sprint(page)}}
}
