// Package catalog is the client for the hostel meals API. Every screen of the
// web front end reads and mutates meals, users, reviews and requests through it.
package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultTimeout   = 10 * time.Second
	defaultUserAgent = "nubhostel-web/1.0"
	maxResponseBytes = 4 << 20
)

type Client struct {
	baseURL   *url.URL
	http      *http.Client
	timeout   time.Duration
	logger    *zap.SugaredLogger
	userAgent string
	now       func() time.Time
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

func WithLogger(logger *zap.SugaredLogger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithTimeout bounds every call, including reading the body.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithClock overrides the time stamped on reviews and new meals.
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		if now != nil {
			c.now = now
		}
	}
}

// NewClient returns a client for the API rooted at baseURL, e.g.
// "http://localhost:5000".
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(strings.TrimSpace(baseURL), "/"))
	if err != nil {
		return nil, fmt.Errorf("catalog base url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("catalog base url %q: must be an absolute http(s) url", baseURL)
	}

	c := &Client{
		baseURL:   u,
		http:      http.DefaultClient,
		timeout:   defaultTimeout,
		logger:    zap.NewNop().Sugar(),
		userAgent: defaultUserAgent,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.timeout > 0 && c.http.Timeout == 0 {
		hc := *c.http
		hc.Timeout = c.timeout
		c.http = &hc
	}
	return c, nil
}

// BaseURL returns the API root the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// endpoint joins path segments, escaping each one.
func endpoint(segments ...string) string {
	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}
	return strings.Join(escaped, "/")
}

type apiMessage struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (m apiMessage) text() string {
	if m.Error != "" {
		return m.Error
	}
	return m.Message
}

// do sends one request. in is encoded as JSON when non-nil and a 2xx body is
// decoded into out when out is non-nil.
func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, in, out any) error {
	u := c.baseURL.JoinPath(path)
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", op, err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", requestID(ctx))
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debugw("catalog request failed", "op", op, "method", method, "path", u.Path, "error", err)
		return &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return &TransportError{Op: op, Err: fmt.Errorf("read body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var msg apiMessage
		_ = json.Unmarshal(raw, &msg)
		c.logger.Debugw("catalog request rejected", "op", op, "method", method, "path", u.Path, "status", resp.StatusCode)
		return &StatusError{Op: op, Code: resp.StatusCode, Message: msg.text()}
	}

	if out == nil {
		return nil
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return &TransportError{Op: op, Err: fmt.Errorf("%w: empty body", ErrInvalidResponse)}
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &TransportError{Op: op, Err: fmt.Errorf("%w: %v", ErrInvalidResponse, err)}
	}
	return nil
}

func requestID(ctx context.Context) string {
	if id := middleware.GetReqID(ctx); id != "" {
		return id
	}
	return uuid.NewString()
}
