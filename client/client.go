// Package client is the typed HTTP client for the TaskAI backend. Every
// operation is exactly one round trip: no retry, no caching, no timeout
// beyond the transport default. A response status outside the 2xx range is
// always a failure, surfaced as a *StatusError; transport faults propagate
// unmodified.
package client

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/taskai-app/taskai-go/pkg/utils"
)

type Client struct {
	base string
	http *resty.Client
	log  *log.Logger
}

type Option func(*Client)

// WithLogger replaces the shared logger, mainly for tests.
func WithLogger(l *log.Logger) Option {
	return func(c *Client) {
		c.log = l
	}
}

// WithHTTPClient swaps the underlying transport.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = resty.NewWithClient(hc)
	}
}

// New builds a client against the given base endpoint, e.g.
// "http://127.0.0.1:8000".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		base: strings.TrimRight(baseURL, "/"),
		log:  utils.Log,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http == nil {
		c.http = resty.New()
	}
	c.http.SetBaseURL(c.base).SetRetryCount(0)
	return c
}

// BaseURL returns the configured endpoint with any trailing slash removed.
func (c *Client) BaseURL() string {
	return c.base
}

func (c *Client) request(ctx context.Context, method, path string, callback func(req *resty.Request)) (*resty.Response, error) {
	req := c.http.R().
		SetContext(ctx).
		SetHeader("X-Request-ID", uuid.NewString())
	if callback != nil {
		callback(req)
	}
	res, err := req.Execute(method, path)
	if err != nil {
		return nil, err
	}
	c.log.Debugf("[client] %s %s -> %d", method, path, res.StatusCode())
	return res, nil
}

// do issues the request and decodes a 2xx body into out (when non-nil).
// Any other status becomes a StatusError carrying the fallback message.
func (c *Client) do(ctx context.Context, method, path, fallback string, callback func(req *resty.Request), out any) error {
	res, err := c.request(ctx, method, path, callback)
	if err != nil {
		return err
	}
	if sc := res.StatusCode(); sc < 200 || sc > 299 {
		return &StatusError{StatusCode: sc, Message: fallback}
	}
	if out == nil {
		return nil
	}
	return utils.Json.Unmarshal(res.Body(), out)
}
