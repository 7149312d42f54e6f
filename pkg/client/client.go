// Package client talks to the reservation API the way the booking front end does: public reads
// bypass caches, authenticated calls carry the session's bearer token, and list endpoints retry
// when the server rate limits them.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/valyala/fasthttp"
)

const (
	defaultTimeout = 30 * time.Second
	apiPrefix      = "/v1"
)

// Client is safe for concurrent use. The Flow built on top of it is not.
type Client struct {
	baseURL string
	http    *fasthttp.Client
	session *Session
	backoff []time.Duration
	timeout time.Duration
}

type Option func(*Client)

func WithHTTPClient(hc *fasthttp.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

func WithSession(s *Session) Option {
	return func(c *Client) {
		c.session = s
	}
}

// WithBackoff sets the waits between retries of a rate limited list call. One wait per retry.
func WithBackoff(waits ...time.Duration) Option {
	return func(c *Client) {
		c.backoff = waits
	}
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/") + apiPrefix,
		http:    &fasthttp.Client{},
		backoff: []time.Duration{2 * time.Second, 4 * time.Second},
		timeout: defaultTimeout,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Client) Session() *Session {
	return c.session
}

type request struct {
	method  string
	path    string
	query   url.Values
	body    any
	out     any
	raw     *[]byte
	auth    bool
	noCache bool
	retry   bool
}

// api sends an authenticated request. Without a signed in session it goes out anonymously.
func (c *Client) api(ctx context.Context, r request) error {
	r.auth = true

	return c.do(ctx, r)
}

// publicAPI sends an anonymous request that intermediaries must not answer from cache.
func (c *Client) publicAPI(ctx context.Context, r request) error {
	r.noCache = true

	return c.do(ctx, r)
}

func (c *Client) do(ctx context.Context, r request) error {
	for attempt := 0; ; attempt++ {
		err := c.send(ctx, r)
		if err == nil || !r.retry || attempt >= len(c.backoff) || !IsRateLimited(err) {
			return err
		}

		if err := sleep(ctx, c.backoff[attempt]); err != nil {
			return err
		}
	}
}

func (c *Client) send(ctx context.Context, r request) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()

	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	uri := c.baseURL + r.path
	if len(r.query) > 0 {
		uri += "?" + r.query.Encode()
	}

	req.SetRequestURI(uri)
	req.Header.SetMethod(r.method)
	req.Header.Set(fasthttp.HeaderAccept, "application/json")

	if r.body != nil {
		payload, err := json.Marshal(r.body)
		if err != nil {
			return fmt.Errorf("client: encode request: %w", err)
		}

		req.Header.SetContentType("application/json")
		req.SetBody(payload)
	}

	if r.auth && c.session != nil {
		if token := c.session.Token(); token != "" {
			req.Header.Set(fasthttp.HeaderAuthorization, "Bearer "+token)
		}
	}

	if r.noCache {
		req.Header.Set(fasthttp.HeaderCacheControl, "no-cache, no-store")
		req.Header.Set(fasthttp.HeaderPragma, "no-cache")
	}

	deadline := time.Now().Add(c.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	if err := c.http.DoDeadline(req, resp, deadline); err != nil {
		return fmt.Errorf("client: %s %s: %w", r.method, r.path, err)
	}

	status := resp.StatusCode()
	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		return decodeError(status, resp.Body())
	}

	if r.raw != nil {
		*r.raw = append([]byte(nil), resp.Body()...)

		return nil
	}

	if r.out == nil || len(resp.Body()) == 0 {
		return nil
	}

	envelope := struct {
		Data any `json:"data"`
	}{Data: r.out}

	if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
		return fmt.Errorf("client: decode response: %w", err)
	}

	return nil
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// tokenError turns the 404 of a guest lookup or cancel into ErrTokenNotFound.
func tokenError(err error) error {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
		return ErrTokenNotFound
	}

	return err
}
