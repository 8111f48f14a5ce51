// Package api implements the HTTP pipeline shared by every call to the
// classtrack server: bearer-token injection on the way out, 401 handling on
// the way back, and JSON (de)serialization in between.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"classtrack/internal/client/token"
	"classtrack/internal/common"
	"classtrack/internal/logging"
)

// Client issues requests against a single base URL. Two instances exist at
// runtime — one for resource endpoints, one for auth endpoints — with
// identical behavior.
//
// Every request:
//   - carries "Authorization: Bearer <token>" when the store holds a token,
//     and no Authorization header when it does not;
//   - carries an X-Request-Id for log correlation.
//
// Every response:
//   - 401 clears the token store and invokes the on-auth-rejected hook
//     exactly once, then the error is returned to the caller;
//   - other non-2xx statuses are returned as *Error without retry, backoff
//     or any handling beyond one structured log line.
type Client struct {
	baseURL        string
	http           *http.Client
	tokens         token.Store
	onAuthRejected func()
	log            logging.Logger
}

type Option func(*Client)

// WithHTTPClient replaces the underlying transport. The default is
// http.DefaultClient: no client-side timeout, cancellation only through the
// caller's context.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithOnAuthRejected installs the navigation hook invoked after a 401 has
// cleared the token store. The view layer decides what "go to login" means.
func WithOnAuthRejected(fn func()) Option {
	return func(c *Client) { c.onAuthRejected = fn }
}

func WithLogger(l logging.Logger) Option {
	return func(c *Client) { c.log = l }
}

func New(baseURL string, tokens token.Store, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    http.DefaultClient,
		tokens:  tokens,
		log:     logging.NopLogger{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get issues a GET request and decodes the JSON response into out.
// Query keys and values are serialized verbatim; the server is the sole
// authority on acceptable filters.
func (c *Client) Get(ctx context.Context, path string, query map[string]string, out any) error {
	body, _, err := c.do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}
	return decode(body, out)
}

// GetRaw issues a GET request for a binary body (e.g. an exported report)
// and returns the raw bytes together with the response content type.
func (c *Client) GetRaw(ctx context.Context, path string, query map[string]string) ([]byte, string, error) {
	return c.do(ctx, http.MethodGet, path, query, nil)
}

func (c *Client) Post(ctx context.Context, path string, in, out any) error {
	body, _, err := c.do(ctx, http.MethodPost, path, nil, in)
	if err != nil {
		return err
	}
	return decode(body, out)
}

func (c *Client) Put(ctx context.Context, path string, in, out any) error {
	body, _, err := c.do(ctx, http.MethodPut, path, nil, in)
	if err != nil {
		return err
	}
	return decode(body, out)
}

func (c *Client) Patch(ctx context.Context, path string, in, out any) error {
	body, _, err := c.do(ctx, http.MethodPatch, path, nil, in)
	if err != nil {
		return err
	}
	return decode(body, out)
}

func (c *Client) Delete(ctx context.Context, path string, out any) error {
	body, _, err := c.do(ctx, http.MethodDelete, path, nil, nil)
	if err != nil {
		return err
	}
	return decode(body, out)
}

// do runs one round trip through the pipeline and returns the response body
// and content type. All verb helpers funnel through here so the interceptor
// behavior applies to every request without exception.
func (c *Client) do(ctx context.Context, method, path string, query map[string]string, in any) ([]byte, string, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		values := url.Values{}
		for k, v := range query {
			values.Set(k, v)
		}
		u += "?" + values.Encode()
	}

	var reqBody io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return nil, "", fmt.Errorf("%s %s: encode body: %w", method, path, err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return nil, "", fmt.Errorf("%s %s: %w", method, path, err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok, ok := c.tokens.Get(); ok {
		req.Header.Set(common.AuthHeaderName, common.AuthScheme+" "+tok)
	}

	requestID := uuid.NewString()
	req.Header.Set(common.RequestIDHeaderName, requestID)

	c.log.Debug(ctx, "request", "method", method, "path", path, "request_id", requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error(ctx, "request failed", "method", method, "path", path, "request_id", requestID, "error", err)
		return nil, "", fmt.Errorf("%s %s: %w: %v", method, path, common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("%s %s: read body: %w", method, path, err)
	}

	c.log.Debug(ctx, "response", "method", method, "path", path, "request_id", requestID, "status", resp.StatusCode)

	if resp.StatusCode == http.StatusUnauthorized {
		// The credential is invalid or expired: drop it and send the view
		// layer back to the login entry point before surfacing the error.
		if err := c.tokens.Clear(); err != nil {
			c.log.Error(ctx, "token clear failed", "error", err)
		}
		if c.onAuthRejected != nil {
			c.onAuthRejected()
		}
		return nil, "", newError(resp.StatusCode, body)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", newError(resp.StatusCode, body)
	}

	return body, resp.Header.Get("Content-Type"), nil
}

func decode(body []byte, out any) error {
	if out == nil || len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}
