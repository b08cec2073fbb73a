package rift

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// DefaultEndpoint is used when no Endpoint option is given.
const DefaultEndpoint = "https://rest.riftdb.com"

// Client speaks to a RiftDB endpoint over HTTP/JSON. The zero-cost core
// (codec, query builder) never touches the network; Client is the thin
// transport consumer wiring the two together.
type Client struct {
	endpoint string
	user     string
	pass     string
	http     *http.Client
	observer func(*RequestResult)
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// Endpoint sets the base URL, e.g. "http://localhost:8443".
func Endpoint(base string) ClientOption {
	return func(c *Client) { c.endpoint = strings.TrimRight(base, "/") }
}

// HTTPClient swaps the underlying *http.Client, for custom timeouts or
// transports.
func HTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.http = hc }
}

// Observer registers a callback invoked with every completed RequestResult,
// successful or not. See LogObserver.
func Observer(fn func(*RequestResult)) ClientOption {
	return func(c *Client) { c.observer = fn }
}

// NewClient builds a Client. The secret resembles "user" or "user:pass" and
// becomes HTTP basic auth.
func NewClient(secret string, opts ...ClientOption) *Client {
	c := &Client{
		endpoint: DefaultEndpoint,
		http:     &http.Client{Timeout: 60 * time.Second},
	}
	c.user, c.pass, _ = strings.Cut(secret, ":")
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Query posts an expression (built with package query, or any encodable
// value) and returns the decoded resource.
func (c *Client) Query(ctx context.Context, expr any) (any, error) {
	return c.execute(ctx, http.MethodPost, "", expr, nil)
}

// Ping checks connectivity. scope and timeout are forwarded to the server
// when non-zero.
func (c *Client) Ping(ctx context.Context, scope string, timeout time.Duration) (any, error) {
	q := url.Values{}
	if scope != "" {
		q.Set("scope", scope)
	}
	if timeout > 0 {
		q.Set("timeout", strconv.Itoa(int(timeout/time.Second)))
	}
	return c.execute(ctx, http.MethodGet, "ping", nil, q)
}

// Get fetches the document at a Ref path directly, outside the query API.
func (c *Client) Get(ctx context.Context, ref Ref) (any, error) {
	return c.execute(ctx, http.MethodGet, ref.Value(), nil, nil)
}

func (c *Client) execute(ctx context.Context, method, path string, data any, q url.Values) (any, error) {
	var body io.Reader
	if data != nil {
		encoded, err := Encode(data)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(encoded)
	}

	u := c.endpoint + "/" + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(c.user, c.pass)
	req.Header.Set("Content-Type", "application/json;charset=utf-8")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	end := time.Now()
	if err != nil {
		return nil, err
	}

	content, decodeErr := Decode(raw)
	rr := &RequestResult{
		Client:          c,
		Method:          method,
		Path:            path,
		Query:           q,
		RequestContent:  data,
		ResponseRaw:     string(raw),
		ResponseContent: content,
		StatusCode:      resp.StatusCode,
		Headers:         resp.Header,
		StartTime:       start,
		EndTime:         end,
	}
	if c.observer != nil {
		c.observer(rr)
	}
	if decodeErr != nil {
		return nil, &InvalidResponseError{Description: "body is not valid JSON", Data: rr.ResponseRaw}
	}
	return rr.Resource()
}
