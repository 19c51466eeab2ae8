package httpx

import (
	"context"
	"fmt"
	"maps"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/adeilh/httpstatus/status"
)

type ClientOptions struct {
	BaseURL     string
	Timeout     time.Duration
	Headers     map[string]string
	RestyConfig func(RestClient)
}

type ClientOption func(*ClientOptions)

func defaultClientOptions() ClientOptions {
	return ClientOptions{Timeout: 10 * time.Second, Headers: map[string]string{"Content-Type": "application/json"}}
}

func WithBaseURL(url string) ClientOption {
	return func(o *ClientOptions) {
		if url != "" {
			o.BaseURL = url
		}
	}
}

// WithClientTimeout bounds each request, including reading the body.
func WithClientTimeout(d time.Duration) ClientOption {
	return func(o *ClientOptions) {
		if d > 0 {
			o.Timeout = d
		}
	}
}

// WithHeaders replaces the default headers sent with every request.
func WithHeaders(headers map[string]string) ClientOption {
	return func(o *ClientOptions) {
		if len(headers) > 0 {
			o.Headers = maps.Clone(headers)
		}
	}
}

// WithRestyConfig runs fn against the underlying client after the options
// above are applied.
func WithRestyConfig(fn func(RestClient)) ClientOption {
	return func(o *ClientOptions) { o.RestyConfig = fn }
}

// RestClient exposes a minimal subset of resty.Client for customization without importing resty.
type RestClient interface {
	SetHeader(key, value string) RestClient
	SetHeaders(headers map[string]string) RestClient
	SetTimeout(d time.Duration) RestClient
}

type restyAdapter struct{ c *resty.Client }

func (r restyAdapter) SetHeader(key, value string) RestClient {
	r.c.SetHeader(key, value)
	return r
}

func (r restyAdapter) SetHeaders(headers map[string]string) RestClient {
	r.c.SetHeaders(headers)
	return r
}

func (r restyAdapter) SetTimeout(d time.Duration) RestClient {
	r.c.SetTimeout(d)
	return r
}

// ResponseError is returned for 4xx and 5xx responses.
type ResponseError struct {
	Status status.Status
	Body   string
	// Envelope is set when the server answered with an httpx Envelope.
	Envelope *Envelope
	// lookup failure for codes outside the registry
	err error
}

func (e *ResponseError) Error() string {
	if e.Status.Valid() {
		return fmt.Sprintf("http %s: %s", e.Status, e.Body)
	}
	return fmt.Sprintf("http %d: %s", e.Status.Code(), e.Body)
}

func (e *ResponseError) Unwrap() error { return e.err }

// Client is a JSON client that reports error responses as *ResponseError.
type Client struct{ rc *resty.Client }

func NewClient(opts ...ClientOption) *Client {
	cfg := defaultClientOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	rc := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeaders(cfg.Headers)
	if cfg.RestyConfig != nil {
		cfg.RestyConfig(restyAdapter{rc})
	}
	return &Client{rc: rc}
}

type RequestOption func(*resty.Request)

// WithRequestHeaders sets headers on the underlying Resty request.
func WithRequestHeaders(headers map[string]string) RequestOption {
	return func(r *resty.Request) {
		if len(headers) > 0 {
			r.SetHeaders(headers)
		}
	}
}

// WithQuery sets query parameters on the request.
func WithQuery(params map[string]string) RequestOption {
	return func(r *resty.Request) {
		if len(params) > 0 {
			r.SetQueryParams(params)
		}
	}
}

// WithBearer injects an Authorization header using the provided bearer token.
func WithBearer(token string) RequestOption {
	return func(r *resty.Request) {
		if token = strings.TrimSpace(token); token != "" {
			r.SetAuthToken(token)
		}
	}
}

func (c *Client) Get(ctx context.Context, path string, result any, opts ...RequestOption) (*resty.Response, error) {
	return c.do(ctx, http.MethodGet, path, nil, result, opts)
}

func (c *Client) Post(ctx context.Context, path string, body, result any, opts ...RequestOption) (*resty.Response, error) {
	return c.do(ctx, http.MethodPost, path, body, result, opts)
}

func (c *Client) Put(ctx context.Context, path string, body, result any, opts ...RequestOption) (*resty.Response, error) {
	return c.do(ctx, http.MethodPut, path, body, result, opts)
}

func (c *Client) Patch(ctx context.Context, path string, body, result any, opts ...RequestOption) (*resty.Response, error) {
	return c.do(ctx, http.MethodPatch, path, body, result, opts)
}

func (c *Client) Delete(ctx context.Context, path string, result any, opts ...RequestOption) (*resty.Response, error) {
	return c.do(ctx, http.MethodDelete, path, nil, result, opts)
}

func (c *Client) do(ctx context.Context, method, path string, body, result any, opts []RequestOption) (*resty.Response, error) {
	env := &Envelope{}
	req := c.rc.R().SetContext(ctx).SetError(env)
	for _, opt := range opts {
		if opt != nil {
			opt(req)
		}
	}
	if body != nil {
		req.SetBody(body)
	}
	if result != nil {
		req.SetResult(result)
	}

	resp, err := req.Execute(method, path)
	if err != nil || !resp.IsError() {
		return resp, err
	}
	rerr := &ResponseError{
		Status: status.Status(resp.StatusCode()),
		Body:   strings.TrimSpace(resp.String()),
	}
	_, rerr.err = StatusOf(resp)
	if env.Status != 0 {
		rerr.Envelope = env
	}
	return resp, rerr
}
