package api

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

	ghAPI "github.com/cli/go-gh/v2/pkg/api"
	"golang.org/x/time/rate"
)

const (
	DefaultPageSize  = 10
	DefaultRateLimit = 10
	rateBurst        = 5
	defaultTimeout   = 30 * time.Second
)

type Options struct {
	// BaseURL is the API root, e.g. https://cti.example.com/api.
	BaseURL  string
	Username string
	Token    string

	// RateLimit caps requests per second. Zero means DefaultRateLimit.
	RateLimit float64
	PageSize  int
	Timeout   time.Duration
	Transport http.RoundTripper
	Logger    *slog.Logger
}

type Client struct {
	rest     *ghAPI.RESTClient
	baseURL  string
	username string
	limiter  *rate.Limiter
	pageSize int
	logger   *slog.Logger
}

func NewClient(opts Options) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(opts.BaseURL, "/"))
	if err != nil || base.Host == "" {
		return nil, fmt.Errorf("invalid api url %q", opts.BaseURL)
	}
	transport := opts.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	// Host, token and transport are all set so go-gh never consults the
	// gh CLI configuration.
	rest, err := ghAPI.NewRESTClient(ghAPI.ClientOptions{
		Host:               base.Hostname(),
		AuthToken:          opts.Token,
		Transport:          &authTransport{base: transport, value: opts.Username + ":" + opts.Token},
		Timeout:            timeout,
		SkipDefaultHeaders: true,
		Headers: map[string]string{
			"Accept":       "application/json",
			"Content-Type": "application/json; charset=utf-8",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create API client: %w", err)
	}

	limit := opts.RateLimit
	if limit <= 0 {
		limit = DefaultRateLimit
	}
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Client{
		rest:     rest,
		baseURL:  base.String(),
		username: opts.Username,
		limiter:  rate.NewLimiter(rate.Limit(limit), rateBurst),
		pageSize: pageSize,
		logger:   logger.With("component", "api"),
	}, nil
}

func (c *Client) Username() string { return c.username }

func (c *Client) PageSize() int { return c.pageSize }

// url returns an absolute URL so go-gh does not rewrite it to a GitHub host.
func (c *Client) url(path string) string {
	return c.baseURL + "/" + strings.TrimLeft(path, "/")
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, result interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}
	start := time.Now()
	var err error
	if result == nil {
		// Action endpoints may answer with an empty body.
		var resp *http.Response
		resp, err = c.rest.RequestWithContext(ctx, method, c.url(path), body)
		if err == nil {
			_, _ = io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
		}
	} else {
		err = c.rest.DoWithContext(ctx, method, c.url(path), body, result)
	}
	c.logger.Debug("request", "method", method, "path", path, "duration", time.Since(start), "error", err)
	return err
}

func (c *Client) Get(ctx context.Context, path string, result interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, result)
}

func (c *Client) Post(ctx context.Context, path string, body interface{}, result interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}
	return c.do(ctx, http.MethodPost, path, reader, result)
}

// authTransport sets the backend's "user:token" Authorization header.
type authTransport struct {
	base  http.RoundTripper
	value string
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	r := req.Clone(req.Context())
	r.Header.Set("Authorization", t.value)
	return t.base.RoundTrip(r)
}
