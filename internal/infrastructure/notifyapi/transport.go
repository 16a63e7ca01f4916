package notifyapi

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

// Transport is the network boundary. It sends exactly one request and reports
// the outcome; it never retries.
type Transport interface {
	Send(ctx context.Context, req Request) (*Response, error)
}

// TransportFunc adapts a function to the Transport interface.
type TransportFunc func(ctx context.Context, req Request) (*Response, error)

func (f TransportFunc) Send(ctx context.Context, req Request) (*Response, error) { return f(ctx, req) }

const (
	// DefaultTimeout is applied by HTTPTransport when the context has no deadline.
	DefaultTimeout = 30 * time.Second

	defaultUserAgent = "go-notify-client"

	// Response bodies above this size are truncated.
	maxBodyBytes = 10 << 20
)

// HTTPConfig configures an HTTPTransport.
type HTTPConfig struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
	// Client overrides the underlying http.Client (tests, custom TLS).
	Client *http.Client
}

// HTTPTransport sends Requests with net/http against a base URL.
// Safe for concurrent use.
type HTTPTransport struct {
	baseURL   string
	timeout   time.Duration
	userAgent string
	client    *http.Client
}

// NewHTTPTransport returns a transport for cfg. Zero fields take defaults.
func NewHTTPTransport(cfg HTTPConfig) (*HTTPTransport, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("notifyapi: base URL is required")
	}
	t := &HTTPTransport{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		timeout:   cfg.Timeout,
		userAgent: cfg.UserAgent,
		client:    cfg.Client,
	}
	if t.timeout == 0 {
		t.timeout = DefaultTimeout
	}
	if t.userAgent == "" {
		t.userAgent = defaultUserAgent
	}
	if t.client == nil {
		t.client = &http.Client{
			Transport: &http.Transport{
				Proxy: http.ProxyFromEnvironment,
				DialContext: (&net.Dialer{
					Timeout:   30 * time.Second,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				ForceAttemptHTTP2:     true,
				MaxIdleConns:          100,
				MaxIdleConnsPerHost:   10,
				IdleConnTimeout:       90 * time.Second,
				TLSHandshakeTimeout:   10 * time.Second,
				ExpectContinueTimeout: 1 * time.Second,
			},
		}
	}
	return t, nil
}

// URL returns the absolute URL req is sent to.
func (t *HTTPTransport) URL(req Request) string {
	u := t.baseURL + req.Path
	if len(req.Query) > 0 {
		u += "?" + req.Query.Encode()
	}
	return u
}

func (t *HTTPTransport) Send(ctx context.Context, req Request) (*Response, error) {
	if _, ok := ctx.Deadline(); !ok && t.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}

	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, t.URL(req), body)
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", req.Operation, err)
	}
	for k, vs := range req.Header {
		for _, v := range vs {
			httpReq.Header.Add(k, v)
		}
	}
	httpReq.Header.Set("User-Agent", t.userAgent)

	resp, err := t.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("send %s %s: %w", req.Method, req.Path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read %s response: %w", req.Operation, err)
	}
	out := &Response{
		Metadata: Metadata{
			Status: resp.StatusCode >= 200 && resp.StatusCode < 300,
			Code:   StatusCode(resp.StatusCode),
		},
	}
	if len(data) > 0 {
		out.Body = data
	}
	return out, nil
}
