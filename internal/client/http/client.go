package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/cyphera/tax-calculator/internal/interfaces"
	"github.com/cyphera/tax-calculator/internal/logger"
)

const defaultTimeout = 30 * time.Second

// ClientOption represents a function that can modify the HTTP client
type ClientOption func(*HTTPClient)

// Middleware represents a function that wraps an http.RoundTripper
type Middleware func(http.RoundTripper) http.RoundTripper

// HTTPClient is the REST client used to talk to the tax provider
type HTTPClient struct {
	httpClient     *http.Client
	defaultHeaders map[string]string
	middlewares    []Middleware
}

// NewHTTPClient creates a new HTTPClient with the given options
func NewHTTPClient(options ...ClientOption) *HTTPClient {
	client := &HTTPClient{
		httpClient: &http.Client{Timeout: defaultTimeout},
		defaultHeaders: map[string]string{
			"Accept": "application/json",
		},
	}

	for _, option := range options {
		option(client)
	}

	// Apply middlewares in reverse order so the first one is outermost
	if len(client.middlewares) > 0 {
		transport := client.httpClient.Transport
		if transport == nil {
			transport = http.DefaultTransport
		}
		for i := len(client.middlewares) - 1; i >= 0; i-- {
			transport = client.middlewares[i](transport)
		}
		client.httpClient.Transport = transport
	}

	return client
}

// WithDefaultHeader adds a default header to all requests
func WithDefaultHeader(key, value string) ClientOption {
	return func(c *HTTPClient) {
		c.defaultHeaders[key] = value
	}
}

// WithTimeout sets the timeout for all requests
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *HTTPClient) {
		c.httpClient.Timeout = timeout
	}
}

// WithTransport replaces the underlying round tripper
func WithTransport(transport http.RoundTripper) ClientOption {
	return func(c *HTTPClient) {
		c.httpClient.Transport = transport
	}
}

// WithMiddleware adds a middleware to the client
func WithMiddleware(middleware Middleware) ClientOption {
	return func(c *HTTPClient) {
		c.middlewares = append(c.middlewares, middleware)
	}
}

// Get performs an HTTP GET request with the given query parameters
func (c *HTTPClient) Get(ctx context.Context, uri string, parameters map[string]string, headers map[string]string) (interfaces.RestResponse, error) {
	return toRestResponse(c.DoRequest(ctx, http.MethodGet, uri, parameters, "", headers))
}

// Post performs an HTTP POST request with a JSON body
func (c *HTTPClient) Post(ctx context.Context, uri string, jsonBody string, headers map[string]string) (interfaces.RestResponse, error) {
	merged := make(map[string]string, len(headers)+1)
	for key, value := range headers {
		merged[key] = value
	}
	merged["Content-Type"] = "application/json"
	return toRestResponse(c.DoRequest(ctx, http.MethodPost, uri, nil, jsonBody, merged))
}

// toRestResponse keeps a failed request from surfacing as a non-nil interface holding a nil *Response
func toRestResponse(response *Response, err error) (interfaces.RestResponse, error) {
	if err != nil {
		return nil, err
	}
	return response, nil
}

// DoRequest is the generic method that performs all HTTP requests.
// Transport failures are returned as *RequestError; any HTTP status is a successful round trip.
func (c *HTTPClient) DoRequest(ctx context.Context, method, uri string, parameters map[string]string, body string, headers map[string]string) (*Response, error) {
	start := time.Now()

	fullURL, err := c.resolveURL(uri, parameters)
	if err != nil {
		return nil, &RequestError{Kind: MalformedRequestFailure, Method: method, URL: uri, Err: err}
	}

	var bodyReader io.Reader
	if body != "" {
		bodyReader = strings.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL.String(), bodyReader)
	if err != nil {
		return nil, &RequestError{Kind: MalformedRequestFailure, Method: method, URL: fullURL.Redacted(), Err: err}
	}

	for key, value := range c.defaultHeaders {
		req.Header.Set(key, value)
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, requestErr := c.httpClient.Do(req)

	duration := time.Since(start)
	if requestErr != nil {
		logger.Error("HTTP request failed",
			zap.String("method", method),
			zap.String("url", fullURL.Redacted()),
			zap.Error(requestErr),
			zap.Duration("duration", duration))
		return nil, classifyTransportError(method, fullURL.Redacted(), requestErr)
	}
	defer resp.Body.Close()

	response := &Response{
		statusCode: resp.StatusCode,
		reason:     reasonPhrase(resp),
	}
	bodyBytes, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		response.bodyErr = classifyTransportError(method, fullURL.Redacted(), readErr)
	} else {
		response.body = string(bodyBytes)
	}

	if resp.StatusCode >= 400 {
		logger.Warn("HTTP error response",
			zap.String("method", method),
			zap.String("url", fullURL.Redacted()),
			zap.Int("status", resp.StatusCode),
			zap.Duration("duration", duration))
		return response, nil
	}

	logger.Info("HTTP request successful",
		zap.String("method", method),
		zap.String("url", fullURL.Redacted()),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", duration))

	return response, nil
}

func (c *HTTPClient) resolveURL(uri string, parameters map[string]string) (*url.URL, error) {
	parsed, err := url.Parse(uri)
	if err != nil {
		return nil, fmt.Errorf("invalid request URI %q: %w", uri, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("unsupported URI scheme %q", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, fmt.Errorf("request URI %q has no host", uri)
	}

	if len(parameters) > 0 {
		query := parsed.Query()
		for key, value := range parameters {
			query.Set(key, value)
		}
		parsed.RawQuery = query.Encode()
	}
	return parsed, nil
}

func classifyTransportError(method, rawURL string, err error) *RequestError {
	kind := ConnectivityFailure

	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		kind = TimeoutFailure
	case errors.As(err, &netErr) && netErr.Timeout():
		kind = TimeoutFailure
	}

	return &RequestError{Kind: kind, Method: method, URL: rawURL, Err: err}
}

// reasonPhrase strips the numeric code from resp.Status
func reasonPhrase(resp *http.Response) string {
	reason := strings.TrimSpace(strings.TrimPrefix(resp.Status, fmt.Sprintf("%d", resp.StatusCode)))
	if reason == "" {
		reason = http.StatusText(resp.StatusCode)
	}
	return reason
}

// LoggingMiddleware creates a middleware that logs requests and responses.
// Header values are not logged since they carry the API key.
func LoggingMiddleware() Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return &loggingRoundTripper{next: next}
	}
}

type loggingRoundTripper struct {
	next http.RoundTripper
}

func (l *loggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	headerNames := make([]string, 0, len(req.Header))
	for name := range req.Header {
		headerNames = append(headerNames, name)
	}

	logger.Debug("HTTP request started",
		zap.String("method", req.Method),
		zap.String("url", req.URL.Redacted()),
		zap.Strings("headers", headerNames))

	resp, err := l.next.RoundTrip(req)

	duration := time.Since(start)
	if err != nil {
		logger.Error("HTTP request failed",
			zap.String("method", req.Method),
			zap.String("url", req.URL.Redacted()),
			zap.Error(err),
			zap.Duration("duration", duration))
		return resp, err
	}

	logger.Debug("HTTP response received",
		zap.String("method", req.Method),
		zap.String("url", req.URL.Redacted()),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", duration))

	return resp, nil
}

var _ interfaces.RestClient = (*HTTPClient)(nil)
