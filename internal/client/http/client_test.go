package http_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpClient "github.com/cyphera/tax-calculator/internal/client/http"
)

func TestHTTPClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v2/rates/90404", r.URL.Path)
		assert.Equal(t, "US", r.URL.Query().Get("country"))
		assert.Equal(t, "Santa Monica", r.URL.Query().Get("city"))
		assert.Equal(t, "Bearer key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, `{"rate":{}}`)
	}))
	defer server.Close()

	client := httpClient.NewHTTPClient()
	resp, err := client.Get(context.Background(), server.URL+"/v2/rates/90404",
		map[string]string{"country": "US", "city": "Santa Monica"},
		map[string]string{"Authorization": "Bearer key"})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.True(t, resp.IsSuccess())
	assert.Equal(t, "OK", resp.Reason())

	body, err := resp.Body(context.Background())
	require.NoError(t, err)
	assert.Equal(t, `{"rate":{}}`, body)
}

func TestHTTPClient_Post(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "2022-01-24", r.Header.Get("x-api-version"))
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"to_country":"US","shipping":1.5}`, string(body))
		_, _ = io.WriteString(w, `{"tax":{}}`)
	}))
	defer server.Close()

	client := httpClient.NewHTTPClient()
	headers := map[string]string{"x-api-version": "2022-01-24"}
	resp, err := client.Post(context.Background(), server.URL+"/v2/taxes", `{"to_country":"US","shipping":1.5}`, headers)
	require.NoError(t, err)
	assert.True(t, resp.IsSuccess())
	_, hasContentType := headers["Content-Type"]
	assert.False(t, hasContentType, "caller headers must not be mutated")
}

func TestHTTPClient_ErrorStatusIsNotTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"error":"Not Found","detail":"No such zip","status":"404"}`)
	}))
	defer server.Close()

	client := httpClient.NewHTTPClient()
	resp, err := client.Get(context.Background(), server.URL+"/v2/rates/00000", nil, nil)
	require.NoError(t, err)
	assert.False(t, resp.IsSuccess())
	assert.Equal(t, http.StatusNotFound, resp.StatusCode())
	assert.Equal(t, "Not Found", resp.Reason())

	body, err := resp.Body(context.Background())
	require.NoError(t, err)
	assert.Contains(t, body, "No such zip")
}

func TestHTTPClient_TransportFailures(t *testing.T) {
	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer slow.Close()

	closed := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	closedURL := closed.URL
	closed.Close()

	tests := []struct {
		name     string
		client   *httpClient.HTTPClient
		uri      string
		expected httpClient.FailureKind
	}{
		{
			name:     "timeout",
			client:   httpClient.NewHTTPClient(httpClient.WithTimeout(20 * time.Millisecond)),
			uri:      slow.URL,
			expected: httpClient.TimeoutFailure,
		},
		{
			name:     "connection refused",
			client:   httpClient.NewHTTPClient(),
			uri:      closedURL,
			expected: httpClient.ConnectivityFailure,
		},
		{
			name:     "unsupported scheme",
			client:   httpClient.NewHTTPClient(),
			uri:      "ftp://api.taxjar.com/v2/rates",
			expected: httpClient.MalformedRequestFailure,
		},
		{
			name:     "unparseable uri",
			client:   httpClient.NewHTTPClient(),
			uri:      "https://api.taxjar.com/%zz",
			expected: httpClient.MalformedRequestFailure,
		},
		{
			name:     "missing host",
			client:   httpClient.NewHTTPClient(),
			uri:      "https:///v2/rates",
			expected: httpClient.MalformedRequestFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := tt.client.Get(context.Background(), tt.uri, nil, nil)
			assert.Nil(t, resp)

			var reqErr *httpClient.RequestError
			require.True(t, errors.As(err, &reqErr), "expected RequestError, got %v", err)
			assert.Equal(t, tt.expected, reqErr.Kind)
		})
	}
}

func TestHTTPClient_CanceledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := httpClient.NewHTTPClient().Get(ctx, server.URL, nil, nil)
	var reqErr *httpClient.RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, httpClient.TimeoutFailure, reqErr.Kind)
}

func TestHTTPClient_DefaultHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "taxcalc-test", r.Header.Get("User-Agent"))
		assert.Equal(t, "per-request", r.Header.Get("X-Trace"))
	}))
	defer server.Close()

	client := httpClient.NewHTTPClient(
		httpClient.WithDefaultHeader("User-Agent", "taxcalc-test"),
		httpClient.WithDefaultHeader("X-Trace", "default"),
	)

	resp, err := client.Post(context.Background(), server.URL+"/v2/taxes", `{}`, map[string]string{"X-Trace": "per-request"})
	require.NoError(t, err)
	assert.True(t, resp.IsSuccess())
}

func TestHTTPClient_RelativeURIIsMalformed(t *testing.T) {
	_, err := httpClient.NewHTTPClient().Get(context.Background(), "/v2/rates/1", nil, nil)
	var reqErr *httpClient.RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, httpClient.MalformedRequestFailure, reqErr.Kind)
}

func TestHTTPClient_Middleware(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	middlewareCalls := 0
	counting := func(next http.RoundTripper) http.RoundTripper {
		return roundTripperFunc(func(req *http.Request) (*http.Response, error) {
			middlewareCalls++
			return next.RoundTrip(req)
		})
	}

	client := httpClient.NewHTTPClient(
		httpClient.WithMiddleware(httpClient.LoggingMiddleware()),
		httpClient.WithMiddleware(counting),
	)

	resp, err := client.Get(context.Background(), server.URL+"/v2/rates/1", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode())
	assert.Equal(t, "Internal Server Error", resp.Reason())
	assert.Equal(t, 1, middlewareCalls)
}

func TestResponse_Body_CanceledContext(t *testing.T) {
	resp := httpClient.NewResponse(http.StatusOK, "OK", "{}")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := resp.Body(ctx)
	var reqErr *httpClient.RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, httpClient.TimeoutFailure, reqErr.Kind)
}

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) { return f(req) }
