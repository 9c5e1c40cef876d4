package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newLimitedRouter(t *testing.T, rps, burst int) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	limiter := NewRateLimiter(rps, burst)
	t.Cleanup(limiter.Stop)

	router := gin.New()
	router.Use(CorrelationIDMiddleware(), RequestLoggingMiddleware(), limiter.Middleware())
	router.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/api/v1/taxes/countries", func(c *gin.Context) { c.Status(http.StatusOK) })
	return router
}

func get(router *gin.Engine, path, remoteAddr string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.RemoteAddr = remoteAddr
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimiter_Middleware(t *testing.T) {
	// One token per second with a burst of two: the third immediate request is rejected
	router := newLimitedRouter(t, 1, 2)

	assert.Equal(t, http.StatusOK, get(router, "/api/v1/taxes/countries", "10.0.0.1:1234").Code)
	assert.Equal(t, http.StatusOK, get(router, "/api/v1/taxes/countries", "10.0.0.1:1234").Code)

	w := get(router, "/api/v1/taxes/countries", "10.0.0.1:1234")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "1", w.Header().Get("Retry-After"))
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	assert.JSONEq(t, `{"error":"Too many requests. Please try again later.","retry_after":1}`, w.Body.String())

	// Other clients have their own budget
	assert.Equal(t, http.StatusOK, get(router, "/api/v1/taxes/countries", "10.0.0.2:1234").Code)
}

func TestRateLimiter_SkipsHealth(t *testing.T) {
	router := newLimitedRouter(t, 1, 1)

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, get(router, "/health", "10.0.0.3:1234").Code)
	}
}

func TestRateLimiter_StopIsIdempotent(t *testing.T) {
	limiter := NewRateLimiter(1, 1)
	limiter.Stop()
	assert.NotPanics(t, limiter.Stop)
}
