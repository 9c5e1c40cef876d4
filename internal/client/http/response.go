package http

import (
	"context"

	"github.com/cyphera/tax-calculator/internal/interfaces"
)

// Response is a fully read HTTP response
type Response struct {
	statusCode int
	reason     string
	body       string
	bodyErr    error
}

// NewResponse builds a Response from already known parts
func NewResponse(statusCode int, reason, body string) *Response {
	return &Response{statusCode: statusCode, reason: reason, body: body}
}

// StatusCode returns the HTTP status code
func (r *Response) StatusCode() int { return r.statusCode }

// IsSuccess reports whether the status code is 2xx
func (r *Response) IsSuccess() bool { return r.statusCode >= 200 && r.statusCode < 300 }

// Reason returns the reason phrase, e.g. "Not Found"
func (r *Response) Reason() string { return r.reason }

// Body returns the response body, or the error hit while reading it
func (r *Response) Body(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", &RequestError{Kind: TimeoutFailure, Err: err}
	}
	if r.bodyErr != nil {
		return "", r.bodyErr
	}
	return r.body, nil
}

var _ interfaces.RestResponse = (*Response)(nil)
