package http

import "fmt"

// FailureKind classifies transport failures
type FailureKind string

const (
	// ConnectivityFailure means the destination could not be reached
	ConnectivityFailure FailureKind = "connectivity"
	// TimeoutFailure means the request timed out or was canceled
	TimeoutFailure FailureKind = "timeout"
	// MalformedRequestFailure means the URI or request could not be built
	MalformedRequestFailure FailureKind = "malformed_request"
)

// RequestError is returned when a request cannot complete a round trip
type RequestError struct {
	Kind   FailureKind
	Method string
	URL    string
	Err    error
}

func (e *RequestError) Error() string {
	switch e.Kind {
	case ConnectivityFailure:
		return fmt.Sprintf("%s %s: could not complete request, unable to reach destination: %v", e.Method, e.URL, e.Err)
	case TimeoutFailure:
		return fmt.Sprintf("%s %s: request timed out: %v", e.Method, e.URL, e.Err)
	default:
		return fmt.Sprintf("%s %s: the request is invalid: %v", e.Method, e.URL, e.Err)
	}
}

func (e *RequestError) Unwrap() error { return e.Err }
