package interfaces

//go:generate mockgen -destination=../mocks/mock_clients.go -package=mocks github.com/cyphera/tax-calculator/internal/interfaces RestClient,RestResponse,JSONConverter

import "context"

// RestClient performs JSON requests against absolute URIs.
// Failures are returned as *http.RequestError values.
type RestClient interface {
	Get(ctx context.Context, uri string, parameters map[string]string, headers map[string]string) (RestResponse, error)
	Post(ctx context.Context, uri string, jsonBody string, headers map[string]string) (RestResponse, error)
}

// RestResponse exposes the parts of an HTTP response the tax calculator needs
type RestResponse interface {
	StatusCode() int
	IsSuccess() bool
	Reason() string
	Body(ctx context.Context) (string, error)
}

// JSONConverter serializes values to JSON text and back.
// Serialize failures are *codec.SerializationError, Deserialize failures are *codec.DeserializationError.
type JSONConverter interface {
	Serialize(value interface{}) (string, error)
	Deserialize(text string, target interface{}) error
}
