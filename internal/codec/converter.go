// Package codec provides the JSON converter used for TaxJar payloads.
package codec

import (
	"fmt"

	"github.com/goccy/go-json"

	"github.com/cyphera/tax-calculator/internal/interfaces"
)

// SerializationError is returned when a value cannot be encoded as JSON
type SerializationError struct {
	Err error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("could not serialize object to JSON string: %v", e.Err)
}

func (e *SerializationError) Unwrap() error { return e.Err }

// DeserializationError is returned when text is not valid JSON for the target type
type DeserializationError struct {
	Err error
}

func (e *DeserializationError) Error() string {
	return fmt.Sprintf("could not deserialize JSON to object: %v", e.Err)
}

func (e *DeserializationError) Unwrap() error { return e.Err }

// JSONConverter implements interfaces.JSONConverter on top of goccy/go-json
type JSONConverter struct{}

// NewJSONConverter creates a JSONConverter
func NewJSONConverter() *JSONConverter {
	return &JSONConverter{}
}

// Serialize encodes value as a JSON string
func (c *JSONConverter) Serialize(value interface{}) (string, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return "", &SerializationError{Err: err}
	}
	return string(data), nil
}

// Deserialize decodes text into target, which must be a non-nil pointer.
// A JSON null leaves pointer targets nil.
func (c *JSONConverter) Deserialize(text string, target interface{}) error {
	if err := json.Unmarshal([]byte(text), target); err != nil {
		return &DeserializationError{Err: err}
	}
	return nil
}

// DeserializeAs decodes text into a new T. It returns nil, nil for the JSON literal null.
func DeserializeAs[T any](converter interfaces.JSONConverter, text string) (*T, error) {
	var out *T
	if err := converter.Deserialize(text, &out); err != nil {
		return nil, err
	}
	return out, nil
}

var _ interfaces.JSONConverter = (*JSONConverter)(nil)
