package codec_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cyphera/tax-calculator/internal/codec"
)

type sample struct {
	Name  string          `json:"name"`
	Rate  decimal.Decimal `json:"rate"`
	Empty string          `json:"empty,omitempty"`
}

type failingMarshaler struct{}

func (failingMarshaler) MarshalJSON() ([]byte, error) {
	return nil, errors.New("cannot encode")
}

func TestJSONConverter_Serialize(t *testing.T) {
	converter := codec.NewJSONConverter()

	text, err := converter.Serialize(sample{Name: "test", Rate: decimal.RequireFromString("0.0975")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"test","rate":"0.0975"}`, text)
}

func TestJSONConverter_Serialize_Nil(t *testing.T) {
	converter := codec.NewJSONConverter()

	text, err := converter.Serialize(nil)
	require.NoError(t, err)
	assert.Equal(t, "null", text)
}

func TestJSONConverter_Serialize_Failure(t *testing.T) {
	converter := codec.NewJSONConverter()

	_, err := converter.Serialize(failingMarshaler{})
	require.Error(t, err)

	var serErr *codec.SerializationError
	assert.ErrorAs(t, err, &serErr)
}

func TestJSONConverter_Deserialize(t *testing.T) {
	converter := codec.NewJSONConverter()

	tests := []struct {
		name     string
		text     string
		wantErr  bool
		expected sample
	}{
		{
			name:     "numeric rate",
			text:     `{"name":"a","rate":0.2}`,
			expected: sample{Name: "a", Rate: decimal.RequireFromString("0.2")},
		},
		{
			name:     "string rate",
			text:     `{"name":"b","rate":"0.0975"}`,
			expected: sample{Name: "b", Rate: decimal.RequireFromString("0.0975")},
		},
		{
			name:    "truncated",
			text:    `{"name":`,
			wantErr: true,
		},
		{
			name:    "empty text",
			text:    ``,
			wantErr: true,
		},
		{
			name:    "wrong type",
			text:    `{"name":42}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out sample
			err := converter.Deserialize(tt.text, &out)
			if tt.wantErr {
				var desErr *codec.DeserializationError
				assert.ErrorAs(t, err, &desErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected.Name, out.Name)
			assert.True(t, tt.expected.Rate.Equal(out.Rate), "rate %s", out.Rate)
		})
	}
}

func TestDeserializeAs(t *testing.T) {
	converter := codec.NewJSONConverter()

	t.Run("value", func(t *testing.T) {
		out, err := codec.DeserializeAs[sample](converter, `{"name":"x"}`)
		require.NoError(t, err)
		require.NotNil(t, out)
		assert.Equal(t, "x", out.Name)
	})

	t.Run("null", func(t *testing.T) {
		out, err := codec.DeserializeAs[sample](converter, `null`)
		require.NoError(t, err)
		assert.Nil(t, out)
	})

	t.Run("invalid", func(t *testing.T) {
		out, err := codec.DeserializeAs[sample](converter, `not json`)
		assert.Nil(t, out)
		var desErr *codec.DeserializationError
		assert.ErrorAs(t, err, &desErr)
	})

	t.Run("map", func(t *testing.T) {
		out, err := codec.DeserializeAs[map[string]string](converter, `{"country":"US"}`)
		require.NoError(t, err)
		require.NotNil(t, out)
		assert.Equal(t, "US", (*out)["country"])
	})
}
