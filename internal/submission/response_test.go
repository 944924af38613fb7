// internal/submission/response_test.go
package submission

import (
	"testing"

	"application-submitter/internal/common/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterpret_Success(t *testing.T) {
	tests := []struct {
		name            string
		body            string
		expectedReceipt interface{}
	}{
		{
			name:            "string receipt",
			body:            `{"success": true, "receipt": "R123"}`,
			expectedReceipt: "R123",
		},
		{
			name:            "extra fields ignored",
			body:            `{"success": true, "receipt": "R123", "queued": false}`,
			expectedReceipt: "R123",
		},
		{
			// Receipt presence is required but its type is not checked.
			name:            "numeric receipt accepted",
			body:            `{"success": true, "receipt": 42}`,
			expectedReceipt: float64(42),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, serr := Interpret([]byte(tt.body))

			require.Nil(t, serr)
			require.NotNil(t, result)
			assert.Equal(t, tt.expectedReceipt, result.Receipt)
		})
	}
}

func TestInterpret_FormatErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "plain text", body: "not json"},
		{name: "truncated object", body: `{"success": tr`},
		{name: "empty body", body: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, serr := Interpret([]byte(tt.body))

			assert.Nil(t, result)
			require.NotNil(t, serr)
			assert.Equal(t, errors.ErrCodeResponseFormatInvalid, serr.Code)
			// The raw body is preserved for diagnosis.
			assert.Contains(t, serr.Diagnostic, tt.body)
		})
	}
}

func TestInterpret_ShapeErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "success false", body: `{"success": false}`},
		{name: "success false with receipt", body: `{"success": false, "receipt": "R123"}`},
		{name: "receipt missing", body: `{"success": true}`},
		{name: "success missing", body: `{"receipt": "R123"}`},
		{name: "success not boolean", body: `{"success": "yes", "receipt": "R123"}`},
		{name: "valid JSON but not an object", body: `["success"]`},
		{name: "bare string", body: `"ok"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, serr := Interpret([]byte(tt.body))

			assert.Nil(t, result)
			require.NotNil(t, serr)
			assert.Equal(t, errors.ErrCodeResponseShapeUnexpected, serr.Code)
			assert.Contains(t, serr.Diagnostic, "Unexpected response:")
		})
	}
}

func TestInterpret_ShapeErrorCarriesParsedStructure(t *testing.T) {
	result, serr := Interpret([]byte(`{"success": false, "detail": "closed"}`))

	assert.Nil(t, result)
	require.NotNil(t, serr)
	assert.Contains(t, serr.Diagnostic, `"success":false`)
	assert.Contains(t, serr.Diagnostic, `"detail":"closed"`)
}
