// internal/submission/transport_test.go
package submission

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"application-submitter/internal/common/config"
	"application-submitter/internal/common/errors"
	"application-submitter/internal/common/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

func newTestClient(t *testing.T, url string) *Client {
	return NewClient(config.EndpointConfig{URL: url, Timeout: 5000}, logger.NewTestLogger(t))
}

func signedRequest(t *testing.T) *SignedRequest {
	rec := NewRecord(
		"https://github.com/jtx007/b12-application/actions/runs/42",
		time.Date(2024, 3, 4, 5, 6, 7, 89_000_000, time.UTC),
	)
	signed, err := NewSignedRequest("test-secret", rec)
	require.NoError(t, err)
	return signed
}

// ==========================
// Core Functionality Tests
// ==========================

func TestClient_Submit_SendsSignedBytesUnchanged(t *testing.T) {
	signed := signedRequest(t)

	var gotMethod, gotContentType, gotSignature string
	var gotBody []byte

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		gotSignature = r.Header.Get("X-Signature-256")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"success": true, "receipt": "R123"}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	resp, serr := client.Submit(context.Background(), signed)

	require.Nil(t, serr)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, `{"success": true, "receipt": "R123"}`, string(resp.Body))

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, signed.Signature, gotSignature)
	// The wire body is byte-identical to what was signed, so the receiver can
	// verify the signature against what it read.
	assert.Equal(t, signed.Body, gotBody)
	assert.Equal(t, Sign("test-secret", gotBody), gotSignature)
}

func TestClient_Submit_Non2xx(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
	}{
		{name: "server error", statusCode: http.StatusInternalServerError, body: "server error"},
		{name: "unauthorized", statusCode: http.StatusUnauthorized, body: `{"error":"bad signature"}`},
		{name: "redirect-class status", statusCode: http.StatusNotModified, body: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := newTestClient(t, srv.URL)
			resp, serr := client.Submit(context.Background(), signedRequest(t))

			assert.Nil(t, resp)
			require.NotNil(t, serr)
			assert.Equal(t, errors.ErrCodeProtocolError, serr.Code)
			assert.Contains(t, serr.Details, tt.body)
		})
	}
}

func TestClient_Submit_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	client := newTestClient(t, srv.URL)
	resp, serr := client.Submit(context.Background(), signedRequest(t))

	assert.Nil(t, resp)
	require.NotNil(t, serr)
	assert.Equal(t, errors.ErrCodeTransportFailed, serr.Code)
	assert.Contains(t, serr.Diagnostic, "Request failed:")
}

func TestClient_Submit_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	client := newTestClient(t, srv.URL)
	resp, serr := client.Submit(ctx, signedRequest(t))

	assert.Nil(t, resp)
	require.NotNil(t, serr)
	assert.Equal(t, errors.ErrCodeTransportFailed, serr.Code)
}
