// internal/submission/transport.go
package submission

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"application-submitter/internal/common/config"
	"application-submitter/internal/common/errors"
	httpclient "application-submitter/internal/common/http"
	"application-submitter/internal/common/logger"
)

const (
	headerContentType = "Content-Type"
	headerSignature   = "X-Signature-256"

	contentTypeJSON = "application/json"
)

// Client sends one signed submission to the configured endpoint.
type Client struct {
	endpoint string
	http     *httpclient.Client
	logger   logger.Logger
}

func NewClient(cfg config.EndpointConfig, log logger.Logger) *Client {
	return &Client{
		endpoint: cfg.URL,
		http:     httpclient.NewClient(cfg.GetTimeout()),
		logger:   log.WithFields(map[string]interface{}{"endpoint": cfg.URL}),
	}
}

// Submit POSTs the signed body with its signature header and captures the
// response. The body bytes go on the wire unchanged from what was signed.
// Non-2xx statuses and network-level failures are both terminal.
func (c *Client) Submit(ctx context.Context, signed *SignedRequest) (*Response, *errors.StandardError) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(signed.Body))
	if err != nil {
		return nil, errors.NewTransportFailedError(err)
	}
	req.Header.Set(headerContentType, contentTypeJSON)
	req.Header.Set(headerSignature, signed.Signature)

	c.logger.Debug("awaiting response", map[string]interface{}{
		"bodyBytes": len(signed.Body),
	})

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.NewTransportFailedError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.NewTransportFailedError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.NewProtocolError(resp.StatusCode, string(body))
	}

	return &Response{StatusCode: resp.StatusCode, Body: body}, nil
}
