// Package fms delivers patient billing payloads to the external FMS.
package fms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"patient-management-service/internal/models"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type Client struct {
	url        string
	httpClient *http.Client
	logger     zerolog.Logger
}

type Option func(*Client)

// WithHTTPClient overrides the default client.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.httpClient = c
	}
}

// NewClient returns a client posting to url. The default http.Client has no
// timeout: delivery blocks until the FMS answers or the request context ends.
func NewClient(url string, logger zerolog.Logger, opts ...Option) *Client {
	c := &Client{
		url:        url,
		httpClient: &http.Client{},
		logger:     logger.With().Str("component", "fms_client").Logger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Send POSTs the payload once and returns the response status code. A non-nil
// error means no response was received at all.
func (c *Client) Send(ctx context.Context, payload *models.FMSPayload) (int, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return 0, fmt.Errorf("marshal fms payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("build fms request: %w", err)
	}
	deliveryID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", deliveryID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("post to fms: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	c.logger.Info().
		Str("delivery_id", deliveryID).
		Uint("patient_id", payload.Patient.PatientID).
		Int("status", resp.StatusCode).
		Msg("fms responded")

	return resp.StatusCode, nil
}
