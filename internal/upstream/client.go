// Package upstream implements the HTTP client for the Travel Planner booking
// API. It is the fallible fetch stage of the gateway's two-stage pipeline:
// everything here can fail or time out, and everything downstream (the derive
// package) is pure. All responses arrive in the API's {success, message, data}
// envelope; a transport failure, a non-2xx status or success=false all surface
// as ordinary errors for the service layer to wrap.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/TravelPlannerHQ/travel-planner-gateway/types"
)

const defaultTimeout = 10 * time.Second

// API is the subset of the booking API the gateway consumes. Services depend
// on this interface so tests can substitute a stub without a network.
type API interface {
	TripAPI
	ExpenseAPI
	StayAPI
	TransportAPI
}

// Client talks to the booking API over HTTP.
type Client struct {
	baseURL string
	client  *http.Client
}

var _ API = (*Client)(nil)

// NewClient creates a booking API client for the given base URL, e.g.
// "http://localhost:8080". A non-positive timeout falls back to 10s.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// get issues a GET request and decodes the envelope's data field into out.
// A nil out discards the data.
func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

// post issues a POST request with a JSON body and decodes the envelope's data
// field into out.
func (c *Client) post(ctx context.Context, path string, body interface{}, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

// del issues a DELETE request.
func (c *Client) del(ctx context.Context, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, nil)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("booking API error: %s", resp.Status)
	}

	var envelope types.RawResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("decoding booking API response: %w", err)
	}

	if !envelope.Success {
		if envelope.Message == "" {
			envelope.Message = "request rejected"
		}
		return fmt.Errorf("booking API: %s", envelope.Message)
	}

	if out == nil {
		return nil
	}

	// A missing data field decodes target collections as empty, matching how
	// the browser client treated `data.data || []`.
	if len(envelope.Data) == 0 || string(envelope.Data) == "null" {
		return nil
	}

	return json.Unmarshal(envelope.Data, out)
}
