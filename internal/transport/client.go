// Package transport delivers review payloads to the monitoring API.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"monreview/internal/review"
)

const (
	submitPath     = "/operaciones/monitoreos/store"
	defaultTimeout = 30 * time.Second
)

// Client posts submission payloads to the API. Failures are reported as
// review.Outcome values; an empty message lets the caller apply its
// per-phase fallback text.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a submission client. A zero timeout falls back to the
// default.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// errorBody is the optional failure shape returned by the API.
type errorBody struct {
	Message string `json:"message"`
}

// Submit implements review.Submitter.
func (c *Client) Submit(ctx context.Context, p review.Payload) review.Outcome {
	body, err := json.Marshal(p)
	if err != nil {
		log.Printf("transport: encode payload: %v", err)
		return review.Outcome{}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+submitPath, bytes.NewReader(body))
	if err != nil {
		log.Printf("transport: build request: %v", err)
		return review.Outcome{}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		// Network-level failures carry no server message; the caller's
		// generic fallback applies.
		log.Printf("transport: submit %s: %v", p.Site, err)
		return review.Outcome{}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return review.Outcome{OK: true}
	}

	var eb errorBody
	_ = json.NewDecoder(resp.Body).Decode(&eb)
	return review.Outcome{Message: eb.Message}
}
