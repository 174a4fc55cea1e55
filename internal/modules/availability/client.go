package availability

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"tenclub.in/app/internal/config"
)

// Query is forwarded to the availability service as-is; only StartDate is
// required, the rest passes through verbatim.
type Query struct {
	StartDate string `json:"startDate"`
	Months    int    `json:"months,omitempty"`
	Offset    int    `json:"offset,omitempty"`
}

// Result is the parsed subset of the upstream payload used for trial-request
// classification. Raw is the untouched body for passthrough responses.
type Result struct {
	Available bool
	Raw       []byte
}

type Client struct {
	cfg  config.AvailabilityConfig
	http *http.Client
}

func NewClient(cfg config.AvailabilityConfig) *Client {
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
	}
}

// Check forwards the query to the availability service. One attempt, no
// caching, no interpretation beyond pulling out data.available.
func (c *Client) Check(ctx context.Context, q Query) (Result, error) {
	if !c.cfg.Configured() {
		return Result{}, fmt.Errorf("availability: service url not configured")
	}

	body, err := json.Marshal(q)
	if err != nil {
		return Result{}, fmt.Errorf("availability: marshal query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL, bytes.NewReader(body))
	if err != nil {
		return Result{}, fmt.Errorf("availability: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("availability: call: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, fmt.Errorf("availability: read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Result{}, fmt.Errorf("availability: upstream status %d: %s", resp.StatusCode, raw)
	}

	var parsed struct {
		Data struct {
			Available bool `json:"available"`
		} `json:"data"`
	}
	// A body that doesn't parse still passes through; Available stays false.
	_ = json.Unmarshal(raw, &parsed)

	return Result{Available: parsed.Data.Available, Raw: raw}, nil
}
