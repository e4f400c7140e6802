// Package planapi is the HTTP client for the trip-planning backend. It
// owns nothing beyond the request/response boundary: no retries, no
// caching, no reshaping of the plan document it carries.
package planapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/Aashiq1/TripGenie-sub000/types"
)

// Client represents a client for the planning backend API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// ClientOption is a function that configures the client
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// NewClient creates a new planning backend client
func NewClient(baseURL, apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// GetTripDetails fetches the trip snapshot for a group: member roster,
// trip attributes, and the current raw plan if one exists.
func (c *Client) GetTripDetails(ctx context.Context, groupCode string) (*TripDetails, error) {
	var details TripDetails
	if err := c.get(ctx, fmt.Sprintf("/groups/%s", url.PathEscape(groupCode)), &details); err != nil {
		return nil, err
	}
	return &details, nil
}

// GetTripPlan fetches the current raw plan document for a group.
func (c *Client) GetTripPlan(ctx context.Context, groupCode string) (types.RawTripPlan, error) {
	var resp planResponse
	if err := c.get(ctx, fmt.Sprintf("/groups/%s/plan", url.PathEscape(groupCode)), &resp); err != nil {
		return nil, err
	}
	if resp.Error != "" {
		return nil, fmt.Errorf("planner reported error: %s", resp.Error)
	}
	if resp.Plan == nil {
		return nil, fmt.Errorf("planner returned no plan for group %s", groupCode)
	}
	return resp.Plan, nil
}

// UpdateTrip submits a partial update of the trip's editable fields.
// The response's RequiresReplan acknowledgment is authoritative for
// plan staleness.
func (c *Client) UpdateTrip(ctx context.Context, groupCode string, fields types.TripEditableFields) (*UpdateTripResponse, error) {
	if fields.IsEmpty() {
		return nil, fmt.Errorf("no editable fields provided")
	}

	jsonData, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/groups/%s", c.baseURL, url.PathEscape(groupCode))
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPatch, endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	c.setHeaders(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.statusError("update trip", resp)
	}

	var ack UpdateTripResponse
	if err := json.NewDecoder(resp.Body).Decode(&ack); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &ack, nil
}

// RequestPlan asks the backend to generate a new plan for the group.
// Generation runs synchronously on the backend; the call returns the
// finished raw plan document.
func (c *Client) RequestPlan(ctx context.Context, groupCode string) (types.RawTripPlan, error) {
	endpoint := fmt.Sprintf("%s/groups/%s/plan", c.baseURL, url.PathEscape(groupCode))
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	c.setHeaders(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	var planResp planResponse
	if err := json.NewDecoder(resp.Body).Decode(&planResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if planResp.Error != "" {
			return nil, fmt.Errorf("plan generation failed with status %d: %s", resp.StatusCode, planResp.Error)
		}
		return nil, fmt.Errorf("plan generation failed with status %d", resp.StatusCode)
	}
	if planResp.Error != "" {
		return nil, fmt.Errorf("planner reported error: %s", planResp.Error)
	}
	if planResp.Plan == nil {
		return nil, fmt.Errorf("planner returned no plan for group %s", groupCode)
	}
	return planResp.Plan, nil
}

// get performs a GET against the given path and decodes the body into out.
func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	c.setHeaders(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.statusError("get "+path, resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("x-api-key", c.apiKey)
	}
}

// statusError extracts an error message from a non-200 body when one
// exists.
func (c *Client) statusError(op string, resp *http.Response) error {
	var errResp map[string]interface{}
	_ = json.NewDecoder(resp.Body).Decode(&errResp)
	if msg, ok := errResp["error"].(string); ok && msg != "" {
		return fmt.Errorf("%s failed with status %d: %s", op, resp.StatusCode, msg)
	}
	return fmt.Errorf("%s failed with status %d", op, resp.StatusCode)
}
