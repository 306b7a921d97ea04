package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/muurk/fieldbuilder/internal/field"
	"github.com/muurk/fieldbuilder/internal/urls"
	"github.com/muurk/fieldbuilder/internal/version"
)

// Client talks to the record server's single-slot field resource.
// It never retries: a failed request is reported once and dropped.
type Client struct {
	// BaseURL is the base URL of the record server (e.g., "http://localhost:4000")
	BaseURL string

	// HTTPClient is the underlying HTTP client. It has no timeout by default.
	HTTPClient *http.Client
}

// PostResponse is the record server's reply to POST /api/field
type PostResponse struct {
	Status string          `json:"status"`
	Saved  json.RawMessage `json:"saved"`
}

// GetResponse is the record server's reply to GET /api/field.
// Exactly one of Saved and Message is set.
type GetResponse struct {
	Saved   json.RawMessage `json:"saved,omitempty"`
	Message string          `json:"message,omitempty"`
}

// HasData reports whether the server holds a posted field
func (r *GetResponse) HasData() bool {
	return len(r.Saved) > 0
}

// NewClient creates a record server client
// baseURL: Full base URL (e.g., "http://localhost:4000")
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{},
	}
}

// SetTimeout sets the HTTP request timeout
func (c *Client) SetTimeout(timeout time.Duration) {
	c.HTTPClient.Timeout = timeout
}

// FieldURL returns the full URL of the field resource
func (c *Client) FieldURL() string {
	return c.BaseURL + urls.FieldPath
}

// PostField sends def to the record server, overwriting its slot.
func (c *Client) PostField(ctx context.Context, def *field.Definition) (*PostResponse, error) {
	body, err := json.Marshal(def)
	if err != nil {
		return nil, fmt.Errorf("failed to encode field: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.FieldURL(), bytes.NewReader(body))
	if err != nil {
		return nil, NewNetworkError("failed to create POST request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var out PostResponse
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetField reads the record server's slot.
func (c *Client) GetField(ctx context.Context) (*GetResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.FieldURL(), nil)
	if err != nil {
		return nil, NewNetworkError("failed to create GET request", err)
	}
	req.Header.Set("Accept", "application/json")

	var out GetResponse
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(req *http.Request, out any) error {
	req.Header.Set("User-Agent", version.UserAgent())

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return NewNetworkError(req.Method+" request failed", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return NewNetworkError("failed to read response body", err)
	}

	if resp.StatusCode != http.StatusOK {
		return NewHTTPError(resp.StatusCode, fmt.Sprintf("%s %s failed with status %d: %s",
			req.Method, req.URL.Path, resp.StatusCode, strings.TrimSpace(string(body))))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return NewParseError("failed to parse JSON response", err)
	}
	return nil
}

// VerifyEcho checks that the definition echoed by the record server matches
// what was sent.
func VerifyEcho(sent *field.Definition, resp *PostResponse) error {
	if resp.Status != "ok" {
		return fmt.Errorf("unexpected status %q", resp.Status)
	}

	var echoed field.Definition
	if err := json.Unmarshal(resp.Saved, &echoed); err != nil {
		return NewParseError("echoed field is not a field definition", err)
	}

	if echoed.Label != sent.Label {
		return fmt.Errorf("label mismatch: sent %q, echoed %q", sent.Label, echoed.Label)
	}
	if echoed.Required != sent.Required {
		return fmt.Errorf("required mismatch: sent %v, echoed %v", sent.Required, echoed.Required)
	}
	if echoed.Order != sent.Order {
		return fmt.Errorf("order mismatch: sent %q, echoed %q", sent.Order, echoed.Order)
	}
	if echoed.DefaultValue() != sent.DefaultValue() {
		return fmt.Errorf("default mismatch: sent %q, echoed %q", sent.DefaultValue(), echoed.DefaultValue())
	}
	if len(echoed.Choices) != len(sent.Choices) {
		return fmt.Errorf("choice count mismatch: sent %d, echoed %d", len(sent.Choices), len(echoed.Choices))
	}
	for i := range sent.Choices {
		if echoed.Choices[i] != sent.Choices[i] {
			return fmt.Errorf("choice %d mismatch: sent %q, echoed %q", i+1, sent.Choices[i], echoed.Choices[i])
		}
	}
	return nil
}
