// Package fetch is the dashboard's remote data client: a single typed HTTP
// GET returning a decoded payload or a FetchError.
//
// Unlike the backend's exchange client there are no retries and no timeout
// beyond the transport default; recovery is the poller's next tick.
package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// FetchError is the single error kind surfaced to pollers. Network failure
// and HTTP-level failure are not distinguished; callers only see a
// human-readable message.
type FetchError struct {
	URL     string
	Message string
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %s", e.URL, e.Message)
}

// Client issues typed GET requests against one API base URL.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the given base URL. A nil httpClient uses
// http.DefaultClient.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: baseURL, httpClient: httpClient}
}

// BaseURL returns the configured API base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// GetJSON fetches baseURL+path and decodes the JSON body into T.
func GetJSON[T any](ctx context.Context, c *Client, path string) (T, error) {
	var out T

	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return out, &FetchError{URL: url, Message: err.Error()}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return out, &FetchError{URL: url, Message: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return out, &FetchError{URL: url, Message: err.Error()}
	}

	if resp.StatusCode >= 400 {
		return out, &FetchError{URL: url, Message: http.StatusText(resp.StatusCode)}
	}

	if err := json.Unmarshal(body, &out); err != nil {
		return out, &FetchError{URL: url, Message: "decode response: " + err.Error()}
	}

	return out, nil
}
