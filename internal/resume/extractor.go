// Package resume adapts the external resume-text-extraction service.
package resume

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// TextExtractor produces plain text from an uploaded resume document URL.
type TextExtractor interface {
	Extract(ctx context.Context, documentURL string) (string, error)
}

// HTTPExtractor calls the extraction service over HTTP.
type HTTPExtractor struct {
	serviceURL string
	client     *http.Client
}

// NewHTTPExtractor creates an extractor pointed at the given service URL.
func NewHTTPExtractor(serviceURL string, timeout time.Duration) *HTTPExtractor {
	if serviceURL == "" {
		serviceURL = "http://localhost:8081"
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &HTTPExtractor{
		serviceURL: serviceURL,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

type extractRequest struct {
	URL string `json:"url"`
}

// extractResponse is the extraction service response format.
type extractResponse struct {
	Text  string `json:"text"`
	Pages int    `json:"pages"`
	Error string `json:"error,omitempty"`
}

// Extract sends the document URL to the service and returns the parsed text.
func (e *HTTPExtractor) Extract(ctx context.Context, documentURL string) (string, error) {
	payload, err := json.Marshal(extractRequest{URL: documentURL})
	if err != nil {
		return "", fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.serviceURL+"/extract", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling extraction service: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("extraction service returned %d", resp.StatusCode)
	}

	var result extractResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}
	if result.Error != "" {
		return "", fmt.Errorf("extraction failed: %s", result.Error)
	}

	return result.Text, nil
}

// IsServiceHealthy checks whether the extraction service is reachable.
func (e *HTTPExtractor) IsServiceHealthy(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, e.serviceURL+"/health", nil)
	if err != nil {
		return false
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode == http.StatusOK
}
