// Copyright © 2025 Texelreg contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: catalog/client.go
// Summary: HTTP client for fetching registry indexes.
// Usage: One in-flight fetch at a time; callers discard stale results.

package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultTimeout = 30 * time.Second

	// maxErrorBody caps how much of a failed response is carried in the error.
	maxErrorBody = 512
)

// HTTPError reports a non-2xx registry response with a best-effort body.
type HTTPError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *HTTPError) Error() string {
	msg := fmt.Sprintf("registry returned %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	if body := strings.TrimSpace(e.Body); body != "" {
		msg += ": " + body
	}
	return msg
}

// Client fetches and normalizes registry indexes.
type Client struct {
	httpClient *http.Client
}

// NewClient creates a registry client. A zero timeout selects the default.
func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
	}
}

// FetchComponents downloads the source's index and maps it into the common
// component shape. Non-2xx responses yield an *HTTPError.
func (c *Client) FetchComponents(ctx context.Context, src Source) ([]Component, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src.JSONURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", src.Name, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", src.Name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &HTTPError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       string(body),
		}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s response: %w", src.Name, err)
	}

	components, err := Normalize(src, data)
	if err != nil {
		return nil, fmt.Errorf("parse %s response: %w", src.Name, err)
	}
	return components, nil
}
