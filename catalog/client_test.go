// Copyright © 2025 Texelreg contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestClient_FetchComponents(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("method = %s, want GET", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"name": "button", "files": ["ui/button.tsx"], "type": "components:ui"}]`))
	}))
	defer server.Close()

	src := shadcnSource()
	src.JSONURL = server.URL

	client := NewClient(5 * time.Second)
	components, err := client.FetchComponents(context.Background(), src)
	if err != nil {
		t.Fatalf("FetchComponents failed: %v", err)
	}
	if len(components) != 1 || components[0].Name != "button" {
		t.Errorf("components = %+v", components)
	}
}

func TestClient_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "index moved", http.StatusNotFound)
	}))
	defer server.Close()

	src := shadcnSource()
	src.JSONURL = server.URL

	client := NewClient(5 * time.Second)
	_, err := client.FetchComponents(context.Background(), src)
	if err == nil {
		t.Fatal("expected error for 404 response")
	}

	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("error type = %T, want *HTTPError", err)
	}
	if httpErr.StatusCode != http.StatusNotFound {
		t.Errorf("StatusCode = %d", httpErr.StatusCode)
	}
	if !strings.Contains(httpErr.Body, "index moved") {
		t.Errorf("Body = %q, want response body carried", httpErr.Body)
	}
	// The displayed message must carry the status code.
	if !strings.Contains(err.Error(), "404") {
		t.Errorf("Error() = %q, want status code included", err.Error())
	}
}

func TestClient_ErrorBodyIsCapped(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(strings.Repeat("x", 4096)))
	}))
	defer server.Close()

	src := magicUISource()
	src.JSONURL = server.URL

	client := NewClient(5 * time.Second)
	_, err := client.FetchComponents(context.Background(), src)

	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("error type = %T, want *HTTPError", err)
	}
	if len(httpErr.Body) > maxErrorBody {
		t.Errorf("Body length = %d, want <= %d", len(httpErr.Body), maxErrorBody)
	}
}

func TestClient_TransportError(t *testing.T) {
	src := shadcnSource()
	src.JSONURL = "http://127.0.0.1:1/index.json"

	client := NewClient(time.Second)
	_, err := client.FetchComponents(context.Background(), src)
	if err == nil {
		t.Fatal("expected transport error")
	}
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		t.Errorf("transport failures must not be HTTPError, got %+v", httpErr)
	}
}

func TestClient_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	src := shadcnSource()
	src.JSONURL = server.URL

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(5 * time.Second)
	if _, err := client.FetchComponents(ctx, src); err == nil {
		t.Error("expected error for cancelled context")
	}
}
