// Copyright © 2025 Texelreg contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: registry/manifest.go
// Summary: App manifest structure for the registry system.
// Usage: Apps provide a manifest.json file describing their metadata.

package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// AppType specifies how the app should be launched.
type AppType string

const (
	// AppTypeBuiltIn uses a factory registered in the binary
	AppTypeBuiltIn AppType = "built-in"

	// AppTypeExternal launches an external binary (future)
	AppTypeExternal AppType = "external"
)

// Manifest describes an application's metadata and capabilities.
type Manifest struct {
	// Name is the unique identifier for this app (e.g., "regbrowser")
	Name string `json:"name"`

	// DisplayName is the human-readable name shown in listings
	DisplayName string `json:"displayName"`

	// Description provides a brief explanation of what the app does
	Description string `json:"description"`

	// Version follows semantic versioning (e.g., "1.0.0")
	Version string `json:"version"`

	// Type specifies how to launch this app (built-in, external)
	// Defaults to "external" for backward compatibility
	Type AppType `json:"type,omitempty"`

	// Binary is the path to the executable relative to the manifest directory
	// Only used when Type is "external"
	Binary string `json:"binary,omitempty"`

	// Icon is a single emoji or short string for visual identification
	Icon string `json:"icon"`

	// Category groups apps in listings (e.g., "system", "utility", "dev")
	Category string `json:"category"`

	// Author is the creator's name or organization
	Author string `json:"author,omitempty"`

	// Tags are searchable keywords
	Tags []string `json:"tags,omitempty"`

	// Homepage is a URL for more information
	Homepage string `json:"homepage,omitempty"`
}

// LoadManifest reads and parses a manifest.json file from the given directory.
func LoadManifest(dir string) (*Manifest, error) {
	path := filepath.Join(dir, "manifest.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}

	if m.Name == "" {
		return nil, fmt.Errorf("manifest missing required field: name")
	}
	if m.DisplayName == "" {
		return nil, fmt.Errorf("manifest missing required field: displayName")
	}

	if m.Type == "" {
		m.Type = AppTypeExternal
	}

	return &m, nil
}

// Validate checks that the manifest is well-formed.
func (m *Manifest) Validate(dir string) error {
	if m.Name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if m.DisplayName == "" {
		return fmt.Errorf("displayName cannot be empty")
	}

	switch m.Type {
	case AppTypeExternal:
		if m.Binary == "" {
			return fmt.Errorf("external app must specify 'binary' field")
		}
		binaryPath := filepath.Join(dir, m.Binary)
		if _, err := os.Stat(binaryPath); err != nil {
			return fmt.Errorf("binary not found: %s (%w)", m.Binary, err)
		}

	case AppTypeBuiltIn:
		// Built-ins are registered in code and need no file checks

	default:
		return fmt.Errorf("unknown app type: %s", m.Type)
	}

	return nil
}

// BinaryPath returns the absolute path to the app's binary.
func (m *Manifest) BinaryPath(dir string) string {
	return filepath.Join(dir, m.Binary)
}
