// Copyright © 2025 Texelreg contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: catalog/normalize.go
// Summary: Maps vendor-specific index shapes into the common component shape.
// Usage: Known sources get dedicated mappers; unknown ones get permissive
// per-field coercion with defaults.

package catalog

import (
	"encoding/json"
	"fmt"
)

// shadcnEntry is one element of the shadcn/ui flat index array.
type shadcnEntry struct {
	Name                 string   `json:"name"`
	Description          string   `json:"description"`
	Dependencies         []string `json:"dependencies"`
	RegistryDependencies []string `json:"registryDependencies"`
	Files                []string `json:"files"`
	Type                 string   `json:"type"`
}

// magicUIIndex is the Magic UI wrapper object with nested file-path objects.
type magicUIIndex struct {
	Items []magicUIEntry `json:"items"`
}

type magicUIEntry struct {
	Name                 string        `json:"name"`
	Description          string        `json:"description"`
	Dependencies         []string      `json:"dependencies"`
	RegistryDependencies []string      `json:"registryDependencies"`
	Files                []magicUIFile `json:"files"`
	Type                 string        `json:"type"`
}

type magicUIFile struct {
	Path string `json:"path"`
	Type string `json:"type"`
}

// Normalize maps raw index JSON into components, branching on the source's
// known name. Entries without a usable name are filtered out.
func Normalize(src Source, data []byte) ([]Component, error) {
	var (
		components []Component
		err        error
	)

	switch src.Name {
	case SourceShadcn:
		components, err = normalizeShadcn(data)
	case SourceMagicUI:
		components, err = normalizeMagicUI(data)
	default:
		components, err = normalizeGeneric(data)
	}
	if err != nil {
		return nil, err
	}

	// Nameless and sentinel-named entries never reach the display list.
	out := components[:0]
	for _, c := range components {
		if c.Name == "" || c.Name == UnknownComponentName {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func normalizeShadcn(data []byte) ([]Component, error) {
	var entries []shadcnEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode index array: %w", err)
	}

	components := make([]Component, 0, len(entries))
	for _, e := range entries {
		components = append(components, Component{
			Name:                 e.Name,
			Description:          e.Description,
			Dependencies:         e.Dependencies,
			RegistryDependencies: e.RegistryDependencies,
			Files:                e.Files,
			Type:                 e.Type,
		})
	}
	return components, nil
}

func normalizeMagicUI(data []byte) ([]Component, error) {
	var index magicUIIndex
	if err := json.Unmarshal(data, &index); err != nil {
		return nil, fmt.Errorf("decode index object: %w", err)
	}

	components := make([]Component, 0, len(index.Items))
	for _, e := range index.Items {
		files := make([]string, 0, len(e.Files))
		for _, f := range e.Files {
			if f.Path != "" {
				files = append(files, f.Path)
			}
		}
		components = append(components, Component{
			Name:                 e.Name,
			Description:          e.Description,
			Dependencies:         e.Dependencies,
			RegistryDependencies: e.RegistryDependencies,
			Files:                files,
			Type:                 e.Type,
		})
	}
	return components, nil
}

// normalizeGeneric handles unknown registries: accept either a bare array or
// an {items: [...]} wrapper, then coerce each field best-effort.
func normalizeGeneric(data []byte) ([]Component, error) {
	var items []interface{}

	if err := json.Unmarshal(data, &items); err != nil {
		var wrapper map[string]interface{}
		if err := json.Unmarshal(data, &wrapper); err != nil {
			return nil, fmt.Errorf("decode index: %w", err)
		}
		wrapped, ok := wrapper["items"].([]interface{})
		if !ok {
			return nil, fmt.Errorf("index has neither an entry array nor an items array")
		}
		items = wrapped
	}

	components := make([]Component, 0, len(items))
	for _, item := range items {
		entry, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		components = append(components, coerceEntry(entry))
	}
	return components, nil
}

func coerceEntry(entry map[string]interface{}) Component {
	c := Component{
		Name:                 coerceString(entry["name"], UnknownComponentName),
		Description:          coerceString(entry["description"], ""),
		Dependencies:         coerceStringSlice(entry["dependencies"]),
		RegistryDependencies: coerceStringSlice(entry["registryDependencies"]),
		Files:                coerceFiles(entry["files"]),
		Type:                 coerceString(entry["type"], "registry:ui"),
	}
	return c
}

func coerceString(v interface{}, fallback string) string {
	if s, ok := v.(string); ok && s != "" {
		return s
	}
	return fallback
}

func coerceStringSlice(v interface{}) []string {
	list, ok := v.([]interface{})
	if !ok {
		return nil
	}
	var out []string
	for _, item := range list {
		if s, ok := item.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}

// coerceFiles accepts plain path strings and {path: ...} objects alike.
func coerceFiles(v interface{}) []string {
	list, ok := v.([]interface{})
	if !ok {
		return nil
	}
	var out []string
	for _, item := range list {
		switch f := item.(type) {
		case string:
			if f != "" {
				out = append(out, f)
			}
		case map[string]interface{}:
			if path, ok := f["path"].(string); ok && path != "" {
				out = append(out, path)
			}
		}
	}
	return out
}
