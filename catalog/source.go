// Copyright © 2025 Texelreg contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: catalog/source.go
// Summary: Component-registry source descriptors and built-ins.
// Usage: Two sources ship built-in; extras can be merged from app config.

package catalog

// Source describes one component registry: where its index lives and how
// component manifest URLs are derived. Sources are immutable for the process
// lifetime.
type Source struct {
	Name                 string
	JSONURL              string
	ComponentJSONBaseURL string
	Description          string
	Icon                 string
}

// Built-in source names. The normalizer branches on these to pick the
// vendor-specific index shape.
const (
	SourceShadcn  = "shadcn/ui"
	SourceMagicUI = "Magic UI"
)

// BuiltInSources returns the registries compiled into the binary.
func BuiltInSources() []Source {
	return []Source{
		{
			Name:                 SourceShadcn,
			JSONURL:              "https://ui.shadcn.com/r/index.json",
			ComponentJSONBaseURL: "https://ui.shadcn.com/r/styles/default",
			Description:          "Beautifully designed components built with Radix UI and Tailwind CSS",
			Icon:                 "⬛",
		},
		{
			Name:                 SourceMagicUI,
			JSONURL:              "https://magicui.design/r/index.json",
			ComponentJSONBaseURL: "https://magicui.design/r",
			Description:          "Animated components and effects for design engineers",
			Icon:                 "✨",
		},
	}
}

// ParseSources coerces a config value (a list of JSON objects) into extra
// source descriptors. Entries without a name or index URL are skipped.
func ParseSources(v interface{}) []Source {
	list, ok := v.([]interface{})
	if !ok {
		return nil
	}

	var sources []Source
	for _, item := range list {
		m, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		src := Source{
			Name:                 stringField(m, "name"),
			JSONURL:              stringField(m, "jsonUrl"),
			ComponentJSONBaseURL: stringField(m, "componentJsonBaseUrl"),
			Description:          stringField(m, "description"),
			Icon:                 stringField(m, "icon"),
		}
		if src.Name == "" || src.JSONURL == "" {
			continue
		}
		if src.Icon == "" {
			src.Icon = "📦"
		}
		sources = append(sources, src)
	}
	return sources
}

// MergeSources appends extras to the built-ins, skipping extras that shadow a
// built-in name. Built-ins keep their position and shape mapping.
func MergeSources(builtIns, extras []Source) []Source {
	known := make(map[string]bool, len(builtIns))
	out := append([]Source(nil), builtIns...)
	for _, src := range builtIns {
		known[src.Name] = true
	}
	for _, src := range extras {
		if known[src.Name] {
			continue
		}
		known[src.Name] = true
		out = append(out, src)
	}
	return out
}

func stringField(m map[string]interface{}, key string) string {
	if s, ok := m[key].(string); ok {
		return s
	}
	return ""
}
