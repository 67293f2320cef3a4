// Copyright © 2025 Texelreg contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/theme/theme.go
// Summary: Semantic color palette with per-app override support.

package theme

import (
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Config maps semantic color keys (e.g. "bg.surface") to terminal colors.
type Config map[string]tcell.Color

// mocha is the built-in palette, after the catppuccin-mocha scheme the
// highlighter defaults to.
var mocha = Config{
	"bg.base":        tcell.NewHexColor(0x1e1e2e),
	"bg.surface":     tcell.NewHexColor(0x313244),
	"text.primary":   tcell.NewHexColor(0xcdd6f4),
	"text.muted":     tcell.NewHexColor(0x7f849c),
	"text.inverse":   tcell.NewHexColor(0x11111b),
	"accent.primary": tcell.NewHexColor(0x89b4fa),
	"status.error":   tcell.NewHexColor(0xf38ba8),
	"status.success": tcell.NewHexColor(0xa6e3a1),
	"status.warning": tcell.NewHexColor(0xf9e2af),
}

// Get returns a copy of the base palette.
func Get() Config {
	cfg := make(Config, len(mocha))
	for key, color := range mocha {
		cfg[key] = color
	}
	return cfg
}

// GetSemanticColor resolves a semantic key, falling back to the terminal
// default for unknown keys.
func (c Config) GetSemanticColor(key string) tcell.Color {
	if color, ok := c[key]; ok {
		return color
	}
	return tcell.ColorDefault
}

// WithOverrides layers overrides on top of base without mutating either.
func WithOverrides(base, overrides Config) Config {
	if len(overrides) == 0 {
		return base
	}
	merged := make(Config, len(base)+len(overrides))
	for key, color := range base {
		merged[key] = color
	}
	for key, color := range overrides {
		merged[key] = color
	}
	return merged
}

// ParseOverrides coerces a config value (a map of semantic key to "#rrggbb"
// hex string) into a palette fragment. Malformed entries are skipped.
func ParseOverrides(v interface{}) Config {
	m, ok := v.(map[string]interface{})
	if !ok {
		return nil
	}

	overrides := make(Config)
	for key, raw := range m {
		hex, ok := raw.(string)
		if !ok {
			continue
		}
		hex = strings.TrimPrefix(hex, "#")
		if len(hex) != 6 {
			continue
		}
		value, err := strconv.ParseInt(hex, 16, 32)
		if err != nil {
			continue
		}
		overrides[key] = tcell.NewHexColor(int32(value))
	}
	if len(overrides) == 0 {
		return nil
	}
	return overrides
}
