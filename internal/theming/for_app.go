// Copyright © 2025 Texelreg contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/theming/for_app.go
// Summary: Resolves the effective theme for a named app.

package theming

import (
	"github.com/framegrace/texelreg/config"
	"github.com/framegrace/texelreg/internal/theme"
)

// ForApp returns the base theme merged with any per-app overrides.
func ForApp(app string) theme.Config {
	base := theme.Get()
	overrides := overridesForApp(app)
	if len(overrides) == 0 {
		return base
	}
	return theme.WithOverrides(base, overrides)
}

func overridesForApp(app string) theme.Config {
	if app == "" {
		return nil
	}
	cfg := config.App(app)
	if cfg == nil {
		return nil
	}
	return theme.ParseOverrides(cfg["theme_overrides"])
}
