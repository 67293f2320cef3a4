// Copyright © 2025 Texelreg contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/defaults.go
// Summary: Default values for system and app configuration.

package config

func applySystemDefaults(cfg Config) {
	if cfg == nil {
		return
	}
	cfg.RegisterDefaults("", Section{
		"defaultApp":  "regbrowser",
		"activeTheme": "mocha",
	})
}

func applyAppDefaults(app string, cfg Config) {
	if cfg == nil {
		return
	}
	switch app {
	case "regbrowser":
		cfg.RegisterDefaults("regbrowser", Section{
			"fetch_timeout_ms": 30000,
			"toast_duration_ms": 3000,
		})
	}
}
