// Copyright © 2025 Texelreg contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/regbrowser/register.go
// Summary: Registers the registry browser with the app registry.

package regbrowser

import "github.com/framegrace/texelreg/registry"

func init() {
	registry.RegisterBuiltInProvider(func(reg *registry.Registry) (*registry.Manifest, registry.AppFactory) {
		return &registry.Manifest{
				Name:        "regbrowser",
				DisplayName: "Registry Browser",
				Description: "Browse component registries and copy install commands",
				Icon:        "🧩",
				Category:    "dev",
			}, func() interface{} {
				return New()
			}
	})
}
