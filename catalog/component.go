// Copyright © 2025 Texelreg contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: catalog/component.go
// Summary: Normalized view of one installable registry entry.

package catalog

// Component is the uniform shape every registry index entry is mapped into.
// Instances live only as long as the fetched view that produced them.
type Component struct {
	Name                 string
	Description          string
	Dependencies         []string
	RegistryDependencies []string
	Files                []string
	Type                 string
}

// UnknownComponentName is the sentinel the permissive fallback assigns when an
// entry carries no usable name. Sentinel-named entries never reach a display
// list.
const UnknownComponentName = "Unknown Component"
