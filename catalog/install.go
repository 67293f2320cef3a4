// Copyright © 2025 Texelreg contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: catalog/install.go
// Summary: Derives install commands and manifest URLs for components.

package catalog

import (
	"fmt"
	"path"
	"strings"
)

// installTool is the external CLI that interprets the generated commands.
const installTool = "npx shadcn@latest"

// ManifestURL returns the URL of a component's manifest file, derived from
// the source's component base URL.
func ManifestURL(src Source, c Component) string {
	base := strings.TrimSuffix(src.ComponentJSONBaseURL, "/")
	return base + "/" + c.Name + ".json"
}

// InstallCommand returns the shell command that installs the component. The
// result is a deterministic function of (source, component name): shadcn/ui
// components install by bare name, everything else by manifest URL.
func InstallCommand(src Source, c Component) string {
	if src.Name == SourceShadcn {
		return fmt.Sprintf("%s add %s", installTool, c.Name)
	}
	return fmt.Sprintf("%s add %q", installTool, ManifestURL(src, c))
}

// ShortName derives a display name for a registry dependency. Dependencies
// referenced by URL reduce to their final path element without the .json
// suffix; plain names pass through.
func ShortName(dep string) string {
	if !strings.Contains(dep, "/") {
		return dep
	}
	name := path.Base(dep)
	return strings.TrimSuffix(name, ".json")
}
