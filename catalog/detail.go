// Copyright © 2025 Texelreg contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: catalog/detail.go
// Summary: Generates the markdown detail panel for a component.

package catalog

import (
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Detail renders a component as a markdown document: description, install
// command, dependency lists, and files annotated with their detected
// language.
func Detail(src Source, c Component) string {
	var b strings.Builder

	b.WriteString("# " + c.Name + "\n")
	if c.Description != "" {
		b.WriteString("\n" + c.Description + "\n")
	}

	b.WriteString("\n## Install\n\n")
	b.WriteString("```sh\n")
	b.WriteString(InstallCommand(src, c) + "\n")
	b.WriteString("```\n")

	if len(c.Dependencies) > 0 {
		b.WriteString("\n## Dependencies\n\n")
		for _, dep := range c.Dependencies {
			b.WriteString("- " + dep + "\n")
		}
	}

	if len(c.RegistryDependencies) > 0 {
		b.WriteString("\n## Registry Dependencies\n\n")
		for _, dep := range c.RegistryDependencies {
			b.WriteString("- " + ShortName(dep) + "\n")
		}
	}

	if len(c.Files) > 0 {
		b.WriteString("\n## Files\n\n")
		for _, file := range c.Files {
			line := "- " + file
			if lang := fileLanguage(file); lang != "" {
				line += " (" + lang + ")"
			}
			b.WriteString(line + "\n")
		}
	}

	b.WriteString("\nManifest: " + ManifestURL(src, c) + "\n")
	return b.String()
}

func fileLanguage(file string) string {
	return enry.GetLanguage(filepath.Base(file), nil)
}
