// Copyright © 2025 Texelreg contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package catalog

import (
	"strings"
	"testing"
)

func TestDetail_FullComponent(t *testing.T) {
	c := Component{
		Name:                 "marquee",
		Description:          "A scrolling marquee",
		Dependencies:         []string{"motion"},
		RegistryDependencies: []string{"https://magicui.design/r/blur-fade.json"},
		Files:                []string{"registry/magicui/marquee.tsx"},
		Type:                 "registry:ui",
	}

	md := Detail(magicUISource(), c)

	for _, want := range []string{
		"# marquee",
		"A scrolling marquee",
		"## Install",
		`npx shadcn@latest add "https://magicui.design/r/marquee.json"`,
		"## Dependencies",
		"- motion",
		"## Registry Dependencies",
		"- blur-fade",
		"## Files",
		"- registry/magicui/marquee.tsx (TSX)",
		"Manifest: https://magicui.design/r/marquee.json",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("Detail missing %q in:\n%s", want, md)
		}
	}
}

func TestDetail_OmitsEmptySections(t *testing.T) {
	md := Detail(shadcnSource(), Component{Name: "button"})

	if strings.Contains(md, "## Dependencies") {
		t.Error("Detail rendered an empty Dependencies section")
	}
	if strings.Contains(md, "## Registry Dependencies") {
		t.Error("Detail rendered an empty Registry Dependencies section")
	}
	if strings.Contains(md, "## Files") {
		t.Error("Detail rendered an empty Files section")
	}
	if !strings.Contains(md, "npx shadcn@latest add button") {
		t.Error("Detail missing install command")
	}
}

func TestDetail_Deterministic(t *testing.T) {
	c := Component{Name: "card", Files: []string{"ui/card.tsx"}}
	first := Detail(shadcnSource(), c)
	if second := Detail(shadcnSource(), c); second != first {
		t.Error("Detail output is not deterministic")
	}
}
