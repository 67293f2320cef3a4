// Copyright © 2025 Texelreg contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package catalog

import (
	"reflect"
	"testing"
)

func shadcnSource() Source  { return BuiltInSources()[0] }
func magicUISource() Source { return BuiltInSources()[1] }

func TestNormalize_ShadcnFlatArray(t *testing.T) {
	data := []byte(`[
		{"name": "accordion", "dependencies": ["@radix-ui/react-accordion"],
		 "registryDependencies": [], "files": ["registry/default/ui/accordion.tsx"],
		 "type": "components:ui"},
		{"name": "", "files": ["registry/default/ui/anonymous.tsx"]},
		{"name": "button", "files": ["registry/default/ui/button.tsx"], "type": "components:ui"}
	]`)

	components, err := Normalize(shadcnSource(), data)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}

	if len(components) != 2 {
		t.Fatalf("got %d components, want 2 (nameless entry filtered)", len(components))
	}
	if components[0].Name != "accordion" {
		t.Errorf("Name = %q", components[0].Name)
	}
	wantFiles := []string{"registry/default/ui/accordion.tsx"}
	if !reflect.DeepEqual(components[0].Files, wantFiles) {
		t.Errorf("Files = %v, want %v (preserved as given)", components[0].Files, wantFiles)
	}
	if !reflect.DeepEqual(components[0].Dependencies, []string{"@radix-ui/react-accordion"}) {
		t.Errorf("Dependencies = %v", components[0].Dependencies)
	}
}

func TestNormalize_MagicUIFlattensFileObjects(t *testing.T) {
	data := []byte(`{"items": [
		{"name": "marquee", "description": "A scrolling marquee",
		 "files": [{"path": "registry/magicui/marquee.tsx", "type": "registry:ui"},
		           {"path": "", "type": "registry:ui"}],
		 "type": "registry:ui"}
	]}`)

	components, err := Normalize(magicUISource(), data)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}

	if len(components) != 1 {
		t.Fatalf("got %d components, want 1", len(components))
	}
	want := []string{"registry/magicui/marquee.tsx"}
	if !reflect.DeepEqual(components[0].Files, want) {
		t.Errorf("Files = %v, want %v (path fields flattened)", components[0].Files, want)
	}
	if components[0].Description != "A scrolling marquee" {
		t.Errorf("Description = %q", components[0].Description)
	}
}

func TestNormalize_GenericCoercion(t *testing.T) {
	unknown := Source{Name: "acme/ui", JSONURL: "https://acme.test/index.json"}

	tests := []struct {
		name string
		data string
		want []Component
	}{
		{
			name: "bare array with mixed file shapes",
			data: `[{"name": "card", "files": ["ui/card.tsx", {"path": "ui/card-footer.tsx"}]}]`,
			want: []Component{{
				Name:  "card",
				Files: []string{"ui/card.tsx", "ui/card-footer.tsx"},
				Type:  "registry:ui",
			}},
		},
		{
			name: "items wrapper",
			data: `{"items": [{"name": "dialog", "type": "registry:block"}]}`,
			want: []Component{{Name: "dialog", Type: "registry:block"}},
		},
		{
			name: "nameless entries coerce to the sentinel and are dropped",
			data: `[{"description": "no name here"}, {"name": 42}]`,
			want: []Component{},
		},
		{
			name: "non-string list members are skipped",
			data: `[{"name": "toast", "dependencies": ["sonner", 7, ""]}]`,
			want: []Component{{Name: "toast", Dependencies: []string{"sonner"}, Type: "registry:ui"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(unknown, []byte(tt.data))
			if err != nil {
				t.Fatalf("Normalize failed: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d components, want %d: %+v", len(got), len(tt.want), got)
			}
			for i := range got {
				if !reflect.DeepEqual(got[i], tt.want[i]) {
					t.Errorf("component %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestNormalize_UnparseableIndex(t *testing.T) {
	unknown := Source{Name: "acme/ui"}

	if _, err := Normalize(unknown, []byte(`"just a string"`)); err == nil {
		t.Error("expected error for non-index JSON")
	}
	if _, err := Normalize(unknown, []byte(`{"components": []}`)); err == nil {
		t.Error("expected error for object without items")
	}
	if _, err := Normalize(shadcnSource(), []byte(`{not json`)); err == nil {
		t.Error("expected error for invalid JSON")
	}
}
