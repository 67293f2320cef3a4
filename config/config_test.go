// Copyright © 2025 Texelreg contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRegisterDefaults_TopLevel(t *testing.T) {
	cfg := Config{"defaultApp": "custom"}
	cfg.RegisterDefaults("", Section{"defaultApp": "regbrowser", "activeTheme": "mocha"})

	if cfg["defaultApp"] != "custom" {
		t.Errorf("existing key overwritten: %v", cfg["defaultApp"])
	}
	if cfg["activeTheme"] != "mocha" {
		t.Errorf("missing key not defaulted: %v", cfg["activeTheme"])
	}
}

func TestRegisterDefaults_Section(t *testing.T) {
	cfg := Config{}
	cfg.RegisterDefaults("regbrowser", Section{"fetch_timeout_ms": 30000})

	sec := cfg.Section("regbrowser")
	if sec.Int("fetch_timeout_ms", 0) != 30000 {
		t.Errorf("section default missing: %+v", sec)
	}
}

func TestSectionAccessors(t *testing.T) {
	sec := Section{
		"name":    "acme",
		"count":   float64(7), // JSON numbers decode as float64
		"enabled": true,
	}

	if got := sec.String("name", ""); got != "acme" {
		t.Errorf("String = %q", got)
	}
	if got := sec.String("missing", "def"); got != "def" {
		t.Errorf("String default = %q", got)
	}
	if got := sec.Int("count", 0); got != 7 {
		t.Errorf("Int = %d", got)
	}
	if got := sec.Int("name", 3); got != 3 {
		t.Errorf("Int with wrong type = %d, want default", got)
	}
	if got := sec.Bool("enabled", false); !got {
		t.Error("Bool = false")
	}
}

func TestReadConfig(t *testing.T) {
	dir := t.TempDir()

	// Missing file is not an error
	cfg, exists, err := readConfig(filepath.Join(dir, "missing.json"))
	if err != nil || exists {
		t.Errorf("missing file: cfg=%v exists=%v err=%v", cfg, exists, err)
	}

	path := filepath.Join(dir, "texelreg.json")
	if err := os.WriteFile(path, []byte(`{"defaultApp": "regbrowser"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, exists, err = readConfig(path)
	if err != nil || !exists {
		t.Fatalf("read failed: exists=%v err=%v", exists, err)
	}
	if cfg["defaultApp"] != "regbrowser" {
		t.Errorf("cfg = %v", cfg)
	}

	// Invalid JSON reports the error but still yields an empty config
	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{nope"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, exists, err = readConfig(bad)
	if err == nil || !exists || cfg == nil {
		t.Errorf("bad json: cfg=%v exists=%v err=%v", cfg, exists, err)
	}
}
