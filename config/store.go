// Copyright © 2025 Texelreg contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/store.go
// Summary: Load and reload logic for the config store.

package config

import (
	"encoding/json"
	"log"
	"os"
)

func loadSystemLocked() error {
	path, err := systemConfigPath()
	if err != nil {
		log.Printf("Config: Failed to resolve system config path: %v", err)
		system = make(Config)
		applySystemDefaults(system)
		return err
	}

	cfg, exists, readErr := readConfig(path)
	if readErr != nil {
		log.Printf("Config: Failed to read system config %s: %v", path, readErr)
		cfg = make(Config)
	}

	applySystemDefaults(cfg)
	system = cfg

	if readErr == nil && exists {
		log.Printf("Config: Loaded system config from %s", path)
	}
	return readErr
}

func loadAppLocked(name string) (Config, error) {
	path, err := appConfigPath(name)
	if err != nil {
		return nil, err
	}

	cfg, exists, readErr := readConfig(path)
	if readErr != nil {
		log.Printf("Config: Failed to read app config %s: %v", path, readErr)
		cfg = make(Config)
	}

	applyAppDefaults(name, cfg)

	if readErr == nil && exists {
		log.Printf("Config: Loaded app config from %s", path)
	}
	return cfg, readErr
}

// readConfig parses the JSON file at path. A missing file is not an error;
// exists reports whether the file was present.
func readConfig(path string) (Config, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(Config), false, nil
		}
		return make(Config), false, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return make(Config), true, err
	}
	if cfg == nil {
		cfg = make(Config)
	}
	return cfg, true, nil
}
