// Copyright © 2025 Texelreg contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/config.go
// Summary: System + app configuration store for texelreg.
// Usage: Read-only; missing files fall back to in-memory defaults.

package config

import (
	"log"
	"sync"
)

const systemConfigName = "texelreg.json"

// Config stores configuration sections as JSON-compatible data.
type Config map[string]interface{}

// Section stores key/value pairs for a configuration section.
type Section map[string]interface{}

var (
	mu      sync.RWMutex
	once    sync.Once
	system  Config
	apps    map[string]Config
	loadErr error
)

// Err returns the most recent system config load error.
func Err() error {
	once.Do(initStore)
	mu.RLock()
	defer mu.RUnlock()
	return loadErr
}

// System returns the system configuration (texelreg.json).
func System() Config {
	once.Do(initStore)
	mu.RLock()
	defer mu.RUnlock()
	return system
}

// App returns the config for a named app (apps/<app>/config.json).
func App(name string) Config {
	if name == "" {
		return nil
	}
	once.Do(initStore)

	mu.RLock()
	cfg := apps[name]
	mu.RUnlock()
	if cfg != nil {
		return cfg
	}

	mu.Lock()
	defer mu.Unlock()
	if cfg, ok := apps[name]; ok {
		return cfg
	}

	loaded, err := loadAppLocked(name)
	if err != nil {
		log.Printf("Config: Failed to load app %q config: %v", name, err)
		loaded = make(Config)
		applyAppDefaults(name, loaded)
	}
	apps[name] = loaded
	return loaded
}

// Reload refreshes the system config and all cached app configs.
func Reload() error {
	once.Do(initStore)

	mu.Lock()
	defer mu.Unlock()

	loadErr = loadSystemLocked()
	for name := range apps {
		loaded, err := loadAppLocked(name)
		if err != nil {
			log.Printf("Config: Failed to reload app %q config: %v", name, err)
			continue
		}
		apps[name] = loaded
	}
	return loadErr
}

func initStore() {
	mu.Lock()
	defer mu.Unlock()
	apps = make(map[string]Config)
	loadErr = loadSystemLocked()
}

// RegisterDefaults fills absent keys. An empty section name targets the
// top-level config; otherwise the named section is created on demand.
func (c Config) RegisterDefaults(section string, defaults Section) {
	if c == nil {
		return
	}

	if section == "" {
		for key, value := range defaults {
			if _, ok := c[key]; !ok {
				c[key] = value
			}
		}
		return
	}

	target, ok := c[section].(map[string]interface{})
	if !ok {
		target = make(map[string]interface{})
		c[section] = target
	}
	for key, value := range defaults {
		if _, ok := target[key]; !ok {
			target[key] = value
		}
	}
}

// Section returns the named section, or an empty one if absent.
func (c Config) Section(name string) Section {
	if c == nil {
		return Section{}
	}
	if s, ok := c[name].(map[string]interface{}); ok {
		return Section(s)
	}
	return Section{}
}

// String returns a string value from the section, or def when absent.
func (s Section) String(key, def string) string {
	if v, ok := s[key].(string); ok {
		return v
	}
	return def
}

// Int returns an integer value from the section, or def when absent.
// JSON numbers decode as float64; both forms are accepted.
func (s Section) Int(key string, def int) int {
	switch v := s[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return def
}

// Bool returns a boolean value from the section, or def when absent.
func (s Section) Bool(key string, def bool) bool {
	if v, ok := s[key].(bool); ok {
		return v
	}
	return def
}
