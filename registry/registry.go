// Copyright © 2025 Texelreg contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: registry/registry.go
// Summary: App registry for discovering and instantiating hosted apps.
// Usage: The runner resolves apps by name; externals are scanned from a directory.

package registry

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// AppFactory creates a new app instance.
// Returns interface{} which is expected to be a texel.App.
type AppFactory func() interface{}

// AppEntry represents a discovered application with its metadata and factory.
type AppEntry struct {
	Manifest *Manifest
	Dir      string
	Factory  AppFactory
}

// Registry manages the collection of available applications.
type Registry struct {
	mu      sync.RWMutex
	apps    map[string]*AppEntry // name -> entry (external apps)
	builtIn map[string]*AppEntry // name -> entry (built-in apps)
}

// New creates a new empty registry.
func New() *Registry {
	return &Registry{
		apps:    make(map[string]*AppEntry),
		builtIn: make(map[string]*AppEntry),
	}
}

// RegisterBuiltIn registers a built-in app that's compiled into the binary.
// Built-in apps have priority over external apps with the same name.
// The factory should return a texel.App instance.
func (r *Registry) RegisterBuiltIn(manifest *Manifest, factory AppFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if manifest.Type == "" {
		manifest.Type = AppTypeBuiltIn
	}
	r.builtIn[manifest.Name] = &AppEntry{
		Manifest: manifest,
		Factory:  factory,
	}
	log.Printf("Registry: Registered built-in app '%s'", manifest.Name)
}

// Scan searches for apps in the given directory.
// Each subdirectory should contain a manifest.json file.
func (r *Registry) Scan(baseDir string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Clear external apps (keep built-ins)
	r.apps = make(map[string]*AppEntry)

	if _, err := os.Stat(baseDir); os.IsNotExist(err) {
		log.Printf("Registry: App directory does not exist: %s", baseDir)
		return nil // Not an error - just no apps
	}

	entries, err := os.ReadDir(baseDir)
	if err != nil {
		return fmt.Errorf("read app directory: %w", err)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		appDir := filepath.Join(baseDir, entry.Name())
		if err := r.loadApp(appDir); err != nil {
			log.Printf("Registry: Failed to load app from %s: %v", appDir, err)
			// Continue loading other apps
		}
	}

	log.Printf("Registry: Loaded %d external apps, %d built-in apps", len(r.apps), len(r.builtIn))
	return nil
}

// loadApp attempts to load a single app from a directory.
func (r *Registry) loadApp(dir string) error {
	manifest, err := LoadManifest(dir)
	if err != nil {
		return fmt.Errorf("load manifest: %w", err)
	}

	if err := manifest.Validate(dir); err != nil {
		return fmt.Errorf("validate manifest: %w", err)
	}

	var factory AppFactory

	switch manifest.Type {
	case AppTypeExternal:
		// External apps are not supported yet - need external process protocol
		factory = func() interface{} {
			log.Printf("Registry: External app launch not yet implemented: %s", manifest.Name)
			return nil
		}

	default:
		return fmt.Errorf("unsupported app type: %s", manifest.Type)
	}

	r.apps[manifest.Name] = &AppEntry{
		Manifest: manifest,
		Dir:      dir,
		Factory:  factory,
	}

	log.Printf("Registry: Loaded %s app '%s' (%s) from %s",
		manifest.Type, manifest.Name, manifest.DisplayName, dir)
	return nil
}

// Get retrieves an app entry by name.
// Returns nil if the app doesn't exist.
func (r *Registry) Get(name string) *AppEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// Check built-ins first
	if entry, ok := r.builtIn[name]; ok {
		return entry
	}

	return r.apps[name]
}

// List returns all available apps sorted by display name.
func (r *Registry) List() []*AppEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var entries []*AppEntry

	for _, entry := range r.builtIn {
		entries = append(entries, entry)
	}
	for _, entry := range r.apps {
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Manifest.DisplayName < entries[j].Manifest.DisplayName
	})

	return entries
}

// CreateApp creates a new instance of the named app.
// Returns nil if the app doesn't exist.
// The returned interface{} is expected to be a texel.App.
func (r *Registry) CreateApp(name string) interface{} {
	entry := r.Get(name)
	if entry == nil {
		log.Printf("Registry: App not found: %s", name)
		return nil
	}

	if entry.Factory == nil {
		log.Printf("Registry: App '%s' has no factory", name)
		return nil
	}

	return entry.Factory()
}

// Count returns the total number of registered apps.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.builtIn) + len(r.apps)
}
