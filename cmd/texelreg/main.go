// Copyright © 2025 Texelreg contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/texelreg/main.go
// Summary: CLI entrypoint. Resolves an app from the registry and runs it fullscreen.
// Usage: texelreg [-app <name>] [args...]

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/term"

	"github.com/framegrace/texelreg/config"
	"github.com/framegrace/texelreg/internal/devshell"
	"github.com/framegrace/texelreg/registry"

	// Built-in apps register themselves via init.
	_ "github.com/framegrace/texelreg/apps/regbrowser"
)

func main() {
	appName := flag.String("app", "", "name of the app to run (default from config)")
	listApps := flag.Bool("list", false, "list available apps and exit")
	flag.Parse()

	// Logging goes to a file so it does not corrupt the screen.
	logFile, err := os.OpenFile("texelreg.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err == nil {
		defer logFile.Close()
		log.SetOutput(logFile)
	}
	log.Println("texelreg starting...")

	if err := config.Err(); err != nil {
		log.Printf("Main: Config load problem (using defaults): %v", err)
	}

	reg := registry.New()
	registry.RegisterBuiltIns(reg)
	if appsDir, err := config.AppsDir(); err == nil {
		if err := reg.Scan(appsDir); err != nil {
			log.Printf("Main: App scan failed: %v", err)
		}
	}

	if *listApps {
		for _, entry := range reg.List() {
			fmt.Printf("%-16s %s\n", entry.Manifest.Name, entry.Manifest.Description)
		}
		return
	}

	name := *appName
	if name == "" {
		name, _ = config.System()["defaultApp"].(string)
	}
	if name == "" {
		name = "regbrowser"
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "texelreg requires an interactive terminal")
		os.Exit(1)
	}

	if err := devshell.RunApp(reg, name, flag.Args()); err != nil {
		log.Printf("Main: Run failed: %v", err)
		fmt.Fprintf(os.Stderr, "texelreg: %v\n", err)
		os.Exit(1)
	}
	log.Println("texelreg stopped cleanly.")
}
