// Copyright © 2025 Texelreg contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/devshell/clipboard.go
// Summary: Clipboard access for hosted apps.

package devshell

import (
	"log"

	"github.com/atotto/clipboard"
	"github.com/gdamore/tcell/v2"
)

// setClipboard copies text to the system clipboard, falling back to an
// OSC 52 write through the terminal when no system clipboard is reachable.
func setClipboard(screen tcell.Screen, text string) error {
	if !clipboard.Unsupported {
		err := clipboard.WriteAll(text)
		if err == nil {
			return nil
		}
		log.Printf("Runner: System clipboard write failed, using OSC 52: %v", err)
	}

	screen.SetClipboard([]byte(text))
	return nil
}
