// Copyright © 2025 Texelreg contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texel/app.go
// Summary: Core app contracts shared by apps and hosts.
// Usage: Apps implement App; hosts drive Resize/Render/HandleKey and the Run loop.

package texel

import "github.com/gdamore/tcell/v2"

// Cell is the unit of app rendering: one rune plus its style.
type Cell struct {
	Ch    rune
	Style tcell.Style
}

// App is the contract every hosted application implements.
// Run blocks until Stop is called; Render returns the current cell buffer.
type App interface {
	Run() error
	Stop()
	Resize(cols, rows int)
	Render() [][]Cell
	HandleKey(ev *tcell.EventKey)
	SetRefreshNotifier(refreshChan chan<- bool)
	GetTitle() string
}

// PasteHandler is implemented by apps that accept bracketed paste data.
type PasteHandler interface {
	HandlePaste(data []byte)
}

// ControlBusProvider is implemented by apps that expose a control bus so the
// host can register handlers for app-originated triggers.
type ControlBusProvider interface {
	ControlBus() ControlBus
	RegisterControl(id, description string, handler func(payload interface{}) error) error
}

// NewBuffer allocates a rows×cols cell buffer filled with the given style.
func NewBuffer(cols, rows int, style tcell.Style) [][]Cell {
	if cols <= 0 || rows <= 0 {
		return [][]Cell{}
	}
	buf := make([][]Cell, rows)
	for y := range buf {
		buf[y] = make([]Cell, cols)
		for x := range buf[y] {
			buf[y][x] = Cell{Ch: ' ', Style: style}
		}
	}
	return buf
}
