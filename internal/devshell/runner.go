// Copyright © 2025 Texelreg contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/devshell/runner.go
// Summary: Hosts a single app fullscreen inside a local tcell screen.
// Usage: The texelreg binary resolves an app from the registry and runs it here.

package devshell

import (
	"fmt"
	"log"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelreg/registry"
	"github.com/framegrace/texelreg/texel"
)

// Builder constructs a texel.App, optionally using CLI args.
type Builder func(args []string) (texel.App, error)

var screenFactory = tcell.NewScreen

// SetScreenFactory overrides the screen factory used by Run. Passing nil restores the default.
func SetScreenFactory(factory func() (tcell.Screen, error)) {
	if factory == nil {
		screenFactory = tcell.NewScreen
		return
	}
	screenFactory = factory
}

// closeNotice is posted as an interrupt payload when the app asks to close.
type closeNotice struct{}

// Run executes the provided builder inside a local tcell screen.
func Run(builder Builder, args []string) error {
	app, err := builder(args)
	if err != nil {
		return err
	}

	screen, err := screenFactory()
	if err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}
	defer screen.Fini()
	screen.Clear()
	screen.EnablePaste() // Enable bracketed paste support

	// Wire host controls onto the app's bus so clipboard and close actions
	// work outside a full desktop.
	if provider, ok := app.(texel.ControlBusProvider); ok {
		registerHostControls(provider, screen)
	}

	width, height := screen.Size()
	app.Resize(width, height)
	refreshCh := make(chan bool, 1)
	app.SetRefreshNotifier(refreshCh)

	draw := func() {
		screen.Clear()
		buffer := app.Render()
		for y := 0; y < len(buffer); y++ {
			row := buffer[y]
			for x := 0; x < len(row); x++ {
				cell := row[x]
				screen.SetContent(x, y, cell.Ch, nil, cell.Style)
			}
		}
		screen.Show()
	}

	lifecycle := &texel.LocalAppLifecycle{}
	lifecycle.StartApp(app)
	defer func() {
		lifecycle.StopApp(app)
		lifecycle.Wait()
	}()

	go func() {
		for range refreshCh {
			_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
		}
	}()

	draw()

	var pasteBuffer []byte
	var inPaste bool

	for {
		ev := screen.PollEvent()
		switch tev := ev.(type) {
		case *tcell.EventInterrupt:
			if _, ok := tev.Data().(closeNotice); ok {
				return nil
			}
			draw()
		case *tcell.EventResize:
			w, h := tev.Size()
			app.Resize(w, h)
			draw()
		case *tcell.EventPaste:
			if tev.Start() {
				inPaste = true
				pasteBuffer = nil
			} else if tev.End() {
				inPaste = false
				if ph, ok := app.(texel.PasteHandler); ok && len(pasteBuffer) > 0 {
					ph.HandlePaste(pasteBuffer)
					draw()
				}
				pasteBuffer = nil
			}
		case *tcell.EventKey:
			if tev.Key() == tcell.KeyCtrlC {
				return nil
			}
			if inPaste {
				if tev.Key() == tcell.KeyRune {
					pasteBuffer = append(pasteBuffer, []byte(string(tev.Rune()))...)
				} else if tev.Key() == tcell.KeyEnter || tev.Key() == 10 {
					pasteBuffer = append(pasteBuffer, '\n')
				}
			} else {
				app.HandleKey(tev)
				draw()
			}
		}
	}
}

// registerHostControls attaches clipboard and close handlers to the app's bus.
func registerHostControls(provider texel.ControlBusProvider, screen tcell.Screen) {
	err := provider.RegisterControl("clipboard.set", "Copy text to the clipboard",
		func(payload interface{}) error {
			text, ok := payload.(string)
			if !ok {
				return fmt.Errorf("clipboard.set expects a string payload, got %T", payload)
			}
			return setClipboard(screen, text)
		})
	if err != nil {
		log.Printf("Runner: Failed to register clipboard control: %v", err)
	}

	err = provider.RegisterControl("app.close", "Close the hosting window",
		func(payload interface{}) error {
			return screen.PostEvent(tcell.NewEventInterrupt(closeNotice{}))
		})
	if err != nil {
		log.Printf("Runner: Failed to register close control: %v", err)
	}
}

// RunApp resolves a registered app by name and runs it.
func RunApp(reg *registry.Registry, name string, args []string) error {
	entry := reg.Get(name)
	if entry == nil {
		available := make([]string, 0, reg.Count())
		for _, e := range reg.List() {
			available = append(available, e.Manifest.Name)
		}
		return fmt.Errorf("unknown app %q (available: %s)", name, strings.Join(available, ", "))
	}

	return Run(func(args []string) (texel.App, error) {
		created := reg.CreateApp(name)
		app, ok := created.(texel.App)
		if !ok || app == nil {
			return nil, fmt.Errorf("app %q did not produce a runnable instance", name)
		}
		return app, nil
	}, args)
}
