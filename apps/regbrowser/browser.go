// Copyright © 2025 Texelreg contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/regbrowser/browser.go
// Summary: Component-registry browser app.
// Usage: Browse registry sources, fetch their component index, copy install
// commands to the clipboard.

package regbrowser

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelreg/catalog"
	"github.com/framegrace/texelreg/config"
	"github.com/framegrace/texelreg/texel"
)

// Control bus triggers the host is expected to handle.
const (
	// ControlClipboardSet carries a string payload to place on the clipboard.
	ControlClipboardSet = "clipboard.set"

	// ControlAppClose asks the host to close the hosting window.
	ControlAppClose = "app.close"
)

// Compile-time interface checks
var _ texel.App = (*Browser)(nil)
var _ texel.ControlBusProvider = (*Browser)(nil)

// viewState tracks where the user is: picking a source, waiting on its
// index, or browsing the loaded components.
type viewState int

const (
	stateUnselected viewState = iota
	stateFetching
	stateLoaded
	stateErrored
)

type toastKind int

const (
	toastInfo toastKind = iota
	toastError
)

// Browser lists registry sources and the components each one publishes.
type Browser struct {
	controlBus texel.ControlBus
	client     *catalog.Client

	mu            sync.RWMutex
	width, height int
	stop          chan struct{}
	stopOnce      sync.Once
	refreshChan   chan<- bool

	sources        []catalog.Source
	state          viewState
	selectedSource int
	selectedComp   int
	components     []catalog.Component
	fetchErr       error
	fetchGen       int

	toast     string
	toastKind toastKind
	toastTTL  time.Duration
}

// New creates the browser with built-in sources plus any configured extras.
func New() texel.App {
	cfg := config.App("regbrowser").Section("regbrowser")

	timeout := time.Duration(cfg.Int("fetch_timeout_ms", 30000)) * time.Millisecond
	toastTTL := time.Duration(cfg.Int("toast_duration_ms", 3000)) * time.Millisecond

	extras := catalog.ParseSources(config.App("regbrowser")["sources"])
	sources := catalog.MergeSources(catalog.BuiltInSources(), extras)

	return newBrowser(catalog.NewClient(timeout), sources, toastTTL)
}

func newBrowser(client *catalog.Client, sources []catalog.Source, toastTTL time.Duration) *Browser {
	if toastTTL <= 0 {
		toastTTL = 3 * time.Second
	}
	return &Browser{
		controlBus: texel.NewControlBus(),
		client:     client,
		sources:    sources,
		state:      stateUnselected,
		stop:       make(chan struct{}),
		toastTTL:   toastTTL,
	}
}

// ControlBus returns the browser's control bus for external registration.
func (b *Browser) ControlBus() texel.ControlBus {
	return b.controlBus
}

// RegisterControl implements texel.ControlBusProvider.
func (b *Browser) RegisterControl(id, description string, handler func(payload interface{}) error) error {
	return b.controlBus.Register(id, description, texel.ControlHandler(handler))
}

func (b *Browser) Run() error {
	<-b.stop
	return nil
}

func (b *Browser) Stop() {
	b.stopOnce.Do(func() {
		close(b.stop)
	})
}

func (b *Browser) SetRefreshNotifier(refreshChan chan<- bool) {
	b.mu.Lock()
	b.refreshChan = refreshChan
	b.mu.Unlock()
}

func (b *Browser) Resize(cols, rows int) {
	b.mu.Lock()
	b.width, b.height = cols, rows
	b.mu.Unlock()
}

func (b *Browser) GetTitle() string {
	return "Registry Browser"
}

// HandleKey drives the source list, the component list, and the clipboard
// actions.
func (b *Browser) HandleKey(ev *tcell.EventKey) {
	b.mu.Lock()

	switch b.state {
	case stateUnselected:
		b.handleSourceKey(ev)
	case stateFetching:
		if isBackKey(ev) {
			b.goBackLocked()
		}
		b.mu.Unlock()
	case stateLoaded:
		b.handleComponentKey(ev)
	case stateErrored:
		if isBackKey(ev) {
			b.goBackLocked()
		}
		b.mu.Unlock()
	default:
		b.mu.Unlock()
	}
}

// handleSourceKey runs with b.mu held and releases it before triggering bus
// handlers.
func (b *Browser) handleSourceKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyUp:
		if b.selectedSource > 0 {
			b.selectedSource--
		}
		b.mu.Unlock()

	case tcell.KeyDown:
		if b.selectedSource < len(b.sources)-1 {
			b.selectedSource++
		}
		b.mu.Unlock()

	case tcell.KeyEnter:
		if b.selectedSource >= 0 && b.selectedSource < len(b.sources) {
			b.startFetchLocked(b.sources[b.selectedSource])
		}
		b.mu.Unlock()

	case tcell.KeyEsc:
		bus := b.controlBus
		b.mu.Unlock()
		if err := bus.Trigger(ControlAppClose, nil); err != nil {
			log.Printf("Browser: Failed to trigger close: %v", err)
		}

	default:
		b.mu.Unlock()
	}
}

// handleComponentKey runs with b.mu held and releases it before triggering
// bus handlers.
func (b *Browser) handleComponentKey(ev *tcell.EventKey) {
	if isBackKey(ev) {
		b.goBackLocked()
		b.mu.Unlock()
		return
	}

	switch ev.Key() {
	case tcell.KeyUp:
		if b.selectedComp > 0 {
			b.selectedComp--
		}
		b.mu.Unlock()
		return

	case tcell.KeyDown:
		if b.selectedComp < len(b.components)-1 {
			b.selectedComp++
		}
		b.mu.Unlock()
		return
	}

	src, comp, ok := b.currentSelectionLocked()
	if !ok {
		b.mu.Unlock()
		return
	}

	switch {
	case ev.Key() == tcell.KeyEnter:
		b.mu.Unlock()
		b.copyToClipboard(catalog.InstallCommand(src, comp), "Copied install command")

	case ev.Key() == tcell.KeyRune && ev.Rune() == 'y':
		b.mu.Unlock()
		b.copyToClipboard(catalog.ManifestURL(src, comp), "Copied manifest URL")

	case ev.Key() == tcell.KeyRune && ev.Rune() == 'p':
		bus := b.controlBus
		b.mu.Unlock()
		if err := bus.Trigger(ControlClipboardSet, catalog.InstallCommand(src, comp)); err != nil {
			log.Printf("Browser: Clipboard paste-and-close failed: %v", err)
			b.setToast("Clipboard failed: "+err.Error(), toastError)
			return
		}
		if err := bus.Trigger(ControlAppClose, nil); err != nil {
			log.Printf("Browser: Failed to trigger close: %v", err)
		}

	default:
		b.mu.Unlock()
	}
}

func isBackKey(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyEsc || ev.Key() == tcell.KeyBackspace || ev.Key() == tcell.KeyBackspace2
}

// goBackLocked clears fetched state and returns to the source list. Bumping
// the fetch generation makes any in-flight result stale.
func (b *Browser) goBackLocked() {
	b.fetchGen++
	b.state = stateUnselected
	b.components = nil
	b.fetchErr = nil
	b.selectedComp = 0
}

// startFetchLocked kicks off the index fetch for src. A later selection or a
// back action supersedes the result via the generation counter; there is no
// explicit cancellation.
func (b *Browser) startFetchLocked(src catalog.Source) {
	b.fetchGen++
	gen := b.fetchGen
	b.state = stateFetching
	b.components = nil
	b.fetchErr = nil
	b.selectedComp = 0

	log.Printf("Browser: Fetching %s index from %s", src.Name, src.JSONURL)

	go func() {
		components, err := b.client.FetchComponents(context.Background(), src)

		b.mu.Lock()
		if gen != b.fetchGen {
			// A newer selection replaced this fetch; drop the result.
			b.mu.Unlock()
			return
		}
		if err != nil {
			b.state = stateErrored
			b.fetchErr = err
			b.mu.Unlock()
			log.Printf("Browser: Fetch of %s failed: %v", src.Name, err)
			b.setToast("Failed to load "+src.Name+": "+err.Error(), toastError)
			return
		}
		b.state = stateLoaded
		b.components = components
		b.mu.Unlock()

		log.Printf("Browser: Loaded %d components from %s", len(components), src.Name)
		b.setToast("Loaded "+src.Name, toastInfo)
	}()
}

func (b *Browser) currentSelectionLocked() (catalog.Source, catalog.Component, bool) {
	if b.selectedSource < 0 || b.selectedSource >= len(b.sources) {
		return catalog.Source{}, catalog.Component{}, false
	}
	if b.selectedComp < 0 || b.selectedComp >= len(b.components) {
		return catalog.Source{}, catalog.Component{}, false
	}
	return b.sources[b.selectedSource], b.components[b.selectedComp], true
}

// copyToClipboard places text on the host clipboard and reports the outcome
// as a toast.
func (b *Browser) copyToClipboard(text, successMsg string) {
	if err := b.controlBus.Trigger(ControlClipboardSet, text); err != nil {
		log.Printf("Browser: Clipboard copy failed: %v", err)
		b.setToast("Clipboard failed: "+err.Error(), toastError)
		return
	}
	b.setToast(successMsg, toastInfo)
}

// setToast shows a transient notice and schedules its expiry.
func (b *Browser) setToast(msg string, kind toastKind) {
	b.mu.Lock()
	b.toast = msg
	b.toastKind = kind
	ttl := b.toastTTL
	b.mu.Unlock()
	b.notifyRefresh()

	time.AfterFunc(ttl, func() {
		b.mu.Lock()
		if b.toast == msg {
			b.toast = ""
		}
		b.mu.Unlock()
		b.notifyRefresh()
	})
}

func (b *Browser) notifyRefresh() {
	b.mu.RLock()
	refreshChan := b.refreshChan
	b.mu.RUnlock()
	if refreshChan == nil {
		return
	}
	select {
	case refreshChan <- true:
	default:
	}
}
