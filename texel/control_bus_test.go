// Copyright © 2025 Texelreg contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package texel

import (
	"errors"
	"testing"
)

func TestControlBus_RegisterAndTrigger(t *testing.T) {
	bus := NewControlBus()

	var got interface{}
	err := bus.Register("clipboard.set", "copy text", func(payload interface{}) error {
		got = payload
		return nil
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if err := bus.Trigger("clipboard.set", "npx shadcn@latest add button"); err != nil {
		t.Fatalf("Trigger failed: %v", err)
	}
	if got != "npx shadcn@latest add button" {
		t.Errorf("handler payload = %v", got)
	}
}

func TestControlBus_UnknownTrigger(t *testing.T) {
	bus := NewControlBus()
	if err := bus.Trigger("nope", nil); err == nil {
		t.Error("expected error for unknown control")
	}
}

func TestControlBus_DuplicateRegister(t *testing.T) {
	bus := NewControlBus()
	handler := func(payload interface{}) error { return nil }

	if err := bus.Register("app.close", "close", handler); err != nil {
		t.Fatalf("first Register failed: %v", err)
	}
	if err := bus.Register("app.close", "close again", handler); err == nil {
		t.Error("expected duplicate registration error")
	}
}

func TestControlBus_HandlerErrorPropagates(t *testing.T) {
	bus := NewControlBus()
	want := errors.New("clipboard unavailable")
	_ = bus.Register("clipboard.set", "", func(payload interface{}) error { return want })

	if err := bus.Trigger("clipboard.set", "text"); !errors.Is(err, want) {
		t.Errorf("Trigger error = %v, want %v", err, want)
	}
}

func TestControlBus_CapabilitiesSorted(t *testing.T) {
	bus := NewControlBus()
	handler := func(payload interface{}) error { return nil }
	_ = bus.Register("b", "", handler)
	_ = bus.Register("a", "", handler)
	_ = bus.Register("c", "", handler)
	bus.Unregister("c")

	caps := bus.Capabilities()
	if len(caps) != 2 || caps[0].ID != "a" || caps[1].ID != "b" {
		t.Errorf("Capabilities() = %+v", caps)
	}
}
