package main

import (
	"testing"

	"nickandperla.net/lazycalc/internal/history"
)

func TestContinuation(t *testing.T) {
	var c continuation

	// Plain line passes through
	input, done := c.feed("42+")
	if !done || input != "42+" {
		t.Errorf("expected done '42+', got done=%v %q", done, input)
	}

	// Trailing backslash defers; segments join without a separator
	input, done = c.feed("42\\")
	if done {
		t.Fatalf("expected continuation, got done with %q", input)
	}
	input, done = c.feed("+")
	if !done || input != "42+" {
		t.Errorf("expected joined '42+', got done=%v %q", done, input)
	}

	// Multiple continued segments
	c.feed("4\\")
	c.feed("2\\")
	input, done = c.feed("+")
	if !done || input != "42+" {
		t.Errorf("expected joined '42+', got done=%v %q", done, input)
	}
}

func TestHistoryNavigation(t *testing.T) {
	h := &histNav{}
	h.push("first")
	h.push("second")

	// Up walks newest to oldest, stashing the live line
	got, ok := h.up("live")
	if !ok || got != "second" {
		t.Fatalf("expected 'second', got ok=%v %q", ok, got)
	}
	got, ok = h.up("second")
	if !ok || got != "first" {
		t.Fatalf("expected 'first', got ok=%v %q", ok, got)
	}
	if _, ok = h.up("first"); ok {
		t.Error("expected up to stop at the oldest entry")
	}

	// Down walks back and restores the stashed live line
	got, ok = h.down()
	if !ok || got != "second" {
		t.Fatalf("expected 'second', got ok=%v %q", ok, got)
	}
	got, ok = h.down()
	if !ok || got != "live" {
		t.Fatalf("expected stashed 'live', got ok=%v %q", ok, got)
	}
	if _, ok = h.down(); ok {
		t.Error("expected down to stop at the live line")
	}
}

func TestHistoryPushResets(t *testing.T) {
	h := &histNav{}
	h.push("first")

	if got, _ := h.up("live"); got != "first" {
		t.Fatalf("expected 'first', got %q", got)
	}

	// A push while browsing returns the walk to the live end
	h.push("second")
	if got, _ := h.up("live"); got != "second" {
		t.Errorf("expected 'second' after push, got %q", got)
	}
}

func TestLoadHistoryOrder(t *testing.T) {
	store := history.NewMemory()
	store.Append(history.Entry{Input: "42+", Result: "6"})
	store.Append(history.Entry{Input: "42*", Result: "8"})

	h := loadHistory(store)
	if len(h.lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(h.lines))
	}
	if h.lines[0] != "42+" || h.lines[1] != "42*" {
		t.Errorf("expected oldest first, got %v", h.lines)
	}

	// The newest input is the first recalled
	if got, _ := h.up(""); got != "42*" {
		t.Errorf("expected '42*', got %q", got)
	}
}
