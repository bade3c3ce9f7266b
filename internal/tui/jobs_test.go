package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestJobBusCountsStartsPerKind(t *testing.T) {
	bus := newJobBus(nil)
	noop := func(context.Context) (tea.Msg, error) { return nil, nil }

	if cmd := bus.Start(jobKindFetch, noop); cmd == nil {
		t.Fatal("start should return a command")
	}
	bus.Start(jobKindActivate, noop)
	bus.Start(jobKindActivate, noop)

	if got := bus.Started(jobKindFetch); got != 1 {
		t.Fatalf("fetch count: got %d want 1", got)
	}
	if got := bus.Started(jobKindActivate); got != 2 {
		t.Fatalf("activate count: got %d want 2", got)
	}
}

func TestJobBusIDsAreSequential(t *testing.T) {
	bus := newJobBus(nil)
	if id := bus.nextID(jobKindFetch); id != "fetch-1" {
		t.Fatalf("unexpected id %q", id)
	}
	if id := bus.nextID(jobKindActivate); id != "activate-2" {
		t.Fatalf("unexpected id %q", id)
	}
}
