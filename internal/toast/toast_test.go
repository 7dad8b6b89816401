package toast

import (
	"testing"
	"time"
)

func TestShowReplacesCurrentToastAndDropsUndo(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	var c Coordinator

	firstUndone := false
	c.Show("skill deleted", Options{OnUndo: func() { firstUndone = true }}, now)
	c.Show("another deleted", Options{}, now)

	if c.Message() != "another deleted" {
		t.Fatalf("expected replacement, got %q", c.Message())
	}
	if c.HasUndo() {
		t.Fatal("expected previous undo to be dropped")
	}
	c.Undo()
	if firstUndone {
		t.Fatal("dropped undo callback must never run")
	}
}

func TestAutoDismissTwoPhase(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	var c Coordinator
	c.Show("saved", Options{Duration: time.Second}, now)

	c.Advance(now.Add(500 * time.Millisecond))
	if !c.Visible() || c.Exiting() {
		t.Fatalf("expected visible non-exiting toast, got visible=%v exiting=%v", c.Visible(), c.Exiting())
	}

	c.Advance(now.Add(time.Second))
	if !c.Visible() || !c.Exiting() {
		t.Fatalf("expected exiting toast, got visible=%v exiting=%v", c.Visible(), c.Exiting())
	}

	c.Advance(now.Add(time.Second + FadeDuration))
	if c.Visible() {
		t.Fatal("expected cleared toast after fade")
	}
}

func TestUndoClearsImmediately(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	var c Coordinator

	undone := false
	c.Show("skill deleted", Options{OnUndo: func() { undone = true }}, now)
	c.Undo()
	if !undone {
		t.Fatal("expected undo callback to run")
	}
	if c.Visible() || c.Exiting() {
		t.Fatal("expected toast cleared without fade")
	}
}

func TestDefaultDurationApplied(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	var c Coordinator
	c.Show("hello", Options{}, now)

	c.Advance(now.Add(DefaultDuration - time.Millisecond))
	if c.Exiting() {
		t.Fatal("expected toast still fully visible")
	}
	c.Advance(now.Add(DefaultDuration))
	if !c.Exiting() {
		t.Fatal("expected toast exiting at the default duration")
	}
}
