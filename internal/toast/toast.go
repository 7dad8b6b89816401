// Package toast implements the single-slot ephemeral notification
// with a bounded undo window.
package toast

import "time"

const (
	DefaultDuration = 4500 * time.Millisecond
	FadeDuration    = 200 * time.Millisecond
)

type Options struct {
	OnUndo   func()
	Duration time.Duration
}

// Coordinator holds at most one visible toast. Showing a new toast
// replaces the current one immediately and silently drops any
// unconsumed undo callback. Dismissal is two-phase: an exiting flag
// for the fade, then the content is cleared. The owner drives the
// lifecycle by calling Advance with the current time.
type Coordinator struct {
	message string
	onUndo  func()
	visible bool
	exiting bool
	hideAt  time.Time
	clearAt time.Time
}

func (c *Coordinator) Visible() bool   { return c.visible }
func (c *Coordinator) Exiting() bool   { return c.exiting }
func (c *Coordinator) Message() string { return c.message }
func (c *Coordinator) HasUndo() bool   { return c.onUndo != nil }

func (c *Coordinator) Show(message string, opts Options, now time.Time) {
	duration := opts.Duration
	if duration <= 0 {
		duration = DefaultDuration
	}
	c.message = message
	c.onUndo = opts.OnUndo
	c.visible = true
	c.exiting = false
	c.hideAt = now.Add(duration)
	c.clearAt = time.Time{}
}

// Dismiss begins the fade-out phase.
func (c *Coordinator) Dismiss(now time.Time) {
	if !c.visible || c.exiting {
		return
	}
	c.exiting = true
	c.clearAt = now.Add(FadeDuration)
}

// Undo runs the stored callback, if any, and clears the toast
// immediately without waiting for the fade.
func (c *Coordinator) Undo() {
	callback := c.onUndo
	c.clear()
	if callback != nil {
		callback()
	}
}

// Advance progresses the lifecycle: past hideAt the toast starts
// exiting, and past clearAt it is removed.
func (c *Coordinator) Advance(now time.Time) {
	if !c.visible {
		return
	}
	if !c.exiting && !now.Before(c.hideAt) {
		c.Dismiss(now)
	}
	if c.exiting && !now.Before(c.clearAt) {
		c.clear()
	}
}

func (c *Coordinator) clear() {
	c.message = ""
	c.onUndo = nil
	c.visible = false
	c.exiting = false
	c.hideAt = time.Time{}
	c.clearAt = time.Time{}
}
