// Package session implements the repeating-announcement state machine
// that drives a practice session: an optional one-time delay countdown
// followed by an announcement every interval.
package session

import (
	"fmt"

	"github.com/sandeepkv93/drilld/internal/speech"
)

type State string

const (
	StateIdle            State = "Idle"
	StateDelayCountdown  State = "DelayCountdown"
	StateActiveCountdown State = "ActiveCountdown"
)

const DefaultDelaySec = 30

// Params are the live inputs read fresh on every tick, so changing
// the active skill, interval, or volume mid-session takes effect on
// the next tick rather than at the next start.
type Params struct {
	Phrase      string
	IntervalSec int
	Volume      float64
	DelaySec    int
}

func (p Params) normalized() Params {
	if p.IntervalSec < 1 {
		p.IntervalSec = 1
	}
	if p.DelaySec < 0 {
		p.DelaySec = 0
	}
	if p.Volume < 0 {
		p.Volume = 0
	}
	if p.Volume > 1 {
		p.Volume = 1
	}
	return p
}

// Engine is a cooperative countdown: the owner calls Tick once per
// wall-clock second while the engine is active. Each tick that
// reaches zero performs exactly one announcement; there is no
// catch-up for missed ticks.
type Engine struct {
	params     func() Params
	speaker    speech.Speaker
	state      State
	remaining  int
	delayPhase bool
}

func NewEngine(params func() Params, speaker speech.Speaker) *Engine {
	if params == nil {
		params = func() Params { return Params{} }
	}
	if speaker == nil {
		speaker = speech.NoopSpeaker{}
	}
	return &Engine{
		params:  params,
		speaker: speaker,
		state:   StateIdle,
	}
}

func (e *Engine) State() State      { return e.state }
func (e *Engine) Remaining() int    { return e.remaining }
func (e *Engine) IsActive() bool    { return e.state != StateIdle }
func (e *Engine) IsDelayPhase() bool { return e.delayPhase }

// Start announces the session opener and arms the countdown: the
// delay when one is configured, otherwise the interval directly.
// Starting an already-active engine is a no-op.
func (e *Engine) Start() {
	if e.state != StateIdle {
		return
	}
	p := e.params().normalized()
	e.speaker.Speak(fmt.Sprintf("Starting session. Focus on %s", p.Phrase), p.Volume)
	if p.DelaySec > 0 {
		e.state = StateDelayCountdown
		e.delayPhase = true
		e.remaining = p.DelaySec
		return
	}
	e.state = StateActiveCountdown
	e.delayPhase = false
	e.remaining = p.IntervalSec
}

// Stop cancels any in-flight announcement and returns to Idle.
// Remaining time is left as-is until the next Start.
func (e *Engine) Stop() {
	if e.state == StateIdle {
		return
	}
	e.speaker.Cancel()
	e.state = StateIdle
	e.delayPhase = false
}

// Toggle starts an idle engine and stops an active one.
func (e *Engine) Toggle() {
	if e.state == StateIdle {
		e.Start()
		return
	}
	e.Stop()
}

// Tick advances the countdown by one second. A tick that crosses zero
// announces the current phrase once and rearms to the full interval;
// the delay phase transitions into the recurring interval.
func (e *Engine) Tick() {
	if e.state == StateIdle {
		return
	}
	if e.remaining > 0 {
		e.remaining--
	}
	if e.remaining > 0 {
		return
	}
	p := e.params().normalized()
	e.speaker.Speak(p.Phrase, p.Volume)
	e.state = StateActiveCountdown
	e.delayPhase = false
	e.remaining = p.IntervalSec
}
