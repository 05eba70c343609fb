package ui

import (
	"time"

	"github.com/sweeney/alarm-clock/internal/tone"
)

// Step is one element of a tone sequence. FreqHz 0 is a rest.
type Step struct {
	FreqHz   int
	Duration time.Duration
}

// alarmMelody is the fixed alarm sound: alternating high beeps with short
// rests, roughly 800ms per pass.
var alarmMelody = []Step{
	{2093, 120 * time.Millisecond},
	{0, 80 * time.Millisecond},
	{2349, 120 * time.Millisecond},
	{0, 80 * time.Millisecond},
	{2093, 120 * time.Millisecond},
	{0, 80 * time.Millisecond},
	{2349, 120 * time.Millisecond},
}

// sequencer steps a tone sequence forward without blocking. The main loop
// keeps polling buttons while the alarm sounds; each Tick advances at most
// one step boundary.
type sequencer struct {
	out         tone.Output
	steps       []Step
	idx         int
	stepStarted time.Time
	active      bool
}

func newSequencer(out tone.Output) *sequencer {
	return &sequencer{out: out}
}

// play starts the sequence from its first step.
func (s *sequencer) play(steps []Step, now time.Time) error {
	s.steps = steps
	s.idx = 0
	s.active = len(steps) > 0
	s.stepStarted = now
	if !s.active {
		return s.out.Stop()
	}
	return s.emit(steps[0])
}

// advance moves to the next step once the current one has elapsed.
// No-op while idle.
func (s *sequencer) advance(now time.Time) error {
	if !s.active {
		return nil
	}
	if now.Sub(s.stepStarted) < s.steps[s.idx].Duration {
		return nil
	}
	s.idx++
	s.stepStarted = now
	if s.idx >= len(s.steps) {
		s.active = false
		return s.out.Stop()
	}
	return s.emit(s.steps[s.idx])
}

// silence stops the sequence immediately.
func (s *sequencer) silence() error {
	s.active = false
	return s.out.Stop()
}

func (s *sequencer) emit(st Step) error {
	if st.FreqHz == 0 {
		return s.out.Stop()
	}
	return s.out.Start(st.FreqHz)
}
