package buttons

import "time"

// buttonState tracks debounce and press progress for a single button.
type buttonState struct {
	// Stable is the current debounced level (true = pressed).
	Stable bool
	// Pending is a level observed but not yet held for DebounceInterval.
	Pending bool
	// HasPending marks Pending as live.
	HasPending bool
	// PendingSince is when the pending level was first observed.
	PendingSince time.Time
	// PressedAt is when the current press made contact (the pending start,
	// not the debounce-accept time, so the long-press clock starts at touch).
	PressedAt time.Time
	// LongFired marks that LongPressed was emitted for the current press.
	LongFired bool
}

// Decoder turns raw level samples into debounced button events.
// Call Process once per poll tick with the sampled levels.
type Decoder struct {
	debounce time.Duration
	longHold time.Duration
	buttons  [NumButtons]buttonState
}

// NewDecoder creates a Decoder with the standard thresholds.
func NewDecoder() *Decoder {
	return &Decoder{debounce: DebounceInterval, longHold: LongPressThreshold}
}

// NewDecoderWithThresholds creates a Decoder with custom thresholds, for tests.
func NewDecoderWithThresholds(debounce, longHold time.Duration) *Decoder {
	return &Decoder{debounce: debounce, longHold: longHold}
}

// Process takes one sample of all buttons and returns any events to dispatch,
// in button order. Events for distinct buttons in the same sample are all
// returned; a single button yields at most a press/release pair's worth.
func (d *Decoder) Process(levels Levels, now time.Time) []Event {
	var events []Event
	for i := range d.buttons {
		events = append(events, d.processButton(Button(i), &d.buttons[i], levels[i], now)...)
	}
	return events
}

// processButton handles debounce and classification for a single button.
func (d *Decoder) processButton(b Button, st *buttonState, level bool, now time.Time) []Event {
	var events []Event

	if level == st.Stable {
		// Level agrees with the debounced state; drop any pending flicker.
		st.HasPending = false
	} else {
		if !st.HasPending || st.Pending != level {
			// New candidate level, start its debounce window.
			st.Pending = level
			st.HasPending = true
			st.PendingSince = now
		}
		if now.Sub(st.PendingSince) >= d.debounce {
			st.Stable = level
			st.HasPending = false
			if level {
				st.PressedAt = st.PendingSince
				st.LongFired = false
				events = append(events, Event{b, Pressed})
			} else {
				events = append(events, Event{b, Released})
				if !st.LongFired {
					events = append(events, Event{b, Clicked})
				}
			}
		}
	}

	// Long-press detection runs on the debounced state, measured from contact.
	if st.Stable && !st.LongFired && now.Sub(st.PressedAt) >= d.longHold {
		st.LongFired = true
		events = append(events, Event{b, LongPressed})
	}

	return events
}
