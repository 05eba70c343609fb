// Package buttons provides the five-button input surface with hardware
// abstraction. The real implementation samples GPIO lines via the Linux GPIO
// character device; the Decoder turns raw level samples into debounced
// press/release/click/long-press events and is pure logic with no hardware
// dependency (time is always passed in).
package buttons

import "time"

// Button identifies one of the five logical buttons.
type Button int

const (
	Set Button = iota
	AlarmSet
	Minus
	Plus
	Snooz

	NumButtons = 5
)

// String returns the button name for logging.
func (b Button) String() string {
	switch b {
	case Set:
		return "Set"
	case AlarmSet:
		return "AlarmSet"
	case Minus:
		return "Minus"
	case Plus:
		return "Plus"
	case Snooz:
		return "Snooz"
	}
	return "Unknown"
}

// EventType classifies a button event.
type EventType int

const (
	// Pressed fires when a debounced press edge is detected.
	Pressed EventType = iota
	// Released fires when a debounced release edge is detected.
	Released
	// Clicked fires on release of a press that stayed under the long-press
	// threshold: a full press-and-release cycle.
	Clicked
	// LongPressed fires once, while the button is still held, when the hold
	// crosses the threshold.
	LongPressed
)

// String returns the event type name for logging.
func (e EventType) String() string {
	switch e {
	case Pressed:
		return "Pressed"
	case Released:
		return "Released"
	case Clicked:
		return "Clicked"
	case LongPressed:
		return "LongPressed"
	}
	return "Unknown"
}

// Event is one debounced button event.
type Event struct {
	Button Button
	Type   EventType
}

// Classification thresholds.
const (
	// DebounceInterval is how long a level must hold before it is accepted.
	DebounceInterval = 25 * time.Millisecond
	// LongPressThreshold is the hold duration at which LongPressed fires.
	LongPressThreshold = 800 * time.Millisecond
)

// Levels is one raw sample of all five buttons, true = pressed.
type Levels [NumButtons]bool

// Reader samples the raw button levels.
type Reader interface {
	// Read returns the current logical levels (true = pressed). The raw GPIO
	// values are inverted: lines idle high through pull-ups, pressed pulls low.
	Read() (Levels, error)

	// Close releases GPIO resources.
	Close() error
}

// Default BCM pin assignments. 13 and 18 are left free for the PWM outputs.
const (
	DefaultPinSet      = 5
	DefaultPinAlarmSet = 6
	DefaultPinMinus    = 16
	DefaultPinPlus     = 20
	DefaultPinSnooz    = 21
)
