// Package tone provides the alarm buzzer output with hardware abstraction.
// The real implementation drives a piezo through the Pi's hardware PWM.
// The fake implementation records start/stop calls for testing.
//
// Output is deliberately non-blocking: Start begins a continuous tone and
// returns immediately. Durations are the business of the controller's tone
// sequencer, which calls Stop (or the next Start) when a step elapses.
package tone

// Output generates a single square-wave tone.
type Output interface {
	// Start begins emitting freqHz and returns immediately, replacing any
	// tone already sounding.
	Start(freqHz int) error

	// Stop silences the output.
	Stop() error

	// Close silences the output and releases the pin.
	Close() error
}
