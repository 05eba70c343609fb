// Package pmled provides the PM indicator output with hardware abstraction.
// The real implementation dims an LED through PWM duty; the fake records the
// level for testing.
package pmled

// MaxLevel is the brightest supported duty level.
const MaxLevel = 255

// Output sets a continuous intensity level.
type Output interface {
	// SetLevel sets the LED intensity, 0 (off) to 255 (full).
	SetLevel(level int) error

	// Close turns the LED off and releases the pin.
	Close() error
}
