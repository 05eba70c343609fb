package clock

import "time"

// Fake is a test double whose time advances only when told to. It keeps
// sub-second precision internally so tests can step it at the poll cadence;
// Now truncates to seconds like the hardware.
type Fake struct {
	current time.Time

	// PowerLost is returned by LostPower until Adjust is called.
	PowerLost bool

	// Adjusted records every Adjust call.
	Adjusted []WallTime

	// NowError, if set, is returned by Now.
	NowError error

	// Closed tracks if Close was called.
	Closed bool
}

// NewFake creates a Fake reading the given time.
func NewFake(w WallTime) *Fake {
	return &Fake{current: w.Time()}
}

// Now returns the current scripted time at second resolution.
func (f *Fake) Now() (WallTime, error) {
	if f.NowError != nil {
		return WallTime{}, f.NowError
	}
	return FromTime(f.current), nil
}

// Adjust records the new time, makes it current, and clears PowerLost.
func (f *Fake) Adjust(w WallTime) error {
	f.Adjusted = append(f.Adjusted, w)
	f.current = w.Time()
	f.PowerLost = false
	return nil
}

// LostPower returns the scripted flag.
func (f *Fake) LostPower() (bool, error) {
	return f.PowerLost, nil
}

// Close marks the clock as closed.
func (f *Fake) Close() error {
	f.Closed = true
	return nil
}

// Advance moves the fake clock forward by d.
func (f *Fake) Advance(d time.Duration) {
	f.current = f.current.Add(d)
}
