package display

// Fake is a recording test double. It keeps the last rendered frame and the
// full history of operations so tests can assert on what was shown.
type Fake struct {
	// Frame is the last rendered segment pattern.
	Frame [Digits]byte

	// Brightness is the last level passed to SetBrightness.
	Brightness int

	// Frames is every frame rendered, in order (Clear records a blank frame).
	Frames [][Digits]byte

	// Cleared counts Clear calls.
	Cleared int

	// Closed tracks if Close was called.
	Closed bool

	// Err, if set, is returned by every rendering call.
	Err error
}

// NewFake creates an empty recording display.
func NewFake() *Fake {
	return &Fake{}
}

// SetBrightness records the level, clamped like the hardware.
func (f *Fake) SetBrightness(level int) error {
	if f.Err != nil {
		return f.Err
	}
	f.Brightness = clampBrightness(level)
	return nil
}

// ShowDecimal records the encoded frame.
func (f *Fake) ShowDecimal(value int, colon bool, leadingZero bool, length, offset int) error {
	if f.Err != nil {
		return f.Err
	}
	f.record(encodeDecimal(value, colon, leadingZero, length, offset))
	return nil
}

// ShowGlyphs records the raw frame.
func (f *Fake) ShowGlyphs(glyphs [Digits]byte) error {
	if f.Err != nil {
		return f.Err
	}
	f.record(glyphs)
	return nil
}

// Clear records a blank frame.
func (f *Fake) Clear() error {
	if f.Err != nil {
		return f.Err
	}
	f.Cleared++
	f.record([Digits]byte{})
	return nil
}

// Close marks the display as closed.
func (f *Fake) Close() error {
	f.Closed = true
	return nil
}

func (f *Fake) record(frame [Digits]byte) {
	f.Frame = frame
	f.Frames = append(f.Frames, frame)
}
