//go:build !linux

package display

import "errors"

// TM1637 is not available on non-Linux platforms.
type TM1637 struct{}

// NewTM1637 returns an error on non-Linux platforms.
func NewTM1637(clkPin, dioPin, brightness int) (*TM1637, error) {
	return nil, errors.New("display: not supported on this platform (requires Linux)")
}

// SetBrightness is not implemented on non-Linux platforms.
func (d *TM1637) SetBrightness(int) error { return errors.New("display: not supported") }

// ShowDecimal is not implemented on non-Linux platforms.
func (d *TM1637) ShowDecimal(int, bool, bool, int, int) error {
	return errors.New("display: not supported")
}

// ShowGlyphs is not implemented on non-Linux platforms.
func (d *TM1637) ShowGlyphs([Digits]byte) error { return errors.New("display: not supported") }

// Clear is not implemented on non-Linux platforms.
func (d *TM1637) Clear() error { return errors.New("display: not supported") }

// Close is not implemented on non-Linux platforms.
func (d *TM1637) Close() error { return nil }
