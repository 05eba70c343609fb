//go:build !linux

package clock

import "errors"

// DS3231 is not available on non-Linux platforms.
type DS3231 struct{}

// DefaultAddress is the DS3231 7-bit I2C address.
const DefaultAddress = 0x68

// NewDS3231 returns an error on non-Linux platforms.
func NewDS3231(bus int, addr uint8) (*DS3231, error) {
	return nil, errors.New("clock: not supported on this platform (requires Linux)")
}

// Now is not implemented on non-Linux platforms.
func (d *DS3231) Now() (WallTime, error) {
	return WallTime{}, errors.New("clock: not supported")
}

// Adjust is not implemented on non-Linux platforms.
func (d *DS3231) Adjust(WallTime) error {
	return errors.New("clock: not supported")
}

// LostPower is not implemented on non-Linux platforms.
func (d *DS3231) LostPower() (bool, error) {
	return false, errors.New("clock: not supported")
}

// Close is not implemented on non-Linux platforms.
func (d *DS3231) Close() error {
	return nil
}
