//go:build !linux

package eeprom

import "errors"

// AT24C32 is not available on non-Linux platforms.
type AT24C32 struct{}

// DefaultAddress is the AT24C32's 7-bit I2C address on the DS3231 breakout.
const DefaultAddress = 0x57

// NewAT24C32 returns an error on non-Linux platforms.
func NewAT24C32(bus int, addr uint8) (*AT24C32, error) {
	return nil, errors.New("eeprom: not supported on this platform (requires Linux)")
}

// ReadByte is not implemented on non-Linux platforms.
func (e *AT24C32) ReadByte(uint16) (byte, error) {
	return 0, errors.New("eeprom: not supported")
}

// WriteByte is not implemented on non-Linux platforms.
func (e *AT24C32) WriteByte(uint16, byte) error {
	return errors.New("eeprom: not supported")
}

// Close is not implemented on non-Linux platforms.
func (e *AT24C32) Close() error { return nil }
