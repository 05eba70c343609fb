//go:build linux

package eeprom

import (
	"fmt"
	"time"

	"github.com/davecheney/i2c"
)

// DefaultAddress is the AT24C32's 7-bit I2C address on the DS3231 breakout.
const DefaultAddress = 0x57

// writeCycle is the device's worst-case internal write time after a byte
// write. The bus must stay quiet for this long before the next transfer.
const writeCycle = 5 * time.Millisecond

// AT24C32 is a 4 KiB I2C EEPROM.
type AT24C32 struct {
	bus *i2c.I2C
}

// NewAT24C32 opens the EEPROM on the given I2C bus number.
func NewAT24C32(bus int, addr uint8) (*AT24C32, error) {
	b, err := i2c.New(addr, bus)
	if err != nil {
		return nil, fmt.Errorf("open i2c bus %d addr %#x: %w", bus, addr, err)
	}
	return &AT24C32{bus: b}, nil
}

// ReadByte performs a random read: write the 12-bit address, then read one byte.
func (e *AT24C32) ReadByte(addr uint16) (byte, error) {
	if _, err := e.bus.Write([]byte{byte(addr >> 8), byte(addr)}); err != nil {
		return 0, fmt.Errorf("set eeprom address %#x: %w", addr, err)
	}
	buf := make([]byte, 1)
	if _, err := e.bus.Read(buf); err != nil {
		return 0, fmt.Errorf("read eeprom %#x: %w", addr, err)
	}
	return buf[0], nil
}

// WriteByte writes one byte and waits out the device's write cycle.
func (e *AT24C32) WriteByte(addr uint16, value byte) error {
	if _, err := e.bus.Write([]byte{byte(addr >> 8), byte(addr), value}); err != nil {
		return fmt.Errorf("write eeprom %#x: %w", addr, err)
	}
	time.Sleep(writeCycle)
	return nil
}

// Close releases the I2C bus handle.
func (e *AT24C32) Close() error {
	return e.bus.Close()
}
