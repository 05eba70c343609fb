//go:build linux

package clock

import (
	"fmt"
	"time"

	"github.com/davecheney/i2c"
)

// DS3231 register map.
const (
	regSeconds = 0x00
	regMinutes = 0x01
	regHours   = 0x02
	regWeekday = 0x03
	regDay     = 0x04
	regMonth   = 0x05
	regYear    = 0x06
	regControl = 0x0E
	regStatus  = 0x0F

	// Status register bit 7: oscillator stopped since last clear,
	// i.e. backup power was lost and the time is invalid.
	statusOSF = 0x80

	// Month register bit 7 carries the century; we pin the century to 2000.
	monthCentury = 0x80
)

// DefaultAddress is the DS3231 7-bit I2C address.
const DefaultAddress = 0x68

// DS3231 is a battery-backed RTC on an I2C bus.
type DS3231 struct {
	bus *i2c.I2C
}

// NewDS3231 opens the RTC on the given I2C bus number. A failure here means
// the clock hardware is absent or unresponsive; callers treat that as fatal.
func NewDS3231(bus int, addr uint8) (*DS3231, error) {
	b, err := i2c.New(addr, bus)
	if err != nil {
		return nil, fmt.Errorf("open i2c bus %d addr %#x: %w", bus, addr, err)
	}
	d := &DS3231{bus: b}
	// Probe: a status read failing now means no device on the bus.
	if _, err := d.readReg(regStatus); err != nil {
		b.Close()
		return nil, fmt.Errorf("probe ds3231: %w", err)
	}
	return d, nil
}

// Now reads the seven timekeeping registers in one burst.
func (d *DS3231) Now() (WallTime, error) {
	buf, err := d.readRegs(regSeconds, 7)
	if err != nil {
		return WallTime{}, fmt.Errorf("read ds3231 time: %w", err)
	}
	return WallTime{
		Second: bcdToDec(buf[regSeconds] & 0x7F),
		Minute: bcdToDec(buf[regMinutes] & 0x7F),
		Hour:   bcdToDec(buf[regHours] & 0x3F), // chip kept in 24-hour mode
		Day:    bcdToDec(buf[regDay] & 0x3F),
		Month:  monthFromBCD(buf[regMonth]),
		Year:   2000 + bcdToDec(buf[regYear]),
	}, nil
}

// Adjust writes the time registers and clears the oscillator-stop flag so a
// subsequent LostPower reports false.
func (d *DS3231) Adjust(w WallTime) error {
	weekday := byte(w.Time().Weekday()) + 1 // chip weekday is 1..7
	frame := []byte{
		regSeconds,
		decToBCD(w.Second),
		decToBCD(w.Minute),
		decToBCD(w.Hour), // bit 6 clear selects 24-hour mode
		weekday,
		decToBCD(w.Day),
		decToBCD(int(w.Month)),
		decToBCD(w.Year % 100),
	}
	if _, err := d.bus.Write(frame); err != nil {
		return fmt.Errorf("write ds3231 time: %w", err)
	}
	status, err := d.readReg(regStatus)
	if err != nil {
		return fmt.Errorf("read ds3231 status: %w", err)
	}
	if _, err := d.bus.Write([]byte{regStatus, status &^ statusOSF}); err != nil {
		return fmt.Errorf("clear ds3231 OSF: %w", err)
	}
	return nil
}

// LostPower reports the oscillator-stop flag.
func (d *DS3231) LostPower() (bool, error) {
	status, err := d.readReg(regStatus)
	if err != nil {
		return false, fmt.Errorf("read ds3231 status: %w", err)
	}
	return status&statusOSF != 0, nil
}

// Close releases the I2C bus handle.
func (d *DS3231) Close() error {
	return d.bus.Close()
}

func (d *DS3231) readReg(reg byte) (byte, error) {
	buf, err := d.readRegs(reg, 1)
	if err != nil {
		return 0, err
	}
	return buf[0], nil
}

func (d *DS3231) readRegs(reg byte, n int) ([]byte, error) {
	if _, err := d.bus.Write([]byte{reg}); err != nil {
		return nil, fmt.Errorf("set register pointer %#x: %w", reg, err)
	}
	buf := make([]byte, n)
	if _, err := d.bus.Read(buf); err != nil {
		return nil, fmt.Errorf("read %d bytes at %#x: %w", n, reg, err)
	}
	return buf, nil
}

func monthFromBCD(b byte) time.Month {
	return time.Month(bcdToDec(b &^ monthCentury & 0x1F))
}
