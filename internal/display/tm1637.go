//go:build linux

package display

import (
	"fmt"
	"time"

	"github.com/stianeikeland/go-rpio/v4"
)

// TM1637 command set.
const (
	cmdData    = 0x40 // write data, auto-increment address
	cmdAddress = 0xC0 // start at digit 0
	cmdDisplay = 0x88 // display on, low 3 bits = brightness
)

// bitDelay paces the bit-banged two-wire protocol. The TM1637 tops out well
// below 500 kHz; 5us keeps us comfortably inside spec.
const bitDelay = 5 * time.Microsecond

// TM1637 drives the display module over two GPIO lines (BCM numbering).
type TM1637 struct {
	clk        rpio.Pin
	dio        rpio.Pin
	brightness int
}

// NewTM1637 initializes the module blanked at the given brightness. GPIO
// memory must already be mapped (gpiomem.Open).
func NewTM1637(clkPin, dioPin, brightness int) (*TM1637, error) {
	d := &TM1637{
		clk:        rpio.Pin(clkPin),
		dio:        rpio.Pin(dioPin),
		brightness: clampBrightness(brightness),
	}
	d.clk.Output()
	d.dio.Output()
	d.clk.High()
	d.dio.High()
	if err := d.Clear(); err != nil {
		return nil, err
	}
	return d, nil
}

// SetBrightness sets the panel brightness, 0..7.
func (d *TM1637) SetBrightness(level int) error {
	d.brightness = clampBrightness(level)
	d.start()
	err := d.writeByte(cmdDisplay | byte(d.brightness))
	d.stop()
	if err != nil {
		return fmt.Errorf("set brightness: %w", err)
	}
	return nil
}

// ShowDecimal renders a decimal value; see Driver.
func (d *TM1637) ShowDecimal(value int, colon bool, leadingZero bool, length, offset int) error {
	return d.writeFrame(encodeDecimal(value, colon, leadingZero, length, offset))
}

// ShowGlyphs renders raw segment patterns; see Driver.
func (d *TM1637) ShowGlyphs(glyphs [Digits]byte) error {
	return d.writeFrame(glyphs)
}

// Clear blanks all digits.
func (d *TM1637) Clear() error {
	return d.writeFrame([Digits]byte{})
}

// Close blanks the display.
func (d *TM1637) Close() error {
	return d.Clear()
}

// writeFrame sends all four digit registers plus the display-control command.
func (d *TM1637) writeFrame(segs [Digits]byte) error {
	d.start()
	if err := d.writeByte(cmdData); err != nil {
		d.stop()
		return fmt.Errorf("data command: %w", err)
	}
	d.stop()

	d.start()
	if err := d.writeByte(cmdAddress); err != nil {
		d.stop()
		return fmt.Errorf("address command: %w", err)
	}
	for i, s := range segs {
		if err := d.writeByte(s); err != nil {
			d.stop()
			return fmt.Errorf("digit %d: %w", i, err)
		}
	}
	d.stop()

	d.start()
	err := d.writeByte(cmdDisplay | byte(d.brightness))
	d.stop()
	if err != nil {
		return fmt.Errorf("display command: %w", err)
	}
	return nil
}

// start issues the two-wire start condition: DIO falls while CLK is high.
func (d *TM1637) start() {
	d.clk.High()
	d.dio.High()
	time.Sleep(bitDelay)
	d.dio.Low()
	time.Sleep(bitDelay)
	d.clk.Low()
}

// stop issues the stop condition: DIO rises while CLK is high.
func (d *TM1637) stop() {
	d.clk.Low()
	d.dio.Low()
	time.Sleep(bitDelay)
	d.clk.High()
	time.Sleep(bitDelay)
	d.dio.High()
	time.Sleep(bitDelay)
}

// writeByte clocks out one byte LSB-first and samples the chip's ACK.
func (d *TM1637) writeByte(b byte) error {
	for i := 0; i < 8; i++ {
		d.clk.Low()
		if b&1 != 0 {
			d.dio.High()
		} else {
			d.dio.Low()
		}
		time.Sleep(bitDelay)
		d.clk.High()
		time.Sleep(bitDelay)
		b >>= 1
	}

	// ACK: release DIO, clock once, chip pulls DIO low.
	d.clk.Low()
	d.dio.Input()
	d.dio.PullUp()
	time.Sleep(bitDelay)
	d.clk.High()
	time.Sleep(bitDelay)
	ack := d.dio.Read()
	d.clk.Low()
	d.dio.Output()
	d.dio.Low()
	if ack != rpio.Low {
		return fmt.Errorf("no ack from tm1637")
	}
	return nil
}
