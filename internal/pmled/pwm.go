//go:build linux

package pmled

import (
	"github.com/stianeikeland/go-rpio/v4"
)

// pwmFreq keeps the dimming carrier well above flicker perception.
const pwmFreq = 300

// DefaultPin is the PM LED's BCM pin. Must be a hardware PWM pin.
const DefaultPin = 13

// PWM dims the PM indicator LED through a hardware PWM pin.
type PWM struct {
	pin rpio.Pin
}

// NewPWM configures the pin for PWM, off. GPIO memory must already be mapped
// (gpiomem.Open).
func NewPWM(pin int) (*PWM, error) {
	p := &PWM{pin: rpio.Pin(pin)}
	p.pin.Mode(rpio.Pwm)
	p.pin.Freq(pwmFreq * (MaxLevel + 1))
	p.pin.DutyCycle(0, MaxLevel+1)
	return p, nil
}

// SetLevel sets the LED duty, clamped to 0..255.
func (p *PWM) SetLevel(level int) error {
	if level < 0 {
		level = 0
	}
	if level > MaxLevel {
		level = MaxLevel
	}
	p.pin.DutyCycle(uint32(level), MaxLevel+1)
	return nil
}

// Close darkens the LED and returns the pin to a plain input.
func (p *PWM) Close() error {
	p.pin.DutyCycle(0, MaxLevel+1)
	p.pin.Mode(rpio.Input)
	return nil
}
