//go:build linux

package tone

import (
	"fmt"

	"github.com/stianeikeland/go-rpio/v4"
)

// pwmCycle is the PWM cycle length; a half-cycle duty gives a square wave.
const pwmCycle = 32

// DefaultPin is the buzzer's BCM pin. Must be a hardware PWM pin.
const DefaultPin = 18

// PWM drives a piezo buzzer through a hardware PWM pin.
type PWM struct {
	pin rpio.Pin
}

// NewPWM configures the pin for PWM, silent. GPIO memory must already be
// mapped (gpiomem.Open).
func NewPWM(pin int) (*PWM, error) {
	p := &PWM{pin: rpio.Pin(pin)}
	p.pin.Mode(rpio.Pwm)
	p.pin.DutyCycle(0, pwmCycle)
	return p, nil
}

// Start emits a square wave at freqHz.
func (p *PWM) Start(freqHz int) error {
	if freqHz <= 0 {
		return fmt.Errorf("tone frequency %d out of range", freqHz)
	}
	p.pin.Freq(freqHz * pwmCycle)
	p.pin.DutyCycle(pwmCycle/2, pwmCycle)
	return nil
}

// Stop silences the buzzer by dropping the duty cycle to zero.
func (p *PWM) Stop() error {
	p.pin.DutyCycle(0, pwmCycle)
	return nil
}

// Close silences the buzzer and returns the pin to a plain input.
func (p *PWM) Close() error {
	p.pin.DutyCycle(0, pwmCycle)
	p.pin.Mode(rpio.Input)
	return nil
}
