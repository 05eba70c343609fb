//go:build !linux

package tone

import "errors"

// PWM is not available on non-Linux platforms.
type PWM struct{}

// DefaultPin is the buzzer's BCM pin. Must be a hardware PWM pin.
const DefaultPin = 18

// NewPWM returns an error on non-Linux platforms.
func NewPWM(pin int) (*PWM, error) {
	return nil, errors.New("tone: not supported on this platform (requires Linux)")
}

// Start is not implemented on non-Linux platforms.
func (p *PWM) Start(int) error { return errors.New("tone: not supported") }

// Stop is not implemented on non-Linux platforms.
func (p *PWM) Stop() error { return errors.New("tone: not supported") }

// Close is not implemented on non-Linux platforms.
func (p *PWM) Close() error { return nil }
