//go:build !linux

package pmled

import "errors"

// PWM is not available on non-Linux platforms.
type PWM struct{}

// DefaultPin is the PM LED's BCM pin. Must be a hardware PWM pin.
const DefaultPin = 13

// NewPWM returns an error on non-Linux platforms.
func NewPWM(pin int) (*PWM, error) {
	return nil, errors.New("pmled: not supported on this platform (requires Linux)")
}

// SetLevel is not implemented on non-Linux platforms.
func (p *PWM) SetLevel(int) error { return errors.New("pmled: not supported") }

// Close is not implemented on non-Linux platforms.
func (p *PWM) Close() error { return nil }
