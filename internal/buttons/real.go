//go:build linux

package buttons

import (
	"fmt"

	"github.com/warthog618/go-gpiocdev"
)

// RealReader samples button GPIO lines using the Linux GPIO character device.
type RealReader struct {
	chip  *gpiocdev.Chip
	lines *gpiocdev.Lines
}

// NewRealReader requests the five button lines as inputs with pull-up.
// Buttons switch to ground, so the raw value is inverted in Read.
// pins are BCM offsets in Button order: Set, AlarmSet, Minus, Plus, Snooz.
func NewRealReader(chipName string, pins [NumButtons]int) (*RealReader, error) {
	chip, err := gpiocdev.NewChip(chipName)
	if err != nil {
		return nil, fmt.Errorf("open gpio chip %s: %w", chipName, err)
	}

	lines, err := chip.RequestLines(pins[:], gpiocdev.AsInput, gpiocdev.WithPullUp)
	if err != nil {
		chip.Close()
		return nil, fmt.Errorf("request button lines %v: %w", pins, err)
	}

	return &RealReader{chip: chip, lines: lines}, nil
}

// Read returns the logical button levels. Raw 0 (pulled to ground) = pressed.
func (r *RealReader) Read() (Levels, error) {
	raw := make([]int, NumButtons)
	if err := r.lines.Values(raw); err != nil {
		return Levels{}, fmt.Errorf("read button lines: %w", err)
	}
	var levels Levels
	for i, v := range raw {
		levels[i] = v == 0
	}
	return levels, nil
}

// Close releases GPIO resources, restoring the lines to plain inputs first so
// the pins are in a known state for the next boot.
func (r *RealReader) Close() error {
	var errs []error
	if r.lines != nil {
		if err := r.lines.Reconfigure(gpiocdev.AsInput); err != nil {
			errs = append(errs, fmt.Errorf("reconfigure button lines: %w", err))
		}
		if err := r.lines.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close button lines: %w", err))
		}
	}
	if r.chip != nil {
		if err := r.chip.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close chip: %w", err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("close errors: %v", errs)
	}
	return nil
}
