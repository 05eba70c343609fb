//go:build linux

package gpiomem

import (
	"fmt"

	"github.com/stianeikeland/go-rpio/v4"
)

func mapMem() error {
	if err := rpio.Open(); err != nil {
		return fmt.Errorf("open gpio mem: %w", err)
	}
	return nil
}

func unmapMem() error {
	return rpio.Close()
}
