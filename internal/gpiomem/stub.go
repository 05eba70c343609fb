//go:build !linux

package gpiomem

import "errors"

func mapMem() error {
	return errors.New("gpiomem: not supported on this platform")
}

func unmapMem() error {
	return nil
}
