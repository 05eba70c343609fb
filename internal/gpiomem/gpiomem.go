// Package gpiomem owns the process-wide GPIO memory mapping shared by the
// rpio-based drivers (display, tone, pmled). main opens it once before
// constructing those drivers and closes it after the last of them is closed;
// the drivers themselves never map or unmap.
package gpiomem

var open bool

// Open maps GPIO memory. Repeated calls after a successful one are no-ops.
func Open() error {
	if open {
		return nil
	}
	if err := mapMem(); err != nil {
		return err
	}
	open = true
	return nil
}

// Close unmaps GPIO memory. A no-op when nothing is mapped, so it is safe to
// defer unconditionally.
func Close() error {
	if !open {
		return nil
	}
	open = false
	return unmapMem()
}
