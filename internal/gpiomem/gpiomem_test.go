package gpiomem

import "testing"

func TestCloseWithoutOpenIsNoOp(t *testing.T) {
	if err := Close(); err != nil {
		t.Errorf("Close without Open: %v", err)
	}
	// Still closed; a second Close stays a no-op.
	if err := Close(); err != nil {
		t.Errorf("repeated Close: %v", err)
	}
}
