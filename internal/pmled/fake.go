package pmled

// Fake records the PM indicator level for tests.
type Fake struct {
	// Level is the last level set.
	Level int

	// Levels records every SetLevel call.
	Levels []int

	// Closed tracks if Close was called.
	Closed bool

	// Err, if set, is returned by SetLevel.
	Err error
}

// NewFake creates a dark fake output.
func NewFake() *Fake {
	return &Fake{}
}

// SetLevel records the level.
func (f *Fake) SetLevel(level int) error {
	if f.Err != nil {
		return f.Err
	}
	f.Level = level
	f.Levels = append(f.Levels, level)
	return nil
}

// Close darkens and marks the output closed.
func (f *Fake) Close() error {
	f.Level = 0
	f.Closed = true
	return nil
}
