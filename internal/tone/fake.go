package tone

// Fake records tone commands for tests.
type Fake struct {
	// Playing is the frequency currently sounding, 0 when silent.
	Playing int

	// Starts records every frequency passed to Start, in order.
	Starts []int

	// Stops counts Stop calls.
	Stops int

	// Closed tracks if Close was called.
	Closed bool

	// Err, if set, is returned by Start and Stop.
	Err error
}

// NewFake creates a silent fake output.
func NewFake() *Fake {
	return &Fake{}
}

// Start records the frequency and marks it playing.
func (f *Fake) Start(freqHz int) error {
	if f.Err != nil {
		return f.Err
	}
	f.Playing = freqHz
	f.Starts = append(f.Starts, freqHz)
	return nil
}

// Stop silences the fake.
func (f *Fake) Stop() error {
	if f.Err != nil {
		return f.Err
	}
	f.Playing = 0
	f.Stops++
	return nil
}

// Close silences and marks the output closed.
func (f *Fake) Close() error {
	f.Playing = 0
	f.Closed = true
	return nil
}
