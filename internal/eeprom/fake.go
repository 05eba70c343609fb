package eeprom

// Fake is an in-memory Store for tests. Unwritten addresses read as 0xFF,
// matching an erased EEPROM.
type Fake struct {
	// Bytes holds written values by address.
	Bytes map[uint16]byte

	// Writes counts WriteByte calls, for asserting on store wear.
	Writes int

	// ReadError and WriteError, if set, are returned by the matching calls.
	ReadError  error
	WriteError error

	// Closed tracks if Close was called.
	Closed bool
}

// NewFake creates an erased in-memory store.
func NewFake() *Fake {
	return &Fake{Bytes: make(map[uint16]byte)}
}

// ReadByte returns the stored value, or 0xFF if never written.
func (f *Fake) ReadByte(addr uint16) (byte, error) {
	if f.ReadError != nil {
		return 0, f.ReadError
	}
	if v, ok := f.Bytes[addr]; ok {
		return v, nil
	}
	return 0xFF, nil
}

// WriteByte stores the value.
func (f *Fake) WriteByte(addr uint16, value byte) error {
	if f.WriteError != nil {
		return f.WriteError
	}
	f.Bytes[addr] = value
	f.Writes++
	return nil
}

// Close marks the store as closed.
func (f *Fake) Close() error {
	f.Closed = true
	return nil
}
