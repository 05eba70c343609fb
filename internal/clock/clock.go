// Package clock provides battery-backed wall-clock time with hardware abstraction.
// The real implementation talks to a DS3231 RTC over I2C.
// The fake implementation allows testing without hardware.
package clock

import "time"

// WallTime is a second-resolution wall-clock reading. The date fields exist
// because the RTC stores them; the controller only displays hour and minute.
type WallTime struct {
	Hour   int // 0..23
	Minute int // 0..59
	Second int // 0..59
	Day    int // 1..31
	Month  time.Month
	Year   int
}

// Time converts the reading to a time.Time in the local zone.
func (w WallTime) Time() time.Time {
	return time.Date(w.Year, w.Month, w.Day, w.Hour, w.Minute, w.Second, 0, time.Local)
}

// FromTime converts a time.Time to a WallTime, discarding sub-second precision.
func FromTime(t time.Time) WallTime {
	return WallTime{
		Hour:   t.Hour(),
		Minute: t.Minute(),
		Second: t.Second(),
		Day:    t.Day(),
		Month:  t.Month(),
		Year:   t.Year(),
	}
}

// Clock reads and adjusts battery-backed wall-clock time.
type Clock interface {
	// Now returns the current wall-clock time at second resolution.
	Now() (WallTime, error)

	// Adjust sets the wall-clock time and clears any power-loss indication.
	Adjust(WallTime) error

	// LostPower reports whether the backing battery failed since the clock
	// was last adjusted. A true result means the time is meaningless and the
	// caller should seed a default.
	LostPower() (bool, error)

	// Close releases the underlying bus.
	Close() error
}

// DefaultSeed is written to the clock on first boot after power loss.
var DefaultSeed = WallTime{Hour: 12, Minute: 0, Second: 0, Day: 1, Month: time.January, Year: 2000}
