// Package eeprom provides byte-addressable persistent storage with hardware
// abstraction. The real implementation talks to the AT24C32 EEPROM on the
// DS3231 breakout board. The fake implementation is an in-memory map.
package eeprom

import "fmt"

// Store reads and writes single bytes at fixed addresses. Writes are slow
// (the device has a multi-millisecond internal write cycle), so callers must
// never write from a latency-sensitive path.
type Store interface {
	ReadByte(addr uint16) (byte, error)
	WriteByte(addr uint16, value byte) error
	Close() error
}

// Alarm configuration layout.
const (
	AddrAlarmHour    = 2
	AddrAlarmMinute  = 3
	AddrAlarmEnabled = 4
)

// AlarmConfig is the persisted daily alarm.
type AlarmConfig struct {
	Hour    int // 0..23
	Minute  int // 0..59
	Enabled bool
}

// LoadAlarm reads the alarm configuration. Out-of-range persisted values are
// clamped to 0: corrupt storage degrades to a default alarm, never an error.
func LoadAlarm(s Store) (AlarmConfig, error) {
	hour, err := s.ReadByte(AddrAlarmHour)
	if err != nil {
		return AlarmConfig{}, fmt.Errorf("read alarm hour: %w", err)
	}
	minute, err := s.ReadByte(AddrAlarmMinute)
	if err != nil {
		return AlarmConfig{}, fmt.Errorf("read alarm minute: %w", err)
	}
	enabled, err := s.ReadByte(AddrAlarmEnabled)
	if err != nil {
		return AlarmConfig{}, fmt.Errorf("read alarm enabled: %w", err)
	}
	cfg := AlarmConfig{
		Hour:    int(hour),
		Minute:  int(minute),
		Enabled: enabled != 0,
	}
	if cfg.Hour > 23 {
		cfg.Hour = 0
	}
	if cfg.Minute > 59 {
		cfg.Minute = 0
	}
	return cfg, nil
}

// SaveAlarm writes the alarm configuration.
func SaveAlarm(s Store, cfg AlarmConfig) error {
	if err := s.WriteByte(AddrAlarmHour, byte(cfg.Hour)); err != nil {
		return fmt.Errorf("write alarm hour: %w", err)
	}
	if err := s.WriteByte(AddrAlarmMinute, byte(cfg.Minute)); err != nil {
		return fmt.Errorf("write alarm minute: %w", err)
	}
	var enabled byte
	if cfg.Enabled {
		enabled = 1
	}
	if err := s.WriteByte(AddrAlarmEnabled, enabled); err != nil {
		return fmt.Errorf("write alarm enabled: %w", err)
	}
	return nil
}
