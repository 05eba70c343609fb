package ui

import (
	"time"

	"github.com/sweeney/alarm-clock/internal/clock"
	"github.com/sweeney/alarm-clock/internal/eeprom"
)

// adjustWall applies an hour/minute delta to a wall-clock time, wrapping
// across hour and day boundaries. A minute delta zeroes the seconds so the
// edited time sits on a minute boundary and alarm matching is reproducible.
func adjustWall(w clock.WallTime, dHours, dMinutes int) clock.WallTime {
	t := w.Time().Add(time.Duration(dHours)*time.Hour + time.Duration(dMinutes)*time.Minute)
	out := clock.FromTime(t)
	if dMinutes != 0 {
		out.Second = 0
	}
	return out
}

// adjustAlarm applies the same delta arithmetic to the alarm configuration.
// Minutes carry into hours and hours wrap at midnight; the alarm carries no
// date, so there is nothing to roll over.
func adjustAlarm(cfg eeprom.AlarmConfig, dHours, dMinutes int) eeprom.AlarmConfig {
	total := cfg.Hour*60 + cfg.Minute + dHours*60 + dMinutes
	const day = 24 * 60
	total %= day
	if total < 0 {
		total += day
	}
	cfg.Hour = total / 60
	cfg.Minute = total % 60
	return cfg
}
