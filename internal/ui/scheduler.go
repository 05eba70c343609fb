package ui

import (
	"time"

	"github.com/sweeney/alarm-clock/internal/clock"
	"github.com/sweeney/alarm-clock/internal/eeprom"
)

// fireStamp identifies one alarm occurrence: a specific minute of a specific
// day.
type fireStamp struct {
	Year   int
	Month  time.Month
	Day    int
	Hour   int
	Minute int
}

func stampOf(w clock.WallTime) fireStamp {
	return fireStamp{Year: w.Year, Month: w.Month, Day: w.Day, Hour: w.Hour, Minute: w.Minute}
}

// scheduler decides, once per tick, whether the alarm should fire.
//
// The predicate matches only at second zero, so the poll cadence MUST be one
// second or finer; a coarser cadence can step over the whole window and skip
// the alarm for the day. The run loop enforces this at startup.
type scheduler struct {
	lastFired fireStamp
	hasFired  bool
}

// due reports whether the alarm fires at the given time, at most once per
// matching minute. A fire is recorded so re-entering Run within the same
// minute (snooze cancel, enable toggling) cannot re-trigger it.
func (s *scheduler) due(cfg eeprom.AlarmConfig, w clock.WallTime) bool {
	if !cfg.Enabled {
		return false
	}
	if w.Hour != cfg.Hour || w.Minute != cfg.Minute || w.Second != 0 {
		return false
	}
	stamp := stampOf(w)
	if s.hasFired && stamp == s.lastFired {
		return false
	}
	s.lastFired = stamp
	s.hasFired = true
	return true
}
