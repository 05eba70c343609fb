package ui

import (
	"time"

	"github.com/sweeney/alarm-clock/internal/clock"
	"github.com/sweeney/alarm-clock/internal/display"
)

// displayHour12 converts a 0..23 hour to the 12-hour face: 0 and 12 both
// render as 12.
func displayHour12(hour int) int {
	h := hour % 12
	if h == 0 {
		return 12
	}
	return h
}

// pmLevel derives the PM indicator intensity from the panel brightness:
// off before noon, brighter with the display after.
func pmLevel(hour, brightness int) int {
	if hour < 12 {
		return 0
	}
	return (brightness+1)*32 - 1
}

// frame is what one repaint should show.
type frame struct {
	label  bool
	glyphs [display.Digits]byte

	value  int // HHMM on the 12-hour face
	length int // lit window, for field blinking
	offset int
	pm     int // PM indicator level
}

// renderFrame decides what the current mode shows. Blink state is derived
// from time in mode, so a mode change restarts the blink on the shown phase.
func (c *Controller) renderFrame(w clock.WallTime, now time.Time) frame {
	switch c.mode {
	case ModeSetLabel:
		return frame{label: true, glyphs: display.GlyphsSet}
	case ModeAlarmSetLabel:
		return frame{label: true, glyphs: display.GlyphsAlarm}
	case ModeAlarmOnLabel:
		return frame{label: true, glyphs: display.GlyphsAlarmOn}
	case ModeAlarmOffLabel:
		return frame{label: true, glyphs: display.GlyphsAlarmOff}
	}

	hour, minute := w.Hour, w.Minute
	if c.mode.editsAlarm() {
		hour, minute = c.alarm.Hour, c.alarm.Minute
	}

	f := frame{
		value:  displayHour12(hour)*100 + minute,
		length: display.Digits,
		pm:     pmLevel(hour, c.brightness),
	}

	if c.mode.isEditing() && c.blinkBlanked(now) {
		// Blank the edited field; the other field stays lit.
		if c.mode.editsHours() {
			f.length, f.offset = 2, 2
		} else {
			f.length, f.offset = 2, 0
		}
	}
	return f
}

// blinkBlanked reports whether the edited field is in the blanked half of the
// blink cycle. A fast-set in progress suspends blinking so the field stays
// readable while it changes.
func (c *Controller) blinkBlanked(now time.Time) bool {
	if c.fastDir != 0 {
		return false
	}
	return (now.Sub(c.modeEnteredAt)/BlinkPeriod)%2 == 1
}

// paint pushes a frame to the display and PM indicator.
func (c *Controller) paint(f frame) {
	if f.label {
		if err := c.disp.ShowGlyphs(f.glyphs); err != nil {
			c.logf("display: %v", err)
		}
		if err := c.pm.SetLevel(0); err != nil {
			c.logf("pm indicator: %v", err)
		}
		return
	}
	// Colon always lit on the time face; the hour's leading zero is
	// suppressed (a 12-hour face shows " 1:05", never "01:05").
	if err := c.disp.ShowDecimal(f.value, true, false, f.length, f.offset); err != nil {
		c.logf("display: %v", err)
	}
	if err := c.pm.SetLevel(f.pm); err != nil {
		c.logf("pm indicator: %v", err)
	}
}
