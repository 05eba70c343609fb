package ui

import (
	"log"
	"time"

	"github.com/sweeney/alarm-clock/internal/buttons"
	"github.com/sweeney/alarm-clock/internal/clock"
	"github.com/sweeney/alarm-clock/internal/display"
	"github.com/sweeney/alarm-clock/internal/eeprom"
	"github.com/sweeney/alarm-clock/internal/pmled"
	"github.com/sweeney/alarm-clock/internal/tone"
)

// Controller owns all mutable clock state: the current mode, the timers, the
// in-memory alarm configuration, and the brightness. Everything runs on the
// caller's single goroutine; there is no locking because there is no sharing.
//
// Call Tick once per poll interval, then dispatch any button events through
// HandleButton. Both must stay non-blocking: the only slow I/O (EEPROM
// writes) is deferred through the pending flags and serviced inside Tick.
type Controller struct {
	clk   clock.Clock
	disp  display.Driver
	store eeprom.Store
	seq   *sequencer
	pm    pmled.Output

	mode       Mode
	alarm      eeprom.AlarmConfig
	persisted  eeprom.AlarmConfig
	brightness int
	fastDir    int // -1, 0, +1 while a direction button is held

	modeEnteredAt      time.Time
	lastDisplayRefresh time.Time
	lastAlarmSoundAt   time.Time
	snoozeStartedAt    time.Time
	lastFastStepAt     time.Time

	reloadPending  bool
	persistPending bool

	sched scheduler

	logf func(format string, args ...any)
}

// New creates a Controller in Run mode at the given initial brightness
// (clamped to 0..7), with a reload of the persisted alarm already queued for
// the first Tick.
func New(clk clock.Clock, disp display.Driver, store eeprom.Store, out tone.Output, pm pmled.Output, brightness int, now time.Time) *Controller {
	if brightness < 0 {
		brightness = 0
	}
	if brightness > MaxBrightness {
		brightness = MaxBrightness
	}
	c := &Controller{
		clk:           clk,
		disp:          disp,
		store:         store,
		seq:           newSequencer(out),
		pm:            pm,
		mode:          ModeRun,
		brightness:    brightness,
		modeEnteredAt: now,
		reloadPending: true,
		logf:          log.Printf,
	}
	if err := disp.SetBrightness(c.brightness); err != nil {
		c.logf("display: %v", err)
	}
	return c
}

// Mode returns the active mode.
func (c *Controller) Mode() Mode { return c.mode }

// Alarm returns the in-memory alarm configuration.
func (c *Controller) Alarm() eeprom.AlarmConfig { return c.alarm }

// Brightness returns the current panel brightness.
func (c *Controller) Brightness() int { return c.brightness }

// Tick runs one pass of the main loop: pending persistence first, then the
// active mode's periodic logic, then the display repaint. Button events are
// polled by the caller after Tick returns, so their effects are read on the
// next pass.
func (c *Controller) Tick(now time.Time) {
	c.servicePersistence()

	if err := c.seq.advance(now); err != nil {
		c.logf("tone: %v", err)
	}

	w, werr := c.clk.Now()
	if werr != nil {
		c.logf("clock: %v", werr)
	}

	switch {
	case c.mode.isLabel():
		if now.Sub(c.modeEnteredAt) >= LabelDuration {
			c.advanceLabel(now)
		}

	case c.mode == ModeRun:
		if werr == nil && c.sched.due(c.alarm, w) {
			c.logf("alarm fired at %02d:%02d", w.Hour, w.Minute)
			c.transitionTo(ModeAlarmSounding, now)
		}

	case c.mode == ModeAlarmSounding:
		if now.Sub(c.lastAlarmSoundAt) >= AlarmRepeatInterval {
			c.lastAlarmSoundAt = now
			if err := c.seq.play(alarmMelody, now); err != nil {
				c.logf("tone: %v", err)
			}
		}

	case c.mode == ModeAlarmSnoozed:
		if now.Sub(c.snoozeStartedAt) >= SnoozeDuration {
			c.logf("snooze expired")
			c.transitionTo(ModeAlarmSounding, now)
		}

	case c.mode.isEditing():
		if c.fastDir != 0 && now.Sub(c.lastFastStepAt) >= FastStepInterval {
			c.lastFastStepAt = now
			c.applyFieldDelta(c.fastDir)
		}
	}

	if now.Sub(c.lastDisplayRefresh) >= DisplayRefreshInterval {
		c.lastDisplayRefresh = now
		if werr == nil {
			c.paint(c.renderFrame(w, now))
		}
	}
}

// HandleButton dispatches one debounced button event into the state machine.
// Handlers flip flags and small fields; the EEPROM is never touched here.
func (c *Controller) HandleButton(ev buttons.Event, now time.Time) {
	switch ev.Button {
	case buttons.Set:
		c.handleSet(ev.Type, now)
	case buttons.AlarmSet:
		c.handleAlarmSet(ev.Type, now)
	case buttons.Minus:
		c.handleDirection(-1, ev.Type, now)
	case buttons.Plus:
		c.handleDirection(+1, ev.Type, now)
	case buttons.Snooz:
		c.handleSnooz(ev.Type, now)
	}
}

func (c *Controller) handleSet(t buttons.EventType, now time.Time) {
	switch t {
	case buttons.Clicked:
		switch c.mode {
		case ModeSetLabel:
			c.transitionTo(ModeSetHours, now)
		case ModeSetHours:
			c.transitionTo(ModeSetMinutes, now)
		case ModeSetMinutes:
			c.transitionTo(ModeRun, now)
		}
	case buttons.LongPressed:
		switch c.mode {
		case ModeRun:
			c.transitionTo(ModeSetLabel, now)
		case ModeSetLabel, ModeSetHours, ModeSetMinutes:
			// Abort: the label is discarded, clock edits already made stay.
			c.transitionTo(ModeRun, now)
		}
	}
}

func (c *Controller) handleAlarmSet(t buttons.EventType, now time.Time) {
	switch t {
	case buttons.Clicked:
		switch c.mode {
		case ModeAlarmSetLabel:
			c.transitionTo(ModeAlarmSetHours, now)
		case ModeAlarmSetHours:
			c.transitionTo(ModeAlarmSetMinutes, now)
		case ModeAlarmSetMinutes:
			c.persistPending = true
			c.transitionTo(ModeAlarmOnLabel, now)
		case ModeRun, ModeAlarmOnLabel, ModeAlarmOffLabel, ModeAlarmSounding, ModeAlarmSnoozed:
			c.toggleEnabled(now)
		}
	case buttons.LongPressed:
		switch c.mode {
		case ModeRun:
			c.reloadPending = true
			c.transitionTo(ModeAlarmSetLabel, now)
		case ModeAlarmSetLabel, ModeAlarmSetHours, ModeAlarmSetMinutes:
			c.alarm.Enabled = true
			c.persistPending = true
			c.transitionTo(ModeAlarmOnLabel, now)
		}
	}
}

// toggleEnabled flips the alarm on or off, silencing any sounding tone, and
// shows the matching label.
func (c *Controller) toggleEnabled(now time.Time) {
	c.alarm.Enabled = !c.alarm.Enabled
	c.persistPending = true
	if err := c.seq.silence(); err != nil {
		c.logf("tone: %v", err)
	}
	if c.alarm.Enabled {
		c.transitionTo(ModeAlarmOnLabel, now)
	} else {
		c.transitionTo(ModeAlarmOffLabel, now)
	}
}

func (c *Controller) handleDirection(dir int, t buttons.EventType, now time.Time) {
	switch t {
	case buttons.Pressed:
		if c.mode.isEditing() {
			c.applyFieldDelta(dir)
		} else if c.mode == ModeRun {
			c.adjustBrightness(dir)
		}
	case buttons.LongPressed:
		if c.mode.isEditing() {
			c.fastDir = dir
			c.lastFastStepAt = now
		}
	case buttons.Released:
		// Only the button driving the fast-set may cancel it; tapping the
		// opposite button while one is held must not stop the repeat.
		if c.fastDir == dir {
			c.fastDir = 0
		}
	}
}

func (c *Controller) handleSnooz(t buttons.EventType, now time.Time) {
	switch t {
	case buttons.Pressed:
		if c.mode == ModeAlarmSounding {
			c.snoozeStartedAt = now
			if err := c.seq.silence(); err != nil {
				c.logf("tone: %v", err)
			}
			c.logf("snoozed for %v", SnoozeDuration)
			c.transitionTo(ModeAlarmSnoozed, now)
		}
	case buttons.LongPressed:
		if c.mode == ModeAlarmSounding || c.mode == ModeAlarmSnoozed {
			// Cancel today's occurrence; the enabled flag is untouched and
			// the scheduler's fire stamp blocks a re-fire this minute.
			if err := c.seq.silence(); err != nil {
				c.logf("tone: %v", err)
			}
			c.logf("alarm cancelled until next occurrence")
			c.transitionTo(ModeRun, now)
		}
	}
}

// applyFieldDelta steps the field the active mode edits by dir (±1).
func (c *Controller) applyFieldDelta(dir int) {
	switch c.mode {
	case ModeSetHours:
		c.editClock(dir, 0)
	case ModeSetMinutes:
		c.editClock(0, dir)
	case ModeAlarmSetHours:
		c.alarm = adjustAlarm(c.alarm, dir, 0)
	case ModeAlarmSetMinutes:
		c.alarm = adjustAlarm(c.alarm, 0, dir)
	}
}

// editClock applies a delta to the live clock. The RTC write is a couple of
// register transfers, well inside the handler latency budget; only the EEPROM
// is slow enough to defer.
func (c *Controller) editClock(dHours, dMinutes int) {
	w, err := c.clk.Now()
	if err != nil {
		c.logf("clock: %v", err)
		return
	}
	if err := c.clk.Adjust(adjustWall(w, dHours, dMinutes)); err != nil {
		c.logf("clock: %v", err)
	}
}

// adjustBrightness steps the panel brightness, clamped to [0,7].
func (c *Controller) adjustBrightness(dir int) {
	level := c.brightness + dir
	if level < 0 {
		level = 0
	}
	if level > MaxBrightness {
		level = MaxBrightness
	}
	if level == c.brightness {
		return
	}
	c.brightness = level
	if err := c.disp.SetBrightness(level); err != nil {
		c.logf("display: %v", err)
	}
}

// advanceLabel moves a label mode to its functional successor after
// LabelDuration. The On/Off labels are the alarm commit points.
func (c *Controller) advanceLabel(now time.Time) {
	switch c.mode {
	case ModeSetLabel:
		c.transitionTo(ModeSetHours, now)
	case ModeAlarmSetLabel:
		c.transitionTo(ModeAlarmSetHours, now)
	case ModeAlarmOnLabel, ModeAlarmOffLabel:
		c.persistPending = true
		c.transitionTo(ModeRun, now)
	}
}

// transitionTo performs the entry actions every transition shares: clear the
// display, stamp the mode entry time, log the new mode. Entering
// AlarmSounding also starts the melody.
func (c *Controller) transitionTo(m Mode, now time.Time) {
	if err := c.disp.Clear(); err != nil {
		c.logf("display: %v", err)
	}
	c.logf("mode %s -> %s", c.mode, m)
	c.mode = m
	c.modeEnteredAt = now
	c.fastDir = 0
	if m == ModeAlarmSounding {
		c.lastAlarmSoundAt = now
		if err := c.seq.play(alarmMelody, now); err != nil {
			c.logf("tone: %v", err)
		}
	}
}

// servicePersistence runs the deferred EEPROM work requested by handlers.
// A persist is skipped when the stored copy already matches, so repeated
// commit requests (label exit after an explicit commit) cost no wear.
func (c *Controller) servicePersistence() {
	if c.reloadPending {
		c.reloadPending = false
		cfg, err := eeprom.LoadAlarm(c.store)
		if err != nil {
			// Keep the in-memory config; a broken store degrades silently.
			c.logf("alarm reload: %v", err)
		} else {
			c.alarm = cfg
			c.persisted = cfg
			c.logf("alarm config loaded: %02d:%02d enabled=%v", cfg.Hour, cfg.Minute, cfg.Enabled)
		}
	}
	if c.persistPending {
		c.persistPending = false
		if c.alarm == c.persisted {
			return
		}
		if err := eeprom.SaveAlarm(c.store, c.alarm); err != nil {
			// Dropped; the next commit point retries.
			c.logf("alarm persist: %v", err)
		} else {
			c.persisted = c.alarm
			c.logf("alarm config committed: %02d:%02d enabled=%v", c.alarm.Hour, c.alarm.Minute, c.alarm.Enabled)
		}
	}
}
