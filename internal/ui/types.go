// Package ui contains the alarm clock's decision logic: the mode state
// machine, alarm scheduling, time editing, and display policy.
// This package has NO hardware dependencies beyond the sibling interfaces
// (no GPIO, I2C, or time.Sleep). Time is always injectable via time.Time
// parameters, so every timing contract is testable without waiting.
package ui

import "time"

// Mode is the controller's current operating state.
type Mode int

const (
	ModeRun Mode = iota
	ModeSetLabel
	ModeSetHours
	ModeSetMinutes
	ModeAlarmSetLabel
	ModeAlarmSetHours
	ModeAlarmSetMinutes
	ModeAlarmOnLabel
	ModeAlarmOffLabel
	ModeAlarmSounding
	ModeAlarmSnoozed
)

var modeNames = [...]string{
	"Run",
	"SetLabel",
	"SetHours",
	"SetMinutes",
	"AlarmSetLabel",
	"AlarmSetHours",
	"AlarmSetMinutes",
	"AlarmOnLabel",
	"AlarmOffLabel",
	"AlarmSounding",
	"AlarmSnoozed",
}

// String returns the mode name for logging.
func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return "Invalid"
	}
	return modeNames[m]
}

// isLabel reports whether the mode shows transient text before auto-advancing.
func (m Mode) isLabel() bool {
	switch m {
	case ModeSetLabel, ModeAlarmSetLabel, ModeAlarmOnLabel, ModeAlarmOffLabel:
		return true
	}
	return false
}

// isEditing reports whether Minus/Plus adjust a blinking time field.
func (m Mode) isEditing() bool {
	switch m {
	case ModeSetHours, ModeSetMinutes, ModeAlarmSetHours, ModeAlarmSetMinutes:
		return true
	}
	return false
}

// editsAlarm reports whether the edited value is the in-memory alarm rather
// than the live clock.
func (m Mode) editsAlarm() bool {
	return m == ModeAlarmSetHours || m == ModeAlarmSetMinutes
}

// editsHours reports whether the hour field is the one being edited.
func (m Mode) editsHours() bool {
	return m == ModeSetHours || m == ModeAlarmSetHours
}

// The controller's timing contracts. All fixed; none are runtime-configurable.
const (
	// LabelDuration is how long a label mode shows before auto-advancing.
	LabelDuration = 2 * time.Second

	// BlinkPeriod is the half-period of the edited-field blink: shown for one
	// period, blanked for the next.
	BlinkPeriod = 400 * time.Millisecond

	// AlarmRepeatInterval is how often the melody re-triggers while sounding.
	AlarmRepeatInterval = 5 * time.Second

	// SnoozeDuration is how long a snooze silences the alarm.
	SnoozeDuration = 5 * time.Minute

	// FastStepInterval is the repeat cadence of a held direction button.
	FastStepInterval = 150 * time.Millisecond

	// DisplayRefreshInterval is the repaint cadence.
	DisplayRefreshInterval = 50 * time.Millisecond
)

// MaxBrightness mirrors the display driver's top level.
const MaxBrightness = 7
