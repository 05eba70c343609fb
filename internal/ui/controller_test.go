package ui

import (
	"testing"
	"time"

	"github.com/sweeney/alarm-clock/internal/buttons"
	"github.com/sweeney/alarm-clock/internal/clock"
	"github.com/sweeney/alarm-clock/internal/display"
	"github.com/sweeney/alarm-clock/internal/eeprom"
	"github.com/sweeney/alarm-clock/internal/pmled"
	"github.com/sweeney/alarm-clock/internal/tone"
)

// testRig wires a Controller to fakes and steps synthetic time at the poll
// cadence, the way the real main loop does.
type testRig struct {
	clk   *clock.Fake
	disp  *display.Fake
	store *eeprom.Fake
	out   *tone.Fake
	pm    *pmled.Fake
	c     *Controller
	now   time.Time
}

func newRig(t *testing.T, w clock.WallTime) *testRig {
	t.Helper()
	r := &testRig{
		clk:   clock.NewFake(w),
		disp:  display.NewFake(),
		store: eeprom.NewFake(),
		out:   tone.NewFake(),
		pm:    pmled.NewFake(),
		now:   time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC), // monotonic origin
	}
	r.c = New(r.clk, r.disp, r.store, r.out, r.pm, 2, r.now)
	r.c.logf = t.Logf
	return r
}

// tick advances one poll interval: both the monotonic origin and the wall
// clock move, then the controller runs.
func (r *testRig) tick() {
	r.now = r.now.Add(DisplayRefreshInterval)
	r.clk.Advance(DisplayRefreshInterval)
	r.c.Tick(r.now)
}

// run ticks until d has elapsed.
func (r *testRig) run(d time.Duration) {
	for elapsed := time.Duration(0); elapsed < d; elapsed += DisplayRefreshInterval {
		r.tick()
	}
}

func (r *testRig) press(b buttons.Button) {
	r.c.HandleButton(buttons.Event{Button: b, Type: buttons.Pressed}, r.now)
}

func (r *testRig) click(b buttons.Button) {
	r.c.HandleButton(buttons.Event{Button: b, Type: buttons.Pressed}, r.now)
	r.c.HandleButton(buttons.Event{Button: b, Type: buttons.Released}, r.now)
	r.c.HandleButton(buttons.Event{Button: b, Type: buttons.Clicked}, r.now)
}

func (r *testRig) longPress(b buttons.Button) {
	r.c.HandleButton(buttons.Event{Button: b, Type: buttons.Pressed}, r.now)
	r.c.HandleButton(buttons.Event{Button: b, Type: buttons.LongPressed}, r.now)
}

func (r *testRig) release(b buttons.Button) {
	r.c.HandleButton(buttons.Event{Button: b, Type: buttons.Released}, r.now)
}

func (r *testRig) wall(t *testing.T) clock.WallTime {
	t.Helper()
	w, err := r.clk.Now()
	if err != nil {
		t.Fatal(err)
	}
	return w
}

func TestScenarioSetTime(t *testing.T) {
	r := newRig(t, wallAt(10, 15, 42))
	r.tick() // services the boot reload

	// Long-press Set: label shows, then auto-advances to hour editing.
	r.longPress(buttons.Set)
	if r.c.Mode() != ModeSetLabel {
		t.Fatalf("expected SetLabel, got %s", r.c.Mode())
	}
	r.tick()
	if r.disp.Frame != display.GlyphsSet {
		t.Errorf("label frame: got %#v", r.disp.Frame)
	}
	r.run(LabelDuration)
	if r.c.Mode() != ModeSetHours {
		t.Fatalf("expected auto-advance to SetHours, got %s", r.c.Mode())
	}

	// Plus increments the hour on the live clock.
	r.press(buttons.Plus)
	r.release(buttons.Plus)
	if w := r.wall(t); w.Hour != 11 {
		t.Errorf("expected hour 11, got %d", w.Hour)
	}

	// Set advances through minutes and back to Run; the time is retained.
	r.click(buttons.Set)
	if r.c.Mode() != ModeSetMinutes {
		t.Fatalf("expected SetMinutes, got %s", r.c.Mode())
	}
	r.press(buttons.Plus)
	r.release(buttons.Plus)
	r.click(buttons.Set)
	if r.c.Mode() != ModeRun {
		t.Fatalf("expected Run, got %s", r.c.Mode())
	}
	w := r.wall(t)
	if w.Hour != 11 || w.Minute != 16 {
		t.Errorf("expected 11:16 retained, got %02d:%02d", w.Hour, w.Minute)
	}
	if w.Second != 0 {
		t.Errorf("minute edit must land on a minute boundary, got second %d", w.Second)
	}
}

func TestSetHourWrapsAtMidnight(t *testing.T) {
	r := newRig(t, wallAt(23, 0, 0))
	r.tick()
	r.longPress(buttons.Set)
	r.run(LabelDuration)
	r.press(buttons.Plus)
	r.release(buttons.Plus)
	if w := r.wall(t); w.Hour != 0 {
		t.Errorf("expected wrap 23 -> 0, got %d", w.Hour)
	}
}

func TestScenarioAlarmFireSnoozeRefire(t *testing.T) {
	r := newRig(t, wallAt(6, 59, 58))
	if err := eeprom.SaveAlarm(r.store, eeprom.AlarmConfig{Hour: 7, Minute: 0, Enabled: true}); err != nil {
		t.Fatal(err)
	}
	r.tick() // boot reload picks up the persisted alarm
	if got := r.c.Alarm(); got.Hour != 7 || !got.Enabled {
		t.Fatalf("boot reload failed: %+v", got)
	}

	// The clock crosses 07:00:00.
	r.run(3 * time.Second)
	if r.c.Mode() != ModeAlarmSounding {
		t.Fatalf("expected AlarmSounding, got %s", r.c.Mode())
	}
	if len(r.out.Starts) == 0 {
		t.Fatal("melody should be sounding")
	}

	// The melody re-triggers on the repeat interval.
	before := len(r.out.Starts)
	r.run(AlarmRepeatInterval + 200*time.Millisecond)
	if len(r.out.Starts) <= before {
		t.Error("expected the melody to re-trigger")
	}

	// Snooze silences immediately and re-sounds after the snooze duration.
	r.press(buttons.Snooz)
	if r.c.Mode() != ModeAlarmSnoozed {
		t.Fatalf("expected AlarmSnoozed, got %s", r.c.Mode())
	}
	if r.out.Playing != 0 {
		t.Error("snooze must silence the tone")
	}
	r.run(SnoozeDuration)
	if r.c.Mode() != ModeAlarmSounding {
		t.Fatalf("expected re-sound after snooze, got %s", r.c.Mode())
	}
}

func TestScenarioSnoozeCancel(t *testing.T) {
	r := newRig(t, wallAt(6, 59, 59))
	if err := eeprom.SaveAlarm(r.store, eeprom.AlarmConfig{Hour: 7, Minute: 0, Enabled: true}); err != nil {
		t.Fatal(err)
	}
	r.tick()
	r.run(2 * time.Second)
	if r.c.Mode() != ModeAlarmSounding {
		t.Fatalf("expected AlarmSounding, got %s", r.c.Mode())
	}

	// Long-press Snooz: straight back to Run, still enabled, silent.
	r.longPress(buttons.Snooz)
	if r.c.Mode() != ModeRun {
		t.Fatalf("expected Run, got %s", r.c.Mode())
	}
	if !r.c.Alarm().Enabled {
		t.Error("cancel must not disable the alarm")
	}
	if r.out.Playing != 0 {
		t.Error("cancel must silence the tone")
	}

	// Still inside the matching minute: no re-fire.
	r.run(30 * time.Second)
	if r.c.Mode() != ModeRun {
		t.Errorf("alarm re-fired in the same minute: %s", r.c.Mode())
	}

	// Next day it fires again.
	if err := r.clk.Adjust(clock.WallTime{Hour: 6, Minute: 59, Second: 58, Day: 16, Month: time.June, Year: 2026}); err != nil {
		t.Fatal(err)
	}
	r.run(3 * time.Second)
	if r.c.Mode() != ModeAlarmSounding {
		t.Errorf("expected next-day fire, got %s", r.c.Mode())
	}
}

func TestScenarioAlarmSet(t *testing.T) {
	r := newRig(t, wallAt(12, 0, 0))
	if err := eeprom.SaveAlarm(r.store, eeprom.AlarmConfig{Hour: 6, Minute: 30, Enabled: false}); err != nil {
		t.Fatal(err)
	}
	r.tick()

	r.longPress(buttons.AlarmSet)
	if r.c.Mode() != ModeAlarmSetLabel {
		t.Fatalf("expected AlarmSetLabel, got %s", r.c.Mode())
	}
	r.run(LabelDuration)
	if r.c.Mode() != ModeAlarmSetHours {
		t.Fatalf("expected AlarmSetHours, got %s", r.c.Mode())
	}

	r.press(buttons.Plus)
	r.release(buttons.Plus)
	r.click(buttons.AlarmSet)
	if r.c.Mode() != ModeAlarmSetMinutes {
		t.Fatalf("expected AlarmSetMinutes, got %s", r.c.Mode())
	}
	r.press(buttons.Minus)
	r.release(buttons.Minus)

	// Commit: the On label shows and the new config is persisted.
	r.click(buttons.AlarmSet)
	if r.c.Mode() != ModeAlarmOnLabel {
		t.Fatalf("expected AlarmOnLabel, got %s", r.c.Mode())
	}
	r.tick() // persistence bridge services the commit
	got, err := eeprom.LoadAlarm(r.store)
	if err != nil {
		t.Fatal(err)
	}
	want := eeprom.AlarmConfig{Hour: 7, Minute: 29, Enabled: false}
	if got != want {
		t.Errorf("persisted %+v, want %+v", got, want)
	}

	r.run(LabelDuration)
	if r.c.Mode() != ModeRun {
		t.Errorf("expected Run after label, got %s", r.c.Mode())
	}
}

func TestAlarmSetLongPressForcesEnabled(t *testing.T) {
	r := newRig(t, wallAt(12, 0, 0))
	if err := eeprom.SaveAlarm(r.store, eeprom.AlarmConfig{Hour: 6, Minute: 30, Enabled: false}); err != nil {
		t.Fatal(err)
	}
	r.tick()
	r.longPress(buttons.AlarmSet)
	r.run(LabelDuration)

	// Long-press from inside the edit flow: forced on and committed.
	r.longPress(buttons.AlarmSet)
	if r.c.Mode() != ModeAlarmOnLabel {
		t.Fatalf("expected AlarmOnLabel, got %s", r.c.Mode())
	}
	r.tick()
	got, err := eeprom.LoadAlarm(r.store)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Enabled {
		t.Error("long-press commit must force enabled")
	}
}

func TestToggleEnabledFromRun(t *testing.T) {
	r := newRig(t, wallAt(12, 0, 0))
	if err := eeprom.SaveAlarm(r.store, eeprom.AlarmConfig{Hour: 7, Minute: 0, Enabled: true}); err != nil {
		t.Fatal(err)
	}
	r.tick()
	writesAfterBoot := r.store.Writes

	r.click(buttons.AlarmSet)
	if r.c.Mode() != ModeAlarmOffLabel {
		t.Fatalf("toggle off shows the OFF label, got %s", r.c.Mode())
	}
	// Deferred: the handler itself must not touch the store.
	if r.store.Writes != writesAfterBoot {
		t.Error("persist ran inside the button handler")
	}
	r.tick()
	got, _ := eeprom.LoadAlarm(r.store)
	if got.Enabled {
		t.Error("toggle off was not persisted")
	}

	// The label timeout must not rewrite an already-clean config.
	writes := r.store.Writes
	r.run(LabelDuration)
	if r.c.Mode() != ModeRun {
		t.Fatalf("expected Run, got %s", r.c.Mode())
	}
	if r.store.Writes != writes {
		t.Error("label exit rewrote an unchanged config")
	}

	// Toggle back on.
	r.click(buttons.AlarmSet)
	if r.c.Mode() != ModeAlarmOnLabel {
		t.Fatalf("toggle on shows the ON label, got %s", r.c.Mode())
	}
	r.tick()
	got, _ = eeprom.LoadAlarm(r.store)
	if !got.Enabled {
		t.Error("toggle on was not persisted")
	}
}

func TestToggleSilencesSoundingAlarm(t *testing.T) {
	r := newRig(t, wallAt(6, 59, 59))
	if err := eeprom.SaveAlarm(r.store, eeprom.AlarmConfig{Hour: 7, Minute: 0, Enabled: true}); err != nil {
		t.Fatal(err)
	}
	r.tick()
	r.run(2 * time.Second)
	if r.c.Mode() != ModeAlarmSounding {
		t.Fatalf("expected AlarmSounding, got %s", r.c.Mode())
	}

	r.click(buttons.AlarmSet)
	if r.c.Mode() != ModeAlarmOffLabel {
		t.Fatalf("expected AlarmOffLabel, got %s", r.c.Mode())
	}
	if r.out.Playing != 0 {
		t.Error("toggle must silence the sounding alarm")
	}
}

func TestBrightnessClamp(t *testing.T) {
	r := newRig(t, wallAt(12, 0, 0))
	r.tick()

	for i := 0; i < 10; i++ {
		r.press(buttons.Minus)
		r.release(buttons.Minus)
	}
	if r.c.Brightness() != 0 {
		t.Errorf("clamp below: got %d", r.c.Brightness())
	}
	if r.disp.Brightness != 0 {
		t.Errorf("display level: got %d", r.disp.Brightness)
	}

	for i := 0; i < 10; i++ {
		r.press(buttons.Plus)
		r.release(buttons.Plus)
	}
	if r.c.Brightness() != MaxBrightness {
		t.Errorf("clamp above: got %d", r.c.Brightness())
	}
}

func TestFastSetStepsWhileHeld(t *testing.T) {
	r := newRig(t, wallAt(12, 0, 0))
	r.tick()
	r.longPress(buttons.AlarmSet)
	r.run(LabelDuration)
	if r.c.Mode() != ModeAlarmSetHours {
		t.Fatalf("expected AlarmSetHours, got %s", r.c.Mode())
	}
	startHour := r.c.Alarm().Hour

	// Hold Plus: one step on contact, then one per FastStepInterval.
	r.press(buttons.Plus)
	r.longPress(buttons.Plus)
	r.run(4 * FastStepInterval)
	r.release(buttons.Plus)

	stepped := r.c.Alarm().Hour - startHour
	if stepped < 4 {
		t.Errorf("expected at least 4 fast steps plus the initial one, got %d", stepped)
	}

	// Released: no further stepping.
	h := r.c.Alarm().Hour
	r.run(4 * FastStepInterval)
	if r.c.Alarm().Hour != h {
		t.Error("fast-set kept stepping after release")
	}
}

func TestFastSetSurvivesOppositeTap(t *testing.T) {
	r := newRig(t, wallAt(12, 0, 0))
	r.tick()
	r.longPress(buttons.AlarmSet)
	r.run(LabelDuration)
	if r.c.Mode() != ModeAlarmSetHours {
		t.Fatalf("expected AlarmSetHours, got %s", r.c.Mode())
	}

	r.press(buttons.Plus)
	r.longPress(buttons.Plus)
	r.run(2 * FastStepInterval)

	// Tap Minus while Plus is still held: its release must not cancel the
	// fast-set Plus is driving.
	r.press(buttons.Minus)
	r.release(buttons.Minus)
	h := r.c.Alarm().Hour
	r.run(4 * FastStepInterval)
	if r.c.Alarm().Hour == h {
		t.Error("fast-set stopped when the opposite button was released")
	}

	// Only the owning button's release stops it.
	r.release(buttons.Plus)
	h = r.c.Alarm().Hour
	r.run(4 * FastStepInterval)
	if r.c.Alarm().Hour != h {
		t.Error("fast-set kept stepping after the owning button's release")
	}
}

func TestNewHonorsConfiguredBrightness(t *testing.T) {
	origin := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)
	cases := []struct {
		give, want int
	}{
		{7, 7},
		{0, 0},
		{-1, 0},
		{9, MaxBrightness},
	}
	for _, c := range cases {
		disp := display.NewFake()
		ctl := New(clock.NewFake(wallAt(13, 0, 0)), disp, eeprom.NewFake(), tone.NewFake(), pmled.NewFake(), c.give, origin)
		if ctl.Brightness() != c.want {
			t.Errorf("New(brightness=%d): controller level %d, want %d", c.give, ctl.Brightness(), c.want)
		}
		if disp.Brightness != c.want {
			t.Errorf("New(brightness=%d): display level %d, want %d", c.give, disp.Brightness, c.want)
		}
	}

	// The first frame's PM level derives from the configured level too.
	pm := pmled.NewFake()
	ctl := New(clock.NewFake(wallAt(13, 0, 0)), display.NewFake(), eeprom.NewFake(), tone.NewFake(), pm, 7, origin)
	ctl.Tick(origin.Add(DisplayRefreshInterval))
	if pm.Level != 255 {
		t.Errorf("PM level at full configured brightness: got %d, want 255", pm.Level)
	}
}

func TestReloadReflectsCommittedValue(t *testing.T) {
	r := newRig(t, wallAt(12, 0, 0))
	if err := eeprom.SaveAlarm(r.store, eeprom.AlarmConfig{Hour: 7, Minute: 0, Enabled: true}); err != nil {
		t.Fatal(err)
	}
	r.tick()

	// Edit the alarm but abort by re-entering from Run later; the re-entry
	// reload throws the stale in-memory value away.
	r.longPress(buttons.AlarmSet)
	r.run(LabelDuration)
	r.press(buttons.Plus)
	r.release(buttons.Plus)
	if r.c.Alarm().Hour != 8 {
		t.Fatalf("edit should be in memory, got %d", r.c.Alarm().Hour)
	}
	r.longPress(buttons.AlarmSet) // commit forced-on at 8:00
	r.run(LabelDuration)

	r.longPress(buttons.AlarmSet)
	r.tick()
	if r.c.Alarm().Hour != 8 {
		t.Errorf("reload should reflect the committed value, got %d", r.c.Alarm().Hour)
	}
}

func TestSetLongPressAborts(t *testing.T) {
	r := newRig(t, wallAt(10, 0, 0))
	r.tick()
	r.longPress(buttons.Set)
	r.run(LabelDuration)
	r.press(buttons.Plus)
	r.release(buttons.Plus)

	r.longPress(buttons.Set)
	if r.c.Mode() != ModeRun {
		t.Fatalf("expected Run after abort, got %s", r.c.Mode())
	}
	// The clock edit was live; abort keeps it.
	if w := r.wall(t); w.Hour != 11 {
		t.Errorf("live clock edits survive an abort, got hour %d", w.Hour)
	}
}

func TestRunPaintsTimeAndPM(t *testing.T) {
	r := newRig(t, wallAt(13, 5, 0))
	r.tick()
	r.tick()
	want := [display.Digits]byte{0x00, 0x06 | 0x80, 0x3F, 0x6D} // " 1:05"
	if r.disp.Frame != want {
		t.Errorf("frame: got %#v, want %#v", r.disp.Frame, want)
	}
	if r.pm.Level == 0 {
		t.Error("PM indicator should be lit at 13:05")
	}
}

func TestCorruptStoreDegradesToDefault(t *testing.T) {
	r := newRig(t, wallAt(12, 0, 0))
	r.store.Bytes[eeprom.AddrAlarmHour] = 0xEE
	r.store.Bytes[eeprom.AddrAlarmMinute] = 99
	r.store.Bytes[eeprom.AddrAlarmEnabled] = 1
	r.tick()
	got := r.c.Alarm()
	if got.Hour != 0 || got.Minute != 0 || !got.Enabled {
		t.Errorf("expected clamped 00:00 enabled, got %+v", got)
	}
}
