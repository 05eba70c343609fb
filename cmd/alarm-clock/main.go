// Command alarm-clock drives a five-button bedside alarm clock: a DS3231 RTC
// and AT24C32 EEPROM on I2C, a TM1637 4-digit display, a piezo buzzer, and a
// PM indicator LED.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sweeney/alarm-clock/internal/buttons"
	"github.com/sweeney/alarm-clock/internal/clock"
	"github.com/sweeney/alarm-clock/internal/display"
	"github.com/sweeney/alarm-clock/internal/eeprom"
	"github.com/sweeney/alarm-clock/internal/gpiomem"
	"github.com/sweeney/alarm-clock/internal/pmled"
	"github.com/sweeney/alarm-clock/internal/tone"
	"github.com/sweeney/alarm-clock/internal/ui"
)

// config is the hardware wiring and poll cadence. Everything behavioral
// (intervals, thresholds, melodies) is fixed inside the packages.
type config struct {
	poll       time.Duration
	i2cBus     int
	rtcAddr    int
	eepromAddr int
	gpioChip   string
	buttonPins [buttons.NumButtons]int
	pinClk     int
	pinDio     int
	pinBuzzer  int
	pinPM      int
	brightness int
	printTime  bool
}

func main() {
	var cfg config
	flag.DurationVar(&cfg.poll, "poll", 50*time.Millisecond, "Main loop poll interval (1s or finer)")
	flag.IntVar(&cfg.i2cBus, "i2c-bus", 1, "I2C bus number for the RTC and EEPROM")
	flag.IntVar(&cfg.rtcAddr, "rtc-addr", clock.DefaultAddress, "DS3231 I2C address")
	flag.IntVar(&cfg.eepromAddr, "eeprom-addr", eeprom.DefaultAddress, "AT24C32 I2C address")
	flag.StringVar(&cfg.gpioChip, "gpio-chip", "gpiochip0", "GPIO character device for the buttons")
	flag.IntVar(&cfg.buttonPins[buttons.Set], "pin-set", buttons.DefaultPinSet, "BCM pin for the Set button")
	flag.IntVar(&cfg.buttonPins[buttons.AlarmSet], "pin-alarmset", buttons.DefaultPinAlarmSet, "BCM pin for the AlarmSet button")
	flag.IntVar(&cfg.buttonPins[buttons.Minus], "pin-minus", buttons.DefaultPinMinus, "BCM pin for the Minus button")
	flag.IntVar(&cfg.buttonPins[buttons.Plus], "pin-plus", buttons.DefaultPinPlus, "BCM pin for the Plus button")
	flag.IntVar(&cfg.buttonPins[buttons.Snooz], "pin-snooz", buttons.DefaultPinSnooz, "BCM pin for the Snooz button")
	flag.IntVar(&cfg.pinClk, "pin-clk", 23, "BCM pin for the display clock line")
	flag.IntVar(&cfg.pinDio, "pin-dio", 24, "BCM pin for the display data line")
	flag.IntVar(&cfg.pinBuzzer, "pin-buzzer", tone.DefaultPin, "BCM pin for the buzzer (hardware PWM)")
	flag.IntVar(&cfg.pinPM, "pin-pm", pmled.DefaultPin, "BCM pin for the PM indicator LED (hardware PWM)")
	flag.IntVar(&cfg.brightness, "brightness", 2, "Initial display brightness (0-7)")
	flag.BoolVar(&cfg.printTime, "print-time", false, "Print the RTC time and exit")
	flag.Parse()

	if err := run(cfg); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}

// validatePoll enforces the alarm scheduler's cadence requirement: the match
// window is a single second, so polling coarser than 1s can skip it and miss
// the alarm for the whole day.
func validatePoll(poll time.Duration) error {
	if poll <= 0 {
		return fmt.Errorf("poll interval %v must be positive", poll)
	}
	if poll > time.Second {
		return fmt.Errorf("poll interval %v too coarse: alarm matching needs 1s or finer", poll)
	}
	return nil
}

// seedIfLost checks the RTC's power-loss flag and writes the default seed
// time when the battery failed, so the clock always runs from a valid time.
func seedIfLost(clk clock.Clock) error {
	lost, err := clk.LostPower()
	if err != nil {
		return fmt.Errorf("check power loss: %w", err)
	}
	if !lost {
		return nil
	}
	log.Printf("rtc lost power, seeding %02d:%02d:%02d", clock.DefaultSeed.Hour, clock.DefaultSeed.Minute, clock.DefaultSeed.Second)
	if err := clk.Adjust(clock.DefaultSeed); err != nil {
		return fmt.Errorf("seed time: %w", err)
	}
	return nil
}

func run(cfg config) error {
	if err := validatePoll(cfg.poll); err != nil {
		return err
	}

	// The RTC is essential: without it the clock has no function.
	clk, err := clock.NewDS3231(cfg.i2cBus, uint8(cfg.rtcAddr))
	if err != nil {
		return fmt.Errorf("init rtc: %w", err)
	}
	defer clk.Close()

	if err := seedIfLost(clk); err != nil {
		return err
	}

	if cfg.printTime {
		w, err := clk.Now()
		if err != nil {
			return fmt.Errorf("read rtc: %w", err)
		}
		fmt.Printf("%04d-%02d-%02d %02d:%02d:%02d\n", w.Year, w.Month, w.Day, w.Hour, w.Minute, w.Second)
		return nil
	}

	// One process-wide GPIO memory mapping serves the display and both PWM
	// outputs; it is unmapped after all three are closed.
	if err := gpiomem.Open(); err != nil {
		return fmt.Errorf("init gpio: %w", err)
	}
	defer gpiomem.Close()

	disp, err := display.NewTM1637(cfg.pinClk, cfg.pinDio, cfg.brightness)
	if err != nil {
		return fmt.Errorf("init display: %w", err)
	}
	defer disp.Close()

	store, err := eeprom.NewAT24C32(cfg.i2cBus, uint8(cfg.eepromAddr))
	if err != nil {
		return fmt.Errorf("init eeprom: %w", err)
	}
	defer store.Close()

	reader, err := buttons.NewRealReader(cfg.gpioChip, cfg.buttonPins)
	if err != nil {
		return fmt.Errorf("init buttons: %w", err)
	}
	defer reader.Close()

	buzzer, err := tone.NewPWM(cfg.pinBuzzer)
	if err != nil {
		return fmt.Errorf("init buzzer: %w", err)
	}
	defer buzzer.Close()

	pm, err := pmled.NewPWM(cfg.pinPM)
	if err != nil {
		return fmt.Errorf("init pm led: %w", err)
	}
	defer pm.Close()

	controller := ui.New(clk, disp, store, buzzer, pm, cfg.brightness, time.Now())

	log.Printf("started: poll=%v i2c-bus=%d rtc=%#x eeprom=%#x", cfg.poll, cfg.i2cBus, cfg.rtcAddr, cfg.eepromAddr)

	ticker := time.NewTicker(cfg.poll)
	defer ticker.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	return runLoop(controller, reader, buttons.NewDecoder(), time.Now, ticker.C, sigCh)
}

// runLoop services one tick at a time: controller logic first (persistence,
// mode timing, display), then button sampling, whose events are dispatched
// synchronously so the next tick reads their effects.
func runLoop(c *ui.Controller, reader buttons.Reader, dec *buttons.Decoder, now func() time.Time, tick <-chan time.Time, sig <-chan os.Signal) error {
	for {
		select {
		case s := <-sig:
			log.Printf("received %v, shutting down", s)
			return nil

		case <-tick:
			t := now()
			c.Tick(t)

			levels, err := reader.Read()
			if err != nil {
				log.Printf("button read error: %v", err)
				continue
			}
			for _, ev := range dec.Process(levels, t) {
				log.Printf("button: %s %s", ev.Button, ev.Type)
				c.HandleButton(ev, t)
			}
		}
	}
}
