package controllers

import (
	"time"

	"bee-mural/internal/models"
)

// LedPanel is the part of the view the flasher drives.
type LedPanel interface {
	SetLed(key string, color models.LedColor)
	SetAllLeds(color models.LedColor)
}

// Flasher blinks indicator LEDs by rescheduling itself on the shared
// scheduler, the same way the rest of the UI timers work. All methods
// must be called from the UI thread.
type Flasher struct {
	sched Scheduler
	leds  LedPanel

	tick   TimerHandle
	finish TimerHandle
	on     bool
	colors map[string]models.LedColor
}

func NewFlasher(sched Scheduler, leds LedPanel) *Flasher {
	return &Flasher{sched: sched, leds: leds}
}

// FlashUniform blinks the given keys in one color for duration, toggling
// every interval. Any flash already running is replaced.
func (f *Flasher) FlashUniform(keys []string, color models.LedColor, interval, duration time.Duration) {
	colors := make(map[string]models.LedColor, len(keys))
	for _, k := range keys {
		colors[k] = color
	}
	f.FlashMap(colors, interval, duration)
}

// FlashMap blinks each key in its own color for duration, toggling every
// interval. When the duration elapses all LEDs return to gray.
func (f *Flasher) FlashMap(colors map[string]models.LedColor, interval, duration time.Duration) {
	f.Stop()

	f.colors = colors
	f.on = false
	f.leds.SetAllLeds(models.LedGray)

	var tick func()
	tick = func() {
		f.on = !f.on
		f.leds.SetAllLeds(models.LedGray)
		if f.on {
			for k, c := range f.colors {
				f.leds.SetLed(k, c)
			}
		}
		f.tick = f.sched.After(interval, tick)
	}
	tick()

	f.finish = f.sched.After(duration, f.End)
}

// Stop cancels the flash timers without touching the LEDs.
func (f *Flasher) Stop() {
	if f.tick != nil {
		f.tick.Stop()
		f.tick = nil
	}
	if f.finish != nil {
		f.finish.Stop()
		f.finish = nil
	}
	f.on = false
}

// End stops flashing and returns every LED to gray.
func (f *Flasher) End() {
	f.Stop()
	f.leds.SetAllLeds(models.LedGray)
}

// Active reports whether a flash is currently running.
func (f *Flasher) Active() bool {
	return f.tick != nil
}
