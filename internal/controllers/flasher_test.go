package controllers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"bee-mural/internal/models"
)

// TestFlasher_UniformTogglesAndEnds verifies the uniform flash toggles
// on the interval and grays out when the duration elapses.
func TestFlasher_UniformTogglesAndEnds(t *testing.T) {
	sched := &fakeScheduler{}
	view := newFakeView()
	f := NewFlasher(sched, view)

	f.FlashUniform([]string{"bee1", "bee2"}, models.LedYellow,
		400*time.Millisecond, 2*time.Second)

	// First tick runs immediately and lights the keys.
	require.Equal(t, models.LedYellow, view.leds["bee1"])
	require.Equal(t, models.LedYellow, view.leds["bee2"])
	require.Equal(t, models.LedGray, view.leds["bee3"])
	require.True(t, f.Active())

	sched.advance(400 * time.Millisecond)
	require.Equal(t, models.LedGray, view.leds["bee1"], "off phase")

	sched.advance(400 * time.Millisecond)
	require.Equal(t, models.LedYellow, view.leds["bee1"], "on phase again")

	sched.advance(2 * time.Second)
	require.Empty(t, view.litLeds(), "all gray after the duration")
	require.False(t, f.Active())
}

// TestFlasher_MapColorsPerKey verifies the multicolor flash shows each
// key its own color during the on phase.
func TestFlasher_MapColorsPerKey(t *testing.T) {
	sched := &fakeScheduler{}
	view := newFakeView()
	f := NewFlasher(sched, view)

	f.FlashMap(map[string]models.LedColor{
		"bee3": models.LedGreen,
		"bee4": models.LedRed,
	}, 250*time.Millisecond, time.Second)

	require.Equal(t, models.LedGreen, view.leds["bee3"])
	require.Equal(t, models.LedRed, view.leds["bee4"])

	sched.advance(250 * time.Millisecond)
	require.Empty(t, view.litLeds())
}

// TestFlasher_RestartReplacesRunningFlash verifies starting a new flash
// cancels the old one's timers.
func TestFlasher_RestartReplacesRunningFlash(t *testing.T) {
	sched := &fakeScheduler{}
	view := newFakeView()
	f := NewFlasher(sched, view)

	f.FlashUniform([]string{"bee1"}, models.LedYellow,
		400*time.Millisecond, 10*time.Second)
	f.FlashUniform([]string{"bee2"}, models.LedRed,
		400*time.Millisecond, 10*time.Second)

	require.Equal(t, models.LedGray, view.leds["bee1"])
	require.Equal(t, models.LedRed, view.leds["bee2"])

	// Only the second flash's tick survives.
	sched.advance(400 * time.Millisecond)
	require.Equal(t, models.LedGray, view.leds["bee1"])
	require.Equal(t, models.LedGray, view.leds["bee2"])
}

// TestFlasher_StopKeepsLeds verifies Stop cancels timers without
// touching the LEDs, while End also grays them.
func TestFlasher_StopKeepsLeds(t *testing.T) {
	sched := &fakeScheduler{}
	view := newFakeView()
	f := NewFlasher(sched, view)

	f.FlashUniform([]string{"bee5"}, models.LedGreen,
		100*time.Millisecond, time.Second)
	require.Equal(t, models.LedGreen, view.leds["bee5"])

	f.Stop()
	require.Equal(t, models.LedGreen, view.leds["bee5"], "Stop leaves the frame")

	f.End()
	require.Equal(t, models.LedGray, view.leds["bee5"])
}
