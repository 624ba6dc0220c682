package controllers

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"bee-mural/internal/models"
)

// fakeTimer records a scheduled callback for the fake scheduler.
type fakeTimer struct {
	when    time.Duration
	fn      func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	if t.fired || t.stopped {
		return false
	}
	t.stopped = true
	return true
}

// fakeScheduler drives controller timers with a manual clock. Do runs
// callbacks inline, matching the single-threaded test flow.
type fakeScheduler struct {
	now    time.Duration
	timers []*fakeTimer
}

func (s *fakeScheduler) After(d time.Duration, fn func()) TimerHandle {
	t := &fakeTimer{when: s.now + d, fn: fn}
	s.timers = append(s.timers, t)
	return t
}

func (s *fakeScheduler) Do(fn func()) {
	fn()
}

// advance moves the clock forward, firing due timers in order. Timers
// scheduled by fired callbacks are picked up within the same advance.
func (s *fakeScheduler) advance(d time.Duration) {
	target := s.now + d
	for {
		var next *fakeTimer
		for _, t := range s.timers {
			if t.fired || t.stopped || t.when > target {
				continue
			}
			if next == nil || t.when < next.when {
				next = t
			}
		}
		if next == nil {
			break
		}
		s.now = next.when
		next.fired = true
		next.fn()
	}
	s.now = target
}

// fakeAudio records playback requests and completes them on demand.
type fakeAudio struct {
	plays   []string
	pending func()
	stopped int
}

func (f *fakeAudio) Play(path string, onDone func()) error {
	f.plays = append(f.plays, path)
	f.pending = onDone
	return nil
}

func (f *fakeAudio) Stop() {
	f.stopped++
	f.pending = nil
}

// finish completes the current playback as the real player would.
func (f *fakeAudio) finish(t *testing.T) {
	t.Helper()
	require.NotNil(t, f.pending, "no playback to finish")
	done := f.pending
	f.pending = nil
	done()
}

// lastPlayed returns the basename of the most recent playback.
func (f *fakeAudio) lastPlayed(t *testing.T) string {
	t.Helper()
	require.NotEmpty(t, f.plays)
	return filepath.Base(f.plays[len(f.plays)-1])
}

// fakeView records everything the controller pushes at the UI.
type fakeView struct {
	leds         map[string]models.LedColor
	status       string
	slotEnabled  map[string]bool
	quizEnabled  bool
	abortEnabled bool
}

func newFakeView() *fakeView {
	return &fakeView{
		leds:        make(map[string]models.LedColor),
		slotEnabled: make(map[string]bool),
	}
}

func (v *fakeView) SetLed(key string, color models.LedColor) { v.leds[key] = color }

func (v *fakeView) SetAllLeds(color models.LedColor) {
	for _, key := range beeKeys() {
		v.leds[key] = color
	}
}

func (v *fakeView) SetStatus(text string)                  { v.status = text }
func (v *fakeView) SetSlotEnabled(key string, enabled bool) { v.slotEnabled[key] = enabled }
func (v *fakeView) SetQuizEnabled(enabled bool)            { v.quizEnabled = enabled }
func (v *fakeView) SetAbortEnabled(enabled bool)           { v.abortEnabled = enabled }

func (v *fakeView) litLeds() []string {
	var lit []string
	for _, key := range beeKeys() {
		if c, ok := v.leds[key]; ok && c != models.LedGray {
			lit = append(lit, key)
		}
	}
	return lit
}

func beeKeys() []string {
	return []string{"bee1", "bee2", "bee3", "bee4", "bee5", "bee6", "bee7", "bee8"}
}

func touchFile(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
}
