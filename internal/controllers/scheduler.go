package controllers

import (
	"time"

	"fyne.io/fyne/v2"
)

// TimerHandle cancels a scheduled callback. Stop reports whether the
// callback was prevented from running.
type TimerHandle interface {
	Stop() bool
}

// Scheduler abstracts delayed callbacks and UI-thread dispatch so the
// controller can be driven by a fake clock in tests. Callbacks always
// run on the UI thread.
type Scheduler interface {
	After(d time.Duration, fn func()) TimerHandle
	Do(fn func())
}

// FyneScheduler schedules with time.AfterFunc and hops callbacks onto
// the Fyne thread with fyne.Do.
type FyneScheduler struct{}

func NewFyneScheduler() *FyneScheduler {
	return &FyneScheduler{}
}

func (s *FyneScheduler) After(d time.Duration, fn func()) TimerHandle {
	return time.AfterFunc(d, func() {
		fyne.Do(fn)
	})
}

func (s *FyneScheduler) Do(fn func()) {
	fyne.Do(fn)
}
