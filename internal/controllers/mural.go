// Package controllers holds the mural controller: the state machine that
// ties slot presses, the quiz flow, audio playback and LED feedback
// together. Widget callbacks arrive on the UI thread; timer and audio
// completions are hopped back onto it through the Scheduler, so the
// controller never mutates the view from a background goroutine.
package controllers

import (
	"fmt"
	"path/filepath"
	"time"

	"bee-mural/internal/assets"
	"bee-mural/internal/config"
	"bee-mural/internal/logger"
	"bee-mural/internal/models"
)

// AudioPlayer is the playback surface the controller needs.
type AudioPlayer interface {
	Play(path string, onDone func()) error
	Stop()
}

// View is the UI surface the controller drives.
type View interface {
	LedPanel
	SetStatus(text string)
	SetSlotEnabled(key string, enabled bool)
	SetQuizEnabled(enabled bool)
	SetAbortEnabled(enabled bool)
}

// MuralController implements the interaction rules:
//   - one action at a time; while feedback audio plays all input is
//     blocked, except Abort, which works anytime during an active quiz
//   - short press plays a slot's sound, holding plays its narration
//   - holding the quiz button starts a quiz run
type MuralController struct {
	cfg     config.Config
	log     logger.Logger
	catalog *assets.Catalog
	audio   AudioPlayer
	view    View
	sched   Scheduler

	input   *models.InputState
	session *models.QuizSession
	flasher *Flasher

	holdTimers    map[string]TimerHandle
	holdFired     map[string]bool
	quizHoldTimer TimerHandle
	quizHoldFired bool
	answerTimer   TimerHandle
	quizAssets    assets.QuizAssets
}

func NewMuralController(
	cfg config.Config,
	log logger.Logger,
	catalog *assets.Catalog,
	audio AudioPlayer,
	view View,
	sched Scheduler,
) *MuralController {
	return &MuralController{
		cfg:        cfg,
		log:        log,
		catalog:    catalog,
		audio:      audio,
		view:       view,
		sched:      sched,
		input:      models.NewInputState(),
		session:    models.NewQuizSession(),
		flasher:    NewFlasher(sched, view),
		holdTimers: make(map[string]TimerHandle),
		holdFired:  make(map[string]bool),
	}
}

// Initialize puts the UI into its idle state.
func (c *MuralController) Initialize() {
	c.view.SetAllLeds(models.LedGray)
	c.view.SetStatus("Ready")
	c.applyControlStates()
}

// applyControlStates enables and disables controls according to the
// press, lock and quiz state, mirroring them onto the view.
func (c *MuralController) applyControlStates() {
	locked := c.input.Locked()
	waiting := c.session.Waiting()
	active := c.session.Active()

	for _, key := range assets.SlotKeys() {
		var enabled bool
		switch {
		case locked:
			enabled = c.input.IsPressed(models.PressSlot, key)
		case active && !waiting:
			enabled = false
		case waiting:
			enabled = c.session.IsOption(key)
		default:
			enabled = true
		}
		c.view.SetSlotEnabled(key, enabled)
	}

	if locked {
		c.view.SetQuizEnabled(c.input.IsPressed(models.PressQuiz, "quiz"))
	} else {
		c.view.SetQuizEnabled(!active)
	}

	// Abort must work anytime during an active quiz, even while audio
	// is playing and everything else is locked.
	c.view.SetAbortEnabled(active)
}

func (c *MuralController) lockInputs() {
	c.input.Lock()
	c.applyControlStates()
}

func (c *MuralController) unlockInputs() {
	c.input.Unlock()
	c.applyControlStates()
}

// playLocked plays a clip with input locked for its duration. after runs
// on the UI thread once playback completes. A force-stopped playback
// (abort) never completes, so abort force-unlocks on its own.
func (c *MuralController) playLocked(path string, after func()) {
	if !assets.Exists(path) {
		c.log.Warning("Controller", "audio clip missing", map[string]interface{}{
			"path": path,
		})
		if after != nil {
			c.sched.After(0, after)
		}
		return
	}

	c.lockInputs()

	err := c.audio.Play(path, func() {
		c.sched.Do(func() {
			c.unlockInputs()
			if after != nil {
				after()
			}
		})
	})
	if err != nil {
		c.log.Warning("Controller", "playback refused", map[string]interface{}{
			"path":  path,
			"error": err.Error(),
		})
		c.unlockInputs()
		if after != nil {
			c.sched.After(0, after)
		}
	}
}

// --- learn mode ---

// OnSlotPressed arms the hold timer for a slot press.
func (c *MuralController) OnSlotPressed(key string) {
	if c.session.Active() {
		return
	}
	if !c.input.BeginPress(models.PressSlot, key) {
		return
	}
	c.applyControlStates()

	delete(c.holdFired, key)
	if t, ok := c.holdTimers[key]; ok {
		t.Stop()
	}
	c.holdTimers[key] = c.sched.After(c.cfg.HoldDelay, func() {
		c.slotHoldFired(key)
	})
}

// OnSlotReleased resolves a slot release: quiz answer while the answer
// window is open, otherwise the short sound unless the hold already fired.
func (c *MuralController) OnSlotReleased(key string) {
	c.input.EndPress(models.PressSlot, key)
	c.applyControlStates()

	if c.session.Waiting() {
		c.handleAnswer(key)
		return
	}
	if c.session.Active() || c.input.Locked() {
		return
	}

	if t, ok := c.holdTimers[key]; ok {
		t.Stop()
		delete(c.holdTimers, key)
	}

	if c.holdFired[key] {
		delete(c.holdFired, key)
		return
	}

	c.playSlot(key, false)
}

func (c *MuralController) slotHoldFired(key string) {
	if !c.input.IsPressed(models.PressSlot, key) {
		return
	}
	c.holdFired[key] = true
	c.playSlot(key, true)
}

// playSlot plays a slot's sound (or narration on hold) with the slot LED
// lit green for the duration.
func (c *MuralController) playSlot(key string, hold bool) {
	var wav string
	if hold {
		wav = c.catalog.NarrationPath(key)
	} else {
		wav = c.catalog.SoundPath(key)
	}

	if !assets.Exists(wav) {
		c.view.SetStatus("Missing: " + filepath.Base(wav))
		c.log.Warning("Controller", "slot audio missing", map[string]interface{}{
			"slot": key,
			"path": wav,
		})
		return
	}

	c.flasher.End()
	c.view.SetAllLeds(models.LedGray)
	c.view.SetLed(key, models.LedGreen)
	if hold {
		c.view.SetStatus("Hold: " + key)
	} else {
		c.view.SetStatus("Sound: " + key)
	}

	c.playLocked(wav, func() {
		c.view.SetLed(key, models.LedGray)
		c.view.SetStatus("Ready")
	})
}

// --- quiz trigger ---

// OnQuizPressed arms the quiz hold timer.
func (c *MuralController) OnQuizPressed() {
	if c.session.Active() {
		return
	}
	if !c.input.BeginPress(models.PressQuiz, "quiz") {
		return
	}
	c.applyControlStates()

	c.quizHoldFired = false
	if c.quizHoldTimer != nil {
		c.quizHoldTimer.Stop()
	}
	c.view.SetStatus("Quiz: holding...")
	c.quizHoldTimer = c.sched.After(c.cfg.HoldDelay, c.quizHoldFiredFn)
}

// OnQuizReleased plays the welcome clip on a short press.
func (c *MuralController) OnQuizReleased() {
	c.input.EndPress(models.PressQuiz, "quiz")
	c.applyControlStates()

	if c.quizHoldTimer != nil {
		c.quizHoldTimer.Stop()
		c.quizHoldTimer = nil
	}

	if c.session.Active() || c.input.Locked() || c.quizHoldFired {
		return
	}

	welcome := c.catalog.QuizAssets().Welcome
	if assets.Exists(welcome) {
		c.view.SetStatus("Quiz: Welcome")
		c.playLocked(welcome, func() {
			c.view.SetStatus("Ready")
		})
	} else {
		c.view.SetStatus("Ready")
	}
}

func (c *MuralController) quizHoldFiredFn() {
	c.quizHoldFired = true
	c.quizHoldTimer = nil
	if !c.input.IsPressed(models.PressQuiz, "quiz") {
		return
	}
	c.startQuiz()
}

// OnAbort aborts the active quiz. It bypasses the input lock.
func (c *MuralController) OnAbort() {
	if !c.session.Active() {
		return
	}
	c.abortQuiz()
}

// --- quiz run ---

func (c *MuralController) startQuiz() {
	eligible := c.catalog.EligibleKeys()
	c.quizAssets = c.catalog.QuizAssets()

	refuse := func(msg string) {
		c.view.SetStatus(msg)
		c.input.ForceRelease()
		c.applyControlStates()
	}

	if len(eligible) < models.MinEligible {
		refuse(fmt.Sprintf("Need at least %d bee sound files for the quiz.", models.MinEligible))
		return
	}
	if !c.quizAssets.FeedbackReady() {
		refuse("Missing: correct.wav or incorrect.wav")
		return
	}

	if err := c.session.Start(eligible, c.cfg.QuizRounds); err != nil {
		refuse(err.Error())
		return
	}

	c.log.Info("Controller", "quiz started", map[string]interface{}{
		"rounds":   c.session.Rounds(),
		"eligible": len(eligible),
	})

	c.input.ForceRelease()
	c.applyControlStates()
	c.flasher.End()

	if assets.Exists(c.quizAssets.Ready) {
		c.view.SetStatus("Quiz: Ready")
		c.playLocked(c.quizAssets.Ready, c.playQuestion)
	} else {
		c.playQuestion()
	}
}

func (c *MuralController) playQuestion() {
	if !c.session.Active() {
		return
	}

	correct, _ := c.session.BeginRound(assets.SlotKeys())
	c.applyControlStates()

	wav := c.catalog.SoundPath(correct)
	if !assets.Exists(wav) {
		c.view.SetStatus("Missing: " + filepath.Base(wav))
		c.abortQuiz()
		return
	}

	c.view.SetStatus(fmt.Sprintf("Quiz: Question %d", c.session.QuestionNumber()))
	c.playLocked(wav, c.startAnswerWindow)
}

func (c *MuralController) startAnswerWindow() {
	if !c.session.Active() {
		return
	}

	c.session.SetWaiting(true)
	c.view.SetStatus("Quiz: Choose a bee")
	c.applyControlStates()

	c.flasher.FlashUniform(c.session.Options(), models.LedYellow, c.cfg.FlashInterval, c.cfg.AnswerWindow)
	c.answerTimer = c.sched.After(c.cfg.AnswerWindow, c.answerTimedOut)
}

func (c *MuralController) answerTimedOut() {
	c.answerTimer = nil
	if !c.session.Waiting() || !c.session.Active() {
		return
	}

	c.log.Debug("Controller", "answer window timed out", map[string]interface{}{
		"question": c.session.QuestionNumber(),
	})

	c.session.SetWaiting(false)
	c.applyControlStates()
	c.flasher.End()
	c.showFeedback(false)
}

func (c *MuralController) handleAnswer(key string) {
	if !c.session.Waiting() || !c.session.Active() {
		return
	}
	if c.input.Locked() {
		return
	}
	if !c.session.IsOption(key) {
		return
	}

	if c.answerTimer != nil {
		c.answerTimer.Stop()
		c.answerTimer = nil
	}
	c.flasher.End()

	correct := c.session.Answer(key)
	c.applyControlStates()

	c.log.Debug("Controller", "answer received", map[string]interface{}{
		"question": c.session.QuestionNumber(),
		"answer":   key,
		"correct":  correct,
	})

	c.showFeedback(correct)
}

// showFeedback flashes the options red with the correct slot green while
// the feedback clip plays, then moves to the next round.
func (c *MuralController) showFeedback(correct bool) {
	wav := c.quizAssets.Incorrect
	if correct {
		wav = c.quizAssets.Correct
	}
	if !assets.Exists(wav) {
		c.view.SetStatus("Missing: " + filepath.Base(wav))
		c.abortQuiz()
		return
	}

	if correct {
		c.view.SetStatus("Quiz: Correct")
	} else {
		c.view.SetStatus("Quiz: Not correct")
	}

	colors := make(map[string]models.LedColor)
	for _, k := range c.session.Options() {
		colors[k] = models.LedRed
	}
	colors[c.session.CurrentKey()] = models.LedGreen
	c.flasher.FlashMap(colors, resultFlashInterval, c.cfg.ResultFlash)

	c.playLocked(wav, func() {
		c.flasher.End()
		c.nextOrEnd()
	})
}

func (c *MuralController) nextOrEnd() {
	if !c.session.Active() {
		return
	}
	if c.session.Advance() {
		c.playQuestion()
		return
	}
	c.endQuiz()
}

func (c *MuralController) endQuiz() {
	score := c.session.Score()
	rounds := c.session.Rounds()

	c.session.Reset()
	c.flasher.End()
	c.input.ForceRelease()
	c.applyControlStates()

	c.log.Info("Controller", "quiz complete", map[string]interface{}{
		"score":  score,
		"rounds": rounds,
	})

	c.view.SetStatus(fmt.Sprintf("Quiz: Complete (%d of %d)", score, rounds))

	if assets.Exists(c.quizAssets.Complete) {
		c.playLocked(c.quizAssets.Complete, func() {
			c.view.SetStatus("Ready")
		})
	}
}

func (c *MuralController) abortQuiz() {
	if c.answerTimer != nil {
		c.answerTimer.Stop()
		c.answerTimer = nil
	}
	if c.quizHoldTimer != nil {
		c.quizHoldTimer.Stop()
		c.quizHoldTimer = nil
	}

	c.flasher.End()
	c.audio.Stop()

	// A force-stopped playback never runs its completion, so the lock it
	// took must be cleared here.
	c.input.ForceRelease()
	c.session.Reset()
	c.applyControlStates()

	c.log.Info("Controller", "quiz aborted", nil)
	c.view.SetStatus("Quiz: Aborted")

	if assets.Exists(c.quizAssets.Abort) {
		c.playLocked(c.quizAssets.Abort, func() {
			c.view.SetStatus("Ready")
		})
	} else {
		c.view.SetStatus("Ready")
	}
}

// resultFlashInterval is the faster cadence used for answer feedback.
const resultFlashInterval = 250 * time.Millisecond

// Shutdown stops audio, flashing and timers. Part of the application
// shutdown sequence.
func (c *MuralController) Shutdown() {
	c.audio.Stop()
	c.flasher.Stop()

	for key, t := range c.holdTimers {
		t.Stop()
		delete(c.holdTimers, key)
	}
	if c.quizHoldTimer != nil {
		c.quizHoldTimer.Stop()
		c.quizHoldTimer = nil
	}
	if c.answerTimer != nil {
		c.answerTimer.Stop()
		c.answerTimer = nil
	}
}
