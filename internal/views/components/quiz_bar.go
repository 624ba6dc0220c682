package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// QuizBar holds the quiz trigger and the abort button. The quiz button
// is hold-aware (holding it starts a quiz); abort is a plain button that
// starts out disabled.
type QuizBar struct {
	container   *fyne.Container
	quizButton  *HoldButton
	abortButton *widget.Button
}

func NewQuizBar() *QuizBar {
	qb := &QuizBar{}
	qb.createComponents()
	qb.buildLayout()
	return qb
}

func (qb *QuizBar) createComponents() {
	qb.quizButton = NewHoldButton("Quiz")
	qb.abortButton = widget.NewButton("Abort", nil)
	qb.abortButton.Disable()
}

func (qb *QuizBar) buildLayout() {
	qb.container = container.NewCenter(
		container.NewHBox(qb.quizButton, qb.abortButton))
}

// SetQuizHandlers wires the quiz button press pair.
func (qb *QuizBar) SetQuizHandlers(onPressed, onReleased func()) {
	qb.quizButton.OnPressed = onPressed
	qb.quizButton.OnReleased = onReleased
}

// SetAbortHandler wires the abort action.
func (qb *QuizBar) SetAbortHandler(onAbort func()) {
	qb.abortButton.OnTapped = onAbort
}

// SetQuizEnabled enables or disables the quiz trigger.
func (qb *QuizBar) SetQuizEnabled(enabled bool) {
	if enabled {
		qb.quizButton.Enable()
	} else {
		qb.quizButton.Disable()
	}
}

// SetAbortEnabled enables or disables the abort button.
func (qb *QuizBar) SetAbortEnabled(enabled bool) {
	if enabled {
		qb.abortButton.Enable()
	} else {
		qb.abortButton.Disable()
	}
}

// QuizButton exposes the quiz trigger; used by tests.
func (qb *QuizBar) QuizButton() *HoldButton {
	return qb.quizButton
}

// AbortButton exposes the abort button; used by tests.
func (qb *QuizBar) AbortButton() *widget.Button {
	return qb.abortButton
}

// GetContainer returns the bar's root container.
func (qb *QuizBar) GetContainer() *fyne.Container {
	return qb.container
}
