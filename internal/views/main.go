// Package views builds the Fyne UI: the 2x4 mural grid of slot cards,
// the quiz bar and the status line. The view is passive; every rule
// lives in the controller, which drives the view through the
// controllers.View interface this type implements.
package views

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"bee-mural/internal/assets"
	"bee-mural/internal/models"
	"bee-mural/internal/views/components"
)

const muralColumns = 4

// MainView assembles the mural window content.
type MainView struct {
	window        fyne.Window
	mainContainer *fyne.Container

	cards      []*components.SlotCard
	cardsByKey map[string]*components.SlotCard
	quizBar    *components.QuizBar
	statusBar  *components.StatusBar

	// Handlers are connected to the controller by the application.
	slotPressedHandler  func(key string)
	slotReleasedHandler func(key string)
	quizPressedHandler  func()
	quizReleasedHandler func()
	abortHandler        func()
}

// NewMainView builds the view for the given slots.
func NewMainView(window fyne.Window, slots []assets.Slot) *MainView {
	mv := &MainView{
		window:     window,
		cardsByKey: make(map[string]*components.SlotCard, len(slots)),
	}

	mv.initializeComponents(slots)
	mv.buildLayout()
	mv.setupEventHandlers()

	return mv
}

func (mv *MainView) initializeComponents(slots []assets.Slot) {
	for _, slot := range slots {
		card := components.NewSlotCard(slot)
		mv.cards = append(mv.cards, card)
		mv.cardsByKey[slot.Key] = card
	}
	mv.quizBar = components.NewQuizBar()
	mv.statusBar = components.NewStatusBar()
}

func (mv *MainView) buildLayout() {
	grid := container.NewGridWithColumns(muralColumns)
	for _, card := range mv.cards {
		grid.Add(card.GetContainer())
	}

	bottom := container.NewVBox(
		mv.quizBar.GetContainer(),
		mv.statusBar.GetContainer(),
	)

	mv.mainContainer = container.NewBorder(
		nil,    // top
		bottom, // bottom
		nil,    // left
		nil,    // right
		container.NewPadded(grid),
	)

	mv.window.SetContent(mv.mainContainer)
}

func (mv *MainView) setupEventHandlers() {
	for _, card := range mv.cards {
		key := card.Key()
		card.SetPressHandlers(
			func() {
				if mv.slotPressedHandler != nil {
					mv.slotPressedHandler(key)
				}
			},
			func() {
				if mv.slotReleasedHandler != nil {
					mv.slotReleasedHandler(key)
				}
			},
		)
	}

	mv.quizBar.SetQuizHandlers(
		func() {
			if mv.quizPressedHandler != nil {
				mv.quizPressedHandler()
			}
		},
		func() {
			if mv.quizReleasedHandler != nil {
				mv.quizReleasedHandler()
			}
		},
	)

	mv.quizBar.SetAbortHandler(func() {
		if mv.abortHandler != nil {
			mv.abortHandler()
		}
	})
}

// SetSlotPressedHandler connects slot press events to the controller.
func (mv *MainView) SetSlotPressedHandler(handler func(key string)) {
	mv.slotPressedHandler = handler
}

// SetSlotReleasedHandler connects slot release events to the controller.
func (mv *MainView) SetSlotReleasedHandler(handler func(key string)) {
	mv.slotReleasedHandler = handler
}

// SetQuizPressedHandler connects quiz press events to the controller.
func (mv *MainView) SetQuizPressedHandler(handler func()) {
	mv.quizPressedHandler = handler
}

// SetQuizReleasedHandler connects quiz release events to the controller.
func (mv *MainView) SetQuizReleasedHandler(handler func()) {
	mv.quizReleasedHandler = handler
}

// SetAbortHandler connects the abort button to the controller.
func (mv *MainView) SetAbortHandler(handler func()) {
	mv.abortHandler = handler
}

// --- controllers.View implementation ---

// SetLed sets one slot's indicator color.
func (mv *MainView) SetLed(key string, color models.LedColor) {
	if card, ok := mv.cardsByKey[key]; ok {
		card.SetLed(color)
	}
}

// SetAllLeds sets every indicator to the same color.
func (mv *MainView) SetAllLeds(color models.LedColor) {
	for _, card := range mv.cards {
		card.SetLed(color)
	}
}

// SetStatus updates the status line.
func (mv *MainView) SetStatus(text string) {
	mv.statusBar.SetStatus(text)
}

// SetSlotEnabled enables or disables one slot's button.
func (mv *MainView) SetSlotEnabled(key string, enabled bool) {
	if card, ok := mv.cardsByKey[key]; ok {
		card.SetEnabled(enabled)
	}
}

// SetQuizEnabled enables or disables the quiz trigger.
func (mv *MainView) SetQuizEnabled(enabled bool) {
	mv.quizBar.SetQuizEnabled(enabled)
}

// SetAbortEnabled enables or disables the abort button.
func (mv *MainView) SetAbortEnabled(enabled bool) {
	mv.quizBar.SetAbortEnabled(enabled)
}

// Card exposes a slot card; used by tests.
func (mv *MainView) Card(key string) *components.SlotCard {
	return mv.cardsByKey[key]
}

// QuizBar exposes the quiz bar; used by tests.
func (mv *MainView) QuizBar() *components.QuizBar {
	return mv.quizBar
}

// Status returns the current status line; used by tests.
func (mv *MainView) Status() string {
	return mv.statusBar.GetStatus()
}

// GetMainContainer returns the window content container.
func (mv *MainView) GetMainContainer() *fyne.Container {
	return mv.mainContainer
}
