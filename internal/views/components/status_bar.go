package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// StatusBar displays the single application status line.
type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label
}

func NewStatusBar() *StatusBar {
	sb := &StatusBar{}
	sb.createComponents()
	sb.buildLayout()
	return sb
}

func (sb *StatusBar) createComponents() {
	sb.statusLabel = widget.NewLabel("Ready")
}

func (sb *StatusBar) buildLayout() {
	sb.container = container.NewHBox(sb.statusLabel)
}

// SetStatus updates the status message. Must be called on the UI thread.
func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

// GetStatus returns the current status message.
func (sb *StatusBar) GetStatus() string {
	return sb.statusLabel.Text
}

// Reset returns the status bar to its initial state.
func (sb *StatusBar) Reset() {
	sb.statusLabel.SetText("Ready")
}

// GetContainer returns the status bar container.
func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}
