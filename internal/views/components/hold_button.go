package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// HoldButton is a button that reports press and release separately, so
// the controller can distinguish a short press from a hold. Tap events
// are ignored; the press pair is the whole protocol.
type HoldButton struct {
	widget.Button

	OnPressed  func()
	OnReleased func()
}

func NewHoldButton(label string) *HoldButton {
	b := &HoldButton{}
	b.Text = label
	b.ExtendBaseWidget(b)
	return b
}

func (b *HoldButton) MouseDown(_ *desktop.MouseEvent) {
	if b.Disabled() {
		return
	}
	if b.OnPressed != nil {
		b.OnPressed()
	}
}

func (b *HoldButton) MouseUp(_ *desktop.MouseEvent) {
	if b.OnReleased != nil {
		b.OnReleased()
	}
}

// Tapped is overridden to a no-op so a click does not fire both the
// press pair and a tap action.
func (b *HoldButton) Tapped(_ *fyne.PointEvent) {}
