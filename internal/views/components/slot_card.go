package components

import (
	"image/color"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"bee-mural/internal/assets"
	"bee-mural/internal/models"
)

const (
	cardImageWidth  = 220
	cardImageHeight = 180
	ledDiameter     = 22
)

// ledFill maps the controller's LED states to display colors.
func ledFill(c models.LedColor) color.Color {
	switch c {
	case models.LedGreen:
		return color.NRGBA{R: 0x2e, G: 0xa0, B: 0x43, A: 0xff}
	case models.LedYellow:
		return color.NRGBA{R: 0xe6, G: 0xc2, B: 0x29, A: 0xff}
	case models.LedRed:
		return color.NRGBA{R: 0xc9, G: 0x32, B: 0x2e, A: 0xff}
	default:
		return color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	}
}

// SlotCard is one mural cell: bee image, LED indicator circle, and a
// hold-aware press button.
type SlotCard struct {
	key       string
	container *fyne.Container
	led       *canvas.Circle
	button    *HoldButton
	ledState  models.LedColor
}

// NewSlotCard builds the card for a slot. A missing image file renders
// as a placeholder label instead of failing.
func NewSlotCard(slot assets.Slot) *SlotCard {
	sc := &SlotCard{
		key:      slot.Key,
		ledState: models.LedGray,
	}
	sc.createComponents(slot)
	sc.buildLayout(slot)
	return sc
}

func (sc *SlotCard) createComponents(slot assets.Slot) {
	sc.led = canvas.NewCircle(ledFill(models.LedGray))
	sc.button = NewHoldButton(slot.Key)
}

func (sc *SlotCard) buildLayout(slot assets.Slot) {
	var picture fyne.CanvasObject
	if assets.Exists(slot.Image) {
		img := canvas.NewImageFromFile(slot.Image)
		img.FillMode = canvas.ImageFillContain
		img.SetMinSize(fyne.NewSize(cardImageWidth, cardImageHeight))
		picture = img
	} else {
		placeholder := widget.NewLabel("Missing image\n" + filepath.Base(slot.Image))
		placeholder.Alignment = fyne.TextAlignCenter
		picture = container.NewGridWrap(
			fyne.NewSize(cardImageWidth, cardImageHeight), placeholder)
	}

	lamp := container.NewCenter(
		container.NewGridWrap(fyne.NewSize(ledDiameter, ledDiameter), sc.led))

	sc.container = container.NewVBox(picture, lamp, sc.button)
}

// Key returns the slot key this card shows.
func (sc *SlotCard) Key() string {
	return sc.key
}

// SetPressHandlers wires the press and release callbacks.
func (sc *SlotCard) SetPressHandlers(onPressed, onReleased func()) {
	sc.button.OnPressed = onPressed
	sc.button.OnReleased = onReleased
}

// SetLed changes the indicator color. Must be called on the UI thread.
func (sc *SlotCard) SetLed(c models.LedColor) {
	sc.ledState = c
	sc.led.FillColor = ledFill(c)
	sc.led.Refresh()
}

// Led returns the current indicator state.
func (sc *SlotCard) Led() models.LedColor {
	return sc.ledState
}

// SetEnabled enables or disables the press button.
func (sc *SlotCard) SetEnabled(enabled bool) {
	if enabled {
		sc.button.Enable()
	} else {
		sc.button.Disable()
	}
}

// Button exposes the press button; used by tests to synthesize input.
func (sc *SlotCard) Button() *HoldButton {
	return sc.button
}

// GetContainer returns the card's root container.
func (sc *SlotCard) GetContainer() *fyne.Container {
	return sc.container
}
