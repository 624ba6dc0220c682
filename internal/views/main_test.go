package views

import (
	"fmt"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/require"

	"bee-mural/internal/assets"
	"bee-mural/internal/models"
)

func testSlots(t *testing.T) []assets.Slot {
	t.Helper()
	dir := t.TempDir()
	slots := make([]assets.Slot, 0, assets.SlotCount)
	for i := 1; i <= assets.SlotCount; i++ {
		key := fmt.Sprintf("bee%d", i)
		slots = append(slots, assets.Slot{
			Key:       key,
			Image:     filepath.Join(dir, key+".png"),
			Sound:     filepath.Join(dir, key+"_sound.wav"),
			Narration: filepath.Join(dir, key+"_narration.wav"),
		})
	}
	return slots
}

func newTestView(t *testing.T) *MainView {
	t.Helper()
	_ = test.NewApp()
	return NewMainView(test.NewWindow(nil), testSlots(t))
}

// TestMainView_BuildsAllCards verifies one card per slot and the initial
// status line.
func TestMainView_BuildsAllCards(t *testing.T) {
	mv := newTestView(t)

	for i := 1; i <= assets.SlotCount; i++ {
		require.NotNil(t, mv.Card(fmt.Sprintf("bee%d", i)))
	}
	require.Equal(t, "Ready", mv.Status())
	require.NotNil(t, mv.GetMainContainer())
}

// TestMainView_SlotHandlersCarryTheKey verifies card events reach the
// connected handlers with the card's own key.
func TestMainView_SlotHandlersCarryTheKey(t *testing.T) {
	mv := newTestView(t)

	var pressed, released []string
	mv.SetSlotPressedHandler(func(key string) { pressed = append(pressed, key) })
	mv.SetSlotReleasedHandler(func(key string) { released = append(released, key) })

	mv.Card("bee3").Button().MouseDown(&desktop.MouseEvent{})
	mv.Card("bee3").Button().MouseUp(&desktop.MouseEvent{})
	mv.Card("bee7").Button().MouseDown(&desktop.MouseEvent{})
	mv.Card("bee7").Button().MouseUp(&desktop.MouseEvent{})

	require.Equal(t, []string{"bee3", "bee7"}, pressed)
	require.Equal(t, []string{"bee3", "bee7"}, released)
}

// TestMainView_QuizAndAbortHandlers verifies quiz bar events reach the
// connected handlers.
func TestMainView_QuizAndAbortHandlers(t *testing.T) {
	mv := newTestView(t)

	var quizPressed, quizReleased, aborted int
	mv.SetQuizPressedHandler(func() { quizPressed++ })
	mv.SetQuizReleasedHandler(func() { quizReleased++ })
	mv.SetAbortHandler(func() { aborted++ })

	mv.QuizBar().QuizButton().MouseDown(&desktop.MouseEvent{})
	mv.QuizBar().QuizButton().MouseUp(&desktop.MouseEvent{})
	mv.SetAbortEnabled(true)
	test.Tap(mv.QuizBar().AbortButton())

	require.Equal(t, 1, quizPressed)
	require.Equal(t, 1, quizReleased)
	require.Equal(t, 1, aborted)
}

// TestMainView_LedUpdates verifies single and bulk LED updates, and that
// an unknown key is ignored.
func TestMainView_LedUpdates(t *testing.T) {
	mv := newTestView(t)

	mv.SetLed("bee2", models.LedGreen)
	require.Equal(t, models.LedGreen, mv.Card("bee2").Led())
	require.Equal(t, models.LedGray, mv.Card("bee1").Led())

	mv.SetAllLeds(models.LedYellow)
	for i := 1; i <= assets.SlotCount; i++ {
		require.Equal(t, models.LedYellow, mv.Card(fmt.Sprintf("bee%d", i)).Led())
	}

	mv.SetLed("no-such-slot", models.LedRed)
	mv.SetAllLeds(models.LedGray)
}

// TestMainView_EnableToggles verifies per-slot and quiz bar enable state.
func TestMainView_EnableToggles(t *testing.T) {
	mv := newTestView(t)

	mv.SetSlotEnabled("bee5", false)
	require.True(t, mv.Card("bee5").Button().Disabled())
	require.False(t, mv.Card("bee6").Button().Disabled())

	mv.SetQuizEnabled(false)
	require.True(t, mv.QuizBar().QuizButton().Disabled())

	mv.SetAbortEnabled(true)
	require.False(t, mv.QuizBar().AbortButton().Disabled())
}

// TestMainView_StatusUpdates verifies the status line reflects SetStatus.
func TestMainView_StatusUpdates(t *testing.T) {
	mv := newTestView(t)

	mv.SetStatus("Sound: bee1")
	require.Equal(t, "Sound: bee1", mv.Status())
}
