// Package assets resolves the sound and image files the mural is built
// from. Lookups are case-insensitive because the asset sets have been
// hand-copied between machines with inconsistent casing.
package assets

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"bee-mural/internal/logger"
)

// SlotCount is the number of bee slots in the mural.
const SlotCount = 8

// Slot ties a mural position to its asset files. Paths are always set;
// the files they point at may be missing.
type Slot struct {
	Key       string
	Image     string
	Sound     string
	Narration string
}

// SlotKeys returns the fixed slot keys bee1..bee8 in mural order.
func SlotKeys() []string {
	keys := make([]string, 0, SlotCount)
	for i := 1; i <= SlotCount; i++ {
		keys = append(keys, "bee"+strconv.Itoa(i))
	}
	return keys
}

// Catalog resolves and caches asset paths for every slot.
type Catalog struct {
	imagesDir string
	soundsDir string
	slots     []Slot
	byKey     map[string]Slot
	log       logger.Logger
}

func NewCatalog(imagesDir, soundsDir string, log logger.Logger) *Catalog {
	c := &Catalog{
		imagesDir: imagesDir,
		soundsDir: soundsDir,
		byKey:     make(map[string]Slot, SlotCount),
		log:       log,
	}

	for _, key := range SlotKeys() {
		slot := Slot{
			Key:       key,
			Image:     FindCI(imagesDir, key+".png"),
			Sound:     FindCI(soundsDir, key+"_sound.wav"),
			Narration: FindCI(soundsDir, key+"_narration.wav"),
		}
		c.slots = append(c.slots, slot)
		c.byKey[key] = slot

		if !Exists(slot.Sound) {
			log.Warning("Assets", "slot sound missing", map[string]interface{}{
				"slot": key,
				"path": slot.Sound,
			})
		}
	}

	return c
}

// Slots returns all slots in mural order.
func (c *Catalog) Slots() []Slot {
	return c.slots
}

// Slot returns the slot for key.
func (c *Catalog) Slot(key string) (Slot, bool) {
	s, ok := c.byKey[key]
	return s, ok
}

// SoundPath returns the short sound for key.
func (c *Catalog) SoundPath(key string) string {
	return c.byKey[key].Sound
}

// NarrationPath returns the narration for key, falling back to the short
// sound when no narration file exists.
func (c *Catalog) NarrationPath(key string) string {
	s := c.byKey[key]
	if Exists(s.Narration) {
		return s.Narration
	}
	return s.Sound
}

// EligibleKeys returns the slots that can appear in a quiz: those whose
// short sound file exists on disk.
func (c *Catalog) EligibleKeys() []string {
	var keys []string
	for _, s := range c.slots {
		if Exists(s.Sound) {
			keys = append(keys, s.Key)
		}
	}
	return keys
}

// QuizAssets holds the quiz system clips. Welcome, Ready, Abort and
// Complete are optional; Correct and Incorrect are required for a quiz
// to start.
type QuizAssets struct {
	Welcome   string
	Ready     string
	Abort     string
	Correct   string
	Incorrect string
	Complete  string
}

// QuizAssets resolves the quiz clips. The completion clip is matched
// against the misspelled names older asset sets shipped with.
func (c *Catalog) QuizAssets() QuizAssets {
	complete, _ := FirstExistingCI(c.soundsDir,
		"quiz_complete.wav",
		"quiz_comple.wav",
		"quize_comple.wav",
		"quiz_completed.wav",
	)

	return QuizAssets{
		Welcome:   FindCI(c.soundsDir, "quiz_welcome.wav"),
		Ready:     FindCI(c.soundsDir, "quiz_ready.wav"),
		Abort:     FindCI(c.soundsDir, "quiz_abort.wav"),
		Correct:   FindCI(c.soundsDir, "correct.wav"),
		Incorrect: FindCI(c.soundsDir, "incorrect.wav"),
		Complete:  complete,
	}
}

// FeedbackReady reports whether both answer feedback clips exist.
func (qa QuizAssets) FeedbackReady() bool {
	return Exists(qa.Correct) && Exists(qa.Incorrect)
}

// FindCI returns the path of filename inside dir, matching the name
// case-insensitively. When nothing matches it returns the direct join so
// callers have a stable path to report as missing.
func FindCI(dir, filename string) string {
	direct := filepath.Join(dir, filename)
	if Exists(direct) {
		return direct
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return direct
	}

	target := strings.ToLower(filename)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.ToLower(e.Name()) == target {
			return filepath.Join(dir, e.Name())
		}
	}

	return direct
}

// FirstExistingCI returns the first of names that exists in dir.
func FirstExistingCI(dir string, names ...string) (string, bool) {
	for _, name := range names {
		p := FindCI(dir, name)
		if Exists(p) {
			return p, true
		}
	}
	return "", false
}

// Exists reports whether path exists and is a regular file.
func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
