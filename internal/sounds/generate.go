package sounds

import (
	"fmt"
	"math/rand"
	"path/filepath"

	"bee-mural/internal/assets"
	"bee-mural/internal/logger"
)

// Generator writes the full asset set into OutDir: a synthesized
// beeN_sound.wav per slot, plus TTS narrations and quiz clips unless
// BuzzOnly is set. Existing files are kept unless Force is set.
type Generator struct {
	OutDir   string
	Force    bool
	BuzzOnly bool

	log logger.Logger
	rng *rand.Rand
}

func NewGenerator(outDir string, force, buzzOnly bool, log logger.Logger) *Generator {
	return &Generator{
		OutDir:   outDir,
		Force:    force,
		BuzzOnly: buzzOnly,
		log:      log,
		// Fixed seed keeps regenerated buzzes identical between runs.
		rng: rand.New(rand.NewSource(0)),
	}
}

func (g *Generator) Run() error {
	for _, script := range Scripts {
		if err := g.buzz(script); err != nil {
			return err
		}
	}

	if g.BuzzOnly {
		return nil
	}

	for _, script := range Scripts {
		if err := g.narration(script); err != nil {
			return err
		}
	}

	quizClips := []struct {
		name string
		text string
	}{
		{"quiz_welcome.wav", QuizWelcomeText},
		{"quiz_ready.wav", QuizReadyText},
		{"quiz_abort.wav", QuizAbortText},
		{"correct.wav", CorrectText},
		{"incorrect.wav", IncorrectText},
		{"quiz_complete.wav", QuizCompleteText},
	}
	for _, clip := range quizClips {
		if err := g.speakTo(clip.name, clip.text); err != nil {
			return err
		}
	}

	return nil
}

func (g *Generator) buzz(script BeeScript) error {
	path := filepath.Join(g.OutDir, script.Key+"_sound.wav")
	if g.skip(path) {
		return nil
	}

	if err := WriteWAV(path, ShortBuzz(script.BuzzHz, g.rng)); err != nil {
		return fmt.Errorf("buzz for %s: %w", script.Key, err)
	}
	g.log.Info("Sounds", "buzz written", map[string]interface{}{
		"slot": script.Key,
		"hz":   script.BuzzHz,
		"path": path,
	})
	return nil
}

func (g *Generator) narration(script BeeScript) error {
	path := filepath.Join(g.OutDir, script.Key+"_narration.wav")
	if g.skip(path) {
		return nil
	}

	if err := Speak(script.Narration, path); err != nil {
		return fmt.Errorf("narration for %s (%s): %w", script.Key, script.Label, err)
	}
	g.log.Info("Sounds", "narration written", map[string]interface{}{
		"slot":  script.Key,
		"label": script.Label,
		"path":  path,
	})
	return nil
}

func (g *Generator) speakTo(name, text string) error {
	path := filepath.Join(g.OutDir, name)
	if g.skip(path) {
		return nil
	}

	if err := Speak(text, path); err != nil {
		return fmt.Errorf("quiz clip %s: %w", name, err)
	}
	g.log.Info("Sounds", "quiz clip written", map[string]interface{}{
		"path": path,
	})
	return nil
}

func (g *Generator) skip(path string) bool {
	if g.Force {
		return false
	}
	if assets.Exists(path) {
		g.log.Debug("Sounds", "file exists, skipping", map[string]interface{}{
			"path": path,
		})
		return true
	}
	return false
}
