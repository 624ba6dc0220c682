package assets

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-audio/wav"
)

// Duration returns the playing time of a WAV file. Anything unreadable,
// missing, or not a .wav reports zero; callers treat zero as "unknown".
func Duration(path string) time.Duration {
	if !strings.EqualFold(filepath.Ext(path), ".wav") {
		return 0
	}

	f, err := os.Open(path)
	if err != nil {
		return 0
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return 0
	}

	d, err := dec.Duration()
	if err != nil {
		return 0
	}
	return d
}
