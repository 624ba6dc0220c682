package assets

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/stretchr/testify/require"
)

func writeTestWAV(t *testing.T, path string, seconds float64, sampleRate int) {
	t.Helper()

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           make([]int, int(float64(sampleRate)*seconds)),
		SourceBitDepth: 16,
	}

	enc := wav.NewEncoder(f, sampleRate, 16, 1, 1)
	require.NoError(t, enc.Write(buf))
	require.NoError(t, enc.Close())
}

// TestDuration_ValidFile verifies the probe reads the playing time of a
// well-formed WAV.
func TestDuration_ValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clip.wav")
	writeTestWAV(t, path, 1.0, 8000)

	d := Duration(path)
	require.InDelta(t, float64(time.Second), float64(d), float64(50*time.Millisecond))
}

// TestDuration_Unreadable verifies the probe reports zero for missing,
// non-WAV and corrupt files instead of failing.
func TestDuration_Unreadable(t *testing.T) {
	dir := t.TempDir()

	require.Zero(t, Duration(filepath.Join(dir, "missing.wav")))

	txt := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(txt, []byte("not audio"), 0o644))
	require.Zero(t, Duration(txt))

	corrupt := filepath.Join(dir, "corrupt.wav")
	require.NoError(t, os.WriteFile(corrupt, []byte("RIFFgarbage"), 0o644))
	require.Zero(t, Duration(corrupt))
}
