package sounds

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-audio/wav"
	"github.com/stretchr/testify/require"
)

// TestEnvelope_FadesInAndOut verifies the envelope ramps at the edges
// and holds at full level in the middle.
func TestEnvelope_FadesInAndOut(t *testing.T) {
	total := 0.35

	require.Zero(t, envelope(0, total))
	require.Equal(t, 1.0, envelope(total/2, total))
	require.InDelta(t, 0.5, envelope(fadeSeconds/2, total), 1e-9)
	require.LessOrEqual(t, envelope(total-1e-4, total), 1.0)
	require.Zero(t, envelope(total, total))
}

// TestClamp verifies hard limiting to the -1..1 range.
func TestClamp(t *testing.T) {
	require.Equal(t, 1.0, clamp(3.7))
	require.Equal(t, -1.0, clamp(-2.0))
	require.Equal(t, 0.25, clamp(0.25))
}

// TestBuzz_SampleCountAndRange verifies buzz length and that every
// sample stays inside the PCM range.
func TestBuzz_SampleCountAndRange(t *testing.T) {
	rng := rand.New(rand.NewSource(0))
	samples := Buzz(230, 0.35, rng)

	require.Len(t, samples, int(SampleRate*0.35))
	for _, s := range samples {
		require.GreaterOrEqual(t, s, -1.0)
		require.LessOrEqual(t, s, 1.0)
	}
}

// TestShortBuzz_IncludesTail verifies the slot sound carries its quiet
// tail.
func TestShortBuzz_IncludesTail(t *testing.T) {
	rng := rand.New(rand.NewSource(0))
	samples := ShortBuzz(230, rng)

	expected := int(SampleRate*buzzSeconds) + int(SampleRate*tailSeconds)
	require.Len(t, samples, expected)

	tail := samples[len(samples)-10:]
	for _, s := range tail {
		require.Zero(t, s)
	}
}

// TestWriteWAV_RoundTrip verifies the written file decodes as valid
// 16-bit mono PCM with the expected duration.
func TestWriteWAV_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "buzz.wav")
	rng := rand.New(rand.NewSource(0))

	require.NoError(t, WriteWAV(path, ShortBuzz(180, rng)))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	require.True(t, dec.IsValidFile())

	dec.ReadInfo()
	require.EqualValues(t, 1, dec.NumChans)
	require.EqualValues(t, SampleRate, dec.SampleRate)
	require.EqualValues(t, 16, dec.BitDepth)

	d, err := dec.Duration()
	require.NoError(t, err)
	expected := time.Duration((buzzSeconds + tailSeconds) * float64(time.Second))
	require.InDelta(t, float64(expected), float64(d), float64(20*time.Millisecond))
}

// TestScripts_CoverAllSlots verifies the narration table matches the
// eight mural slots with distinct buzz frequencies.
func TestScripts_CoverAllSlots(t *testing.T) {
	require.Len(t, Scripts, 8)

	keys := map[string]bool{}
	freqs := map[float64]bool{}
	for _, s := range Scripts {
		require.NotEmpty(t, s.Label)
		require.NotEmpty(t, s.Narration)
		require.Positive(t, s.BuzzHz)
		require.False(t, keys[s.Key], "duplicate key %s", s.Key)
		require.False(t, freqs[s.BuzzHz], "duplicate frequency %v", s.BuzzHz)
		keys[s.Key] = true
		freqs[s.BuzzHz] = true
	}
	require.True(t, keys["bee1"])
	require.True(t, keys["bee8"])
}
