// Package sounds generates the mural's WAV assets: synthesized buzzes
// for the short slot sounds and text-to-speech narrations for the rest.
package sounds

import (
	"fmt"
	"math"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// SampleRate of all generated audio.
const SampleRate = 44100

const (
	buzzAmplitude = 0.35
	buzzNoise     = 0.08
	buzzSeconds   = 0.35
	tailSeconds   = 0.05
	fadeSeconds   = 0.02
)

func clamp(x float64) float64 {
	if x < -1 {
		return -1
	}
	if x > 1 {
		return 1
	}
	return x
}

// envelope fades the signal in and out so clips do not click.
func envelope(t, total float64) float64 {
	if t < fadeSeconds {
		return t / fadeSeconds
	}
	if t > total-fadeSeconds {
		return math.Max(0, (total-t)/fadeSeconds)
	}
	return 1
}

// Buzz synthesizes a bee-like tone: the fundamental with the second and
// third harmonic layered in, plus a little noise for texture.
func Buzz(freqHz, seconds float64, rng *rand.Rand) []float64 {
	n := int(SampleRate * seconds)
	out := make([]float64, n)
	for i := range out {
		t := float64(i) / SampleRate
		s := math.Sin(2*math.Pi*freqHz*t) +
			0.35*math.Sin(2*math.Pi*freqHz*2*t) +
			0.20*math.Sin(2*math.Pi*freqHz*3*t)
		s += (rng.Float64()*2 - 1) * buzzNoise
		out[i] = clamp(s * buzzAmplitude * envelope(t, seconds))
	}
	return out
}

// Silence returns a stretch of quiet samples.
func Silence(seconds float64) []float64 {
	return make([]float64, int(SampleRate*seconds))
}

// ShortBuzz is the standard slot sound: a brief buzz with a quiet tail.
func ShortBuzz(freqHz float64, rng *rand.Rand) []float64 {
	return append(Buzz(freqHz, buzzSeconds, rng), Silence(tailSeconds)...)
}

// WriteWAV writes samples (in the -1..1 range) as 16-bit mono PCM,
// creating parent directories as needed.
func WriteWAV(path string, samples []float64) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create sounds dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create wav: %w", err)
	}
	defer f.Close()

	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(clamp(s) * 32767)
	}

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: SampleRate},
		Data:           data,
		SourceBitDepth: 16,
	}

	enc := wav.NewEncoder(f, SampleRate, 16, 1, 1)
	if err := enc.Write(buf); err != nil {
		enc.Close()
		return fmt.Errorf("encode wav %s: %w", path, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalize wav %s: %w", path, err)
	}
	return nil
}
