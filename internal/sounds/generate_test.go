package sounds

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"bee-mural/internal/logger"
)

// TestGenerator_BuzzOnlyWritesAllSlots verifies buzz-only generation
// produces one sound file per slot and no TTS output.
func TestGenerator_BuzzOnlyWritesAllSlots(t *testing.T) {
	dir := t.TempDir()
	gen := NewGenerator(dir, false, true, logger.Nop())

	require.NoError(t, gen.Run())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, len(Scripts))

	for _, s := range Scripts {
		info, err := os.Stat(filepath.Join(dir, s.Key+"_sound.wav"))
		require.NoError(t, err)
		require.Positive(t, info.Size())
	}
}

// TestGenerator_SkipsExistingUnlessForced verifies existing files are
// left alone by default and rewritten with Force.
func TestGenerator_SkipsExistingUnlessForced(t *testing.T) {
	dir := t.TempDir()
	marker := filepath.Join(dir, "bee1_sound.wav")
	require.NoError(t, os.WriteFile(marker, []byte("keep me"), 0o644))

	gen := NewGenerator(dir, false, true, logger.Nop())
	require.NoError(t, gen.Run())

	kept, err := os.ReadFile(marker)
	require.NoError(t, err)
	require.Equal(t, "keep me", string(kept))

	forced := NewGenerator(dir, true, true, logger.Nop())
	require.NoError(t, forced.Run())

	info, err := os.Stat(marker)
	require.NoError(t, err)
	require.Greater(t, info.Size(), int64(len("keep me")), "forced run rewrites the file")
}
