// make-sounds regenerates the mural's WAV assets: a synthesized buzz
// per bee slot plus text-to-speech narrations and quiz clips.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"bee-mural/internal/logger"
	"bee-mural/internal/sounds"
)

func main() {
	var (
		outDir   string
		force    bool
		buzzOnly bool
		verbose  bool
	)

	root := &cobra.Command{
		Use:   "make-sounds",
		Short: "Regenerate the bee mural sound assets",
		Long: "Generates beeN_sound.wav buzzes for all eight slots and, unless\n" +
			"--buzz-only is given, speech narrations and quiz clips through the\n" +
			"platform TTS engine (say on macOS, espeak on Linux, System.Speech\n" +
			"on Windows).",
		RunE: func(cmd *cobra.Command, args []string) error {
			level := zerolog.InfoLevel
			if verbose {
				level = zerolog.DebugLevel
			}
			log := logger.NewConsoleLogger(level)

			if outDir == "" {
				exe, err := os.Executable()
				if err != nil {
					return fmt.Errorf("resolve output dir: %w", err)
				}
				outDir = filepath.Join(filepath.Dir(exe), "sounds")
			}

			gen := sounds.NewGenerator(outDir, force, buzzOnly, log)
			if err := gen.Run(); err != nil {
				return err
			}

			fmt.Printf("OK: sound assets generated in %s\n", outDir)
			return nil
		},
	}

	root.Flags().StringVar(&outDir, "out", "", "output directory (default: sounds/ beside the binary)")
	root.Flags().BoolVar(&force, "force", false, "overwrite existing files")
	root.Flags().BoolVar(&buzzOnly, "buzz-only", false, "generate only the synthesized buzzes, skip TTS")
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
