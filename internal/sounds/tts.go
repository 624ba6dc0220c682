package sounds

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Speak renders text to a WAV file with whatever speech engine the
// platform provides: `say` plus `afconvert` on macOS, espeak on Linux,
// the System.Speech synthesizer on Windows.
func Speak(text, outPath string) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	switch runtime.GOOS {
	case "darwin":
		return speakDarwin(text, outPath)
	case "windows":
		return speakWindows(text, outPath)
	default:
		return speakLinux(text, outPath)
	}
}

func speakDarwin(text, outPath string) error {
	tmp, err := os.MkdirTemp("", "bee-mural-tts-*")
	if err != nil {
		return err
	}
	defer os.RemoveAll(tmp)

	aiff := filepath.Join(tmp, "tts.aiff")
	if err := runCommand("say", "-o", aiff, text); err != nil {
		return fmt.Errorf("say: %w", err)
	}
	if err := runCommand("afconvert", "-f", "WAVE", "-d", "LEI16", aiff, outPath); err != nil {
		return fmt.Errorf("afconvert: %w", err)
	}
	return nil
}

func speakLinux(text, outPath string) error {
	engine, err := exec.LookPath("espeak")
	if err != nil {
		engine, err = exec.LookPath("espeak-ng")
	}
	if err != nil {
		return fmt.Errorf("no TTS engine found, install espeak or espeak-ng")
	}

	if err := runCommand(engine, "-w", outPath, text); err != nil {
		return fmt.Errorf("%s: %w", filepath.Base(engine), err)
	}
	return nil
}

func speakWindows(text, outPath string) error {
	script := fmt.Sprintf(`
Add-Type -AssemblyName System.Speech
$s = New-Object System.Speech.Synthesis.SpeechSynthesizer
$s.SetOutputToWaveFile(%q)
$s.Speak(%q)
$s.Dispose()
`, outPath, text)

	if err := runCommand("powershell", "-NoProfile", "-ExecutionPolicy", "Bypass", "-Command", script); err != nil {
		return fmt.Errorf("powershell speech: %w", err)
	}
	return nil
}

func runCommand(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdout = nil
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
