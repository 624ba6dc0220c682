// Package audio plays WAV clips through the platform's command-line
// player. One clip plays at a time; starting a new clip or calling Stop
// terminates the player process, and a stopped playback never reports
// completion.
package audio

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"sync"

	"bee-mural/internal/logger"
)

// Player runs one playback process at a time. The generation token
// invalidates completion callbacks from playbacks that were stopped or
// superseded.
type Player struct {
	mu        sync.Mutex
	log       logger.Logger
	interrupt bool
	command   []string
	token     int
	cancel    context.CancelFunc
	warned    bool
}

// NewPlayer resolves the platform player command. When interrupt is set,
// Play stops whatever is currently playing first.
func NewPlayer(log logger.Logger, interrupt bool) *Player {
	return &Player{
		log:       log,
		interrupt: interrupt,
		command:   lookupCommand(),
	}
}

// lookupCommand picks the first available playback command for this OS.
func lookupCommand() []string {
	switch runtime.GOOS {
	case "darwin":
		if _, err := exec.LookPath("afplay"); err == nil {
			return []string{"afplay"}
		}
	case "windows":
		if _, err := exec.LookPath("powershell"); err == nil {
			return []string{"powershell", "-NoProfile", "-Command", ""}
		}
	default:
		if _, err := exec.LookPath("aplay"); err == nil {
			return []string{"aplay", "-q"}
		}
		if _, err := exec.LookPath("paplay"); err == nil {
			return []string{"paplay"}
		}
	}
	return nil
}

// Play starts playing path in the background. onDone fires exactly once,
// after playback ran to completion without being stopped or superseded.
// A missing file is an error and spawns nothing.
func (p *Player) Play(path string, onDone func()) error {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return fmt.Errorf("audio file unavailable: %s", path)
	}

	if p.interrupt {
		p.Stop()
	}

	p.mu.Lock()
	p.token++
	token := p.token

	if p.command == nil {
		if !p.warned {
			p.warned = true
			p.log.Warning("Audio", "no playback command found, audio disabled", map[string]interface{}{
				"os": runtime.GOOS,
			})
		}
		p.mu.Unlock()
		// Playback degrades to a no-op but the interaction still
		// completes, otherwise the UI would stay locked.
		if onDone != nil {
			go onDone()
		}
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	argv := p.commandFor(path)
	p.mu.Unlock()

	go p.run(ctx, argv, path, token, onDone)
	return nil
}

func (p *Player) run(ctx context.Context, argv []string, path string, token int, onDone func()) {
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	if err := cmd.Run(); err != nil && ctx.Err() == nil {
		p.log.Warning("Audio", "playback command failed", map[string]interface{}{
			"path":  path,
			"error": err.Error(),
		})
	}

	p.mu.Lock()
	current := token == p.token && ctx.Err() == nil
	if current {
		p.cancel = nil
	}
	p.mu.Unlock()

	if current && onDone != nil {
		onDone()
	}
}

// commandFor builds the argv for playing path.
func (p *Player) commandFor(path string) []string {
	if runtime.GOOS == "windows" {
		script := fmt.Sprintf("(New-Object Media.SoundPlayer %q).PlaySync()", path)
		argv := make([]string, len(p.command))
		copy(argv, p.command)
		argv[len(argv)-1] = script
		return argv
	}
	return append(append([]string{}, p.command...), path)
}

// Stop terminates the current playback, if any. Its completion callback
// will not fire. Safe to call at any time, including with nothing playing.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.token++
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
}

// Available reports whether a playback command was found.
func (p *Player) Available() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.command != nil
}

// Shutdown stops playback; part of the application shutdown sequence.
func (p *Player) Shutdown() {
	p.Stop()
}
