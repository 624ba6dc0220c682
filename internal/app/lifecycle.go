package app

import (
	"bee-mural/internal/audio"
	"bee-mural/internal/controllers"
	"bee-mural/internal/logger"
)

// Lifecycle tears the application down in reverse dependency order:
// the controller first (cancels timers and flashing), then the audio
// player (kills any playback process).
type Lifecycle struct {
	controller *controllers.MuralController
	player     *audio.Player
	log        logger.Logger
	isShutdown bool
}

func NewLifecycle(controller *controllers.MuralController, player *audio.Player, log logger.Logger) *Lifecycle {
	return &Lifecycle{
		controller: controller,
		player:     player,
		log:        log,
	}
}

func (l *Lifecycle) Shutdown() {
	if l.isShutdown {
		return
	}
	l.isShutdown = true

	l.log.Info("Lifecycle", "shutdown sequence initiated", nil)

	if l.controller != nil {
		l.controller.Shutdown()
		l.log.Debug("Lifecycle", "controller shutdown completed", nil)
	}

	if l.player != nil {
		l.player.Shutdown()
		l.log.Debug("Lifecycle", "audio player shutdown completed", nil)
	}

	l.log.Info("Lifecycle", "shutdown sequence completed", nil)
}
