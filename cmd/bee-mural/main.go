package main

import (
	"log"

	"github.com/rs/zerolog"

	"bee-mural/internal/app"
	"bee-mural/internal/config"
	"bee-mural/internal/logger"
	"bee-mural/internal/shutdown"
)

func main() {
	// Bootstrap logging before the config is known; the real logger is
	// rebuilt below once the log settings have been read.
	bootLog := logger.NewConsoleLogger(zerolog.InfoLevel)

	cfg, err := config.Load(bootLog)
	if err != nil {
		log.Fatalf("configuration failed: %v", err)
	}

	appLog := buildLogger(cfg)
	application := app.NewApplication(cfg, appLog)

	manager := shutdown.NewManager(appLog)
	manager.Register("lifecycle", application.Lifecycle())
	manager.Listen(application.Quit)

	application.Run()

	// Window closed normally; run the same teardown the signal path uses.
	manager.Shutdown()
}

func buildLogger(cfg config.Config) logger.Logger {
	level := zerolog.InfoLevel
	if cfg.Debug {
		level = zerolog.DebugLevel
	}
	if cfg.JSONLogs {
		return logger.NewJSONLogger(level)
	}
	return logger.NewConsoleLogger(level)
}
