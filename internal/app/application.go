// Package app assembles the application: configuration, logging, asset
// catalog, audio player, view and controller, wired together the MVC
// way and torn down in reverse order.
package app

import (
	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"

	"bee-mural/internal/assets"
	"bee-mural/internal/audio"
	"bee-mural/internal/config"
	"bee-mural/internal/controllers"
	"bee-mural/internal/logger"
	"bee-mural/internal/views"
)

const (
	AppName    = "Bee Mural"
	AppID      = "org.beemural.app"
	AppVersion = "1.0.0"
)

type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	cfg        config.Config
	log        logger.Logger
	catalog    *assets.Catalog
	player     *audio.Player
	view       *views.MainView
	controller *controllers.MuralController
	lifecycle  *Lifecycle
}

func NewApplication(cfg config.Config, log logger.Logger) *Application {
	fyneApp := fyneapp.NewWithID(AppID)
	window := fyneApp.NewWindow(AppName)
	window.SetFixedSize(true)
	window.CenterOnScreen()
	window.SetMaster()

	log.Info("Application", "starting", map[string]interface{}{
		"version":    AppVersion,
		"sounds_dir": cfg.SoundsDir,
		"images_dir": cfg.ImagesDir,
	})

	catalog := assets.NewCatalog(cfg.ImagesDir, cfg.SoundsDir, log)
	player := audio.NewPlayer(log, cfg.InterruptAudio)
	if !player.Available() {
		log.Warning("Application", "audio playback unavailable", nil)
	}

	view := views.NewMainView(window, catalog.Slots())
	controller := controllers.NewMuralController(
		cfg, log, catalog, player, view, controllers.NewFyneScheduler())

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		cfg:        cfg,
		log:        log,
		catalog:    catalog,
		player:     player,
		view:       view,
		controller: controller,
		lifecycle:  NewLifecycle(controller, player, log),
	}

	application.connectHandlers()
	controller.Initialize()

	log.Info("Application", "initialization complete", nil)
	return application
}

func (a *Application) connectHandlers() {
	a.view.SetSlotPressedHandler(a.controller.OnSlotPressed)
	a.view.SetSlotReleasedHandler(a.controller.OnSlotReleased)
	a.view.SetQuizPressedHandler(a.controller.OnQuizPressed)
	a.view.SetQuizReleasedHandler(a.controller.OnQuizReleased)
	a.view.SetAbortHandler(a.controller.OnAbort)
}

// Lifecycle exposes the teardown sequence so the signal handler can
// share it with the close intercept.
func (a *Application) Lifecycle() *Lifecycle {
	return a.lifecycle
}

// Quit closes the window from outside the UI loop.
func (a *Application) Quit() {
	fyne.Do(func() {
		a.window.Close()
	})
}

func (a *Application) Run() {
	a.window.SetCloseIntercept(func() {
		a.log.Info("Application", "shutdown requested", nil)
		a.lifecycle.Shutdown()
		a.window.Close()
	})

	a.window.Show()
	a.log.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()
}
