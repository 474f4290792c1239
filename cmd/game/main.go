// cmd/game/main.go
package main

import (
	"log/slog"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"elemental-defense/internal/app"
	"elemental-defense/internal/config"
	"elemental-defense/internal/state"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	settings, err := config.Load(config.PathFromEnv())
	if err != nil {
		slog.Error("failed to load settings", "err", err)
		os.Exit(1)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: settings.SlogLevel()})))

	if settings.PprofAddr != "" {
		go func() {
			slog.Info("pprof listening", "addr", settings.PprofAddr)
			if err := http.ListenAndServe(settings.PprofAddr, nil); err != nil {
				slog.Warn("pprof stopped", "err", err)
			}
		}()
	}

	lvl, opts, err := app.Bootstrap(settings)
	if err != nil {
		slog.Error("failed to start", "err", err)
		os.Exit(1)
	}

	sm := state.NewStateMachine()
	sm.SetState(state.NewPlayState(sm, app.NewGame(lvl, opts), settings.StartingHealth))
	a := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetTPS(settings.TicksPerSecond)
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Elemental Defense")
	if err := ebiten.RunGame(a); err != nil {
		slog.Error("game exited", "err", err)
		os.Exit(1)
	}
}
