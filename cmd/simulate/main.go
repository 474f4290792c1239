// cmd/simulate/main.go
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"runtime"

	"golang.org/x/sync/errgroup"

	"elemental-defense/internal/app"
	"elemental-defense/internal/config"
)

func main() {
	runs := flag.Int("runs", 8, "number of seeded games")
	seed := flag.Int64("seed", 1, "seed of the first game; game i uses seed+i")
	maxTime := flag.Float64("time", 600, "game seconds per run")
	workers := flag.Int("workers", runtime.NumCPU(), "games simulated at once")
	flag.Parse()

	settings, err := config.Load(config.PathFromEnv())
	if err != nil {
		slog.Error("failed to load settings", "err", err)
		os.Exit(1)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: settings.SlogLevel()})))

	settings.Seed = *seed
	lvl, base, err := app.Bootstrap(settings)
	if err != nil {
		slog.Error("failed to start", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results := make([]app.Result, *runs)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(*workers)
	for i := range results {
		g.Go(func() error {
			opts := base
			opts.Seed = base.Seed + int64(i)
			res, err := app.Simulate(ctx, app.NewGame(lvl, opts), opts.Seed, *maxTime)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		slog.Error("simulation interrupted", "err", err)
		os.Exit(1)
	}

	waves, kills := 0, 0
	for _, r := range results {
		slog.Info("run finished",
			"seed", r.Seed, "waves", r.Waves, "kills", r.Kills, "leaks", r.Leaks,
			"towers", r.Towers, "shots", r.Shots, "time", r.GameTime, "over", r.Over)
		waves += r.Waves
		kills += r.Kills
	}
	slog.Info("summary", "runs", len(results), "avg_waves", float64(waves)/float64(len(results)), "avg_kills", float64(kills)/float64(len(results)))
}
