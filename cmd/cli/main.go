package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/minaorangina/gofish/config"
	"github.com/minaorangina/gofish/display"
	"github.com/minaorangina/gofish/engine"
	"github.com/pterm/pterm"
)

func main() {
	logger := slog.New(pterm.NewSlogHandler(&pterm.DefaultLogger))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("could not load config", "err", err)
		os.Exit(1)
	}

	names := os.Args[1:]
	if len(names) == 0 {
		names = []string{"Harry", "Sally"}
	}

	narrator := display.NewNarrator(os.Stdout, names)
	opts := cfg.MatchOpts()
	opts.Logger = logger
	opts.OnEvent = narrator.Event

	match, err := engine.NewMatch(names, opts)
	if err != nil {
		logger.Error("could not start a match", "err", err)
		os.Exit(1)
	}

	if err := match.Run(cfg.MaxTicks); err != nil {
		logger.Error("match stopped early", "err", err)
		if !errors.Is(err, engine.ErrTickLimit) {
			os.Exit(1)
		}
	}

	summary := match.Summary()
	pterm.Info.Printfln("Match %s (seed %d) took %d turns", summary.MatchID, summary.Seed, summary.Ticks)
	if err := display.Scoreboard(os.Stdout, summary.Standings); err != nil {
		logger.Error("could not print scoreboard", "err", err)
		os.Exit(1)
	}
}
