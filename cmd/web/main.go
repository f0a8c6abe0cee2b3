package main

import (
	"log/slog"
	"os"

	"github.com/minaorangina/gofish/config"
	"github.com/minaorangina/gofish/server"
	"github.com/minaorangina/gofish/store"
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

	s := server.NewServer(store.NewInMemoryMatchStore(), cfg, logger)
	logger.Info("listening", "addr", s.Addr)
	if err := s.ListenAndServe(); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
