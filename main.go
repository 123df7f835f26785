package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"ShapeBoard/internal/config"
	"ShapeBoard/internal/state"
	"ShapeBoard/internal/ui"
)

func main() {
	cfg, err := config.Load(os.Args[1:], os.Getenv, os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		slog.Error("bad configuration", slog.Any("err", err))
		os.Exit(2)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)
	state.SetLogger(logger)

	logger.Info("starting ShapeBoard", slog.String("tool", cfg.Tool.String()))
	ui.RunApp(cfg)
}
