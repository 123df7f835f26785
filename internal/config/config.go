// Package config reads ShapeBoard settings from the environment and the
// command line.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"ShapeBoard/internal/state"
)

// Environment variables consulted before flags.
const (
	EnvTool     = "SHAPEBOARD_TOOL"
	EnvLogLevel = "SHAPEBOARD_LOG_LEVEL"
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	Width    float32
	Height   float32
	Tool     state.Tool
	LogLevel slog.Level
}

func Default() Config {
	return Config{
		Width:    1024,
		Height:   768,
		Tool:     state.DefaultTool,
		LogLevel: slog.LevelInfo,
	}
}

// Load builds a Config from defaults, then getenv, then args (without the
// program name). Flags take precedence over the environment.
func Load(args []string, getenv func(string) string, stderr io.Writer) (Config, error) {
	cfg := Default()
	if getenv == nil {
		getenv = os.Getenv
	}

	toolName := cfg.Tool.String()
	if v := getenv(EnvTool); v != "" {
		toolName = v
	}
	levelName := cfg.LogLevel.String()
	if v := getenv(EnvLogLevel); v != "" {
		levelName = v
	}

	fs := flag.NewFlagSet("shapeboard", flag.ContinueOnError)
	fs.SetOutput(stderr)
	width := fs.Float64("width", float64(cfg.Width), "window width")
	height := fs.Float64("height", float64(cfg.Height), "window height")
	fs.StringVar(&toolName, "tool", toolName, "tool active at startup")
	fs.StringVar(&levelName, "log-level", levelName, "debug, info, warn or error")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	if *width <= 0 || *height <= 0 {
		return cfg, fmt.Errorf("%w: window size %gx%g", ErrInvalid, *width, *height)
	}
	cfg.Width, cfg.Height = float32(*width), float32(*height)

	tool, err := state.ParseTool(toolName)
	if err != nil {
		return cfg, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	cfg.Tool = tool

	if err := cfg.LogLevel.UnmarshalText([]byte(strings.TrimSpace(levelName))); err != nil {
		return cfg, fmt.Errorf("%w: log level: %w", ErrInvalid, err)
	}
	return cfg, nil
}
