package main

import (
	"os"
	"strings"
	"time"

	"github.com/aBirrueta/Tick/countdown"
	"github.com/aBirrueta/Tick/internal/config"
	"github.com/aBirrueta/Tick/internal/storage"
	"github.com/rs/zerolog"
)

const debugEnvVar = "TICK_DEBUG"

// openEngine loads configuration and starts an engine backed by the
// configured data directory.
func openEngine() (*countdown.Engine, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	dir, err := cfg.DataDir()
	if err != nil {
		return nil, err
	}

	logger := newLogger()
	return countdown.New(storage.NewFileStore(dir), countdown.Options{
		TickInterval: cfg.TickInterval(),
		Logger:       &logger,
		SkipSeed:     !cfg.SeedEnabled(),
	})
}

func newLogger() zerolog.Logger {
	level := zerolog.WarnLevel
	if strings.EqualFold(os.Getenv(debugEnvVar), "true") || os.Getenv(debugEnvVar) == "1" {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

// resolveCountdownIDs expands each ID prefix argument to a full ID.
func resolveCountdownIDs(engine *countdown.Engine, args []string) ([]string, error) {
	resolved := make([]string, 0, len(args))
	for _, arg := range args {
		id, err := engine.Resolve(arg)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, id)
	}
	return resolved, nil
}
