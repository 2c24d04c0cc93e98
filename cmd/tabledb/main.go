package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/leengari/tabledb/internal/config"
	"github.com/leengari/tabledb/internal/engine"
	"github.com/leengari/tabledb/internal/executor"
	"github.com/leengari/tabledb/internal/logging"
	"github.com/leengari/tabledb/internal/repl"
	storageengine "github.com/leengari/tabledb/internal/storage/engine"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load(os.Args[1:], os.Getenv, stdinIsTerminal())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	level, _ := cfg.Level()
	logger, closeFn := logging.SetupLogger(logging.Options{Level: level, SeqURL: cfg.SeqURL})
	defer closeFn()
	slog.SetDefault(logger)

	store, err := storageengine.NewOSEngine(cfg.DataDir, cfg.Extension)
	if err != nil {
		slog.Error("failed to open data directory", "error", err)
		return 1
	}

	eng, err := engine.Open(store, executor.Options{StrictSchema: cfg.StrictSchema})
	if err != nil {
		slog.Error("failed to load tables", "error", err)
		return 1
	}
	eng.AddObserver(engine.NewLoggingObserver(logger))

	slog.Info("TableDB ready",
		"data_dir", cfg.DataDir,
		"tables", eng.Registry().Len(),
		"extension", cfg.Extension,
		"strict_schema", cfg.StrictSchema,
	)

	if err := repl.Run(os.Stdin, os.Stdout, eng, repl.Options{Prompt: cfg.Prompt}); err != nil {
		slog.Error("read loop failed", "error", err)
		return 1
	}
	return 0
}

// stdinIsTerminal reports whether stdin is an interactive character device.
func stdinIsTerminal() bool {
	fi, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
