package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"pointview/internal/config"
	"pointview/internal/source"
	"pointview/internal/tui"
)

func main() {
	cfgPath := flag.String("config", "pointview.toml", "TOML config file")
	src := flag.String("source", "", "backend base URL or local directory (overrides config)")
	shape := flag.String("shape", "", "shape to load at startup (overrides config)")
	logFile := flag.String("log", "", "log file (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatal(err)
	}
	if *src != "" {
		cfg.Source = *src
	}
	if *shape != "" {
		cfg.DefaultShape = *shape
	}
	if *logFile != "" {
		cfg.LogFile = *logFile
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "invalid config:", err)
		os.Exit(2)
	}

	logger, closeLog, err := setupLogging(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer closeLog()

	m := tui.New(context.Background(), cfg, source.Open(cfg.Source), logger)
	final, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run()
	if fm, ok := final.(tui.Model); ok {
		fm.Close()
	}
	if err != nil {
		logger.Error("program exited", "err", err)
		log.Fatal(err)
	}
}

// setupLogging sends logs to a file so they do not draw over the
// alternate screen. Without a log file, logs are discarded.
func setupLogging(cfg config.Config) (*slog.Logger, func(), error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	if cfg.LogFile == "" {
		h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: level})
		return slog.New(h), func() {}, nil
	}
	f, err := tea.LogToFile(cfg.LogFile, "pointview")
	if err != nil {
		return nil, nil, err
	}
	h := slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})
	return slog.New(h), func() { f.Close() }, nil
}
