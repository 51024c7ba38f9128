// Command pong runs the two-paddle demo in a window or a terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/ebitengine/hideconsole"
	"github.com/pkg/profile"
	"github.com/plus3/pong/backend/terminal"
	"github.com/plus3/pong/backend/window"
	"github.com/plus3/pong/pong"
)

type options struct {
	backend       string
	legacyKeyUp   bool
	debug         bool
	logLevel      string
	logFile       string
	profile       string
	releaseWindow time.Duration
}

func main() {
	var opts options
	flag.StringVar(&opts.backend, "backend", "window", "Display backend: window or terminal.")
	flag.BoolVar(&opts.legacyKeyUp, "legacy-keyup", false, "Any key release stops both paddles.")
	flag.BoolVar(&opts.debug, "debug", false, "Enable the ImGui debug overlay (F1, window backend only).")
	flag.StringVar(&opts.logLevel, "log-level", "info", "Log level: debug, info, warn or error.")
	flag.StringVar(&opts.logFile, "log-file", "", "Write logs to this file instead of stderr.")
	flag.StringVar(&opts.profile, "profile", "", "Write a cpu or mem profile to the working directory.")
	flag.DurationVar(&opts.releaseWindow, "release-window", terminal.DefaultReleaseWindow, "Terminal backend: silence after which a held key counts as released.")
	flag.Parse()

	logger, closeLog, err := newLogger(opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	err = run(opts, logger)
	if err != nil {
		logger.Error("pong failed", "err", err)
		if opts.backend == "terminal" && opts.logFile == "" {
			fmt.Fprintln(os.Stderr, "pong:", err)
		}
	}
	closeLog()
	if err != nil {
		os.Exit(1)
	}
}

func run(opts options, logger *slog.Logger) error {
	cfg := pong.DefaultConfig()
	if opts.legacyKeyUp {
		cfg.KeyUpPolicy = pong.KeyUpLegacy
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	switch opts.profile {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	default:
		return fmt.Errorf("unknown profile mode %q", opts.profile)
	}

	switch opts.backend {
	case "window":
		return window.Run(cfg, window.Options{Debug: opts.debug, ToggleKey: pong.KeyF1}, logger)
	case "terminal":
		if opts.debug {
			logger.Warn("debug overlay needs the window backend; ignoring -debug")
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return terminal.Run(ctx, cfg, terminal.Options{ReleaseWindow: opts.releaseWindow}, logger)
	default:
		return fmt.Errorf("unknown backend %q", opts.backend)
	}
}

// newLogger builds the process logger. The terminal backend owns the screen,
// so without -log-file its logs are dropped.
func newLogger(opts options) (*slog.Logger, func(), error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(opts.logLevel)); err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}

	var out io.Writer = os.Stderr
	closeLog := func() {}
	switch {
	case opts.logFile != "":
		f, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closeLog = func() { f.Close() }
	case opts.backend == "terminal":
		out = io.Discard
	}

	handler := slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})
	return slog.New(handler), closeLog, nil
}
