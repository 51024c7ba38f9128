// Command pong-soak drives the game headless with random key input and
// reports tick timings and any paddle that escaped the arena.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/pkg/profile"
	"github.com/plus3/pong/pong"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "How long to run for.")
	maxTicks := flag.Int64("ticks", 0, "Stop after this many ticks (0 for no limit).")
	seed := flag.Int64("seed", 1, "Seed for the random key script.")
	maxEvents := flag.Int("events", 3, "Most key events per tick.")
	keyUp := flag.String("keyup", "strict", "Key-up policy: strict or legacy.")
	cpuProfile := flag.Bool("cpuprofile", false, "Write a CPU profile to the working directory.")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	policy, err := pong.ParseKeyUpPolicy(*keyUp)
	if err != nil {
		logger.Error("invalid flag", "err", err)
		os.Exit(1)
	}

	cfg := pong.DefaultConfig()
	cfg.KeyUpPolicy = policy
	sc := soakConfig{
		Duration:  *duration,
		MaxTicks:  *maxTicks,
		Seed:      *seed,
		MaxEvents: *maxEvents,
		Game:      cfg,
	}
	if err := sc.validate(); err != nil {
		logger.Error("invalid flag", "err", err)
		os.Exit(1)
	}

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	}

	logger.Warn("soak starting", "duration", *duration, "seed", *seed)
	report := soak(sc, logger)

	fmt.Println("--- Soak Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		logger.Error("report failed", "err", err)
		os.Exit(1)
	}
	fmt.Println("--- End of Report ---")

	if report.Violations > 0 {
		os.Exit(1)
	}
}
