package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ichscheine/goAIME-sub001/internal/infrastructure/config"
	"github.com/ichscheine/goAIME-sub001/internal/sessiontimer"
	"github.com/ichscheine/goAIME-sub001/internal/tui"
)

func main() {
	os.Exit(run())
}

func run() int {
	mode := flag.String("mode", "countdown", "timer mode: countdown or stopwatch")
	duration := flag.Duration("duration", 75*time.Minute, "countdown length")
	presetName := flag.String("preset", "", "named preset, e.g. amc10 or aime (overrides -mode and -duration)")
	presetsFile := flag.String("presets", "", "TOML presets file (optional)")
	flag.Parse()

	t, title, err := buildTimer(*mode, *duration, *presetName, *presetsFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "quiztimer: %v\n", err)
		return 2
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := tui.Run(ctx, tui.Options{Timer: t, Title: title}); err != nil {
		fmt.Fprintf(os.Stderr, "quiztimer: %v\n", err)
		return 1
	}
	return 0
}

func buildTimer(modeName string, duration time.Duration, presetName, presetsFile string) (*sessiontimer.Timer, string, error) {
	if presetName != "" {
		presets, err := config.LoadPresets(presetsFile)
		if err != nil {
			return nil, "", err
		}
		p, ok := presets.Lookup(presetName)
		if !ok {
			return nil, "", fmt.Errorf("unknown preset %q (have %v)", presetName, presets.Names())
		}
		return sessiontimer.New(p.Mode, p.Duration), p.Name, nil
	}

	m, ok := sessiontimer.ParseMode(modeName)
	if !ok {
		return nil, "", fmt.Errorf("unknown mode %q", modeName)
	}
	if m == sessiontimer.Countdown && duration <= 0 {
		return nil, "", fmt.Errorf("countdown needs a positive -duration")
	}
	return sessiontimer.New(m, duration), string(m), nil
}
