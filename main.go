package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/davecgh/go-spew/spew"
	"github.com/dnldd/limaclock/service"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// handleTermination processes context cancellation signals or interrupt signals from the OS.
func handleTermination(ctx context.Context, cancel context.CancelFunc) {
	// Listen for interrupt signals.
	signals := []os.Signal{os.Interrupt}
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, signals...)

	// Wait for the context to be cancelled or an interrupt signal.
	for {
		select {
		case <-ctx.Done():
			return

		case <-interrupt:
			cancel()
		}
	}
}

func main() {
	var cfg Config
	err := loadConfig(&cfg, "")
	if err != nil {
		log.Error().Msgf("loading config: %v", err)
		return
	}

	level, _ := zerolog.ParseLevel(cfg.LogLevel)
	zerolog.SetGlobalLevel(level)
	log.Debug().Msgf("loaded config: %s", spew.Sdump(cfg))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	clockCfg := service.ClockConfig{
		Timezone: cfg.Timezone,
		Interval: cfg.Interval,
		Once:     cfg.Once,
		Output:   os.Stdout,
		Cancel:   cancel,
	}
	clk, err := service.NewClock(&clockCfg)
	if err != nil {
		log.Error().Msgf("creating clock service: %v", err)
		return
	}

	go handleTermination(ctx, cancel)
	clk.Run(ctx)
}
