package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/dnldd/limaclock/clock"
	"github.com/dnldd/limaclock/report"
	"github.com/go-co-op/gocron"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
)

// ClockConfig represents the configuration struct for the clock service.
type ClockConfig struct {
	// Timezone is the named timezone readings are anchored to.
	Timezone string
	// Interval is the time between periodic reports.
	Interval time.Duration
	// Once prints a single report to Output and stops the service.
	Once bool
	// Output receives the single report when Once is set.
	Output io.Writer
	// Now is the clock source, defaults to the system clock.
	Now func() time.Time
	// Cancel is the context cancellation function.
	Cancel context.CancelFunc
}

// Validate asserts the config sane inputs.
func (cfg *ClockConfig) Validate() error {
	var errs error

	if cfg.Timezone == "" {
		errs = errors.Join(errs, fmt.Errorf("timezone cannot be an empty string"))
	}
	if cfg.Cancel == nil {
		errs = errors.Join(errs, fmt.Errorf("context cancellation function cannot be nil"))
	}
	switch cfg.Once {
	case true:
		if cfg.Output == nil {
			errs = errors.Join(errs, fmt.Errorf("output cannot be nil for a single report"))
		}
	case false:
		if cfg.Interval <= 0 {
			errs = errors.Join(errs, fmt.Errorf("report interval must be positive, got %v", cfg.Interval))
		}
	}

	return errs
}

// Clock represents a lima time reporting service.
type Clock struct {
	cfg      *ClockConfig
	provider *clock.Provider
	reporter *report.Reporter
	logger   *zerolog.Logger
	wg       sync.WaitGroup
}

// NewClock initializes a new clock service.
func NewClock(cfg *ClockConfig) (*Clock, error) {
	err := cfg.Validate()
	if err != nil {
		return nil, fmt.Errorf("validating clock config: %w", err)
	}

	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	logger := log.With().Str("service", "clock").Logger()

	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	provider, err := clock.NewProvider(&clock.ProviderConfig{
		Timezone: cfg.Timezone,
		Now:      now,
	})
	if err != nil {
		return nil, fmt.Errorf("creating time provider: %w", err)
	}

	interval := cfg.Interval
	if cfg.Once {
		// The scheduler is never started for a single report.
		interval = time.Minute
	}

	reporterLogger := logger.With().Str("component", "reporter").Logger()
	reporter, err := report.NewReporter(&report.ReporterConfig{
		Source:       provider,
		Interval:     interval,
		JobScheduler: gocron.NewScheduler(provider.Location()),
		Logger:       &reporterLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("creating reporter: %w", err)
	}

	return &Clock{
		cfg:      cfg,
		provider: provider,
		reporter: reporter,
		logger:   &logger,
	}, nil
}

// Provider returns the time provider backing the service.
func (c *Clock) Provider() *clock.Provider {
	return c.provider
}

// writeReport encodes a single report to the configured output.
func (c *Clock) writeReport() error {
	rep := c.reporter.Snapshot()

	b, err := json.Marshal(rep)
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}

	_, err = c.cfg.Output.Write(append(b, '\n'))
	if err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	return nil
}

// Run handles the lifecycle processes of the clock service.
func (c *Clock) Run(ctx context.Context) {
	if c.cfg.Once {
		err := c.writeReport()
		if err != nil {
			c.logger.Error().Err(err).Msg("reporting current moment")
		}

		c.cfg.Cancel()
		return
	}

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		err := c.reporter.Run(ctx)
		if err != nil {
			c.logger.Error().Err(err).Msg("running reporter")
			c.cfg.Cancel()
		}
	}()

	c.logger.Info().Msgf("clock service anchored to %s started", c.provider.Location())
	c.wg.Wait()
	c.logger.Info().Msg("clock service stopped")
}
