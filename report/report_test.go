package report

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/dnldd/limaclock/clock"
	"github.com/go-co-op/gocron"
	"github.com/google/uuid"
	"github.com/peterldowns/testy/assert"
	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"
)

func setupReporter(t *testing.T, logger *zerolog.Logger, emit func(Report)) *Reporter {
	instant := time.Date(2025, time.January, 1, 4, 30, 0, 0, time.UTC)
	provider, err := clock.NewProvider(&clock.ProviderConfig{
		Timezone: clock.LimaLocation,
		Now:      func() time.Time { return instant },
	})
	assert.NoError(t, err)

	reporter, err := NewReporter(&ReporterConfig{
		Source:       provider,
		Interval:     time.Second,
		JobScheduler: gocron.NewScheduler(provider.Location()),
		Emit:         emit,
		Logger:       logger,
	})
	assert.NoError(t, err)

	return reporter
}

func TestReporterConfigValidate(t *testing.T) {
	provider, err := clock.NewProvider(clock.DefaultProviderConfig())
	assert.NoError(t, err)
	logger := zerolog.Nop()

	baseCfg := ReporterConfig{
		Source:       provider,
		Interval:     time.Minute,
		JobScheduler: gocron.NewScheduler(time.UTC),
		Logger:       &logger,
	}

	tests := []struct {
		name        string
		modify      func(cfg *ReporterConfig)
		wantErr     bool
		errContains []string
	}{
		{
			name:    "valid config",
			modify:  func(cfg *ReporterConfig) {},
			wantErr: false,
		},
		{
			name:        "missing source",
			modify:      func(cfg *ReporterConfig) { cfg.Source = nil },
			wantErr:     true,
			errContains: []string{"moment source cannot be nil"},
		},
		{
			name:        "zero interval",
			modify:      func(cfg *ReporterConfig) { cfg.Interval = 0 },
			wantErr:     true,
			errContains: []string{"report interval must be positive"},
		},
		{
			name: "missing scheduler and logger",
			modify: func(cfg *ReporterConfig) {
				cfg.JobScheduler = nil
				cfg.Logger = nil
			},
			wantErr:     true,
			errContains: []string{"job scheduler cannot be nil", "logger cannot be nil"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg := baseCfg
			test.modify(&cfg)
			err := cfg.Validate()
			if !test.wantErr {
				assert.NoError(t, err)
				return
			}

			assert.Error(t, err)
			for _, want := range test.errContains {
				if !strings.Contains(err.Error(), want) {
					t.Errorf("expected error to contain %q, got %v", want, err)
				}
			}
		})
	}
}

func TestReporterSnapshot(t *testing.T) {
	logger := zerolog.Nop()
	reporter := setupReporter(t, &logger, nil)

	// Ensure a snapshot carries the moment and its display forms.
	rep := reporter.Snapshot()
	_, err := uuid.Parse(rep.ID)
	assert.NoError(t, err)
	assert.Equal(t, "2024-12-31", rep.Moment.Date)
	assert.Equal(t, "23:30:00", rep.Moment.Time)
	assert.Equal(t, clock.Tuesday, rep.Moment.Weekday)
	assert.Equal(t, "31/12/2024", rep.DisplayDate)
	assert.Equal(t, "23:30:00", rep.DisplayTime)

	// Ensure each snapshot gets a unique id.
	assert.NotEqual(t, rep.ID, reporter.Snapshot().ID)
}

func TestReportMarshalJSON(t *testing.T) {
	logger := zerolog.Nop()
	reporter := setupReporter(t, &logger, nil)
	rep := reporter.Snapshot()

	b, err := json.Marshal(rep)
	assert.NoError(t, err)
	assert.True(t, gjson.ValidBytes(b))

	res := gjson.ParseBytes(b)
	assert.Equal(t, rep.ID, res.Get("id").String())
	assert.Equal(t, "2024-12-31", res.Get("date").String())
	assert.Equal(t, "23:30:00", res.Get("time").String())
	assert.Equal(t, int64(2), res.Get("weekday").Int())
	assert.Equal(t, "Tuesday", res.Get("weekdayName").String())
	assert.Equal(t, "2024-12-31T23:30:00-05:00", res.Get("timestamp").String())
	assert.Equal(t, "31/12/2024", res.Get("displayDate").String())
	assert.Equal(t, "23:30:00", res.Get("displayTime").String())
}

func TestReporterLogsReport(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	var emitted []Report
	reporter := setupReporter(t, &logger, func(rep Report) {
		emitted = append(emitted, rep)
	})

	// Ensure a report is logged and relayed.
	reporter.report()
	assert.Equal(t, 1, len(emitted))

	line := gjson.Parse(strings.TrimSpace(buf.String()))
	assert.Equal(t, "info", line.Get("level").String())
	assert.Equal(t, emitted[0].ID, line.Get("id").String())
	assert.Equal(t, "2024-12-31", line.Get("date").String())
	assert.Equal(t, "23:30:00", line.Get("time").String())
	assert.Equal(t, int64(2), line.Get("weekday").Int())
	assert.Equal(t, "Tuesday 31/12/2024 23:30:00", line.Get("message").String())
}

func TestReporterRun(t *testing.T) {
	logger := zerolog.Nop()
	reports := make(chan Report, 5)
	reporter := setupReporter(t, &logger, func(rep Report) {
		reports <- rep
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error)
	go func() {
		done <- reporter.Run(ctx)
	}()

	// Ensure the scheduled job reports once started.
	select {
	case rep := <-reports:
		assert.Equal(t, "2024-12-31", rep.Moment.Date)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for report")
	}

	// Ensure the reporter stops when the context is cancelled.
	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reporter to stop")
	}
}
