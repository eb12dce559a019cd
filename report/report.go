package report

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dnldd/limaclock/clock"
	"github.com/go-co-op/gocron"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// MomentSource defines the requirements for sampling local moments.
type MomentSource interface {
	// CurrentMoment samples the clock once and returns the resulting moment.
	CurrentMoment() clock.Moment
}

// Report represents a sampled moment along with its display forms.
type Report struct {
	ID          string
	Moment      clock.Moment
	DisplayDate string
	DisplayTime string
}

// MarshalJSON encodes the report with flattened moment fields.
func (r Report) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID          string    `json:"id"`
		Date        string    `json:"date"`
		Time        string    `json:"time"`
		Weekday     int       `json:"weekday"`
		WeekdayName string    `json:"weekdayName"`
		Timestamp   time.Time `json:"timestamp"`
		DisplayDate string    `json:"displayDate"`
		DisplayTime string    `json:"displayTime"`
	}{
		ID:          r.ID,
		Date:        r.Moment.Date,
		Time:        r.Moment.Time,
		Weekday:     int(r.Moment.Weekday),
		WeekdayName: r.Moment.Weekday.String(),
		Timestamp:   r.Moment.Timestamp,
		DisplayDate: r.DisplayDate,
		DisplayTime: r.DisplayTime,
	})
}

// ReporterConfig represents the reporter configuration.
type ReporterConfig struct {
	// Source is the moment source sampled for reports.
	Source MomentSource
	// Interval is the time between scheduled reports.
	Interval time.Duration
	// JobScheduler represents the job scheduler.
	JobScheduler *gocron.Scheduler
	// Emit relays a generated report. Optional.
	Emit func(report Report)
	// Logger represents the application logger.
	Logger *zerolog.Logger
}

// Validate asserts the config sane inputs.
func (cfg *ReporterConfig) Validate() error {
	var errs error

	if cfg.Source == nil {
		errs = errors.Join(errs, fmt.Errorf("moment source cannot be nil"))
	}
	if cfg.Interval <= 0 {
		errs = errors.Join(errs, fmt.Errorf("report interval must be positive, got %v", cfg.Interval))
	}
	if cfg.JobScheduler == nil {
		errs = errors.Join(errs, fmt.Errorf("job scheduler cannot be nil"))
	}
	if cfg.Logger == nil {
		errs = errors.Join(errs, fmt.Errorf("logger cannot be nil"))
	}

	return errs
}

// Reporter periodically samples a moment source and reports the results.
type Reporter struct {
	cfg *ReporterConfig
}

// NewReporter initializes a new reporter.
func NewReporter(cfg *ReporterConfig) (*Reporter, error) {
	err := cfg.Validate()
	if err != nil {
		return nil, fmt.Errorf("validating reporter config: %w", err)
	}

	return &Reporter{cfg: cfg}, nil
}

// Snapshot generates a report from a single sample of the moment source.
func (r *Reporter) Snapshot() Report {
	moment := r.cfg.Source.CurrentMoment()

	return Report{
		ID:          uuid.New().String(),
		Moment:      moment,
		DisplayDate: clock.FormatDateForDisplay(moment.Date),
		DisplayTime: clock.FormatTimeForDisplay(moment.Time),
	}
}

// report generates, logs and relays a report.
func (r *Reporter) report() {
	rep := r.Snapshot()

	r.cfg.Logger.Info().
		Str("id", rep.ID).
		Str("date", rep.Moment.Date).
		Str("time", rep.Moment.Time).
		Int("weekday", int(rep.Moment.Weekday)).
		Time("timestamp", rep.Moment.Timestamp).
		Msgf("%s %s %s", rep.Moment.Weekday, rep.DisplayDate, rep.DisplayTime)

	if r.cfg.Emit != nil {
		r.cfg.Emit(rep)
	}
}

// Run schedules periodic reports and blocks until the context is cancelled.
//
// It should be run as a goroutine.
func (r *Reporter) Run(ctx context.Context) error {
	r.cfg.JobScheduler.SingletonModeAll()

	_, err := r.cfg.JobScheduler.Every(r.cfg.Interval).Do(r.report)
	if err != nil {
		return fmt.Errorf("scheduling report job: %w", err)
	}

	r.cfg.JobScheduler.StartAsync()
	r.cfg.Logger.Info().Msgf("reporting every %v", r.cfg.Interval)

	<-ctx.Done()
	r.cfg.JobScheduler.Stop()

	return nil
}
