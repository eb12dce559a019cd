package clock

import (
	"errors"
	"fmt"
	"time"
)

const (
	// LimaLocation is the default locale used for fetching time (UTC-5, no DST).
	LimaLocation = "America/Lima"
	// DateLayout is the format layout for local dates.
	DateLayout = "2006-01-02"
	// TimeLayout is the format layout for local wall clock times.
	TimeLayout = "15:04:05"
)

// ProviderConfig represents the time provider configuration.
type ProviderConfig struct {
	// Timezone is the named timezone all readings are anchored to.
	Timezone string
	// Now is the clock source.
	Now func() time.Time
}

// DefaultProviderConfig returns a provider configuration anchored to lima
// and backed by the system clock.
func DefaultProviderConfig() *ProviderConfig {
	return &ProviderConfig{
		Timezone: LimaLocation,
		Now:      time.Now,
	}
}

// Validate asserts the config sane inputs.
func (cfg *ProviderConfig) Validate() error {
	var errs error

	if cfg.Timezone == "" {
		errs = errors.Join(errs, fmt.Errorf("timezone cannot be an empty string"))
	}
	if cfg.Now == nil {
		errs = errors.Join(errs, fmt.Errorf("clock source cannot be nil"))
	}

	return errs
}

// Provider computes local date and time readings in a fixed timezone.
// It is immutable after creation and safe for concurrent use.
type Provider struct {
	now func() time.Time
	loc *time.Location
}

// NewProvider initializes a new time provider.
func NewProvider(cfg *ProviderConfig) (*Provider, error) {
	if cfg == nil {
		return nil, errors.New("provider config cannot be nil")
	}

	err := cfg.Validate()
	if err != nil {
		return nil, fmt.Errorf("validating provider config: %w", err)
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("loading %s timezone: %w", cfg.Timezone, err)
	}

	return &Provider{
		now: cfg.Now,
		loc: loc,
	}, nil
}

// Location returns the timezone the provider is anchored to.
func (p *Provider) Location() *time.Location {
	return p.loc
}

// Now returns a single clock reading in the provider's timezone.
func (p *Provider) Now() time.Time {
	return p.now().In(p.loc)
}

// DateOf returns the local calendar date of the provided instant.
func (p *Provider) DateOf(t time.Time) CalendarDate {
	year, month, day := t.In(p.loc).Date()
	return CalendarDate{Year: year, Month: int(month), Day: day}
}

// TimeOf returns the local wall clock time of the provided instant.
func (p *Provider) TimeOf(t time.Time) WallTime {
	hour, minute, second := t.In(p.loc).Clock()
	return WallTime{Hour: hour, Minute: minute, Second: second}
}

// WeekdayOf returns the local weekday of the provided instant.
func (p *Provider) WeekdayOf(t time.Time) Weekday {
	return Weekday(t.In(p.loc).Weekday())
}

// CurrentDate returns the current local date as YYYY-MM-DD.
func (p *Provider) CurrentDate() string {
	return p.DateOf(p.Now()).String()
}

// CurrentTime returns the current local time as HH:MM:SS.
func (p *Provider) CurrentTime() string {
	return p.TimeOf(p.Now()).String()
}

// CurrentWeekday returns the current local weekday, 0 (Sunday) through 6 (Saturday).
func (p *Provider) CurrentWeekday() int {
	return int(p.WeekdayOf(p.Now()))
}

// LimaTime returns the current time in lima.
func LimaTime() (time.Time, *time.Location, error) {
	loc, err := time.LoadLocation(LimaLocation)
	if err != nil {
		return time.Time{}, nil, fmt.Errorf("loading lima timezone: %w", err)
	}

	now := time.Now().In(loc)
	return now, loc, nil
}
