package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"time"

	"github.com/dnldd/limaclock/clock"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

const (
	// defaultInterval is the default time between periodic reports.
	defaultInterval = time.Minute
	// defaultLogLevel is the default logging level.
	defaultLogLevel = "info"
)

// Config is the configuration struct for the service.
type Config struct {
	// Timezone is the named timezone readings are anchored to.
	Timezone string
	// Interval is the time between periodic reports.
	Interval time.Duration
	// Once prints a single report and exits.
	Once bool
	// LogLevel is the logging level.
	LogLevel string

	registeredFlags map[string]bool
}

// Validate asserts the config sane inputs.
func (cfg *Config) Validate() error {
	var errs error

	if cfg.Timezone == "" {
		errs = errors.Join(errs, fmt.Errorf("timezone cannot be an empty string"))
	}
	if !cfg.Once && cfg.Interval <= 0 {
		errs = errors.Join(errs, fmt.Errorf("report interval must be positive, got %v", cfg.Interval))
	}
	if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
		errs = errors.Join(errs, fmt.Errorf("parsing log level: %w", err))
	}

	return errs
}

// registerFlag registers command line arguments of any type and tracks them to avoid reregistration.
// Environment variables of the same name override the provided fallback default.
func (cfg *Config) registerFlag(name string, value interface{}, fallback string, usage string) error {
	if cfg.registeredFlags == nil {
		cfg.registeredFlags = make(map[string]bool)
	}

	if cfg.registeredFlags[name] {
		return nil
	}

	cfg.registeredFlags[name] = true

	defValue := fallback
	if env, ok := os.LookupEnv(name); ok {
		defValue = env
	}

	val := reflect.ValueOf(value)
	if val.Kind() != reflect.Ptr || val.IsNil() {
		return fmt.Errorf("%s: value must be a non-nil pointer", name)
	}

	switch val.Elem().Kind() {
	case reflect.String:
		flag.StringVar(value.(*string), name, defValue, usage)
	case reflect.Bool:
		var def bool
		if defValue != "" {
			def, _ = strconv.ParseBool(defValue)
		}
		flag.BoolVar(value.(*bool), name, def, usage)
	case reflect.Int64:
		// Only handle time.Duration
		if val.Elem().Type() != reflect.TypeOf(time.Duration(0)) {
			return fmt.Errorf("%s: unsupported int64 type", name)
		}
		var def time.Duration
		if defValue != "" {
			def, _ = time.ParseDuration(defValue)
		}
		flag.DurationVar(value.(*time.Duration), name, def, usage)
	default:
		return fmt.Errorf("%s: unsupported type", name)
	}

	return nil
}

// loadConfig loads the configuration from environment variables and command line flags.
func loadConfig(cfg *Config, path string) error {
	if path == "" {
		path = ".env"
	}

	// Check if the expected .env file exists before loading it.
	_, err := os.Stat(path)
	if err == nil {
		err := godotenv.Load(path)
		if err != nil {
			return fmt.Errorf("loading .env file: %w", err)
		}
	}

	// Register command line arguments using loaded environment variables as defaults.
	err = cfg.registerFlag("timezone", &cfg.Timezone, clock.LimaLocation, "the timezone readings are anchored to")
	if err != nil {
		return err
	}
	err = cfg.registerFlag("interval", &cfg.Interval, defaultInterval.String(), "the time between periodic reports")
	if err != nil {
		return err
	}
	err = cfg.registerFlag("once", &cfg.Once, "false", "print a single report and exit")
	if err != nil {
		return err
	}
	err = cfg.registerFlag("loglevel", &cfg.LogLevel, defaultLogLevel, "the logging level")
	if err != nil {
		return err
	}

	// Parse command-line flags.
	flag.Parse()

	return cfg.Validate()
}
