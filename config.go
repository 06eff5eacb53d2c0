package calcpro

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration of a calculator front-end.
type Config struct {
	DataDir         string        `yaml:"data_dir"`
	HistoryCapacity int           `yaml:"history_capacity"`
	ErrorDisplay    time.Duration `yaml:"error_display"`
	ErrorReset      string        `yaml:"error_reset"`
	AngleUnit       string        `yaml:"angle_unit"`
	Mode            string        `yaml:"mode"`
	LogLevel        string        `yaml:"log_level"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		DataDir:         ".calcpro",
		HistoryCapacity: DefaultHistoryCapacity,
		ErrorDisplay:    DefaultErrorDisplay,
		ErrorReset:      ResetClear.String(),
		AngleUnit:       "deg",
		Mode:            ModeBasic.String(),
		LogLevel:        "info",
	}
}

// LoadConfig reads a YAML config file from fs. Keys missing from the file
// keep their defaults; a missing file yields DefaultConfig.
func LoadConfig(fs afero.Fs, path string) (Config, error) {
	cfg := DefaultConfig()

	exists, err := afero.Exists(fs, path)
	if err != nil {
		return cfg, fmt.Errorf("failed to check config: %w", err)
	}
	if !exists {
		return cfg, nil
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate reports every invalid field at once as a *ValidationError.
func (cfg Config) Validate() error {
	var errs []error
	if cfg.DataDir == "" {
		errs = append(errs, errors.New("data_dir must not be empty"))
	}
	if cfg.HistoryCapacity < 1 {
		errs = append(errs, fmt.Errorf("history_capacity must be positive, got %d", cfg.HistoryCapacity))
	}
	if cfg.ErrorDisplay <= 0 {
		errs = append(errs, fmt.Errorf("error_display must be positive, got %s", cfg.ErrorDisplay))
	}
	if _, err := ParseErrorResetPolicy(cfg.ErrorReset); err != nil {
		errs = append(errs, err)
	}
	if _, err := ParseAngleUnit(cfg.AngleUnit); err != nil {
		errs = append(errs, err)
	}
	if _, err := ParseMode(cfg.Mode); err != nil {
		errs = append(errs, err)
	}
	if _, err := cfg.Level(); err != nil {
		errs = append(errs, err)
	}
	return newValidationError(errs)
}

// Level returns the configured log level.
func (cfg Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", cfg.LogLevel)
	}
	return level, nil
}

// Options converts the config into calculator options.
// The config is validated first.
func (cfg Config) Options() ([]Option, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	policy, _ := ParseErrorResetPolicy(cfg.ErrorReset)
	angle, _ := ParseAngleUnit(cfg.AngleUnit)
	mode, _ := ParseMode(cfg.Mode)
	return []Option{
		WithHistoryCapacity(cfg.HistoryCapacity),
		WithErrorReset(policy),
		WithAngleUnit(angle),
		WithMode(mode),
	}, nil
}
