// Package config loads hingesim settings: a YAML preset over built-in
// defaults, then HINGESIM_* environment overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chazu/hingesim/pkg/export"
	"github.com/chazu/hingesim/pkg/hinge"
	"github.com/chazu/hingesim/pkg/sweep"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "HINGESIM_"

const defaultLogLevel = "info"

// Config holds runtime configuration values.
type Config struct {
	Parameters    hinge.Parameters `yaml:"parameters"`
	Sweep         sweep.Range      `yaml:"sweep"`
	TraceCapacity int              `yaml:"trace_capacity"`
	Export        export.Options   `yaml:"export"`
	LogLevel      string           `yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Parameters:    hinge.DefaultParameters(),
		Sweep:         sweep.FullOpen,
		TraceCapacity: sweep.DefaultTraceCapacity,
		Export:        export.DefaultOptions(),
		LogLevel:      defaultLogLevel,
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty) and the environment, then validates it.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: %w", err)
		}
		if err := decode(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// decode overlays YAML onto cfg. Keys absent from the document keep their
// current values; unknown keys are errors.
func decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Validate checks the settings that have no sensible fallback. Hinge
// parameters are not checked here; hinge.Validate reports them as advisory
// findings.
func (c Config) Validate() error {
	if err := c.Parameters.CheckFinite(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := c.Sweep.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.TraceCapacity <= 0 {
		return fmt.Errorf("config: trace_capacity must be > 0, got %d", c.TraceCapacity)
	}
	if err := c.Export.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: log_level: %w", err)
	}
	return nil
}

// Level returns the parsed log level, falling back to info.
func (c Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

// envFloats maps environment suffixes to the float settings they override.
func envFloats(c *Config) map[string]*float64 {
	p := &c.Parameters
	return map[string]*float64{
		"LCD_THICKNESS":        &p.LCDThickness,
		"SYSTEM_THICKNESS":     &p.SystemThickness,
		"PIVOT_HORIZONTAL":     &p.PivotHorizontalOffset,
		"PIVOT_VERTICAL":       &p.PivotVerticalOffset,
		"INITIAL_GAP":          &p.InitialGap,
		"LCD_FILLET":           &p.LCDFilletRadius,
		"SYSTEM_TOP_FILLET":    &p.SystemTopFilletRadius,
		"SYSTEM_BOTTOM_FILLET": &p.SystemBottomFilletRadius,
		"ANGLE":                &p.AngleDegrees,
		"SWEEP_FROM":           &c.Sweep.From,
		"SWEEP_TO":             &c.Sweep.To,
		"SWEEP_STEP":           &c.Sweep.Step,
		"EXPORT_SCALE":         &c.Export.Scale,
		"EXPORT_MARGIN":        &c.Export.Margin,
	}
}

// applyEnv applies HINGESIM_* overrides to cfg.
func applyEnv(cfg *Config) error {
	for suffix, target := range envFloats(cfg) {
		v, err := envFloat(EnvPrefix+suffix, *target)
		if err != nil {
			return err
		}
		*target = v
	}

	capacity, err := envInt(EnvPrefix+"TRACE_CAPACITY", cfg.TraceCapacity)
	if err != nil {
		return err
	}
	cfg.TraceCapacity = capacity

	cfg.Parameters.ShowTrace = envBool(EnvPrefix+"SHOW_TRACE", cfg.Parameters.ShowTrace)
	cfg.LogLevel = envString(EnvPrefix+"LOG_LEVEL", cfg.LogLevel)
	return nil
}

// envString returns an env override when present, otherwise a default.
func envString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// envFloat returns a float env override when present, otherwise a default.
func envFloat(key string, def float64) (float64, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number: %w", key, err)
	}
	return value, nil
}

// envInt returns an int env override when present, otherwise a default.
func envInt(key string, def int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return value, nil
}

// envBool returns a bool env override when present, otherwise a default.
func envBool(key string, def bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	switch strings.ToLower(raw) {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return def
	}
}

// Marshal renders cfg as a YAML preset.
func Marshal(cfg Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return buf.Bytes(), nil
}
