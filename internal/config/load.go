package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	ferrors "git.home.luguber.info/inful/stackdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/stackdocs/internal/logfields"
)

// LoadOverride reads a YAML or JSON override file. Environment files next to
// it are loaded first so ${VAR} references can resolve against them.
func LoadOverride(path string) (*Override, error) {
	if _, err := LoadEnvFiles(filepath.Dir(path)); err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "load environment file").
			WithContext("path", path).
			Build()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ferrors.WrapError(err, ferrors.CategoryNotFound, "configuration file not found").
				WithContext("path", path).
				Fatal().
				Build()
		}
		return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "read configuration file").
			WithContext("path", path).
			Fatal().
			Build()
	}
	return ParseOverride(data, path)
}

// ParseOverride parses override bytes after ${VAR} expansion. source names the
// input in error messages.
func ParseOverride(data []byte, source string) (*Override, error) {
	expanded := os.ExpandEnv(string(data))
	var raw map[string]any
	if err := yaml.Unmarshal([]byte(expanded), &raw); err != nil {
		return nil, ferrors.WrapError(fmt.Errorf("%w: %w", ErrConfigInvalid, err), ferrors.CategoryConfig, "parse configuration file").
			WithContext("path", source).
			Fatal().
			Build()
	}
	ov, res, err := DecodeOverride(raw)
	if err != nil {
		if ce, ok := ferrors.AsClassified(err); ok {
			return nil, ce.WithContext("path", source)
		}
		return nil, err
	}
	for _, w := range res.Warnings {
		slog.Warn("Configuration normalized", logfields.Config(source), slog.String("detail", w))
	}
	return ov, nil
}

// Build produces the configuration for one run: defaults, then the override,
// then the timestamp from now, then validation. ov may be nil.
func Build(ov *Override, now time.Time) (*Config, error) {
	cfg := Defaults()
	ov.ApplyTo(cfg)
	cfg.Timestamp = now.Format(TimestampLayout)
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
