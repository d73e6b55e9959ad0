package config

import (
	"fmt"

	"github.com/anlythree/foodpicker/internal/picker"
)

// CurrentVersion is the only settings file version this build understands.
const CurrentVersion = 1

// Settings represents the entire user configuration file.
type Settings struct {
	Version         int    `yaml:"version"`
	Catalog         string `yaml:"catalog,omitempty"`           // Path to a YAML catalog; empty uses the built-in list
	NutritionOnPick string `yaml:"nutrition_on_pick,omitempty"` // "keep" or "reset"
	Seed            uint64 `yaml:"seed,omitempty"`              // Non-zero makes draws reproducible
	LogLevel        string `yaml:"log_level,omitempty"`
	LogFile         string `yaml:"log_file,omitempty"`
}

// NewSettings creates Settings with default values.
func NewSettings() *Settings {
	return &Settings{
		Version:         CurrentVersion,
		NutritionOnPick: picker.KeepNutrition.String(),
	}
}

// Policy parses the configured nutrition policy.
func (s *Settings) Policy() (picker.NutritionPolicy, error) {
	p, err := picker.ParseNutritionPolicy(s.NutritionOnPick)
	if err != nil {
		return p, fmt.Errorf("nutrition_on_pick: %w", err)
	}
	return p, nil
}

// Validate checks the settings and returns every problem found.
func (s *Settings) Validate() []error {
	var errs []error

	if s.Version != CurrentVersion {
		errs = append(errs, fmt.Errorf("unsupported config version: %d (expected %d)", s.Version, CurrentVersion))
	}
	if _, err := s.Policy(); err != nil {
		errs = append(errs, err)
	}
	switch s.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log_level: unknown level %q", s.LogLevel))
	}

	return errs
}
