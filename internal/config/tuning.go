// Package config loads analyzer tuning overrides from JSON files.
// Loading happens strictly before analysis begins; the engines
// themselves never read configuration at runtime.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fairway-data/swinglab/internal/kinematics"
	"github.com/fairway-data/swinglab/internal/kpi"
)

// MaxConfigFileBytes bounds tuning files; a tuning override is a few
// hundred bytes at most.
const MaxConfigFileBytes = 1 << 20

// TuningConfig holds optional overrides for the analysis defaults.
// Every field is a pointer so partial configs are safe: omitted fields
// keep their defaults.
type TuningConfig struct {
	// KPI extraction params
	ConfidenceThreshold *float64 `json:"confidence_threshold,omitempty"`

	// Kinematic sequence params
	SmoothingWindow             *int     `json:"smoothing_window,omitempty"`
	NoiseFloorDegPerSec         *float64 `json:"noise_floor_deg_per_sec,omitempty"`
	OptimalGapMs                *float64 `json:"optimal_gap_ms,omitempty"`
	GapToleranceMs              *float64 `json:"gap_tolerance_ms,omitempty"`
	InTolerancePenaltyPerMs     *float64 `json:"in_tolerance_penalty_per_ms,omitempty"`
	BeyondTolerancePenaltyPerMs *float64 `json:"beyond_tolerance_penalty_per_ms,omitempty"`
}

// LoadTuningConfig loads a TuningConfig from a JSON file. The file must
// have a .json extension and stay under the size bound; fields omitted
// from the file stay nil and leave defaults untouched.
func LoadTuningConfig(path string) (*TuningConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	info, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("stat config file: %w", err)
	}
	if info.Size() > MaxConfigFileBytes {
		return nil, fmt.Errorf("config file %s exceeds %d bytes", cleanPath, int64(MaxConfigFileBytes))
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg TuningConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", cleanPath, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cleanPath, err)
	}
	return &cfg, nil
}

// Validate rejects overrides that would break engine invariants.
func (c *TuningConfig) Validate() error {
	if c.ConfidenceThreshold != nil && (*c.ConfidenceThreshold < 0 || *c.ConfidenceThreshold > 1) {
		return fmt.Errorf("confidence_threshold must be in [0,1], got %v", *c.ConfidenceThreshold)
	}
	if c.SmoothingWindow != nil && *c.SmoothingWindow < 1 {
		return fmt.Errorf("smoothing_window must be >= 1, got %d", *c.SmoothingWindow)
	}
	if c.NoiseFloorDegPerSec != nil && *c.NoiseFloorDegPerSec < 0 {
		return fmt.Errorf("noise_floor_deg_per_sec must be >= 0, got %v", *c.NoiseFloorDegPerSec)
	}
	if c.OptimalGapMs != nil && *c.OptimalGapMs <= 0 {
		return fmt.Errorf("optimal_gap_ms must be > 0, got %v", *c.OptimalGapMs)
	}
	if c.GapToleranceMs != nil && *c.GapToleranceMs < 0 {
		return fmt.Errorf("gap_tolerance_ms must be >= 0, got %v", *c.GapToleranceMs)
	}
	return nil
}

// ApplyKPI overlays the non-nil KPI overrides onto params.
func (c *TuningConfig) ApplyKPI(params *kpi.Params) {
	if c.ConfidenceThreshold != nil {
		params.ConfidenceThreshold = *c.ConfidenceThreshold
	}
}

// ApplyKinematics overlays the non-nil kinematic overrides onto cfg.
func (c *TuningConfig) ApplyKinematics(cfg *kinematics.Config) {
	if c.ConfidenceThreshold != nil {
		cfg.MinConfidence = *c.ConfidenceThreshold
	}
	if c.SmoothingWindow != nil {
		cfg.SmoothingWindow = *c.SmoothingWindow
	}
	if c.NoiseFloorDegPerSec != nil {
		cfg.NoiseFloorDegPerSec = *c.NoiseFloorDegPerSec
	}
	if c.OptimalGapMs != nil {
		cfg.OptimalGapMs = *c.OptimalGapMs
	}
	if c.GapToleranceMs != nil {
		cfg.GapToleranceMs = *c.GapToleranceMs
	}
	if c.InTolerancePenaltyPerMs != nil {
		cfg.InTolerancePenaltyPerMs = *c.InTolerancePenaltyPerMs
	}
	if c.BeyondTolerancePenaltyPerMs != nil {
		cfg.BeyondTolerancePenaltyPerMs = *c.BeyondTolerancePenaltyPerMs
	}
}
