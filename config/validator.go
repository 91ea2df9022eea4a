// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/luxfi/log"
)

// ValidationMode determines how strict validation should be.
type ValidationMode int

const (
	// StrictMode enforces all security and performance constraints.
	StrictMode ValidationMode = iota
	// SoftMode allows some flexibility for experimental configurations.
	SoftMode
)

// ValidationError contains detailed validation error information.
type ValidationError struct {
	Field      string
	Value      interface{}
	Constraint string
	Severity   string // "error" or "warning"
	Suggestion string
	// Sentinel is one of the package's Err* values when this violation maps
	// to one, so callers can errors.Is the error returned by Validate for a
	// specific constraint instead of matching on Field/Constraint strings.
	Sentinel error
}

func (ve ValidationError) Error() string {
	return fmt.Sprintf("%s: %s=%v violates constraint: %s", ve.Severity, ve.Field, ve.Value, ve.Constraint)
}

// ValidationResult contains all validation errors and warnings.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationError
	Valid    bool
}

// Validator validates committer configurations.
type Validator struct {
	mode ValidationMode
}

// NewValidator creates a validator with strict mode by default.
func NewValidator() *Validator {
	return &Validator{mode: StrictMode}
}

// WithMode sets the validation mode.
func (v *Validator) WithMode(mode ValidationMode) *Validator {
	v.mode = mode
	return v
}

// Validate performs comprehensive validation of cfg, returning a single
// error that joins every violation. Use errors.Is against ErrWaveLengthTooShort,
// ErrNoLeaders, or ErrSyncedCommitBudgetTooLow to test for a specific
// constraint.
func (v *Validator) Validate(cfg *Config) error {
	result := v.ValidateDetailed(cfg)
	if !result.Valid {
		errs := make([]error, len(result.Errors))
		for i, ve := range result.Errors {
			if ve.Sentinel != nil {
				errs[i] = fmt.Errorf("%s: %w", ve.Error(), ve.Sentinel)
			} else {
				errs[i] = ve
			}
		}
		return errors.Join(errs...)
	}
	return nil
}

// ValidateDetailed returns detailed validation results, including warnings
// that do not make cfg invalid.
func (v *Validator) ValidateDetailed(cfg *Config) *ValidationResult {
	result := &ValidationResult{Valid: true}

	v.validateWaveAndLeaders(cfg, result)
	v.validateSyncedCommitBudget(cfg, result)
	if cfg.NetworkLatency > 0 {
		v.validateNetworkFit(cfg, result)
	}

	return result
}

func (v *Validator) validateWaveAndLeaders(cfg *Config, result *ValidationResult) {
	if cfg.WaveLength < 2 {
		v.addError(result, "WaveLength", cfg.WaveLength,
			"must be at least 2", "Set WaveLength >= 2", ErrWaveLengthTooShort)
	} else if cfg.WaveLength < 3 && v.mode == StrictMode {
		v.addWarning(result, "WaveLength", cfg.WaveLength,
			"a wave length of 2 has no slack for the indirect rule to recover a skip",
			"Consider WaveLength >= 3 for production")
	}

	if cfg.NumberOfLeaders < 1 {
		v.addError(result, "NumberOfLeaders", cfg.NumberOfLeaders,
			"must be at least 1", "Set NumberOfLeaders >= 1", ErrNoLeaders)
	}
	if cfg.Pipeline && cfg.NumberOfLeaders > 1 && v.mode == StrictMode {
		log.Warn("pipelined multi-leader committer configured: decision volume scales with wave_length * number_of_leaders",
			"waveLength", cfg.WaveLength, "numberOfLeaders", cfg.NumberOfLeaders)
	}
}

func (v *Validator) validateSyncedCommitBudget(cfg *Config, result *ValidationResult) {
	if cfg.SyncedCommitBudget < 1 {
		v.addError(result, "SyncedCommitBudget", cfg.SyncedCommitBudget,
			"must be at least 1", "Set SyncedCommitBudget >= 1", ErrSyncedCommitBudgetTooLow)
		return
	}
	if cfg.SyncedCommitBudget > 10000 && v.mode == StrictMode {
		v.addWarning(result, "SyncedCommitBudget", cfg.SyncedCommitBudget,
			"very high budget admits a large backlog in one call, risking long caller stalls",
			"Consider SyncedCommitBudget <= 10000")
	}
}

func (v *Validator) validateNetworkFit(cfg *Config, result *ValidationResult) {
	waveLatency := time.Duration(cfg.WaveLength) * cfg.NetworkLatency
	if waveLatency > 2*time.Second && v.mode == StrictMode {
		v.addWarning(result, "WaveLength", cfg.WaveLength,
			fmt.Sprintf("results in %s of expected wave latency at %s network latency", waveLatency, cfg.NetworkLatency),
			"Consider reducing WaveLength or enabling Pipeline for lower per-round latency")
	}
}

func (v *Validator) addError(result *ValidationResult, field string, value interface{}, constraint, suggestion string, sentinel error) {
	result.Valid = false
	result.Errors = append(result.Errors, ValidationError{
		Field: field, Value: value, Constraint: constraint, Severity: "error", Suggestion: suggestion, Sentinel: sentinel,
	})
}

func (v *Validator) addWarning(result *ValidationResult, field string, value interface{}, constraint, suggestion string) {
	result.Warnings = append(result.Warnings, ValidationError{
		Field: field, Value: value, Constraint: constraint, Severity: "warning", Suggestion: suggestion,
	})
}
