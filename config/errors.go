// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import "errors"

// Validation errors. Validate wraps the matching one of these into its
// returned error for every violated constraint, so callers can errors.Is a
// specific failure instead of matching ValidationError fields.
var (
	ErrWaveLengthTooShort       = errors.New("wave length is too short")
	ErrNoLeaders                = errors.New("number of leaders must be at least 1")
	ErrSyncedCommitBudgetTooLow = errors.New("synced commit budget must be at least 1")
)
