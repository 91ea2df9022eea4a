// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package mysticeti

import "errors"

// Construction-time errors, returned from UniversalCommitterBuilder.Build
// (and, for errCommittedLeadersVec, from NewMetrics).
var (
	ErrWaveLengthTooShort    = errors.New("mysticeti: wave length must be at least 2")
	ErrNoLeaders             = errors.New("mysticeti: number of leaders must be at least 1")
	errCommittedLeadersVec   = errors.New("mysticeti: failed to register committed_leaders_total metric")
)

// Programmer-error conditions on the synced-commit path. Per the commit
// rule's error-handling design (spec.md section 7), these are not
// recoverable: a gap in the synced-commit stream or a missing leader block
// would silently compromise total order, so TryDecideSynced panics rather
// than returning an error the caller might ignore.
var (
	ErrZeroBudget               = errors.New("mysticeti: synced-commit budget must be greater than zero")
	ErrGapInSyncedCommits       = errors.New("mysticeti: gap in synced commit stream")
	ErrMissingSyncedLeaderBlock = errors.New("mysticeti: synced commit references a missing leader block")
)
