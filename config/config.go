// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package config validates the knobs a UniversalCommitterBuilder and a
// SyncedCommitPath are parameterized with, before they ever reach the
// protocol layer. It follows the same detailed-result validator shape the
// teacher's snowball config package uses, trimmed to the parameters this
// protocol actually exposes.
package config

import "time"

// Config collects every tunable knob of a running committer: the DAG-BFT
// commit rule's wave length and leader fan-out, and the synced-commit
// path's per-call admission budget.
type Config struct {
	// WaveLength is the number of rounds per wave. The Mysticeti paper's
	// default is 3.
	WaveLength uint64
	// NumberOfLeaders is the number of multi-leader seats decided per
	// round.
	NumberOfLeaders int
	// Pipeline enables one independent BaseCommitter rotation per round
	// offset within a wave, trading certificate latency for round
	// concurrency.
	Pipeline bool
	// SyncedCommitBudget is the per-call admission budget for the
	// synced-commit path. The Validator checks it; nothing in this module
	// reads it at run time: TryDecideSynced and Engine.InstallSyncedCommits
	// take their budget as an argument.
	SyncedCommitBudget int
	// NetworkLatency is the expected one-hop block dissemination latency,
	// used only to produce advisory warnings about wave length choices.
	NetworkLatency time.Duration
}

// DefaultConfig returns the configuration a UniversalCommitterBuilder uses
// when its With* methods are never called.
func DefaultConfig() Config {
	return Config{
		WaveLength:         3,
		NumberOfLeaders:    1,
		Pipeline:           false,
		SyncedCommitBudget: 100,
	}
}
