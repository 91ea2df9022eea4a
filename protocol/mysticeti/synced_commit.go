// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package mysticeti

import (
	"fmt"

	"github.com/luxfi/log"
)

// SyncedCommitPath installs externally authenticated commits during state
// sync, without re-running the commit rule (which may be impossible while
// the local DAG still lags the network). It is the fast path described in
// spec.md section 4.3.
type SyncedCommitPath struct {
	committee Committee
	dag       DagStore
	metrics   *Metrics
	log       log.Logger
}

// NewSyncedCommitPath builds a SyncedCommitPath over dag.
func NewSyncedCommitPath(committee Committee, dag DagStore, metrics *Metrics, logger log.Logger) *SyncedCommitPath {
	if logger == nil {
		logger = log.NewNoOpLogger()
	}
	return &SyncedCommitPath{committee: committee, dag: dag, metrics: metrics, log: logger}
}

// TryDecideSynced admits as many leading entries of queue as fit within
// budget, skipping any already-applied prefix and failing hard on a gap or
// a missing leader block. queue is mutated in place to drop the consumed
// (and any discarded duplicate) prefix.
//
// budget must be greater than zero; passing zero is a programmer error and
// panics, matching the Rust original's `assert!(commits_until_update > 0)`.
// That assertion runs only once GC is confirmed enabled: the original
// returns an empty result for a GC-disabled store before ever checking
// budget, so a zero budget against a GC-disabled store is a silent no-op
// here too, not a panic.
func (s *SyncedCommitPath) TryDecideSynced(queue *[]TrustedCommit, budget int) []DecidedLeader {
	if !s.dag.GCEnabled() {
		// Without GC, ancestry below the retained horizon may have been
		// dropped, which breaks the assumptions this fast path relies on.
		return nil
	}

	if budget <= 0 {
		panic(fmt.Errorf("%w: got %d", ErrZeroBudget, budget))
	}

	lastCommitIndex := s.dag.LastCommitIndex()
	q := *queue

	for len(q) > 0 && q[0].Index <= lastCommitIndex {
		s.log.Info("discarding already-applied synced commit",
			"index", q[0].Index, "lastCommitIndex", lastCommitIndex)
		q = q[1:]
	}

	if len(q) == 0 {
		*queue = q
		return nil
	}

	if q[0].Index != lastCommitIndex+1 {
		panic(fmt.Errorf("%w: expected index %d, got %d", ErrGapInSyncedCommits, lastCommitIndex+1, q[0].Index))
	}

	n := budget
	if len(q) < n {
		n = len(q)
	}
	toCommit := q[:n]
	*queue = q[n:]

	decided := make([]DecidedLeader, 0, n)
	for _, commit := range toCommit {
		block, ok := s.dag.GetBlock(commit.Leader)
		if !ok {
			panic(fmt.Errorf("%w: slot %s", ErrMissingSyncedLeaderBlock, commit.Leader))
		}
		leader := DecidedLeader{Kind: StatusCommit, Slot: commit.Leader, Block: block}
		s.metrics.recordDecision(s.committee, leader, DecisionSynced)
		decided = append(decided, leader)
	}

	s.log.Info("decided synced leaders", "count", len(decided))
	return decided
}
