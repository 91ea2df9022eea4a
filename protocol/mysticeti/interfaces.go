// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package mysticeti

//go:generate go run go.uber.org/mock/mockgen -source=interfaces.go -destination=mysticetimock/interfaces.go -package=mysticetimock

// DagStore is the external, read-only view of the accepted block DAG. The
// committer never stores, verifies, or disseminates blocks itself; it only
// queries through this interface. It takes no lock or read handle across a
// decision pass: each method call is a separate query, so writes made to
// the store while a pass runs are visible to the later queries of that pass.
type DagStore interface {
	// HighestAcceptedRound returns the highest round for which at least one
	// block has been accepted.
	HighestAcceptedRound() Round
	// LastCommitIndex returns the index of the most recently applied
	// commit, used by the synced-commit path to detect gaps and duplicates.
	LastCommitIndex() uint64
	// GCEnabled reports whether the DAG store garbage-collects blocks below
	// a retained horizon. The synced-commit path refuses to run when this
	// is false, since it relies on GC-maintained ancestry invariants.
	GCEnabled() bool
	// GetBlock returns the block at slot, if any.
	GetBlock(slot Slot) (Block, bool)
	// BlocksAtRound returns every accepted block at round. An authority may
	// appear more than once (equivocating blocks are surfaced here; the
	// committer applies its own equivocation policy when electing a leader
	// block).
	BlocksAtRound(round Round) []Block
}

// LeaderSchedule maps a round and leader seat to the authority nominated to
// propose there. It is a pure function of (round, leaderOffset) for a given
// schedule epoch; the committer consults it as a black box and never
// inspects epoch boundaries itself.
type LeaderSchedule interface {
	Leader(round Round, leaderOffset int) AuthorityIndex
}

// Committee exposes the stake-weighted quorum facts the commit rule needs:
// total stake, per-authority stake, and the hostname used to label metrics.
// It mirrors the epoch-scoped committee configuration the teacher's
// ambient Context type (context/context.go) carries for every protocol.
type Committee interface {
	// Stake returns the voting weight of authority.
	Stake(authority AuthorityIndex) uint64
	// TotalStake returns the sum of stake across the whole committee (3f+1).
	TotalStake() uint64
	// QuorumThreshold returns the stake weight a quorum certificate must
	// reach (2f+1 over a 3f+1 committee).
	QuorumThreshold() uint64
	// Hostname returns a human-readable label for authority, used only for
	// metrics and logs.
	Hostname(authority AuthorityIndex) string
}
