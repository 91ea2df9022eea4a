// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package fastdag drives a mysticeti.UniversalCommitter and
// mysticeti.SyncedCommitPath against a live, concurrently-written block DAG,
// the way a validator's consensus engine would: blocks arrive from the
// network or local block production, get accepted into the store, and each
// acceptance triggers another decision pass.
package fastdag

import (
	"sync"

	"github.com/luxfi/committer/protocol/mysticeti"
)

// MemDag is a thread-safe, in-memory mysticeti.DagStore. It retains every
// accepted block until GC runs, which evicts rounds at or below the last
// committed round minus retainRounds.
type MemDag struct {
	mu      sync.RWMutex
	blocks  map[mysticeti.Slot]mysticeti.Block
	byRound map[mysticeti.Round][]mysticeti.Block
	highest mysticeti.Round

	lastCommitIndex uint64
	lastCommitRound mysticeti.Round

	gcEnabled    bool
	retainRounds mysticeti.Round
}

// NewMemDag creates an empty MemDag. retainRounds is the number of
// committed rounds' worth of history kept below the last commit; a value of
// 0 disables GC (GCEnabled reports false and AdvanceCommit evicts nothing), which the
// synced-commit path refuses to run against.
func NewMemDag(retainRounds mysticeti.Round) *MemDag {
	return &MemDag{
		blocks:       make(map[mysticeti.Slot]mysticeti.Block),
		byRound:      make(map[mysticeti.Round][]mysticeti.Block),
		gcEnabled:    retainRounds > 0,
		retainRounds: retainRounds,
	}
}

// Accept records a newly accepted block. Accepting the same slot twice (an
// equivocating or retransmitted block) appends another entry at that round;
// BaseCommitter's equivocation policy handles the rest.
func (d *MemDag) Accept(block mysticeti.Block) {
	d.mu.Lock()
	defer d.mu.Unlock()
	slot := block.Slot()
	d.blocks[slot] = block
	d.byRound[slot.Round] = append(d.byRound[slot.Round], block)
	if slot.Round > d.highest {
		d.highest = slot.Round
	}
}

// AdvanceCommit records that commitIndex, deciding leaderRound, has been
// applied, and evicts blocks at or below leaderRound-retainRounds when GC is
// enabled.
func (d *MemDag) AdvanceCommit(commitIndex uint64, leaderRound mysticeti.Round) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.lastCommitIndex = commitIndex
	d.lastCommitRound = leaderRound
	if !d.gcEnabled || leaderRound <= d.retainRounds {
		return
	}
	horizon := leaderRound - d.retainRounds
	for round := range d.byRound {
		if round <= horizon {
			for _, b := range d.byRound[round] {
				delete(d.blocks, b.Slot())
			}
			delete(d.byRound, round)
		}
	}
}

// HighestAcceptedRound implements mysticeti.DagStore.
func (d *MemDag) HighestAcceptedRound() mysticeti.Round {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.highest
}

// LastCommitIndex implements mysticeti.DagStore.
func (d *MemDag) LastCommitIndex() uint64 {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.lastCommitIndex
}

// GCEnabled implements mysticeti.DagStore.
func (d *MemDag) GCEnabled() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.gcEnabled
}

// GetBlock implements mysticeti.DagStore.
func (d *MemDag) GetBlock(slot mysticeti.Slot) (mysticeti.Block, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	b, ok := d.blocks[slot]
	return b, ok
}

// BlocksAtRound implements mysticeti.DagStore.
func (d *MemDag) BlocksAtRound(round mysticeti.Round) []mysticeti.Block {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]mysticeti.Block, len(d.byRound[round]))
	copy(out, d.byRound[round])
	return out
}

var _ mysticeti.DagStore = (*MemDag)(nil)
