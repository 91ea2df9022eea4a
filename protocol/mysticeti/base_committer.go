// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package mysticeti

import (
	"github.com/luxfi/log"

	"github.com/luxfi/committer/quorum"
)

// BaseCommitter implements one channel of the commit rule, parameterized by
// a (wave length, round offset, leader offset) triple. A UniversalCommitter
// composes several of these, one per pipeline stage and multi-leader seat.
type BaseCommitter struct {
	committee Committee
	dag       DagStore
	schedule  LeaderSchedule
	options   BaseCommitterOptions
	log       log.Logger
}

// NewBaseCommitter builds a BaseCommitter over the given collaborators. The
// committer holds non-owning references to committee, dag, and schedule:
// all three are long-lived and shared across every BaseCommitter in a
// UniversalCommitter.
func NewBaseCommitter(committee Committee, dag DagStore, schedule LeaderSchedule, options BaseCommitterOptions, logger log.Logger) *BaseCommitter {
	if logger == nil {
		logger = log.NewNoOpLogger()
	}
	return &BaseCommitter{
		committee: committee,
		dag:       dag,
		schedule:  schedule,
		options:   options,
		log:       logger,
	}
}

// ElectLeader returns the slot this committer nominates at round, if any.
// It elects a leader only on the rounds this committer's pipeline stage
// owns, and never before its round offset.
func (c *BaseCommitter) ElectLeader(round Round) (Slot, bool) {
	if round%c.options.WaveLength != c.options.RoundOffset {
		return Slot{}, false
	}
	if round < GenesisRound+c.options.RoundOffset {
		return Slot{}, false
	}
	authority := c.schedule.Leader(round, c.options.LeaderOffset)
	return Slot{Round: round, Authority: authority}, true
}

// decisionRound is the round at which the direct rule has enough
// information to decide slot: one full wave above it.
func (c *BaseCommitter) decisionRound(slot Slot) Round {
	return slot.Round + c.options.WaveLength - 1
}

// leaderBlock returns the unique block proposed at slot, applying the
// equivocation policy: if more than one conflicting block exists at slot,
// it is treated as if no leader block exists at all, forcing a Skip once
// that can be proven.
func (c *BaseCommitter) leaderBlock(slot Slot) (Block, bool) {
	var found Block
	count := 0
	for _, b := range c.dag.BlocksAtRound(slot.Round) {
		if b.Slot().Authority != slot.Authority {
			continue
		}
		found = b
		count++
	}
	if count != 1 {
		return nil, false
	}
	return found, true
}

// TryDirectDecide applies the direct decision rule: commit or skip a leader
// based purely on quorum support and certificates visible up to its decision
// round, WaveLength-1 rounds above it. It returns Undecided if the DAG has not yet advanced far enough, or
// if the evidence seen so far is inconclusive either way.
func (c *BaseCommitter) TryDirectDecide(slot Slot) LeaderStatus {
	if slot.Round == GenesisRound {
		return UndecidedStatus(slot)
	}

	decisionRound := c.decisionRound(slot)
	if c.dag.HighestAcceptedRound() < decisionRound {
		return UndecidedStatus(slot)
	}

	leader, ok := c.leaderBlock(slot)
	if !ok {
		return c.tryDecideNoLeader(slot)
	}
	return c.tryDecideWithLeader(slot, leader, decisionRound)
}

// tryDecideNoLeader handles the case where no (unique) leader block exists
// at slot: it can only conclude Skip once 2f+1 stake of round-(slot.Round+1)
// blocks is on record as not referencing a leader block at slot.
func (c *BaseCommitter) tryDecideNoLeader(slot Slot) LeaderStatus {
	votingRound := slot.Round + 1
	tally := quorum.NewTally[AuthorityIndex](c.committee.QuorumThreshold())
	for _, b := range c.dag.BlocksAtRound(votingRound) {
		if !references(b, slot.Authority) {
			tally.Add(b.Slot().Authority, c.committee.Stake(b.Slot().Authority))
		}
	}
	if tally.Reached() {
		c.log.Debug("no leader block and quorum of non-support, skipping", "slot", slot)
		return SkipStatus(slot)
	}
	return UndecidedStatus(slot)
}

// tryDecideWithLeader handles the case where a unique leader block exists:
// it counts the stake of round-decisionRound blocks whose ancestry certifies
// the leader, and commits, skips, or stays undecided depending on whether
// that weight has reached, or can no longer reach, quorum.
func (c *BaseCommitter) tryDecideWithLeader(slot Slot, leader Block, decisionRound Round) LeaderStatus {
	votingRound := slot.Round + 1
	supporters := make(map[AuthorityIndex]bool)
	for _, b := range c.dag.BlocksAtRound(votingRound) {
		if references(b, slot.Authority) {
			supporters[b.Slot().Authority] = true
		}
	}

	certifying := c.dag.BlocksAtRound(decisionRound)
	tally := quorum.NewTally[AuthorityIndex](c.committee.QuorumThreshold())
	var observedStake uint64
	for _, b := range certifying {
		observedStake += c.committee.Stake(b.Slot().Authority)
		if c.certifies(b, supporters, votingRound) {
			tally.Add(b.Slot().Authority, c.committee.Stake(b.Slot().Authority))
		}
	}

	if tally.Reached() {
		c.log.Debug("quorum of certificates, committing", "slot", slot)
		return CommitStatus(leader)
	}

	// Stake not yet seen at decisionRound could still arrive (block
	// dissemination is asynchronous) and might certify the leader; only
	// stake for authorities whose decisionRound block is already known and
	// does NOT certify is provably lost.
	unseenStake := c.committee.TotalStake() - observedStake
	if !tally.CouldStillReach(unseenStake) {
		c.log.Debug("remaining stake cannot reach quorum, skipping", "slot", slot)
		return SkipStatus(slot)
	}
	return UndecidedStatus(slot)
}

// certifies reports whether block's ancestry, walked back exactly to
// votingRound, includes one of the given supporter authorities. This
// generalizes the wave-length-3 "parent-of-parent supports the leader"
// check to an arbitrary wave length: it descends one round per hop,
// re-resolving each referenced parent through the DagStore.
func (c *BaseCommitter) certifies(block Block, supporters map[AuthorityIndex]bool, votingRound Round) bool {
	frontier := []Block{block}
	round := block.Slot().Round
	for round > votingRound {
		seen := make(map[AuthorityIndex]bool)
		var next []Block
		for _, b := range frontier {
			for _, parent := range b.Parents() {
				if seen[parent] {
					continue
				}
				seen[parent] = true
				if pb, ok := c.dag.GetBlock(Slot{Round: round - 1, Authority: parent}); ok {
					next = append(next, pb)
				}
			}
		}
		frontier = next
		round--
	}
	for _, b := range frontier {
		if b.Slot().Round == votingRound && supporters[b.Slot().Authority] {
			return true
		}
	}
	return false
}

// TryIndirectDecide recovers an undecided slot by following anchors: the
// nearest already-decided leader at a strictly higher round. anchors must
// be ordered by ascending round (nearest round first) as UniversalCommitter
// builds them while walking the DAG from high rounds down to low ones.
func (c *BaseCommitter) TryIndirectDecide(slot Slot, anchors []LeaderStatus) LeaderStatus {
	for _, anchor := range anchors {
		if anchor.Slot.Round <= slot.Round || anchor.Kind != StatusCommit {
			continue
		}
		if block, ok := c.ancestorAt(anchor.Block, slot); ok {
			c.log.Debug("indirect commit via anchor", "slot", slot, "anchor", anchor.Slot)
			return CommitStatus(block)
		}
		c.log.Debug("indirect skip, anchor does not reach slot", "slot", slot, "anchor", anchor.Slot)
		return SkipStatus(slot)
	}
	return UndecidedStatus(slot)
}

// ancestorAt walks start's ancestry down to slot.Round and returns the
// block at slot if start's history passes through it.
func (c *BaseCommitter) ancestorAt(start Block, slot Slot) (Block, bool) {
	frontier := []Block{start}
	round := start.Slot().Round
	for round > slot.Round {
		seen := make(map[AuthorityIndex]bool)
		var next []Block
		for _, b := range frontier {
			for _, parent := range b.Parents() {
				if seen[parent] {
					continue
				}
				seen[parent] = true
				if pb, ok := c.dag.GetBlock(Slot{Round: round - 1, Authority: parent}); ok {
					next = append(next, pb)
				}
			}
		}
		frontier = next
		round--
		if len(frontier) == 0 {
			return nil, false
		}
	}
	for _, b := range frontier {
		if b.Slot() == slot {
			return b, true
		}
	}
	return nil, false
}

// references reports whether b's parent set includes authority.
func references(b Block, authority AuthorityIndex) bool {
	for _, p := range b.Parents() {
		if p == authority {
			return true
		}
	}
	return false
}
