// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package mysticeti

import (
	"github.com/luxfi/log"
)

// UniversalCommitter composes an ordered list of BaseCommitters, one per
// pipeline stage times multi-leader seat, and drives decisions for a range
// of rounds against the current DAG.
type UniversalCommitter struct {
	committee  Committee
	dag        DagStore
	committers []*BaseCommitter
	metrics    *Metrics
	log        log.Logger

	numberOfLeaders int
}

type pendingDecision struct {
	status   LeaderStatus
	decision Decision
}

// TryDecide decides as much of the DAG as currently possible, starting just
// after lastDecided. It is idempotent: calling it again with the same
// lastDecided against an unchanged DAG returns the same result, and calling
// it with lastDecided advanced past a prior result resumes cleanly.
func (u *UniversalCommitter) TryDecide(lastDecided Slot) []DecidedLeader {
	highestAccepted := u.dag.HighestAcceptedRound()

	// With a single leader per round there is nothing new to decide at
	// lastDecided.Round itself, and revisiting it risks a different
	// elected identity if the leader schedule changed underneath us. With
	// multiple leaders per round, other seats at that round may still be
	// undecided, so it must be revisited.
	firstRound := lastDecided.Round
	if u.numberOfLeaders == 1 {
		firstRound = lastDecided.Round + 1
	}

	// Rounds above highestAccepted-2 are not attempted: deciding round R
	// needs blocks from round R+wave-1, so with a wave length of 3 or more
	// nothing above highestAccepted-2 can be decided yet. With a wave length
	// of 2, round highestAccepted-1 is not attempted in this pass either.
	lastRound := saturatingSub2(highestAccepted)

	var pending []pendingDecision

decide:
	for round := lastRound; round >= firstRound; round-- {
		for i := len(u.committers) - 1; i >= 0; i-- {
			committer := u.committers[i]
			slot, ok := committer.ElectLeader(round)
			if !ok {
				continue
			}
			if slot == lastDecided {
				break decide
			}

			u.log.Debug("trying to decide", "slot", slot, "round_offset", committer.options.RoundOffset, "leader_offset", committer.options.LeaderOffset)

			status := committer.TryDirectDecide(slot)
			decision := DecisionDirect
			if !status.IsDecided() {
				status = committer.TryIndirectDecide(slot, statusesOf(pending))
				decision = DecisionIndirect
			}
			u.log.Debug("decided attempt", "slot", slot, "status", status, "decision", decision)
			pending = prepend(pending, pendingDecision{status: status, decision: decision})
		}
		if round == 0 {
			// Round is unsigned; avoid wrapping below GenesisRound.
			break
		}
	}

	decided := make([]DecidedLeader, 0, len(pending))
	for _, entry := range pending {
		if entry.status.Slot.Round == GenesisRound {
			continue
		}
		leader, ok := entry.status.IntoDecidedLeader()
		if !ok {
			break
		}
		u.metrics.recordDecision(u.committee, leader, entry.decision)
		decided = append(decided, leader)
	}
	u.log.Debug("try_decide", "last_decided", lastDecided, "decided", len(decided))
	return decided
}

// GetLeaders returns the authority nominated by each BaseCommitter at
// round, in construction order. A BaseCommitter that has no leader for
// this round (wrong pipeline stage) contributes nothing.
func (u *UniversalCommitter) GetLeaders(round Round) []AuthorityIndex {
	var leaders []AuthorityIndex
	for _, committer := range u.committers {
		if slot, ok := committer.ElectLeader(round); ok {
			leaders = append(leaders, slot.Authority)
		}
	}
	return leaders
}

// statusesOf extracts the LeaderStatus values from pending, preserving
// order (ascending round, nearest-to-current-slot first), which is exactly
// the order TryIndirectDecide expects its anchors in.
func statusesOf(pending []pendingDecision) []LeaderStatus {
	statuses := make([]LeaderStatus, len(pending))
	for i, p := range pending {
		statuses[i] = p.status
	}
	return statuses
}

// prepend inserts entry at the front of pending. Rounds are processed
// high-to-low and each new (lower) round is pushed to the front, so the
// slice ends up ordered ascending by round - the same ordering a VecDeque
// front-push achieves.
func prepend(pending []pendingDecision, entry pendingDecision) []pendingDecision {
	out := make([]pendingDecision, 0, len(pending)+1)
	out = append(out, entry)
	out = append(out, pending...)
	return out
}

func saturatingSub2(r Round) Round {
	if r < 2 {
		return 0
	}
	return r - 2
}
