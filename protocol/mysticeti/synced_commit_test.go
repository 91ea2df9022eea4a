// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package mysticeti

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newSyncedDag(gcEnabled bool, lastCommit uint64, leaders ...Slot) *fakeDag {
	d := newFakeDag()
	d.gcEnabled = gcEnabled
	d.lastCommit = lastCommit
	for _, slot := range leaders {
		d.add(slot.Round, slot.Authority, nil)
	}
	return d
}

func TestTryDecideSyncedAdmitsWithinBudget(t *testing.T) {
	committee := &fakeCommittee{n: 4}
	leaders := []Slot{{1, 0}, {2, 1}, {3, 2}, {4, 3}}
	dag := newSyncedDag(true, 0, leaders...)
	path := NewSyncedCommitPath(committee, dag, nil, nil)

	queue := []TrustedCommit{
		{Index: 1, Leader: leaders[0]},
		{Index: 2, Leader: leaders[1]},
		{Index: 3, Leader: leaders[2]},
		{Index: 4, Leader: leaders[3]},
	}

	decided := path.TryDecideSynced(&queue, 2)
	require.Len(t, decided, 2)
	require.Equal(t, leaders[0], decided[0].Slot)
	require.Equal(t, leaders[1], decided[1].Slot)
	require.Len(t, queue, 2, "unconsumed tail remains queued for the next call")
	require.Equal(t, uint64(3), queue[0].Index)
}

func TestTryDecideSyncedDiscardsAlreadyAppliedPrefix(t *testing.T) {
	committee := &fakeCommittee{n: 4}
	leaders := []Slot{{1, 0}, {2, 1}, {3, 2}}
	dag := newSyncedDag(true, 2, leaders...) // commits 1 and 2 already applied
	path := NewSyncedCommitPath(committee, dag, nil, nil)

	queue := []TrustedCommit{
		{Index: 1, Leader: leaders[0]},
		{Index: 2, Leader: leaders[1]},
		{Index: 3, Leader: leaders[2]},
	}

	decided := path.TryDecideSynced(&queue, 5)
	require.Len(t, decided, 1)
	require.Equal(t, leaders[2], decided[0].Slot)
	require.Empty(t, queue)
}

func TestTryDecideSyncedNoOpWhenGCDisabled(t *testing.T) {
	committee := &fakeCommittee{n: 4}
	dag := newSyncedDag(false, 0)
	path := NewSyncedCommitPath(committee, dag, nil, nil)

	queue := []TrustedCommit{{Index: 1, Leader: Slot{1, 0}}}
	decided := path.TryDecideSynced(&queue, 5)
	require.Nil(t, decided)
	require.Len(t, queue, 1, "queue must be left untouched when the path refuses to run")
}

func TestTryDecideSyncedZeroBudgetIsNoOpWhenGCDisabled(t *testing.T) {
	committee := &fakeCommittee{n: 4}
	dag := newSyncedDag(false, 0)
	path := NewSyncedCommitPath(committee, dag, nil, nil)

	queue := []TrustedCommit{{Index: 1, Leader: Slot{1, 0}}}
	require.NotPanics(t, func() {
		decided := path.TryDecideSynced(&queue, 0)
		require.Nil(t, decided)
	}, "GC-disabled check must run before the zero-budget assertion")
	require.Len(t, queue, 1)
}

func TestTryDecideSyncedPanicsOnZeroBudget(t *testing.T) {
	committee := &fakeCommittee{n: 4}
	dag := newSyncedDag(true, 0)
	path := NewSyncedCommitPath(committee, dag, nil, nil)

	queue := []TrustedCommit{{Index: 1, Leader: Slot{1, 0}}}
	require.Panics(t, func() {
		path.TryDecideSynced(&queue, 0)
	})
}

func TestTryDecideSyncedPanicsOnGap(t *testing.T) {
	committee := &fakeCommittee{n: 4}
	dag := newSyncedDag(true, 0)
	path := NewSyncedCommitPath(committee, dag, nil, nil)

	queue := []TrustedCommit{{Index: 2, Leader: Slot{2, 0}}} // index 1 never arrived
	require.Panics(t, func() {
		path.TryDecideSynced(&queue, 5)
	})
}

func TestTryDecideSyncedPanicsOnMissingLeaderBlock(t *testing.T) {
	committee := &fakeCommittee{n: 4}
	dag := newSyncedDag(true, 0) // no blocks added at all
	path := NewSyncedCommitPath(committee, dag, nil, nil)

	queue := []TrustedCommit{{Index: 1, Leader: Slot{1, 0}}}
	require.Panics(t, func() {
		path.TryDecideSynced(&queue, 5)
	})
}

func TestTryDecideSyncedEmptyQueueIsNoOp(t *testing.T) {
	committee := &fakeCommittee{n: 4}
	dag := newSyncedDag(true, 0)
	path := NewSyncedCommitPath(committee, dag, nil, nil)

	queue := []TrustedCommit{}
	decided := path.TryDecideSynced(&queue, 5)
	require.Nil(t, decided)
}
