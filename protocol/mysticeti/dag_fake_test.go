// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package mysticeti

// fakeBlock is the simplest possible mysticeti.Block: a slot plus the
// authorities of the round-1 parents it references.
type fakeBlock struct {
	slot    Slot
	parents []AuthorityIndex
}

func (b *fakeBlock) Slot() Slot               { return b.slot }
func (b *fakeBlock) Parents() []AuthorityIndex { return b.parents }

var _ Block = (*fakeBlock)(nil)

// fakeDag is an in-memory DagStore used by unit and scenario tests. Blocks
// are added explicitly; HighestAcceptedRound tracks the highest round with
// at least one block.
type fakeDag struct {
	blocks       map[Slot]Block
	byRound      map[Round][]Block
	highest      Round
	lastCommit   uint64
	gcEnabled    bool
}

func newFakeDag() *fakeDag {
	return &fakeDag{
		blocks:    make(map[Slot]Block),
		byRound:   make(map[Round][]Block),
		gcEnabled: true,
	}
}

// add inserts a block at (round, authority) referencing the given
// authorities at round-1.
func (d *fakeDag) add(round Round, authority AuthorityIndex, parents []AuthorityIndex) *fakeBlock {
	b := &fakeBlock{slot: Slot{Round: round, Authority: authority}, parents: parents}
	d.blocks[b.slot] = b
	d.byRound[round] = append(d.byRound[round], b)
	if round > d.highest {
		d.highest = round
	}
	return b
}

func (d *fakeDag) HighestAcceptedRound() Round { return d.highest }
func (d *fakeDag) LastCommitIndex() uint64     { return d.lastCommit }
func (d *fakeDag) GCEnabled() bool             { return d.gcEnabled }

func (d *fakeDag) GetBlock(slot Slot) (Block, bool) {
	b, ok := d.blocks[slot]
	return b, ok
}

func (d *fakeDag) BlocksAtRound(round Round) []Block {
	return d.byRound[round]
}

var _ DagStore = (*fakeDag)(nil)

// fakeCommittee is an equal-stake committee of n authorities.
type fakeCommittee struct {
	n int
}

func (c *fakeCommittee) Stake(AuthorityIndex) uint64 { return 1 }
func (c *fakeCommittee) TotalStake() uint64          { return uint64(c.n) }
func (c *fakeCommittee) QuorumThreshold() uint64 {
	f := (uint64(c.n) - 1) / 3
	return uint64(c.n) - f
}
func (c *fakeCommittee) Hostname(a AuthorityIndex) string {
	return string(rune('A' + int(a)))
}

var _ Committee = (*fakeCommittee)(nil)

// fakeSchedule rotates the leader seat ℓ round-robin across n authorities,
// offset by the seat number, mirroring "schedule round R -> A,B,C,D
// rotating by R mod 4" from spec.md's end-to-end scenarios.
type fakeSchedule struct {
	n int
}

func (s *fakeSchedule) Leader(round Round, leaderOffset int) AuthorityIndex {
	return AuthorityIndex((int(round) + leaderOffset) % s.n)
}

var _ LeaderSchedule = (*fakeSchedule)(nil)

// fullyConnectedDag builds rounds 1..=upToRound, n authorities, every block
// referencing all n authorities at round-1 (unanimous parents).
func fullyConnectedDag(n int, upToRound Round) *fakeDag {
	d := newFakeDag()
	allAuthorities := make([]AuthorityIndex, n)
	for i := range allAuthorities {
		allAuthorities[i] = AuthorityIndex(i)
	}
	for round := Round(1); round <= upToRound; round++ {
		for a := 0; a < n; a++ {
			d.add(round, AuthorityIndex(a), allAuthorities)
		}
	}
	return d
}

// dagWithMissingLeader builds the same fully-connected DAG as
// fullyConnectedDag, except that missingAuthority produces no block at
// missingRound; every later round's blocks reference only the authorities
// that actually have a block at the round they point to, exactly as a real
// DagStore would.
func dagWithMissingLeader(n int, upToRound, missingRound Round, missingAuthority AuthorityIndex) *fakeDag {
	d := newFakeDag()
	present := make(map[Round]map[AuthorityIndex]bool)
	for round := Round(1); round <= upToRound; round++ {
		present[round] = make(map[AuthorityIndex]bool)
		for a := 0; a < n; a++ {
			if round == missingRound && AuthorityIndex(a) == missingAuthority {
				continue
			}
			present[round][AuthorityIndex(a)] = true
		}
	}
	for round := Round(1); round <= upToRound; round++ {
		var parents []AuthorityIndex
		if round > 1 {
			for a := range present[round-1] {
				parents = append(parents, a)
			}
		}
		for a := range present[round] {
			d.add(round, a, parents)
		}
	}
	return d
}
