// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package committee provides the per-epoch validator set configuration the
// commit rule needs: stake weight and hostname per authority. It plays the
// same ambient role for the committer that context.Context plays for the
// teacher's other protocol engines, trimmed to the fields this domain
// actually reads (no keystore, shared memory, or warp signer: those
// collaborators are out of the committer's scope).
package committee

import (
	"fmt"

	"github.com/luxfi/committer/protocol/mysticeti"
)

// Member is one validator's static configuration for an epoch.
type Member struct {
	Hostname string
	Stake    uint64
}

// Static is a fixed, in-memory mysticeti.Committee built from a slice of
// members indexed by authority position. It is the reference
// implementation used by tests and by the in-memory engine wiring; real
// deployments back mysticeti.Committee with the node's validator manager
// instead.
type Static struct {
	members []Member
	total   uint64
}

// New builds a Static committee from members, indexed by slice position
// (member i is mysticeti.AuthorityIndex(i)).
func New(members []Member) *Static {
	var total uint64
	for _, m := range members {
		total += m.Stake
	}
	return &Static{members: members, total: total}
}

var _ mysticeti.Committee = (*Static)(nil)

// Stake implements mysticeti.Committee.
func (c *Static) Stake(a mysticeti.AuthorityIndex) uint64 {
	if int(a) < 0 || int(a) >= len(c.members) {
		return 0
	}
	return c.members[a].Stake
}

// TotalStake implements mysticeti.Committee.
func (c *Static) TotalStake() uint64 {
	return c.total
}

// QuorumThreshold implements mysticeti.Committee. It computes 2f+1 from a
// committee sized 3f+1, rounding up so that committees not shaped as an
// exact 3f+1 still get a safe (conservative) threshold.
func (c *Static) QuorumThreshold() uint64 {
	return c.total - (c.total-1)/3
}

// Hostname implements mysticeti.Committee.
func (c *Static) Hostname(a mysticeti.AuthorityIndex) string {
	if int(a) < 0 || int(a) >= len(c.members) {
		return fmt.Sprintf("authority-%d", a)
	}
	return c.members[a].Hostname
}

// Size returns the number of authorities in the committee.
func (c *Static) Size() int {
	return len(c.members)
}
