// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package mysticeti

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the committer's prometheus collectors. It follows the
// vector-of-labeled-counters shape of protocol/prism's early-termination
// metrics: one CounterVec registered once, with label combinations cached
// as they are first used.
type Metrics struct {
	committedLeadersTotal *prometheus.CounterVec
}

// NewMetrics registers the committer's collectors against reg. Passing a
// nil Metrics pointer to the committer types is valid and disables metrics
// entirely, which callers use in tests that don't care about observability.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	vec := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "committed_leaders_total",
		Help: "Total number of decided leaders, by proposer hostname and decision-status.",
	}, []string{"authority", "status"})
	if err := reg.Register(vec); err != nil {
		return nil, fmt.Errorf("%w: %w", errCommittedLeadersVec, err)
	}
	return &Metrics{committedLeadersTotal: vec}, nil
}

// recordDecision increments the counter for a single emitted DecidedLeader,
// keyed as "{direct|indirect|synced}-{commit|skip}" per spec.md section 6.
func (m *Metrics) recordDecision(committee Committee, leader DecidedLeader, decision Decision) {
	if m == nil {
		return
	}
	hostname := committee.Hostname(leader.Slot.Authority)
	status := fmt.Sprintf("%s-%s", decision, leader.Kind)
	m.committedLeadersTotal.WithLabelValues(hostname, status).Inc()
}
