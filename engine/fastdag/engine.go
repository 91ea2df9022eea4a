// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package fastdag

import (
	"context"
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/luxfi/committer/config"
	"github.com/luxfi/committer/protocol/mysticeti"
	"github.com/luxfi/log"
)

// Metrics holds the engine-level prometheus collectors that sit above
// mysticeti.Metrics: block acceptance counts and the current round gauge.
type Metrics struct {
	blocksAccepted prometheus.Counter
	currentRound   prometheus.Gauge
}

// NewMetrics registers the engine's collectors against reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		blocksAccepted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fastdag_blocks_accepted_total",
			Help: "Total number of blocks accepted into the DAG store.",
		}),
		currentRound: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "fastdag_current_round",
			Help: "Highest round with at least one accepted block.",
		}),
	}
	for _, c := range []prometheus.Collector{m.blocksAccepted, m.currentRound} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("fastdag: failed to register metric: %w", err)
		}
	}
	return m, nil
}

// Engine drives the commit rule against a live DAG. It owns no networking,
// block construction, or execution: it accepts blocks other components have
// already validated and disseminated, runs the commit rule after every
// acceptance, and publishes decided leaders on Decisions().
//
// Block proposal, signing, transaction collection, and VM application are
// out of scope for this package; see spec.md's Non-goals.
type Engine struct {
	mu sync.Mutex

	committee  mysticeti.Committee
	dag        *MemDag
	committer  *mysticeti.UniversalCommitter
	syncedPath *mysticeti.SyncedCommitPath

	lastDecided mysticeti.Slot
	decideCh    chan mysticeti.DecidedLeader

	log     log.Logger
	metrics *Metrics
}

// New builds an Engine from committee, an in-memory DAG retaining
// retainRounds worth of history below the last commit, and cfg (validated
// before use). metrics and logger may be nil.
func New(committee mysticeti.Committee, schedule mysticeti.LeaderSchedule, retainRounds mysticeti.Round, cfg config.Config, committerMetrics *mysticeti.Metrics, engineMetrics *Metrics, logger log.Logger) (*Engine, error) {
	if err := config.NewValidator().Validate(&cfg); err != nil {
		return nil, fmt.Errorf("fastdag: invalid config: %w", err)
	}
	if logger == nil {
		logger = log.NewNoOpLogger()
	}

	dag := NewMemDag(retainRounds)
	builder := mysticeti.NewUniversalCommitterBuilder(committee, dag, schedule, committerMetrics, logger).
		WithWaveLength(mysticeti.Round(cfg.WaveLength)).
		WithNumberOfLeaders(cfg.NumberOfLeaders).
		WithPipeline(cfg.Pipeline)
	committer, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("fastdag: failed to build committer: %w", err)
	}

	return &Engine{
		committee:  committee,
		dag:        dag,
		committer:  committer,
		syncedPath: mysticeti.NewSyncedCommitPath(committee, dag, committerMetrics, logger),
		decideCh:   make(chan mysticeti.DecidedLeader, 1024),
		log:        logger,
		metrics:    engineMetrics,
	}, nil
}

// Decisions returns the channel decided leaders are published on. Callers
// must drain it; a full channel causes AcceptBlock to drop the decision
// with a warning rather than block the caller forever.
func (e *Engine) Decisions() <-chan mysticeti.DecidedLeader {
	return e.decideCh
}

// AcceptBlock records block as accepted and re-runs the commit rule. It is
// safe to call from multiple goroutines, e.g. one per peer connection.
func (e *Engine) AcceptBlock(ctx context.Context, block mysticeti.Block) {
	e.mu.Lock()
	e.dag.Accept(block)
	e.mu.Unlock()
	if e.metrics != nil {
		e.metrics.blocksAccepted.Inc()
		e.metrics.currentRound.Set(float64(e.dag.HighestAcceptedRound()))
	}
	e.log.Debug("accepted block", "slot", block.Slot())
	e.tryDecide(ctx)
}

// tryDecide runs the commit rule and publishes every newly decided leader.
func (e *Engine) tryDecide(ctx context.Context) {
	e.mu.Lock()
	decided := e.committer.TryDecide(e.lastDecided)
	if len(decided) > 0 {
		e.lastDecided = decided[len(decided)-1].Slot
	}
	for _, leader := range decided {
		e.dag.AdvanceCommit(e.dag.LastCommitIndex()+1, leader.Slot.Round)
	}
	e.mu.Unlock()

	for _, leader := range decided {
		select {
		case e.decideCh <- leader:
		case <-ctx.Done():
			return
		default:
			e.log.Warn("decision channel full, dropping decided leader", "slot", leader.Slot)
		}
		e.logDecision(leader)
	}
}

// InstallSyncedCommits admits as much of queue as fits within budget through
// the synced-commit fast path, publishing each installed leader exactly as
// AcceptBlock does. Use this while catching up from state sync, before the
// local DAG has enough of its own history to re-run the commit rule.
func (e *Engine) InstallSyncedCommits(ctx context.Context, queue *[]mysticeti.TrustedCommit, budget int) {
	decided := e.syncedPath.TryDecideSynced(queue, budget)
	for _, leader := range decided {
		select {
		case e.decideCh <- leader:
		case <-ctx.Done():
			return
		default:
			e.log.Warn("decision channel full, dropping synced leader", "slot", leader.Slot)
		}
		e.logDecision(leader)
	}
}

func (e *Engine) logDecision(leader mysticeti.DecidedLeader) {
	switch leader.Kind {
	case mysticeti.StatusCommit:
		e.log.Info("committed leader", "slot", leader.Slot)
	case mysticeti.StatusSkip:
		e.log.Debug("skipped leader", "slot", leader.Slot)
	}
}
