// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package mysticeti

import (
	"fmt"

	"github.com/luxfi/log"
)

// UniversalCommitterBuilder builds a UniversalCommitter. By default it
// builds a single BaseCommitter: one leader, no pipeline.
type UniversalCommitterBuilder struct {
	committee Committee
	dag       DagStore
	schedule  LeaderSchedule
	metrics   *Metrics
	log       log.Logger

	waveLength      Round
	numberOfLeaders int
	pipeline        bool
}

// NewUniversalCommitterBuilder creates a builder over the given
// collaborators, defaulted to wave_length=3, number_of_leaders=1,
// pipeline=false. metrics may be nil to disable metrics entirely; logger
// may be nil to use a no-op logger.
func NewUniversalCommitterBuilder(committee Committee, dag DagStore, schedule LeaderSchedule, metrics *Metrics, logger log.Logger) *UniversalCommitterBuilder {
	if logger == nil {
		logger = log.NewNoOpLogger()
	}
	return &UniversalCommitterBuilder{
		committee:       committee,
		dag:             dag,
		schedule:        schedule,
		metrics:         metrics,
		log:             logger,
		waveLength:      DefaultWaveLength,
		numberOfLeaders: 1,
		pipeline:        false,
	}
}

// WithWaveLength overrides the default wave length.
func (b *UniversalCommitterBuilder) WithWaveLength(waveLength Round) *UniversalCommitterBuilder {
	b.waveLength = waveLength
	return b
}

// WithNumberOfLeaders overrides the number of multi-leader seats per round.
func (b *UniversalCommitterBuilder) WithNumberOfLeaders(numberOfLeaders int) *UniversalCommitterBuilder {
	b.numberOfLeaders = numberOfLeaders
	return b
}

// WithPipeline enables or disables pipelining: one independent BaseCommitter
// rotation per round offset within a wave, instead of a single rotation.
func (b *UniversalCommitterBuilder) WithPipeline(pipeline bool) *UniversalCommitterBuilder {
	b.pipeline = pipeline
	return b
}

// Build validates the accumulated knobs and constructs the
// UniversalCommitter. It builds stages x numberOfLeaders BaseCommitters, in
// lexicographic (round_offset, leader_offset) order, where stages is
// waveLength if pipelining is enabled and 1 otherwise.
func (b *UniversalCommitterBuilder) Build() (*UniversalCommitter, error) {
	if b.waveLength < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrWaveLengthTooShort, b.waveLength)
	}
	if b.numberOfLeaders < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrNoLeaders, b.numberOfLeaders)
	}

	stages := Round(1)
	if b.pipeline {
		stages = b.waveLength
	}

	var committers []*BaseCommitter
	for roundOffset := Round(0); roundOffset < stages; roundOffset++ {
		for leaderOffset := 0; leaderOffset < b.numberOfLeaders; leaderOffset++ {
			options := BaseCommitterOptions{
				WaveLength:   b.waveLength,
				RoundOffset:  roundOffset,
				LeaderOffset: leaderOffset,
			}
			committers = append(committers, NewBaseCommitter(b.committee, b.dag, b.schedule, options, b.log))
		}
	}

	return &UniversalCommitter{
		committee:       b.committee,
		dag:             b.dag,
		committers:      committers,
		metrics:         b.metrics,
		log:             b.log,
		numberOfLeaders: b.numberOfLeaders,
	}, nil
}
