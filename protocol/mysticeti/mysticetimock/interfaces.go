// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package mysticetimock provides gomock-style mocks of the collaborator
// interfaces mysticeti.DagStore and mysticeti.LeaderSchedule consume.
//
// Code generated by MockGen would normally live here; it is hand-written in
// this tree to the same shape MockGen produces, following
// validator/validatorsmock's re-export pattern, so it can be regenerated
// with `go generate ./...` once mockgen runs in CI.
package mysticetimock

import (
	"reflect"

	"go.uber.org/mock/gomock"

	"github.com/luxfi/committer/protocol/mysticeti"
)

// MockDagStore is a mock of the mysticeti.DagStore interface.
type MockDagStore struct {
	ctrl     *gomock.Controller
	recorder *MockDagStoreMockRecorder
}

// MockDagStoreMockRecorder is the mock recorder for MockDagStore.
type MockDagStoreMockRecorder struct {
	mock *MockDagStore
}

// NewMockDagStore creates a new mock instance.
func NewMockDagStore(ctrl *gomock.Controller) *MockDagStore {
	mock := &MockDagStore{ctrl: ctrl}
	mock.recorder = &MockDagStoreMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockDagStore) EXPECT() *MockDagStoreMockRecorder {
	return m.recorder
}

// HighestAcceptedRound mocks base method.
func (m *MockDagStore) HighestAcceptedRound() mysticeti.Round {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "HighestAcceptedRound")
	ret0, _ := ret[0].(mysticeti.Round)
	return ret0
}

// HighestAcceptedRound indicates an expected call.
func (mr *MockDagStoreMockRecorder) HighestAcceptedRound() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "HighestAcceptedRound", reflect.TypeOf((*MockDagStore)(nil).HighestAcceptedRound))
}

// LastCommitIndex mocks base method.
func (m *MockDagStore) LastCommitIndex() uint64 {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "LastCommitIndex")
	ret0, _ := ret[0].(uint64)
	return ret0
}

// LastCommitIndex indicates an expected call.
func (mr *MockDagStoreMockRecorder) LastCommitIndex() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LastCommitIndex", reflect.TypeOf((*MockDagStore)(nil).LastCommitIndex))
}

// GCEnabled mocks base method.
func (m *MockDagStore) GCEnabled() bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GCEnabled")
	ret0, _ := ret[0].(bool)
	return ret0
}

// GCEnabled indicates an expected call.
func (mr *MockDagStoreMockRecorder) GCEnabled() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GCEnabled", reflect.TypeOf((*MockDagStore)(nil).GCEnabled))
}

// GetBlock mocks base method.
func (m *MockDagStore) GetBlock(slot mysticeti.Slot) (mysticeti.Block, bool) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetBlock", slot)
	ret0, _ := ret[0].(mysticeti.Block)
	ret1, _ := ret[1].(bool)
	return ret0, ret1
}

// GetBlock indicates an expected call.
func (mr *MockDagStoreMockRecorder) GetBlock(slot interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetBlock", reflect.TypeOf((*MockDagStore)(nil).GetBlock), slot)
}

// BlocksAtRound mocks base method.
func (m *MockDagStore) BlocksAtRound(round mysticeti.Round) []mysticeti.Block {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "BlocksAtRound", round)
	ret0, _ := ret[0].([]mysticeti.Block)
	return ret0
}

// BlocksAtRound indicates an expected call.
func (mr *MockDagStoreMockRecorder) BlocksAtRound(round interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "BlocksAtRound", reflect.TypeOf((*MockDagStore)(nil).BlocksAtRound), round)
}

// MockLeaderSchedule is a mock of the mysticeti.LeaderSchedule interface.
type MockLeaderSchedule struct {
	ctrl     *gomock.Controller
	recorder *MockLeaderScheduleMockRecorder
}

// MockLeaderScheduleMockRecorder is the mock recorder for MockLeaderSchedule.
type MockLeaderScheduleMockRecorder struct {
	mock *MockLeaderSchedule
}

// NewMockLeaderSchedule creates a new mock instance.
func NewMockLeaderSchedule(ctrl *gomock.Controller) *MockLeaderSchedule {
	mock := &MockLeaderSchedule{ctrl: ctrl}
	mock.recorder = &MockLeaderScheduleMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockLeaderSchedule) EXPECT() *MockLeaderScheduleMockRecorder {
	return m.recorder
}

// Leader mocks base method.
func (m *MockLeaderSchedule) Leader(round mysticeti.Round, leaderOffset int) mysticeti.AuthorityIndex {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Leader", round, leaderOffset)
	ret0, _ := ret[0].(mysticeti.AuthorityIndex)
	return ret0
}

// Leader indicates an expected call.
func (mr *MockLeaderScheduleMockRecorder) Leader(round, leaderOffset interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Leader", reflect.TypeOf((*MockLeaderSchedule)(nil).Leader), round, leaderOffset)
}
