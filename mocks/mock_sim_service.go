// Code generated by MockGen. DO NOT EDIT.
// Source: sim_service.go
//
// Generated by this command:
//
//	mockgen -source=sim_service.go -destination=../mocks/mock_sim_service.go -package=mocks
//

// Package mocks is a generated GoMock package.
package mocks

import (
	reflect "reflect"

	domain "github.com/LdDl/micro-traffic-sim-grpc/domain"
	uuid "github.com/google/uuid"
	gomock "go.uber.org/mock/gomock"
)

// MockISimService is a mock of ISimService interface.
type MockISimService struct {
	ctrl     *gomock.Controller
	recorder *MockISimServiceMockRecorder
	isgomock struct{}
}

// MockISimServiceMockRecorder is the mock recorder for MockISimService.
type MockISimServiceMockRecorder struct {
	mock *MockISimService
}

// NewMockISimService creates a new mock instance.
func NewMockISimService(ctrl *gomock.Controller) *MockISimService {
	mock := &MockISimService{ctrl: ctrl}
	mock.recorder = &MockISimServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockISimService) EXPECT() *MockISimServiceMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockISimService) Create(srid int32) (uuid.UUID, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", srid)
	ret0, _ := ret[0].(uuid.UUID)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Create indicates an expected call of Create.
func (mr *MockISimServiceMockRecorder) Create(srid any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockISimService)(nil).Create), srid)
}

// Info mocks base method.
func (m *MockISimService) Info(id uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Info", id)
	ret0, _ := ret[0].(error)
	return ret0
}

// Info indicates an expected call of Info.
func (mr *MockISimServiceMockRecorder) Info(id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Info", reflect.TypeOf((*MockISimService)(nil).Info), id)
}

// PushCells mocks base method.
func (m *MockISimService) PushCells(id uuid.UUID, cells []domain.Cell) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "PushCells", id, cells)
	ret0, _ := ret[0].(error)
	return ret0
}

// PushCells indicates an expected call of PushCells.
func (mr *MockISimServiceMockRecorder) PushCells(id, cells any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PushCells", reflect.TypeOf((*MockISimService)(nil).PushCells), id, cells)
}

// PushConflictZones mocks base method.
func (m *MockISimService) PushConflictZones(id uuid.UUID, zones []domain.ConflictZone) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "PushConflictZones", id, zones)
	ret0, _ := ret[0].(error)
	return ret0
}

// PushConflictZones indicates an expected call of PushConflictZones.
func (mr *MockISimServiceMockRecorder) PushConflictZones(id, zones any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PushConflictZones", reflect.TypeOf((*MockISimService)(nil).PushConflictZones), id, zones)
}

// PushTrafficLights mocks base method.
func (m *MockISimService) PushTrafficLights(id uuid.UUID, lights []domain.TrafficLight) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "PushTrafficLights", id, lights)
	ret0, _ := ret[0].(error)
	return ret0
}

// PushTrafficLights indicates an expected call of PushTrafficLights.
func (mr *MockISimServiceMockRecorder) PushTrafficLights(id, lights any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PushTrafficLights", reflect.TypeOf((*MockISimService)(nil).PushTrafficLights), id, lights)
}

// PushTrips mocks base method.
func (m *MockISimService) PushTrips(id uuid.UUID, trips []domain.Trip) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "PushTrips", id, trips)
	ret0, _ := ret[0].(error)
	return ret0
}

// PushTrips indicates an expected call of PushTrips.
func (mr *MockISimServiceMockRecorder) PushTrips(id, trips any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PushTrips", reflect.TypeOf((*MockISimService)(nil).PushTrips), id, trips)
}

// Step mocks base method.
func (m *MockISimService) Step(id uuid.UUID) (domain.StepDump, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Step", id)
	ret0, _ := ret[0].(domain.StepDump)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Step indicates an expected call of Step.
func (mr *MockISimServiceMockRecorder) Step(id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Step", reflect.TypeOf((*MockISimService)(nil).Step), id)
}
