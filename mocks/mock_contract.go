// Code generated by MockGen. DO NOT EDIT.
// Source: contract.go
//
// Generated by this command:
//
//	mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
//

// Package mocks is a generated GoMock package.
package mocks

import (
	context "context"
	reflect "reflect"
	time "time"

	contract "github.com/LdDl/micro-traffic-sim-grpc/contract"
	domain "github.com/LdDl/micro-traffic-sim-grpc/domain"
	uuid "github.com/google/uuid"
	gomock "go.uber.org/mock/gomock"
)

// MockSession is a mock of Session interface.
type MockSession struct {
	ctrl     *gomock.Controller
	recorder *MockSessionMockRecorder
	isgomock struct{}
}

// MockSessionMockRecorder is the mock recorder for MockSession.
type MockSessionMockRecorder struct {
	mock *MockSession
}

// NewMockSession creates a new mock instance.
func NewMockSession(ctrl *gomock.Controller) *MockSession {
	mock := &MockSession{ctrl: ctrl}
	mock.recorder = &MockSessionMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockSession) EXPECT() *MockSessionMockRecorder {
	return m.recorder
}

// AddCells mocks base method.
func (m *MockSession) AddCells(cells []domain.Cell) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "AddCells", cells)
}

// AddCells indicates an expected call of AddCells.
func (mr *MockSessionMockRecorder) AddCells(cells any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AddCells", reflect.TypeOf((*MockSession)(nil).AddCells), cells)
}

// AddConflictZone mocks base method.
func (m *MockSession) AddConflictZone(z domain.ConflictZone) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "AddConflictZone", z)
}

// AddConflictZone indicates an expected call of AddConflictZone.
func (mr *MockSessionMockRecorder) AddConflictZone(z any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AddConflictZone", reflect.TypeOf((*MockSession)(nil).AddConflictZone), z)
}

// AddTrafficLight mocks base method.
func (m *MockSession) AddTrafficLight(tl domain.TrafficLight) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "AddTrafficLight", tl)
}

// AddTrafficLight indicates an expected call of AddTrafficLight.
func (mr *MockSessionMockRecorder) AddTrafficLight(tl any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AddTrafficLight", reflect.TypeOf((*MockSession)(nil).AddTrafficLight), tl)
}

// AddTrip mocks base method.
func (m *MockSession) AddTrip(t domain.Trip) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "AddTrip", t)
}

// AddTrip indicates an expected call of AddTrip.
func (mr *MockSessionMockRecorder) AddTrip(t any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AddTrip", reflect.TypeOf((*MockSession)(nil).AddTrip), t)
}

// ID mocks base method.
func (m *MockSession) ID() uuid.UUID {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ID")
	ret0, _ := ret[0].(uuid.UUID)
	return ret0
}

// ID indicates an expected call of ID.
func (mr *MockSessionMockRecorder) ID() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ID", reflect.TypeOf((*MockSession)(nil).ID))
}

// Step mocks base method.
func (m *MockSession) Step() (domain.StepDump, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Step")
	ret0, _ := ret[0].(domain.StepDump)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Step indicates an expected call of Step.
func (mr *MockSessionMockRecorder) Step() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Step", reflect.TypeOf((*MockSession)(nil).Step))
}

// WorldSRID mocks base method.
func (m *MockSession) WorldSRID() domain.SRID {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "WorldSRID")
	ret0, _ := ret[0].(domain.SRID)
	return ret0
}

// WorldSRID indicates an expected call of WorldSRID.
func (mr *MockSessionMockRecorder) WorldSRID() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "WorldSRID", reflect.TypeOf((*MockSession)(nil).WorldSRID))
}

// MockIEngine is a mock of IEngine interface.
type MockIEngine struct {
	ctrl     *gomock.Controller
	recorder *MockIEngineMockRecorder
	isgomock struct{}
}

// MockIEngineMockRecorder is the mock recorder for MockIEngine.
type MockIEngineMockRecorder struct {
	mock *MockIEngine
}

// NewMockIEngine creates a new mock instance.
func NewMockIEngine(ctrl *gomock.Controller) *MockIEngine {
	mock := &MockIEngine{ctrl: ctrl}
	mock.recorder = &MockIEngineMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockIEngine) EXPECT() *MockIEngineMockRecorder {
	return m.recorder
}

// NewSession mocks base method.
func (m *MockIEngine) NewSession(srid domain.SRID) contract.Session {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "NewSession", srid)
	ret0, _ := ret[0].(contract.Session)
	return ret0
}

// NewSession indicates an expected call of NewSession.
func (mr *MockIEngineMockRecorder) NewSession(srid any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "NewSession", reflect.TypeOf((*MockIEngine)(nil).NewSession), srid)
}

// MockISessionStorage is a mock of ISessionStorage interface.
type MockISessionStorage struct {
	ctrl     *gomock.Controller
	recorder *MockISessionStorageMockRecorder
	isgomock struct{}
}

// MockISessionStorageMockRecorder is the mock recorder for MockISessionStorage.
type MockISessionStorageMockRecorder struct {
	mock *MockISessionStorage
}

// NewMockISessionStorage creates a new mock instance.
func NewMockISessionStorage(ctrl *gomock.Controller) *MockISessionStorage {
	mock := &MockISessionStorage{ctrl: ctrl}
	mock.recorder = &MockISessionStorageMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockISessionStorage) EXPECT() *MockISessionStorageMockRecorder {
	return m.recorder
}

// Len mocks base method.
func (m *MockISessionStorage) Len() int {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Len")
	ret0, _ := ret[0].(int)
	return ret0
}

// Len indicates an expected call of Len.
func (mr *MockISessionStorageMockRecorder) Len() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Len", reflect.TypeOf((*MockISessionStorage)(nil).Len))
}

// PurgeExpired mocks base method.
func (m *MockISessionStorage) PurgeExpired() int {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "PurgeExpired")
	ret0, _ := ret[0].(int)
	return ret0
}

// PurgeExpired indicates an expected call of PurgeExpired.
func (mr *MockISessionStorageMockRecorder) PurgeExpired() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PurgeExpired", reflect.TypeOf((*MockISessionStorage)(nil).PurgeExpired))
}

// Register mocks base method.
func (m *MockISessionStorage) Register(id uuid.UUID, sess contract.Session, ttl time.Duration) bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Register", id, sess, ttl)
	ret0, _ := ret[0].(bool)
	return ret0
}

// Register indicates an expected call of Register.
func (mr *MockISessionStorageMockRecorder) Register(id, sess, ttl any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Register", reflect.TypeOf((*MockISessionStorage)(nil).Register), id, sess, ttl)
}

// WithSession mocks base method.
func (m *MockISessionStorage) WithSession(id uuid.UUID, fn func(contract.Session)) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "WithSession", id, fn)
	ret0, _ := ret[0].(error)
	return ret0
}

// WithSession indicates an expected call of WithSession.
func (mr *MockISessionStorageMockRecorder) WithSession(id, fn any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "WithSession", reflect.TypeOf((*MockISessionStorage)(nil).WithSession), id, fn)
}

// MockWorker is a mock of Worker interface.
type MockWorker struct {
	ctrl     *gomock.Controller
	recorder *MockWorkerMockRecorder
	isgomock struct{}
}

// MockWorkerMockRecorder is the mock recorder for MockWorker.
type MockWorkerMockRecorder struct {
	mock *MockWorker
}

// NewMockWorker creates a new mock instance.
func NewMockWorker(ctrl *gomock.Controller) *MockWorker {
	mock := &MockWorker{ctrl: ctrl}
	mock.recorder = &MockWorkerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockWorker) EXPECT() *MockWorkerMockRecorder {
	return m.recorder
}

// Run mocks base method.
func (m *MockWorker) Run(ctx context.Context) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Run", ctx)
	ret0, _ := ret[0].(error)
	return ret0
}

// Run indicates an expected call of Run.
func (mr *MockWorkerMockRecorder) Run(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Run", reflect.TypeOf((*MockWorker)(nil).Run), ctx)
}

// MockISupervisor is a mock of ISupervisor interface.
type MockISupervisor struct {
	ctrl     *gomock.Controller
	recorder *MockISupervisorMockRecorder
	isgomock struct{}
}

// MockISupervisorMockRecorder is the mock recorder for MockISupervisor.
type MockISupervisorMockRecorder struct {
	mock *MockISupervisor
}

// NewMockISupervisor creates a new mock instance.
func NewMockISupervisor(ctrl *gomock.Controller) *MockISupervisor {
	mock := &MockISupervisor{ctrl: ctrl}
	mock.recorder = &MockISupervisorMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockISupervisor) EXPECT() *MockISupervisorMockRecorder {
	return m.recorder
}

// Add mocks base method.
func (m *MockISupervisor) Add(worker ...contract.Worker) contract.ISupervisor {
	m.ctrl.T.Helper()
	varargs := []any{}
	for _, a := range worker {
		varargs = append(varargs, a)
	}
	ret := m.ctrl.Call(m, "Add", varargs...)
	ret0, _ := ret[0].(contract.ISupervisor)
	return ret0
}

// Add indicates an expected call of Add.
func (mr *MockISupervisorMockRecorder) Add(worker ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Add", reflect.TypeOf((*MockISupervisor)(nil).Add), worker...)
}

// Run mocks base method.
func (m *MockISupervisor) Run(ctx context.Context) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Run", ctx)
}

// Run indicates an expected call of Run.
func (mr *MockISupervisorMockRecorder) Run(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Run", reflect.TypeOf((*MockISupervisor)(nil).Run), ctx)
}

// Start mocks base method.
func (m *MockISupervisor) Start(ctx context.Context, worker contract.Worker) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Start", ctx, worker)
}

// Start indicates an expected call of Start.
func (mr *MockISupervisorMockRecorder) Start(ctx, worker any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Start", reflect.TypeOf((*MockISupervisor)(nil).Start), ctx, worker)
}
