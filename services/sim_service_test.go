package services

import (
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/LdDl/micro-traffic-sim-grpc/contract"
	"github.com/LdDl/micro-traffic-sim-grpc/domain"
	errs "github.com/LdDl/micro-traffic-sim-grpc/errors"
	"github.com/LdDl/micro-traffic-sim-grpc/mocks"
	"github.com/LdDl/micro-traffic-sim-grpc/observability"
)

func TestParseSessionID(t *testing.T) {
	req := require.New(t)

	tests := []struct {
		description string
		raw         string
		wantErr     bool
	}{
		{"Should accept a canonical v4 UUID", uuid.New().String(), false},
		{"Should reject garbage", "not-a-uuid", true},
		{"Should reject an empty string", "", true},
		// Version 1 layout: well-formed UUID, wrong version digit.
		{"Should reject a non-v4 UUID", "00000000-0000-1000-8000-000000000000", true},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			id, err := ParseSessionID(tt.raw)
			if tt.wantErr {
				req.ErrorIs(err, errs.ErrInvalidSessionID)
				req.Contains(err.Error(), fmt.Sprintf("'%s'", tt.raw))
				return
			}
			req.NoError(err)
			req.Equal(tt.raw, id.String())
		})
	}
}

func newTestService(t *testing.T) (*SimService, *mocks.MockIEngine, *mocks.MockISessionStorage) {
	ctrl := gomock.NewController(t)
	engine := mocks.NewMockIEngine(ctrl)
	storage := mocks.NewMockISessionStorage(ctrl)
	service := NewSimService(slog.Default(), engine, storage, 4*time.Minute, observability.NewMonitoringManager())
	return service, engine, storage
}

func TestSimService_Create(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, engine, storage := newTestService(t)

	sessionID := uuid.New()
	sess := mocks.NewMockSession(ctrl)
	sess.EXPECT().ID().Return(sessionID).AnyTimes()

	// Given an engine that honours the geographic SRID
	engine.EXPECT().NewSession(domain.SRIDWGS84).Return(sess)
	storage.EXPECT().Register(sessionID, sess, 4*time.Minute).Return(false)

	// When a session is created with srid 4326
	id, err := service.Create(4326)

	// Then the engine session is registered under its own identifier
	req.NoError(err)
	req.Equal(sessionID, id)
}

func TestSimService_BatchBounds(t *testing.T) {
	req := require.New(t)
	id := uuid.New()

	tests := []struct {
		description string
		count       int
		wantErr     error
	}{
		{"Should reject an empty batch", 0, errs.ErrNoData},
		{"Should reject an oversized batch", MaxBatchSize + 1, errs.ErrTooManyEntities},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			// Storage carries no expectations: validation fails before
			// the registry is ever consulted.
			service, _, _ := newTestService(t)

			cells := make([]domain.Cell, tt.count)
			err := service.PushCells(id, cells)
			req.ErrorIs(err, tt.wantErr)

			trips := make([]domain.Trip, tt.count)
			err = service.PushTrips(id, trips)
			req.ErrorIs(err, tt.wantErr)

			zones := make([]domain.ConflictZone, tt.count)
			err = service.PushConflictZones(id, zones)
			req.ErrorIs(err, tt.wantErr)
		})
	}
}

func TestSimService_PushCellsStampsSRID(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, storage := newTestService(t)
	id := uuid.New()

	sess := mocks.NewMockSession(ctrl)
	sess.EXPECT().WorldSRID().Return(domain.SRIDWGS84)

	var got []domain.Cell
	sess.EXPECT().AddCells(gomock.Any()).Do(func(cells []domain.Cell) { got = cells })

	storage.EXPECT().
		WithSession(id, gomock.Any()).
		DoAndReturn(func(_ uuid.UUID, fn func(contract.Session)) error {
			fn(sess)
			return nil
		})

	cells := []domain.Cell{
		{ID: 1, Point: domain.NewPoint(37.6, 55.7, 0)},
		{ID: 2, Point: domain.NewPoint(37.7, 55.8, 0)},
	}
	req.NoError(service.PushCells(id, cells))

	// Every cell carries the session's SRID after the push
	req.Len(got, 2)
	for _, c := range got {
		req.Equal(domain.SRIDWGS84, c.Point.SRID)
	}
}

func TestSimService_NotFoundCarriesID(t *testing.T) {
	req := require.New(t)

	service, _, storage := newTestService(t)
	id := uuid.New()

	storage.EXPECT().WithSession(id, gomock.Any()).Return(errs.ErrSessionNotFound).Times(2)

	err := service.Info(id)
	req.ErrorIs(err, errs.ErrSessionNotFound)
	req.Contains(err.Error(), fmt.Sprintf("'%s'", id))

	_, err = service.Step(id)
	req.ErrorIs(err, errs.ErrSessionNotFound)
	req.Contains(err.Error(), fmt.Sprintf("'%s'", id))
}

func TestSimService_StorageUnavailableIsNotNotFound(t *testing.T) {
	req := require.New(t)

	service, _, storage := newTestService(t)
	id := uuid.New()

	storage.EXPECT().WithSession(id, gomock.Any()).Return(errs.ErrStorageUnavailable)

	err := service.Info(id)
	req.ErrorIs(err, errs.ErrStorageUnavailable)
	req.NotErrorIs(err, errs.ErrSessionNotFound)
}

func TestSimService_PushTrafficLightsStampsGeometry(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, storage := newTestService(t)
	id := uuid.New()

	sess := mocks.NewMockSession(ctrl)
	sess.EXPECT().WorldSRID().Return(domain.SRIDWGS84)

	var got domain.TrafficLight
	sess.EXPECT().AddTrafficLight(gomock.Any()).Do(func(tl domain.TrafficLight) { got = tl })

	storage.EXPECT().
		WithSession(id, gomock.Any()).
		DoAndReturn(func(_ uuid.UUID, fn func(contract.Session)) error {
			fn(sess)
			return nil
		})

	point := domain.NewPoint(37.6, 55.7, 0)
	light := domain.TrafficLight{
		ID:    1,
		Point: &point,
		Groups: []domain.TrafficLightGroup{{
			ID:       100,
			Signals:  []domain.SignalType{domain.SignalGreen, domain.SignalRed},
			Geometry: []domain.Point{domain.NewPoint(37.61, 55.71, 0)},
		}},
		PhaseTimes: []int{5, 5},
	}
	req.NoError(service.PushTrafficLights(id, []domain.TrafficLight{light}))

	req.Equal(domain.SRIDWGS84, got.Point.SRID)
	req.Equal(domain.SRIDWGS84, got.Groups[0].Geometry[0].SRID)
}

func TestSimService_StepFailureKeepsSession(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, storage := newTestService(t)
	id := uuid.New()

	sess := mocks.NewMockSession(ctrl)
	sess.EXPECT().Step().Return(domain.StepDump{}, fmt.Errorf("no cells in the grid"))

	// The registry lookup itself succeeds: the session must not be
	// evicted because of an engine failure.
	storage.EXPECT().
		WithSession(id, gomock.Any()).
		DoAndReturn(func(_ uuid.UUID, fn func(contract.Session)) error {
			fn(sess)
			return nil
		})

	_, err := service.Step(id)
	req.ErrorIs(err, errs.ErrSimulationFailed)
	req.Contains(err.Error(), "no cells in the grid")
}

func TestSimService_Step(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, storage := newTestService(t)
	id := uuid.New()

	dump := domain.StepDump{
		Timestamp: 7,
		Vehicles:  []domain.VehicleState{{ID: 1, Cell: 3, TripID: 1}},
	}
	sess := mocks.NewMockSession(ctrl)
	sess.EXPECT().Step().Return(dump, nil)

	storage.EXPECT().
		WithSession(id, gomock.Any()).
		DoAndReturn(func(_ uuid.UUID, fn func(contract.Session)) error {
			fn(sess)
			return nil
		})

	got, err := service.Step(id)
	req.NoError(err)
	req.Equal(dump, got)
}
