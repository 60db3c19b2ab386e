package server

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/LdDl/micro-traffic-sim-grpc/domain"
	errs "github.com/LdDl/micro-traffic-sim-grpc/errors"
	"github.com/LdDl/micro-traffic-sim-grpc/mocks"
	pb "github.com/LdDl/micro-traffic-sim-grpc/proto/sim"
)

// fakeBidiStream feeds queued requests to a handler and captures what it
// sends back. Recv answers io.EOF once the queue is drained, mimicking a
// client closing its side.
type fakeBidiStream[Req any, Res any] struct {
	grpc.ServerStream
	reqs []*Req
	sent []*Res
}

func (f *fakeBidiStream[Req, Res]) Recv() (*Req, error) {
	if len(f.reqs) == 0 {
		return nil, io.EOF
	}
	req := f.reqs[0]
	f.reqs = f.reqs[1:]
	return req, nil
}

func (f *fakeBidiStream[Req, Res]) Send(res *Res) error {
	f.sent = append(f.sent, res)
	return nil
}

func newTestServer(t *testing.T) (*SimServer, *mocks.MockISimService) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockISimService(ctrl)
	return NewSimServer(slog.Default(), service), service
}

func TestSimServer_NewSession(t *testing.T) {
	req := require.New(t)
	server, service := newTestServer(t)

	id := uuid.New()
	service.EXPECT().Create(int32(4326)).Return(id, nil)

	resp, err := server.NewSession(context.Background(), &pb.SessionReq{Srid: 4326})
	req.NoError(err)
	req.Equal(uint32(codes.OK), resp.Code)
	req.Equal(id.String(), resp.Id.Value)
}

func TestSimServer_InfoSession(t *testing.T) {
	req := require.New(t)

	t.Run("Should echo a registered session", func(t *testing.T) {
		server, service := newTestServer(t)
		id := uuid.New()
		service.EXPECT().Info(id).Return(nil)

		resp, err := server.InfoSession(context.Background(), &pb.UUIDv4{Value: id.String()})
		req.NoError(err)
		req.Equal(uint32(codes.OK), resp.Code)
		req.Equal(id.String(), resp.Data.Id.Value)
	})

	t.Run("Should report absence in-band, not as a status", func(t *testing.T) {
		server, service := newTestServer(t)
		id := uuid.New()
		service.EXPECT().Info(id).Return(fmt.Errorf("%w: '%s'", errs.ErrSessionNotFound, id))

		resp, err := server.InfoSession(context.Background(), &pb.UUIDv4{Value: id.String()})
		req.NoError(err)
		req.Equal(uint32(codes.NotFound), resp.Code)
		req.Nil(resp.Data)
	})

	t.Run("Should reject a malformed identifier with a status", func(t *testing.T) {
		server, _ := newTestServer(t)

		_, err := server.InfoSession(context.Background(), &pb.UUIDv4{Value: "not-a-uuid"})
		req.Equal(codes.InvalidArgument, status.Code(err))
	})

	t.Run("Should reject a missing identifier with a status", func(t *testing.T) {
		server, _ := newTestServer(t)

		_, err := server.InfoSession(context.Background(), nil)
		req.Equal(codes.InvalidArgument, status.Code(err))
		req.Contains(status.Convert(err).Message(), "no session ID")
	})
}

func TestSimServer_PushSessionGrid(t *testing.T) {
	req := require.New(t)

	t.Run("Should answer every message in order", func(t *testing.T) {
		server, service := newTestServer(t)
		id := uuid.New()

		service.EXPECT().PushCells(id, gomock.Len(1)).Return(nil).Times(2)

		stream := &fakeBidiStream[pb.SessionGrid, pb.SessionGridResponse]{
			reqs: []*pb.SessionGrid{
				{SessionId: &pb.UUIDv4{Value: id.String()}, Data: []*pb.Cell{{Id: 1}}},
				{SessionId: &pb.UUIDv4{Value: id.String()}, Data: []*pb.Cell{{Id: 2}}},
			},
		}
		req.NoError(server.PushSessionGrid(stream))
		req.Len(stream.sent, 2)
		for _, resp := range stream.sent {
			req.Equal(uint32(codes.OK), resp.Code)
		}
	})

	t.Run("Should convert cells before handing them to the service", func(t *testing.T) {
		server, service := newTestServer(t)
		id := uuid.New()

		var got []domain.Cell
		service.EXPECT().
			PushCells(id, gomock.Any()).
			DoAndReturn(func(_ uuid.UUID, cells []domain.Cell) error {
				got = cells
				return nil
			})

		stream := &fakeBidiStream[pb.SessionGrid, pb.SessionGridResponse]{
			reqs: []*pb.SessionGrid{{
				SessionId: &pb.UUIDv4{Value: id.String()},
				Data: []*pb.Cell{{
					Id:          7,
					Geom:        &pb.Point{X: 1.5, Y: 2.5},
					ZoneType:    pb.ZoneType_ZONE_TYPE_BIRTH,
					SpeedLimit:  3,
					LeftNode:    -1,
					ForwardNode: 8,
					RightNode:   -1,
				}},
			}},
		}
		req.NoError(server.PushSessionGrid(stream))
		req.Len(got, 1)
		req.Equal(int64(7), got[0].ID)
		req.Equal(domain.ZoneBirth, got[0].ZoneType)
		req.Equal(3, got[0].SpeedLimit)
		req.Equal(1.5, got[0].Point.X)
		req.Equal([]int64{8}, got[0].Neighbors())
	})

	t.Run("Should terminate the stream on a missing identifier", func(t *testing.T) {
		server, _ := newTestServer(t)

		stream := &fakeBidiStream[pb.SessionGrid, pb.SessionGridResponse]{
			reqs: []*pb.SessionGrid{
				{Data: []*pb.Cell{{Id: 1}}},
				// Never reached: the stream dies on the first message.
				{SessionId: &pb.UUIDv4{Value: uuid.New().String()}, Data: []*pb.Cell{{Id: 2}}},
			},
		}
		err := server.PushSessionGrid(stream)
		req.Equal(codes.InvalidArgument, status.Code(err))
		req.Empty(stream.sent)
		req.Len(stream.reqs, 1)
	})

	t.Run("Should map service errors onto gRPC statuses", func(t *testing.T) {
		tests := []struct {
			description string
			serviceErr  error
			wantCode    codes.Code
		}{
			{"Empty batch is invalid", errs.ErrNoData, codes.InvalidArgument},
			{"Oversized batch is invalid", errs.ErrTooManyEntities, codes.InvalidArgument},
			{"Unknown session is not found", errs.ErrSessionNotFound, codes.NotFound},
			{"Broken registry is internal", errs.ErrStorageUnavailable, codes.Internal},
		}
		for _, tt := range tests {
			t.Run(tt.description, func(t *testing.T) {
				server, service := newTestServer(t)
				id := uuid.New()
				service.EXPECT().PushCells(id, gomock.Any()).Return(tt.serviceErr)

				stream := &fakeBidiStream[pb.SessionGrid, pb.SessionGridResponse]{
					reqs: []*pb.SessionGrid{
						{SessionId: &pb.UUIDv4{Value: id.String()}, Data: []*pb.Cell{{Id: 1}}},
					},
				}
				err := server.PushSessionGrid(stream)
				require.Equal(t, tt.wantCode, status.Code(err))
			})
		}
	})
}

func TestSimServer_PushSessionTLS(t *testing.T) {
	req := require.New(t)

	t.Run("Should warn on an empty batch and keep the stream alive", func(t *testing.T) {
		server, service := newTestServer(t)
		id := uuid.New()

		// Only the second, non-empty message reaches the service.
		service.EXPECT().PushTrafficLights(id, gomock.Len(1)).Return(nil)

		stream := &fakeBidiStream[pb.SessionTLS, pb.SessionTLSResponse]{
			reqs: []*pb.SessionTLS{
				{SessionId: &pb.UUIDv4{Value: id.String()}},
				{SessionId: &pb.UUIDv4{Value: id.String()}, Data: []*pb.TrafficLight{{
					Id: 1,
					Groups: []*pb.Group{{
						Id:      100,
						Cells:   []int64{5},
						Signals: []string{"g", "r"},
					}},
					Times: []int64{5, 5},
				}}},
			},
		}
		req.NoError(server.PushSessionTLS(stream))
		req.Len(stream.sent, 2)
		req.Equal(uint32(codes.OK), stream.sent[0].Code)
		req.Equal("[WARNING] Status: OK. No data", stream.sent[0].Text)
		req.Equal(codes.OK.String(), stream.sent[1].Text)
	})

	t.Run("Should reject the whole message on one bad signal token", func(t *testing.T) {
		// The service carries no expectations: nothing may be applied
		// when any token fails to parse.
		server, _ := newTestServer(t)
		id := uuid.New()

		stream := &fakeBidiStream[pb.SessionTLS, pb.SessionTLSResponse]{
			reqs: []*pb.SessionTLS{
				{SessionId: &pb.UUIDv4{Value: id.String()}, Data: []*pb.TrafficLight{
					{Id: 1, Groups: []*pb.Group{{Id: 100, Signals: []string{"g", "r"}}}},
					{Id: 2, Groups: []*pb.Group{{Id: 200, Signals: []string{"g", "blue"}}}},
				}},
			},
		}
		err := server.PushSessionTLS(stream)
		req.Equal(codes.InvalidArgument, status.Code(err))
		msg := status.Convert(err).Message()
		req.Contains(msg, "'blue'")
		req.Contains(msg, "traffic light 2")
		req.Contains(msg, "group 200")
		req.Contains(msg, "signal index 1")
		req.Empty(stream.sent)
	})

	t.Run("Should parse signal rows into the domain light", func(t *testing.T) {
		server, service := newTestServer(t)
		id := uuid.New()

		var got []domain.TrafficLight
		service.EXPECT().
			PushTrafficLights(id, gomock.Any()).
			DoAndReturn(func(_ uuid.UUID, lights []domain.TrafficLight) error {
				got = lights
				return nil
			})

		stream := &fakeBidiStream[pb.SessionTLS, pb.SessionTLSResponse]{
			reqs: []*pb.SessionTLS{
				{SessionId: &pb.UUIDv4{Value: id.String()}, Data: []*pb.TrafficLight{{
					Id:   1,
					Geom: &pb.Point{X: 3, Y: 4},
					Groups: []*pb.Group{{
						Id:      100,
						Label:   "main",
						Cells:   []int64{5, 6},
						Signals: []string{"g", "ry", "r"},
						Type:    pb.GroupType_GROUP_TYPE_VEHICLE,
					}},
					Times: []int64{5, 1, 5},
				}}},
			},
		}
		req.NoError(server.PushSessionTLS(stream))
		req.Len(got, 1)
		req.Equal([]int{5, 1, 5}, got[0].PhaseTimes)
		req.Equal([]domain.SignalType{
			domain.SignalGreen, domain.SignalRedYellow, domain.SignalRed,
		}, got[0].Groups[0].Signals)
		req.Equal(domain.GroupVehicle, got[0].Groups[0].Type)
	})
}

func TestSimServer_SimulationStepSession(t *testing.T) {
	req := require.New(t)

	t.Run("Should stream dumps one per request", func(t *testing.T) {
		server, service := newTestServer(t)
		id := uuid.New()

		gomock.InOrder(
			service.EXPECT().Step(id).Return(domain.StepDump{Timestamp: 1}, nil),
			service.EXPECT().Step(id).Return(domain.StepDump{
				Timestamp: 2,
				Vehicles: []domain.VehicleState{{
					ID: 1, Type: domain.AgentCar, Speed: 1, Cell: 3, TripID: 9,
				}},
				TLS: []domain.TLState{{
					ID:     1,
					Groups: []domain.TLGroupState{{GroupID: 100, Signal: domain.SignalGreen}},
				}},
			}, nil),
		)

		stream := &fakeBidiStream[pb.SessionStep, pb.SessionStepResponse]{
			reqs: []*pb.SessionStep{
				{SessionId: &pb.UUIDv4{Value: id.String()}},
				{SessionId: &pb.UUIDv4{Value: id.String()}},
			},
		}
		req.NoError(server.SimulationStepSession(stream))
		req.Len(stream.sent, 2)
		req.Equal(int64(1), stream.sent[0].Timestamp)
		req.Equal(int64(2), stream.sent[1].Timestamp)

		veh := stream.sent[1].VehicleData[0]
		req.Equal(int64(1), veh.VehicleId)
		req.Equal(pb.AgentType_AGENT_TYPE_CAR, veh.VehicleType)
		req.Equal(int64(3), veh.Cell)
		req.Equal(int64(9), veh.TripId)
		req.Equal("g", stream.sent[1].TlsData[0].Groups[0].Signal)
	})

	t.Run("Should abort the stream on a failed tick", func(t *testing.T) {
		server, service := newTestServer(t)
		id := uuid.New()

		service.EXPECT().Step(id).
			Return(domain.StepDump{}, fmt.Errorf("%w: no cells in the grid", errs.ErrSimulationFailed))

		stream := &fakeBidiStream[pb.SessionStep, pb.SessionStepResponse]{
			reqs: []*pb.SessionStep{{SessionId: &pb.UUIDv4{Value: id.String()}}},
		}
		err := server.SimulationStepSession(stream)
		req.Equal(codes.Aborted, status.Code(err))
	})
}

func TestSimServer_PushSessionConflictZones(t *testing.T) {
	req := require.New(t)
	server, service := newTestServer(t)
	id := uuid.New()

	var got []domain.ConflictZone
	service.EXPECT().
		PushConflictZones(id, gomock.Any()).
		DoAndReturn(func(_ uuid.UUID, zones []domain.ConflictZone) error {
			got = zones
			return nil
		})

	stream := &fakeBidiStream[pb.SessionConflictZones, pb.SessionConflictZonesResponse]{
		reqs: []*pb.SessionConflictZones{
			{SessionId: &pb.UUIDv4{Value: id.String()}, Data: []*pb.ConflictZone{{
				Id:             1,
				SourceX:        3,
				TargetX:        4,
				SourceY:        13,
				TargetY:        14,
				ConflictWinner: pb.ConflictWinnerType_CONFLICT_WINNER_SECOND,
			}}},
		},
	}
	req.NoError(server.PushSessionConflictZones(stream))
	req.Len(got, 1)
	req.Equal(domain.ConflictEdge{Source: 3, Target: 4}, got[0].FirstEdge)
	req.Equal(domain.ConflictEdge{Source: 13, Target: 14}, got[0].SecondEdge)
	req.Equal(domain.ConflictWinnerSecond, got[0].Winner)
}
