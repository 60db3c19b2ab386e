package e2e

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/LdDl/micro-traffic-sim-grpc/proto/sim"
)

type testSimulationSuite struct {
	BaseGrpcSuite
}

func TestSimulationSuite(t *testing.T) {
	suite.Run(t, &testSimulationSuite{})
}

func (s *testSimulationSuite) TestFullSimulationFlow() {
	var sessionID string

	// --- STEP 0: SESSION LIFECYCLE ---
	s.Run("Step 0: Create session and look it up", func() {
		s.WithGateway("Creating a Euclidean session", func(ctx context.Context, client pb.ServiceClient) {
			resp, err := client.NewSession(ctx, &pb.SessionReq{Srid: 0})
			s.Require().NoError(err)
			s.Require().NotNil(resp.Id)
			s.Require().Equal(uint32(codes.OK), resp.Code)

			parsed, err := uuid.Parse(resp.Id.Value)
			s.Require().NoError(err)
			s.Require().Equal(uuid.Version(4), parsed.Version())
			sessionID = resp.Id.Value

			info, err := client.InfoSession(ctx, &pb.UUIDv4{Value: sessionID})
			s.Require().NoError(err)
			s.Require().Equal(uint32(codes.OK), info.Code)
			s.Require().Equal(sessionID, info.Data.Id.Value)
		})
	})

	s.Run("Step 1: Unknown session is reported in-band, not as a status", func() {
		s.WithGateway("Looking up a random session id", func(ctx context.Context, client pb.ServiceClient) {
			info, err := client.InfoSession(ctx, &pb.UUIDv4{Value: uuid.New().String()})
			s.Require().NoError(err)
			s.Require().Equal(uint32(codes.NotFound), info.Code)
		})
	})

	// --- STEP 2: PUSH CONFIGURATION ---
	s.Run("Step 2: Push grid, light, trips and conflict zones", func() {
		s.WithGateway("Pushing a 10-cell road", func(ctx context.Context, client pb.ServiceClient) {
			stream, err := client.PushSessionGrid(ctx)
			s.Require().NoError(err)

			s.Require().NoError(stream.Send(&pb.SessionGrid{
				SessionId: &pb.UUIDv4{Value: sessionID},
				Data:      straightRoad(0, 10),
			}))
			resp, err := stream.Recv()
			s.Require().NoError(err)
			s.Require().Equal(uint32(codes.OK), resp.Code)
			s.Require().NoError(stream.CloseSend())
		})

		s.WithGateway("Pushing an empty and then a real light batch", func(ctx context.Context, client pb.ServiceClient) {
			stream, err := client.PushSessionTLS(ctx)
			s.Require().NoError(err)

			// The endpoint answers an empty batch with a warning instead
			// of rejecting it.
			s.Require().NoError(stream.Send(&pb.SessionTLS{SessionId: &pb.UUIDv4{Value: sessionID}}))
			resp, err := stream.Recv()
			s.Require().NoError(err)
			s.Require().Equal(uint32(codes.OK), resp.Code)
			s.Require().Contains(resp.Text, "No data")

			s.Require().NoError(stream.Send(&pb.SessionTLS{
				SessionId: &pb.UUIDv4{Value: sessionID},
				Data: []*pb.TrafficLight{{
					Id: 1,
					Groups: []*pb.Group{{
						Id:      100,
						Cells:   []int64{5},
						Signals: []string{"g", "r"},
						Type:    pb.GroupType_GROUP_TYPE_VEHICLE,
					}},
					Times: []int64{3, 3},
				}},
			}))
			resp, err = stream.Recv()
			s.Require().NoError(err)
			s.Require().Equal(uint32(codes.OK), resp.Code)
			s.Require().NoError(stream.CloseSend())
		})

		s.WithGateway("Pushing a constant trip", func(ctx context.Context, client pb.ServiceClient) {
			stream, err := client.PushSessionTrip(ctx)
			s.Require().NoError(err)

			s.Require().NoError(stream.Send(&pb.SessionTrip{
				SessionId: &pb.UUIDv4{Value: sessionID},
				Data: []*pb.Trip{{
					Id:            1,
					TripType:      pb.TripType_TRIP_TYPE_CONSTANT,
					FromNode:      0,
					ToNode:        9,
					InitialSpeed:  1,
					Time:          2,
					AgentType:     pb.AgentType_AGENT_TYPE_CAR,
					BehaviourType: pb.BehaviourType_BEHAVIOUR_TYPE_COOPERATIVE,
				}},
			}))
			resp, err := stream.Recv()
			s.Require().NoError(err)
			s.Require().Equal(uint32(codes.OK), resp.Code)
			s.Require().NoError(stream.CloseSend())
		})
	})

	// --- STEP 3: STEPPING ---
	s.Run("Step 3: Timestamps grow by exactly one per request", func() {
		s.WithGateway("Advancing the session ten times", func(ctx context.Context, client pb.ServiceClient) {
			stream, err := client.SimulationStepSession(ctx)
			s.Require().NoError(err)

			for want := int64(1); want <= 10; want++ {
				s.Require().NoError(stream.Send(&pb.SessionStep{SessionId: &pb.UUIDv4{Value: sessionID}}))
				resp, err := stream.Recv()
				s.Require().NoError(err)
				s.Require().Equal(uint32(codes.OK), resp.Code)
				s.Require().Equal(want, resp.Timestamp)
			}
			s.Require().NoError(stream.CloseSend())
		})
	})

	// --- STEP 4: VALIDATION OVER THE WIRE ---
	s.Run("Step 4: Malformed requests terminate the stream with a status", func() {
		s.WithGateway("Sending a non-UUID session id", func(ctx context.Context, client pb.ServiceClient) {
			stream, err := client.PushSessionGrid(ctx)
			s.Require().NoError(err)

			s.Require().NoError(stream.Send(&pb.SessionGrid{
				SessionId: &pb.UUIDv4{Value: "not-a-uuid"},
				Data:      straightRoad(0, 1),
			}))
			_, err = stream.Recv()
			s.Require().Error(err)
			s.Require().Equal(codes.InvalidArgument, status.Code(err))
		})

		s.WithGateway("Sending an oversized batch", func(ctx context.Context, client pb.ServiceClient) {
			stream, err := client.PushSessionGrid(ctx)
			s.Require().NoError(err)

			s.Require().NoError(stream.Send(&pb.SessionGrid{
				SessionId: &pb.UUIDv4{Value: sessionID},
				Data:      straightRoad(0, 10001),
			}))
			_, err = stream.Recv()
			s.Require().Error(err)
			s.Require().Equal(codes.InvalidArgument, status.Code(err))
		})

		s.WithGateway("Stepping an unregistered session", func(ctx context.Context, client pb.ServiceClient) {
			stream, err := client.SimulationStepSession(ctx)
			s.Require().NoError(err)

			s.Require().NoError(stream.Send(&pb.SessionStep{SessionId: &pb.UUIDv4{Value: uuid.New().String()}}))
			_, err = stream.Recv()
			s.Require().Error(err)
			s.Require().Equal(codes.NotFound, status.Code(err))
		})
	})
}

// straightRoad builds n linked cells starting at the given id: a birth
// cell, a run of common cells and a death cell.
func straightRoad(base int64, n int) []*pb.Cell {
	cells := make([]*pb.Cell, 0, n)
	for i := int64(0); i < int64(n); i++ {
		zone := pb.ZoneType_ZONE_TYPE_COMMON
		if i == 0 {
			zone = pb.ZoneType_ZONE_TYPE_BIRTH
		} else if i == int64(n)-1 {
			zone = pb.ZoneType_ZONE_TYPE_DEATH
		}
		forward := int64(-1)
		if i < int64(n)-1 {
			forward = base + i + 1
		}
		cells = append(cells, &pb.Cell{
			Id:          base + i,
			Geom:        &pb.Point{X: float64(i), Y: 0},
			ZoneType:    zone,
			SpeedLimit:  1,
			LeftNode:    -1,
			ForwardNode: forward,
			RightNode:   -1,
		})
	}
	return cells
}
