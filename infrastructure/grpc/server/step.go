package server

import (
	"errors"
	"io"

	"github.com/LdDl/micro-traffic-sim-grpc/domain"
	errs "github.com/LdDl/micro-traffic-sim-grpc/errors"
	pb "github.com/LdDl/micro-traffic-sim-grpc/proto/sim"
	"github.com/samber/lo"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
)

// SimulationStepSession advances one tick per inbound message and streams
// back the resulting dump. Responses are never reordered: the k-th
// response carries exactly the k-th tick of that session's sequence. A
// failed tick aborts the stream but keeps the session registered, so it
// can be stepped again on a fresh call.
func (s *SimServer) SimulationStepSession(stream grpc.BidiStreamingServer[pb.SessionStep, pb.SessionStepResponse]) error {
	for {
		req, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		id, err := sessionIDFrom(req.SessionId)
		if err != nil {
			return errs.MapToGRPCError(err)
		}

		dump, err := s.service.Step(id)
		if err != nil {
			return errs.MapToGRPCError(err)
		}

		if err := stream.Send(toPbStepResponse(dump)); err != nil {
			return err
		}
	}
}

func toPbStepResponse(dump domain.StepDump) *pb.SessionStepResponse {
	return &pb.SessionStepResponse{
		Code:        uint32(codes.OK),
		Text:        codes.OK.String(),
		Timestamp:   dump.Timestamp,
		VehicleData: lo.Map(dump.Vehicles, toPbVehicleState),
		TlsData:     lo.Map(dump.TLS, toPbTLSState),
	}
}

func toPbVehicleState(v domain.VehicleState, _ int) *pb.VehicleState {
	return &pb.VehicleState{
		VehicleId:         v.ID,
		VehicleType:       pb.AgentType(agentTypeToProto(v.Type)),
		Speed:             int64(v.Speed),
		Bearing:           v.Bearing,
		Cell:              v.Cell,
		IntermediateCells: v.IntermediateCells,
		Point:             &pb.Point{X: v.Point.X, Y: v.Point.Y},
		TravelTime:        v.TravelTime,
		TripId:            v.TripID,
		TailCells:         v.TailCells,
	}
}

func toPbTLSState(st domain.TLState, _ int) *pb.TLSState {
	return &pb.TLSState{
		Id: st.ID,
		Groups: lo.Map(st.Groups, func(g domain.TLGroupState, _ int) *pb.TLGroup {
			return &pb.TLGroup{Id: g.GroupID, Signal: g.Signal.String()}
		}),
	}
}
