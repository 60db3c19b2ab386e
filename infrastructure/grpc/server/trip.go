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

// PushSessionTrip consumes vehicle generator batches, one ordered
// response per inbound message.
func (s *SimServer) PushSessionTrip(stream grpc.BidiStreamingServer[pb.SessionTrip, pb.SessionTripResponse]) error {
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

		if err := s.service.PushTrips(id, fromPbTrips(req.Data)); err != nil {
			return errs.MapToGRPCError(err)
		}

		resp := &pb.SessionTripResponse{Code: uint32(codes.OK), Text: codes.OK.String()}
		if err := stream.Send(resp); err != nil {
			return err
		}
	}
}

func fromPbTrips(data []*pb.Trip) []domain.Trip {
	return lo.Map(data, func(t *pb.Trip, _ int) domain.Trip {
		return domain.Trip{
			ID:            t.Id,
			Type:          tripTypeFromProto(int32(t.TripType)),
			FromNode:      t.FromNode,
			ToNode:        t.ToNode,
			InitialSpeed:  int(t.InitialSpeed),
			Probability:   t.Probability,
			AgentType:     agentTypeFromProto(int32(t.AgentType)),
			BehaviourType: behaviourTypeFromProto(int32(t.BehaviourType)),
			Transits:      t.Transits,
			RelaxTime:     int(t.RelaxTime),
			Time:          int(t.Time),
			StartTime:     int(t.StartTime),
			EndTime:       int(t.EndTime),
		}
	})
}
