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

// PushSessionConflictZones consumes priority rule batches, one ordered
// response per inbound message.
func (s *SimServer) PushSessionConflictZones(stream grpc.BidiStreamingServer[pb.SessionConflictZones, pb.SessionConflictZonesResponse]) error {
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

		if err := s.service.PushConflictZones(id, fromPbConflictZones(req.Data)); err != nil {
			return errs.MapToGRPCError(err)
		}

		resp := &pb.SessionConflictZonesResponse{Code: uint32(codes.OK), Text: codes.OK.String()}
		if err := stream.Send(resp); err != nil {
			return err
		}
	}
}

func fromPbConflictZones(data []*pb.ConflictZone) []domain.ConflictZone {
	return lo.Map(data, func(z *pb.ConflictZone, _ int) domain.ConflictZone {
		return domain.ConflictZone{
			ID:         z.Id,
			FirstEdge:  domain.ConflictEdge{Source: z.SourceX, Target: z.TargetX},
			SecondEdge: domain.ConflictEdge{Source: z.SourceY, Target: z.TargetY},
			Winner:     winnerTypeFromProto(int32(z.ConflictWinner)),
			ZoneType:   conflictZoneTypeFromProto(int32(z.ConflictType)),
		}
	})
}
