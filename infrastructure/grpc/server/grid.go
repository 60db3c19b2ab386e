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

// PushSessionGrid consumes grid batches and answers each inbound message
// with exactly one response, in order. Any validation or lookup failure
// terminates the stream; nothing from the failing message is applied.
func (s *SimServer) PushSessionGrid(stream grpc.BidiStreamingServer[pb.SessionGrid, pb.SessionGridResponse]) error {
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

		if err := s.service.PushCells(id, fromPbCells(req.Data)); err != nil {
			return errs.MapToGRPCError(err)
		}

		resp := &pb.SessionGridResponse{Code: uint32(codes.OK), Text: codes.OK.String()}
		if err := stream.Send(resp); err != nil {
			return err
		}
	}
}

func fromPbCells(data []*pb.Cell) []domain.Cell {
	return lo.Map(data, func(c *pb.Cell, _ int) domain.Cell {
		var x, y float64
		if c.Geom != nil {
			x, y = c.Geom.X, c.Geom.Y
		}
		return domain.Cell{
			ID:          c.Id,
			Point:       domain.Point{X: x, Y: y},
			ZoneType:    zoneTypeFromProto(int32(c.ZoneType)),
			SpeedLimit:  int(c.SpeedLimit),
			LeftNode:    c.LeftNode,
			ForwardNode: c.ForwardNode,
			RightNode:   c.RightNode,
			MesoLinkID:  c.MesoLinkId,
		}
	})
}
