package server

import (
	"errors"
	"fmt"
	"io"

	"github.com/LdDl/micro-traffic-sim-grpc/domain"
	errs "github.com/LdDl/micro-traffic-sim-grpc/errors"
	pb "github.com/LdDl/micro-traffic-sim-grpc/proto/sim"
	"github.com/samber/lo"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
)

// PushSessionTLS consumes traffic light batches. Two deliberate
// differences from the other push endpoints:
//   - an empty batch is not an error: the client gets an OK response with
//     a warning text and the stream continues;
//   - signal tokens are parsed strictly before any mutation. One bad
//     token anywhere in the message rejects the whole message, so the
//     session's light roster never ends up partially updated.
func (s *SimServer) PushSessionTLS(stream grpc.BidiStreamingServer[pb.SessionTLS, pb.SessionTLSResponse]) error {
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

		if len(req.Data) == 0 {
			resp := &pb.SessionTLSResponse{
				Code: uint32(codes.OK),
				Text: "[WARNING] Status: OK. No data",
			}
			if err := stream.Send(resp); err != nil {
				return err
			}
			continue
		}

		lights, err := fromPbTrafficLights(req.Data)
		if err != nil {
			return errs.MapToGRPCError(err)
		}

		if err := s.service.PushTrafficLights(id, lights); err != nil {
			return errs.MapToGRPCError(err)
		}

		resp := &pb.SessionTLSResponse{Code: uint32(codes.OK), Text: codes.OK.String()}
		if err := stream.Send(resp); err != nil {
			return err
		}
	}
}

// fromPbTrafficLights converts a whole message or nothing: the first
// unparseable signal token aborts the conversion with an error naming
// the offending light, group and index.
func fromPbTrafficLights(data []*pb.TrafficLight) ([]domain.TrafficLight, error) {
	out := make([]domain.TrafficLight, 0, len(data))
	for _, tl := range data {
		groups := make([]domain.TrafficLightGroup, 0, len(tl.Groups))
		for _, g := range tl.Groups {
			signals := make([]domain.SignalType, 0, len(g.Signals))
			for idx, token := range g.Signals {
				sig, err := domain.ParseSignal(token)
				if err != nil {
					return nil, fmt.Errorf("%w: '%s' (traffic light %d, group %d, signal index %d)",
						errs.ErrBadSignalValue, token, tl.Id, g.Id, idx)
				}
				signals = append(signals, sig)
			}
			groups = append(groups, domain.TrafficLightGroup{
				ID:      g.Id,
				Label:   g.Label,
				Cells:   g.Cells,
				Signals: signals,
				Geometry: lo.Map(g.Geom, func(p *pb.Point, _ int) domain.Point {
					return domain.Point{X: p.X, Y: p.Y}
				}),
				Type:            groupTypeFromProto(int32(g.Type)),
				CrosswalkLength: g.CrosswalkLength,
			})
		}

		light := domain.TrafficLight{
			ID:         tl.Id,
			Groups:     groups,
			PhaseTimes: lo.Map(tl.Times, func(t int64, _ int) int { return int(t) }),
		}
		if tl.Geom != nil {
			light.Point = &domain.Point{X: tl.Geom.X, Y: tl.Geom.Y}
		}
		out = append(out, light)
	}
	return out, nil
}
