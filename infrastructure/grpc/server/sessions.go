package server

import (
	"context"
	"errors"

	errs "github.com/LdDl/micro-traffic-sim-grpc/errors"
	pb "github.com/LdDl/micro-traffic-sim-grpc/proto/sim"
	"google.golang.org/grpc/codes"
)

// NewSession builds a fresh session and registers it with the configured
// TTL. The requested SRID picks the coordinate reference of the world.
func (s *SimServer) NewSession(_ context.Context, req *pb.SessionReq) (*pb.NewSessionResponse, error) {
	id, err := s.service.Create(req.Srid)
	if err != nil {
		return nil, errs.MapToGRPCError(err)
	}
	s.log.Info("Session created", "session_id", id, "srid", req.Srid)
	return &pb.NewSessionResponse{
		Code: uint32(codes.OK),
		Text: codes.OK.String(),
		Id:   &pb.UUIDv4{Value: id.String()},
	}, nil
}

// InfoSession checks that a session exists. The successful lookup counts
// as an access and refreshes the sliding TTL. Absence is reported in-band
// with a NotFound code rather than as an RPC error.
func (s *SimServer) InfoSession(_ context.Context, req *pb.UUIDv4) (*pb.InfoSessionResponse, error) {
	id, err := sessionIDFrom(req)
	if err != nil {
		return nil, errs.MapToGRPCError(err)
	}

	switch err := s.service.Info(id); {
	case errors.Is(err, errs.ErrSessionNotFound):
		return &pb.InfoSessionResponse{
			Code: uint32(codes.NotFound),
			Text: codes.NotFound.String(),
		}, nil
	case err != nil:
		return nil, errs.MapToGRPCError(err)
	}

	return &pb.InfoSessionResponse{
		Code: uint32(codes.OK),
		Text: codes.OK.String(),
		Data: &pb.Session{Id: &pb.UUIDv4{Value: id.String()}},
	}, nil
}
