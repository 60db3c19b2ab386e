// Package server implements the gRPC surface of the simulation gateway:
// one file per RPC, converters next to the handler that uses them.
package server

import (
	"log/slog"

	errs "github.com/LdDl/micro-traffic-sim-grpc/errors"
	pb "github.com/LdDl/micro-traffic-sim-grpc/proto/sim"
	"github.com/LdDl/micro-traffic-sim-grpc/services"
	"github.com/google/uuid"
)

type SimServer struct {
	pb.UnimplementedServiceServer
	log     *slog.Logger
	service services.ISimService
}

func NewSimServer(log *slog.Logger, service services.ISimService) *SimServer {
	return &SimServer{log: log, service: service}
}

// sessionIDFrom validates the identifier carried by a request envelope.
// A missing identifier and a malformed one are distinct InvalidArgument
// conditions, surfaced with different messages.
func sessionIDFrom(id *pb.UUIDv4) (uuid.UUID, error) {
	if id == nil || id.Value == "" {
		return uuid.Nil, errs.ErrNoSessionID
	}
	return services.ParseSessionID(id.Value)
}
