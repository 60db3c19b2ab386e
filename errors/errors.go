package errors

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	ErrNoSessionID      = fmt.Errorf("no session ID has been provided")
	ErrInvalidSessionID = fmt.Errorf("session ID should be of type UUID v4")
	ErrNoData           = fmt.Errorf("no data provided")
	ErrTooManyEntities  = fmt.Errorf("max amount of data entities exceeded")
	ErrSessionNotFound  = fmt.Errorf("session not found")
	// ErrStorageUnavailable means the registry itself is unusable, e.g. a
	// panic escaped a session mutation. Distinct from ErrSessionNotFound:
	// callers must never answer NotFound for a broken registry.
	ErrStorageUnavailable = fmt.Errorf("sessions storage unavailable")
	ErrSimulationFailed   = fmt.Errorf("simulation step failed")
	ErrBadSignalValue     = fmt.Errorf("signal type not supported")
	ErrWorkerPanic        = fmt.Errorf("worker panic")
)

// MapToGRPCError translates a domain error into the gRPC status clients
// contract on. Unknown errors surface as Internal.
func MapToGRPCError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, ErrNoSessionID),
		errors.Is(err, ErrInvalidSessionID),
		errors.Is(err, ErrNoData),
		errors.Is(err, ErrTooManyEntities),
		errors.Is(err, ErrBadSignalValue):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, ErrSessionNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, ErrSimulationFailed):
		return status.Error(codes.Aborted, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
