//go:build tools
// +build tools

// Package tools declares tool dependencies for this module.
//
// These imports are not used at runtime. They exist solely to ensure that
// Go-based tools (invoked via `go generate`, e.g. mockgen and the protoc
// plugins) are tracked as explicit module dependencies.
//
// This makes tooling reproducible, keeps go.mod / go.sum in sync,
// and prevents "missing go.sum entry" errors when running `go generate`
// on a fresh checkout or in CI.
package micro_traffic_sim_grpc

//go:generate protoc --proto_path=proto --go_out=proto/sim --go_opt=paths=source_relative --go-grpc_out=proto/sim --go-grpc_opt=paths=source_relative proto/uuid.proto proto/cell.proto proto/session.proto proto/trip.proto proto/tls.proto proto/conflict_zones.proto proto/step.proto proto/service.proto

import (
	_ "go.uber.org/mock/mockgen"
	_ "google.golang.org/grpc/cmd/protoc-gen-go-grpc"
	_ "google.golang.org/protobuf/cmd/protoc-gen-go"
)
