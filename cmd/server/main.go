package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/LdDl/micro-traffic-sim-grpc/domain"
	grpcserver "github.com/LdDl/micro-traffic-sim-grpc/infrastructure/grpc/server"
	"github.com/LdDl/micro-traffic-sim-grpc/internal"
	"github.com/LdDl/micro-traffic-sim-grpc/observability"
	pb "github.com/LdDl/micro-traffic-sim-grpc/proto/sim"
	"github.com/LdDl/micro-traffic-sim-grpc/runtime/workers"
	"github.com/LdDl/micro-traffic-sim-grpc/services"
	"github.com/LdDl/micro-traffic-sim-grpc/simulation"
	"github.com/LdDl/micro-traffic-sim-grpc/storage"
	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"google.golang.org/grpc"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the server lifecycle, and centralizes error reporting.
// This pattern is preferred over calling os.Exit or panic directly because:
// 1. It ensures all 'defer' statements are executed before the program exits.
// 2. It improves testability by decoupling the initialization logic from the main entry point.
// 3. It provides a structured way to handle graceful shutdowns for gRPC and background workers.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return err
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Core components
	monitoring := observability.NewMonitoringManager()
	sessions := storage.NewSessionsStorage(log, domain.VerboseLevel(config.StorageVerbose))
	engine := simulation.NewEngine(log, domain.VerboseLevel(config.SessionVerbose))
	service := services.NewSimService(log, engine, sessions, config.SessionTTL, monitoring)

	// 3. Supervision: purge sweep + stats reporting run under the
	// supervisor so a panic in either never kills the gateway.
	sup := workers.NewSupervisor(log)
	sup.Add(
		workers.NewPurgeWorker(log, sessions, monitoring, config.PurgeInterval),
		workers.NewStatsWorker(log, sessions, monitoring, config.StatsInterval),
	)

	// 4. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	supDone := make(chan struct{})
	go func() {
		sup.Run(ctx)
		close(supDone)
	}()

	if config.DebugPort > 0 {
		internal.StartDebugServer(log, config.DebugPort, sessions, monitoring)
	}

	// 5. gRPC Server Setup
	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", address, err)
	}

	s := grpc.NewServer()
	pb.RegisterServiceServer(s, grpcserver.NewSimServer(log, service))

	// Use an error channel to capture Serve() issues
	errChan := make(chan error, 1)
	go func() {
		log.Info("Starting micro traffic sim gRPC server",
			"address", address, "session_ttl", config.SessionTTL, "purge_interval", config.PurgeInterval,
			"at", time.Now().UTC())
		if err := s.Serve(listener); err != nil && err != grpc.ErrServerStopped {
			errChan <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	// 6. Wait for Stop or Error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err := <-errChan:
		return err
	}

	// 7. Final Cleanup: stop serving first, then the workers, so the
	// purge sweep never races the registry teardown.
	s.GracefulStop()
	stop()
	<-supDone
	log.Info("Program stopped cleanly")

	return nil
}
