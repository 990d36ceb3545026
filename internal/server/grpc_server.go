package server

import (
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	"github.com/velora-app/velora-server/internal/config"
	"github.com/velora-app/velora-server/internal/logger"
)

// StartGRPCServer boots a gRPC server, registers all provided services
// and blocks until the listener fails or a shutdown signal arrives.
//
// On SIGINT/SIGTERM the server drains in-flight RPCs before returning,
// so a mid-flight like or message send is never cut off half-committed.
func StartGRPCServer(cfg *config.Config, registrars ...Registrar) error {
	addr := fmt.Sprintf("%s:%s", cfg.GRPC.Host, cfg.GRPC.Port)
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	grpcServer := grpc.NewServer()

	for _, r := range registrars {
		r.Register(grpcServer)
	}

	// enable reflection for easier debugging with grpcurl
	reflection.Register(grpcServer)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() { errCh <- grpcServer.Serve(lis) }()

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		logger.L().Info("shutting down gRPC server", "signal", sig.String())
		grpcServer.GracefulStop()
		return nil
	}
}
