// Package grpc serves the standard gRPC health checking protocol for
// runaudit, backed by a database liveness check.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/runaudit/internal/dbx"
	"github.com/dmitrijs2005/runaudit/internal/logging"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health/grpc_health_v1"
)

type GRPCServer struct {
	address string
	logger  logging.Logger
	health  *healthServer
}

func NewGRPCServer(a string, l logging.Logger, db dbx.Pinger) *GRPCServer {
	logger := l.With("module", "grpc_server")
	return &GRPCServer{
		address: a,
		logger:  logger,
		health:  &healthServer{db: db, logger: logger},
	}
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {
	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)
	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is done, then stops gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor))
	grpc_health_v1.RegisterHealthServer(srv, s.health)

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	if err := srv.Serve(lis); err != nil {
		return err
	}

	<-stopped
	return nil
}
