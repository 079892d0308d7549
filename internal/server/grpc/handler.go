package grpc

import (
	"context"
	"time"

	"github.com/dmitrijs2005/runaudit/internal/dbx"
	"github.com/dmitrijs2005/runaudit/internal/logging"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

// ServiceName is the only named service answered besides the server-wide "".
const ServiceName = "runaudit"

const pingTimeout = 2 * time.Second

type healthServer struct {
	grpc_health_v1.UnimplementedHealthServer
	db     dbx.Pinger
	logger logging.Logger
}

func (h *healthServer) Check(ctx context.Context, req *grpc_health_v1.HealthCheckRequest) (*grpc_health_v1.HealthCheckResponse, error) {
	if svc := req.GetService(); svc != "" && svc != ServiceName {
		return nil, status.Errorf(codes.NotFound, "unknown service %q", svc)
	}

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		h.logger.Warn(ctx, "database ping failed", "error", err.Error())
		return &grpc_health_v1.HealthCheckResponse{Status: grpc_health_v1.HealthCheckResponse_NOT_SERVING}, nil
	}

	return &grpc_health_v1.HealthCheckResponse{Status: grpc_health_v1.HealthCheckResponse_SERVING}, nil
}
