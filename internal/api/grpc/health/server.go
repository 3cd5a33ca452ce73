package health

import (
	"context"

	"google.golang.org/grpc"
	grpchealth "google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/oshokin/aquarium/internal/logger"
)

// ServiceName is the service name reported alongside the overall "" status.
const ServiceName = "aquarium.v1.AquariumService"

// Pinger abstracts the dependency whose availability defines health.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server publishes health status over gRPC.
type Server struct {
	// health is the stock health service implementation.
	health *grpchealth.Server
	// pinger is probed on every Refresh.
	pinger Pinger
}

// NewServer creates a health server that starts in NOT_SERVING state.
func NewServer(pinger Pinger) *Server {
	s := &Server{
		health: grpchealth.NewServer(),
		pinger: pinger,
	}

	s.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)

	return s
}

// Register attaches the health service to a gRPC server.
func (s *Server) Register(registrar grpc.ServiceRegistrar) {
	healthpb.RegisterHealthServer(registrar, s.health)
}

// Refresh probes the pinger and updates the published status.
func (s *Server) Refresh(ctx context.Context) error {
	if err := s.pinger.Ping(ctx); err != nil {
		logger.WarnKV(ctx, "Health check failed", "error", err)
		s.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)

		return err
	}

	s.setStatus(healthpb.HealthCheckResponse_SERVING)

	return nil
}

// Shutdown marks every service NOT_SERVING and ignores later updates.
func (s *Server) Shutdown() {
	s.health.Shutdown()
}

func (s *Server) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	s.health.SetServingStatus("", status)
	s.health.SetServingStatus(ServiceName, status)
}
