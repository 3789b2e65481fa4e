package grpc

import (
	"fmt"
	"net"

	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/emmett/unstick/internal/modifiers"
)

// Server wraps the gRPC server and services
type Server struct {
	grpcServer *grpc.Server
	health     *health.Server
	host       string
	port       int
}

// Config holds server configuration
type Config struct {
	Host     string
	Port     int
	Releaser *modifiers.Releaser
}

// NewServer creates a new gRPC server
func NewServer(cfg Config) *Server {
	if cfg.Releaser == nil {
		cfg.Releaser = modifiers.NewReleaser(nil)
	}

	s := &Server{
		grpcServer: grpc.NewServer(),
		health:     health.NewServer(),
		host:       cfg.Host,
		port:       cfg.Port,
	}

	RegisterModifiersServer(s.grpcServer, NewModifiersService(cfg.Releaser))
	healthpb.RegisterHealthServer(s.grpcServer, s.health)
	s.health.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)

	return s
}

// Start listens on the configured address and serves until Stop
func (s *Server) Start() error {
	addr := net.JoinHostPort(s.host, fmt.Sprintf("%d", s.port))
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	log.Infof("gRPC server listening on %s", lis.Addr())
	return s.Serve(lis)
}

// Serve serves on an existing listener
func (s *Server) Serve(lis net.Listener) error {
	return s.grpcServer.Serve(lis)
}

// Stop gracefully stops the server
func (s *Server) Stop() {
	s.health.Shutdown()
	s.grpcServer.GracefulStop()
}
