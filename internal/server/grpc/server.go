// Package grpc exposes the portal backend services over gRPC.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/ttioportal/internal/logging"
	"github.com/dmitrijs2005/ttioportal/internal/models"
	"github.com/dmitrijs2005/ttioportal/internal/portalpb"
	"github.com/dmitrijs2005/ttioportal/internal/server/services"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
)

type accountService interface {
	CreateAccount(ctx context.Context, email, password string, metadata map[string]any) (string, error)
	SignIn(ctx context.Context, email, password string) (*services.SignInResult, error)
}

type rowService interface {
	Insert(ctx context.Context, table string, fields map[string]any) error
	Select(ctx context.Context, table string, limit int) ([]map[string]any, error)
}

type orphanService interface {
	Report(ctx context.Context, o models.Orphan) error
}

type GRPCServer struct {
	address   string
	accounts  accountService
	rows      rowService
	orphans   orphanService
	logger    logging.Logger
	jwtSecret []byte
	apiKey    string
}

func NewGRPCServer(a string, l logging.Logger, as accountService, rs rowService, ors orphanService, secretKey, apiKey string) *GRPCServer {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		accounts:  as,
		rows:      rs,
		orphans:   ors,
		jwtSecret: []byte(secretKey),
		apiKey:    apiKey,
	}
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(s.requestLogInterceptor, s.apiKeyInterceptor, s.accessTokenInterceptor),
	)
	portalpb.RegisterPortalServiceServer(srv, s)
	return srv
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
