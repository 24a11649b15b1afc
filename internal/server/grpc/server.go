// Package grpc exposes the asset registry over gRPC. The server is a thin
// transport shell: it authenticates callers, converts between wire messages
// and service types, and maps domain error kinds onto gRPC status codes.
package grpc

import (
	"context"
	"net"

	"github.com/avasiljevs/assetledger/internal/logging"
	pb "github.com/avasiljevs/assetledger/internal/proto"
	"github.com/avasiljevs/assetledger/internal/server/models"
	"github.com/avasiljevs/assetledger/internal/server/services"
	"google.golang.org/grpc"
)

// UserService is the authentication surface used by the transport.
type UserService interface {
	Register(ctx context.Context, username string, password string) (*models.User, error)
	Login(ctx context.Context, username string, password string) (*services.TokenPair, error)
	RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error)
}

// RegistryService is the registry's mutation surface used by the transport.
type RegistryService interface {
	CreateAsset(ctx context.Context, caller string, name string, sizeBytes int64, description string, tags []string) (int64, error)
	UpdateAsset(ctx context.Context, caller string, assetID int64, name string, sizeBytes int64, description string, tags []string) error
	TransferOwnership(ctx context.Context, caller string, assetID int64, newOwner string) error
	DeleteAsset(ctx context.Context, caller string, assetID int64) error
}

// AccessService is the registry's read surface used by the transport.
type AccessService interface {
	GetAssetInformation(ctx context.Context, caller string, assetID int64) (*models.Asset, error)
	VerifyAccessStatus(ctx context.Context, assetID int64, principal string) (*models.AccessStatus, error)
	GetAssetOwner(ctx context.Context, assetID int64) (string, error)
	GetRegistryStatistics(ctx context.Context) (*models.RegistryStatistics, error)
}

// ContentService issues presigned URLs for asset payloads.
type ContentService interface {
	GetUploadURL(ctx context.Context, caller string, assetID int64) (string, string, error)
	GetDownloadURL(ctx context.Context, caller string, assetID int64) (string, error)
}

type GRPCServer struct {
	pb.UnimplementedAssetLedgerServiceServer
	address   string
	users     UserService
	registry  RegistryService
	access    AccessService
	content   ContentService
	logger    logging.Logger
	jwtSecret []byte
}

func NewGRPCServer(a string, l logging.Logger, us UserService, rs RegistryService, as AccessService, cs ContentService, secretKey string) (*GRPCServer, error) {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		users:     us,
		registry:  rs,
		access:    as,
		content:   cs,
		jwtSecret: []byte(secretKey),
	}, nil
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	// creates gRPC-server
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.accessTokenInterceptor))

	// registers service
	pb.RegisterAssetLedgerServiceServer(srv, s)

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
