// Package grpc exposes the sync service over gRPC.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/syncserver/internal/logging"
	pb "github.com/dmitrijs2005/syncserver/internal/proto"
	"github.com/dmitrijs2005/syncserver/internal/server/models"
	"github.com/dmitrijs2005/syncserver/internal/server/services"
	"google.golang.org/grpc"
)

// syncService is the part of services.SyncService the handlers call.
type syncService interface {
	CreateSharingGroup(ctx context.Context, name string) (*models.SharingGroup, error)
	DeleteSharingGroup(ctx context.Context, sharingGroupID string) error
	UploadFile(ctx context.Context, r services.StageRequest) (*services.StageResult, error)
	UploadDeletion(ctx context.Context, sharingGroupID, deviceID, fileID string, fileVersion, masterVersion int64) (*services.StageResult, error)
	UploadAppMetaData(ctx context.Context, sharingGroupID, deviceID, fileID string, md *models.AppMetaData, masterVersion int64) (*services.StageResult, error)
	DoneUploads(ctx context.Context, sharingGroupID, deviceID string, masterVersion int64) (*services.CommitResult, error)
	FileIndex(ctx context.Context, sharingGroupID, deviceID string) (*services.IndexResult, error)
	GetUploads(ctx context.Context, sharingGroupID, deviceID string) ([]*models.Upload, error)
	DownloadFile(ctx context.Context, sharingGroupID, deviceID, fileID string, fileVersion, masterVersion int64) (*services.DownloadResult, error)
}

type GRPCServer struct {
	pb.UnimplementedSyncServiceServer
	address   string
	sync      syncService
	logger    logging.Logger
	jwtSecret []byte
}

func NewGRPCServer(a string, l logging.Logger, ss syncService, secretKey string) *GRPCServer {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		sync:      ss,
		jwtSecret: []byte(secretKey),
	}
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is done, then stops gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.accessTokenInterceptor))

	pb.RegisterSyncServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil {
		return err
	}

	return nil
}
