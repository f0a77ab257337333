package client

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/syncserver/internal/common"
	pb "github.com/dmitrijs2005/syncserver/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.SyncServiceClient
	accessToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if s.accessToken != "" {
		ctx = withAccessToken(ctx, s.accessToken)
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

// New connects lazily to endpointURL; no I/O happens until the first call.
func New(endpointURL, accessToken string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, accessToken: accessToken}

	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.accessTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(endpointURL, opts...)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.client = pb.NewSyncServiceClient(conn)
	return c, nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}

	if resp.Status != "OK" {
		return ErrUnavailable
	}

	return nil
}

func (s *GRPCClient) CreateSharingGroup(ctx context.Context, name string) (string, error) {
	resp, err := s.client.CreateSharingGroup(ctx, &pb.CreateSharingGroupRequest{Name: name})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.GetSharingGroupId(), nil
}

func (s *GRPCClient) DeleteSharingGroup(ctx context.Context, sharingGroupID string) error {
	_, err := s.client.DeleteSharingGroup(ctx, &pb.DeleteSharingGroupRequest{SharingGroupId: sharingGroupID})
	return s.mapError(err)
}

func (s *GRPCClient) UploadFile(ctx context.Context, req *pb.UploadFileRequest) (*pb.UploadFileResponse, error) {
	resp, err := s.client.UploadFile(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) UploadDeletion(ctx context.Context, req *pb.UploadDeletionRequest) (*pb.UploadDeletionResponse, error) {
	resp, err := s.client.UploadDeletion(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) UploadAppMetaData(ctx context.Context, req *pb.UploadAppMetaDataRequest) (*pb.UploadAppMetaDataResponse, error) {
	resp, err := s.client.UploadAppMetaData(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) DoneUploads(ctx context.Context, sharingGroupID string, masterVersion int64) (*pb.DoneUploadsResponse, error) {
	resp, err := s.client.DoneUploads(ctx, &pb.DoneUploadsRequest{SharingGroupId: sharingGroupID, MasterVersion: masterVersion})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) FileIndex(ctx context.Context, sharingGroupID string) (*pb.FileIndexResponse, error) {
	resp, err := s.client.FileIndex(ctx, &pb.FileIndexRequest{SharingGroupId: sharingGroupID})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) GetUploads(ctx context.Context, sharingGroupID string) ([]*pb.UploadInfo, error) {
	resp, err := s.client.GetUploads(ctx, &pb.GetUploadsRequest{SharingGroupId: sharingGroupID})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.GetUploads(), nil
}

func (s *GRPCClient) DownloadFile(ctx context.Context, req *pb.DownloadFileRequest) (*pb.DownloadFileResponse, error) {
	resp, err := s.client.DownloadFile(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.NotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, st.Message())
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", ErrInvalid, st.Message())
	case codes.FailedPrecondition:
		return fmt.Errorf("%w: %s", ErrSequencing, st.Message())
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
