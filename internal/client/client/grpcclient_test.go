package client

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/dmitrijs2005/syncserver/internal/common"
	pb "github.com/dmitrijs2005/syncserver/internal/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

// stubServer answers from presets and records the token it saw.
type stubServer struct {
	pb.UnimplementedSyncServiceServer
	lastToken string
	doneResp  *pb.DoneUploadsResponse
	indexResp *pb.FileIndexResponse
	err       error
}

func (s *stubServer) token(ctx context.Context) {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if v := md.Get(common.AccessTokenHeaderName); len(v) > 0 {
			s.lastToken = v[0]
		}
	}
}

func (s *stubServer) Ping(ctx context.Context, _ *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

func (s *stubServer) DoneUploads(ctx context.Context, _ *pb.DoneUploadsRequest) (*pb.DoneUploadsResponse, error) {
	s.token(ctx)
	return s.doneResp, s.err
}

func (s *stubServer) FileIndex(ctx context.Context, _ *pb.FileIndexRequest) (*pb.FileIndexResponse, error) {
	s.token(ctx)
	return s.indexResp, s.err
}

func newTestClient(t *testing.T, stub *stubServer) *GRPCClient {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	pb.RegisterSyncServiceServer(srv, stub)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	c, err := New("passthrough:///bufnet", "tok-1", grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
		return lis.DialContext(ctx)
	}))
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func testCtx(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestClient_PingAndToken(t *testing.T) {
	stale := int64(4)
	stub := &stubServer{doneResp: &pb.DoneUploadsResponse{MasterVersionUpdate: &stale}}
	c := newTestClient(t, stub)
	ctx := testCtx(t)

	require.NoError(t, c.Ping(ctx))

	resp, err := c.DoneUploads(ctx, "sg", 1)
	require.NoError(t, err)
	require.NotNil(t, resp.MasterVersionUpdate)
	assert.Equal(t, int64(4), *resp.MasterVersionUpdate)
	assert.Equal(t, "tok-1", stub.lastToken)
}

func TestClient_FileIndex(t *testing.T) {
	stub := &stubServer{indexResp: &pb.FileIndexResponse{MasterVersion: 2, Files: []*pb.FileInfo{{FileId: "f", FileVersion: 1}}}}
	c := newTestClient(t, stub)

	resp, err := c.FileIndex(testCtx(t), "sg")
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.MasterVersion)
	require.Len(t, resp.Files, 1)
	assert.Equal(t, "f", resp.Files[0].FileId)
}

func TestClient_MapError(t *testing.T) {
	tests := []struct {
		code codes.Code
		want error
	}{
		{codes.Unauthenticated, ErrUnauthorized},
		{codes.Unavailable, ErrUnavailable},
		{codes.NotFound, ErrNotFound},
		{codes.InvalidArgument, ErrInvalid},
		{codes.FailedPrecondition, ErrSequencing},
	}

	c := &GRPCClient{}
	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			assert.ErrorIs(t, c.mapError(status.Error(tt.code, "x")), tt.want)
		})
	}

	assert.NoError(t, c.mapError(nil))
	err := c.mapError(status.Error(codes.Internal, "boom"))
	assert.Contains(t, err.Error(), "rpc error")
}

func TestClient_ErrorFromServer(t *testing.T) {
	stub := &stubServer{err: status.Error(codes.FailedPrecondition, "gap")}
	c := newTestClient(t, stub)

	_, err := c.DoneUploads(testCtx(t), "sg", 0)
	assert.True(t, errors.Is(err, ErrSequencing))
}

func TestWithAccessToken_Replaces(t *testing.T) {
	ctx := metadata.AppendToOutgoingContext(context.Background(), common.AccessTokenHeaderName, "old", "x", "y")
	ctx = withAccessToken(ctx, "new")

	md, ok := metadata.FromOutgoingContext(ctx)
	require.True(t, ok)
	assert.Equal(t, []string{"new"}, md.Get(common.AccessTokenHeaderName))
	assert.Equal(t, []string{"y"}, md.Get("x"))
}
