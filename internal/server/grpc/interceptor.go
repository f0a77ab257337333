package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/syncserver/internal/common"
	pb "github.com/dmitrijs2005/syncserver/internal/proto"
	"github.com/dmitrijs2005/syncserver/internal/server/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const identityKey ctxKey = "identity"

// methods callable without an access token
var publicMethods = map[string]bool{
	pb.SyncService_Ping_FullMethodName: true,
}

func withIdentity(ctx context.Context, id auth.Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

func identityFrom(ctx context.Context) (auth.Identity, error) {
	id, ok := ctx.Value(identityKey).(auth.Identity)
	if !ok {
		return auth.Identity{}, status.Error(codes.Unauthenticated, "missing identity")
	}
	return id, nil
}

// accessTokenInterceptor resolves the caller's user and device from the
// access token carried in metadata.
func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if publicMethods[info.FullMethod] {
		return handler(ctx, req)
	}

	var accessToken string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get(common.AccessTokenHeaderName)
		if len(values) > 0 {
			accessToken = values[0]
		}
	}
	if len(accessToken) == 0 {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	id, err := auth.ParseToken(accessToken, s.jwtSecret)
	if err != nil {
		if errors.Is(err, common.ErrTokenExpired) {
			return nil, status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())
		}
		return nil, status.Error(codes.Unauthenticated, common.ErrInvalidToken.Error())
	}

	return handler(withIdentity(ctx, id), req)
}
