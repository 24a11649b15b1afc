package grpc

import (
	"context"

	"github.com/avasiljevs/assetledger/internal/common"
	"github.com/avasiljevs/assetledger/internal/server/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const userIDKey ctxKey = "userID"

// openMethods lists RPCs callable without an access token. Besides the
// authentication RPCs themselves, the ungated registry queries stay open:
// owner lookup, access probing and statistics carry no restricted content.
var openMethods = map[string]bool{
	"/assetledger.service.AssetLedgerService/RegisterUser":          true,
	"/assetledger.service.AssetLedgerService/Login":                 true,
	"/assetledger.service.AssetLedgerService/RefreshToken":          true,
	"/assetledger.service.AssetLedgerService/Ping":                  true,
	"/assetledger.service.AssetLedgerService/VerifyAccessStatus":    true,
	"/assetledger.service.AssetLedgerService/GetAssetOwner":         true,
	"/assetledger.service.AssetLedgerService/GetRegistryStatistics": true,
}

// accessTokenInterceptor authenticates every gated RPC: it reads the
// access_token metadata entry, validates the JWT and stores the caller's
// principal id in the context for handlers to pick up.
func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	if !openMethods[info.FullMethod] {

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

		userID, err := auth.GetUserIDFromToken(accessToken, s.jwtSecret)
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, "invalid token")
		}

		ctx = context.WithValue(ctx, userIDKey, userID)
	}

	return handler(ctx, req)
}

// callerFromContext returns the authenticated principal stored by the
// interceptor, or an Unauthenticated status when the RPC was not gated.
func callerFromContext(ctx context.Context) (string, error) {
	userID, ok := ctx.Value(userIDKey).(string)
	if !ok || userID == "" {
		return "", status.Error(codes.Unauthenticated, "missing caller identity")
	}
	return userID, nil
}
