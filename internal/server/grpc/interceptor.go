package grpc

import (
	"context"
	"crypto/subtle"
	"strings"
	"time"

	"github.com/dmitrijs2005/ttioportal/internal/common"
	"github.com/dmitrijs2005/ttioportal/internal/logging"
	"github.com/dmitrijs2005/ttioportal/internal/portalpb"
	"github.com/dmitrijs2005/ttioportal/internal/server/auth"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const (
	userIDKey    ctxKey = "userID"
	requestIDKey ctxKey = "requestID"
)

// userIDFromContext returns the user id asserted by the caller's access
// token, if one was presented.
func userIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok
}

func requestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// callLogger tags the server logger with the request id and, for signed in
// callers, the user id.
func (s *GRPCServer) callLogger(ctx context.Context) logging.Logger {
	l := s.logger.With("request_id", requestIDFromContext(ctx))
	if id, ok := userIDFromContext(ctx); ok {
		l = l.With("user_id", id)
	}
	return l
}

func firstValue(ctx context.Context, key string) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	values := md.Get(key)
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func (s *GRPCServer) requestLogInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	requestID := firstValue(ctx, common.RequestIDHeaderName)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	ctx = context.WithValue(ctx, requestIDKey, requestID)

	start := time.Now()
	resp, err := handler(ctx, req)

	s.logger.Info(ctx, "rpc",
		"method", info.FullMethod,
		"request_id", requestID,
		"code", status.Code(err).String(),
		"duration", time.Since(start),
	)
	return resp, err
}

// apiKeyInterceptor rejects calls that do not carry the project API key.
// Ping is open so that connectivity checks work without configuration.
func (s *GRPCServer) apiKeyInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if info.FullMethod == portalpb.PortalService_Ping_FullMethodName {
		return handler(ctx, req)
	}

	key := firstValue(ctx, common.APIKeyHeaderName)
	if key == "" || subtle.ConstantTimeCompare([]byte(key), []byte(s.apiKey)) != 1 {
		return nil, status.Error(codes.Unauthenticated, "invalid api key")
	}
	return handler(ctx, req)
}

// accessTokenInterceptor resolves an optional bearer token. A token that is
// present but does not verify is rejected.
func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	authz := firstValue(ctx, common.AuthorizationHeaderName)
	if authz == "" {
		return handler(ctx, req)
	}

	token, ok := strings.CutPrefix(authz, "Bearer ")
	if !ok || token == "" {
		return nil, status.Error(codes.Unauthenticated, "malformed authorization")
	}

	id, err := auth.ParseToken(token, s.jwtSecret)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, err.Error())
	}

	ctx = context.WithValue(ctx, userIDKey, id.UserID)
	return handler(ctx, req)
}
