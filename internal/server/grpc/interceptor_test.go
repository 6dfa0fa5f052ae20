package grpc

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/dmitrijs2005/ttioportal/internal/common"
	"github.com/dmitrijs2005/ttioportal/internal/logging"
	"github.com/dmitrijs2005/ttioportal/internal/portalpb"
	"github.com/dmitrijs2005/ttioportal/internal/server/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func newTestServer() *GRPCServer {
	return NewGRPCServer("127.0.0.1:0", nopLogger{}, &fakeAccounts{}, &fakeRows{}, &fakeOrphans{}, "secret", "anon-key")
}

func incoming(kv ...string) context.Context {
	return metadata.NewIncomingContext(context.Background(), metadata.Pairs(kv...))
}

func okHandler(called *bool) grpc.UnaryHandler {
	return func(ctx context.Context, req any) (any, error) {
		*called = true
		return "ok", nil
	}
}

func TestAPIKeyInterceptor(t *testing.T) {
	s := newTestServer()
	signIn := &grpc.UnaryServerInfo{FullMethod: portalpb.PortalService_SignIn_FullMethodName}

	tests := []struct {
		name   string
		ctx    context.Context
		info   *grpc.UnaryServerInfo
		wantOK bool
	}{
		{"valid key", incoming(common.APIKeyHeaderName, "anon-key"), signIn, true},
		{"wrong key", incoming(common.APIKeyHeaderName, "nope"), signIn, false},
		{"missing metadata", context.Background(), signIn, false},
		{"ping is open", context.Background(), &grpc.UnaryServerInfo{FullMethod: portalpb.PortalService_Ping_FullMethodName}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			resp, err := s.apiKeyInterceptor(tt.ctx, nil, tt.info, okHandler(&called))
			if tt.wantOK {
				require.NoError(t, err)
				assert.True(t, called)
				assert.Equal(t, "ok", resp)
				return
			}
			assert.False(t, called)
			assert.Equal(t, codes.Unauthenticated, status.Code(err))
		})
	}
}

func TestAccessTokenInterceptor_NoTokenPassesThrough(t *testing.T) {
	s := newTestServer()
	var gotID bool
	h := func(ctx context.Context, req any) (any, error) {
		_, gotID = userIDFromContext(ctx)
		return nil, nil
	}
	_, err := s.accessTokenInterceptor(context.Background(), nil, &grpc.UnaryServerInfo{}, h)
	require.NoError(t, err)
	assert.False(t, gotID)
}

func TestAccessTokenInterceptor_ValidToken(t *testing.T) {
	s := newTestServer()
	token, err := auth.GenerateToken(auth.Identity{UserID: "u-1", Email: "a@b.edu", Role: "student"}, []byte("secret"), time.Minute)
	require.NoError(t, err)

	var got string
	h := func(ctx context.Context, req any) (any, error) {
		got, _ = userIDFromContext(ctx)
		return nil, nil
	}
	_, err = s.accessTokenInterceptor(incoming(common.AuthorizationHeaderName, "Bearer "+token), nil, &grpc.UnaryServerInfo{}, h)
	require.NoError(t, err)
	assert.Equal(t, "u-1", got)
}

func TestAccessTokenInterceptor_Rejects(t *testing.T) {
	s := newTestServer()
	other, err := auth.GenerateToken(auth.Identity{UserID: "u-1"}, []byte("other"), time.Minute)
	require.NoError(t, err)

	for name, header := range map[string]string{
		"not bearer":   "Basic abc",
		"empty bearer": "Bearer ",
		"bad secret":   "Bearer " + other,
		"garbage":      "Bearer not-a-jwt",
	} {
		t.Run(name, func(t *testing.T) {
			called := false
			_, err := s.accessTokenInterceptor(incoming(common.AuthorizationHeaderName, header), nil, &grpc.UnaryServerInfo{}, okHandler(&called))
			assert.Equal(t, codes.Unauthenticated, status.Code(err))
			assert.False(t, called)
		})
	}
}

func TestRequestLogInterceptor_PassesResult(t *testing.T) {
	s := newTestServer()
	want := status.Error(codes.NotFound, "x")
	h := func(ctx context.Context, req any) (any, error) {
		assert.Equal(t, "req-1", requestIDFromContext(ctx))
		return "r", want
	}
	resp, err := s.requestLogInterceptor(incoming(common.RequestIDHeaderName, "req-1"), nil, &grpc.UnaryServerInfo{FullMethod: "/x/y"}, h)
	assert.Equal(t, "r", resp)
	assert.Equal(t, want, err)
}

func TestCallLogger_TagsRequestAndUser(t *testing.T) {
	var buf bytes.Buffer
	s := NewGRPCServer("127.0.0.1:0", logging.New(&buf, logging.FormatJSON, slog.LevelDebug),
		&fakeAccounts{}, &fakeRows{}, &fakeOrphans{}, "secret", "anon-key")

	ctx := context.WithValue(context.Background(), requestIDKey, "req-9")
	s.callLogger(ctx).Info(ctx, "anonymous")
	assert.Contains(t, buf.String(), `"request_id":"req-9"`)
	assert.NotContains(t, buf.String(), `"user_id"`)

	buf.Reset()
	ctx = context.WithValue(ctx, userIDKey, "acct-1")
	s.callLogger(ctx).Info(ctx, "signed in")
	assert.Contains(t, buf.String(), `"user_id":"acct-1"`)
}
