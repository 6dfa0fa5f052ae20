package client

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/ttioportal/internal/common"
	"github.com/dmitrijs2005/ttioportal/internal/identity"
	"github.com/dmitrijs2005/ttioportal/internal/models"
	"github.com/dmitrijs2005/ttioportal/internal/portalpb"
	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// DefaultCallTimeout bounds every RPC issued by GRPCClient.
const DefaultCallTimeout = 10 * time.Second

// GRPCClient talks to the self-hosted portal backend. It satisfies
// identity.Provider, store.Store and orphans.Reporter.
type GRPCClient struct {
	endpointURL string
	apiKey      string
	timeout     time.Duration
	conn        *grpc.ClientConn
	client      portalpb.PortalServiceClient

	tokenMu sync.RWMutex
	token   func(context.Context) string
}

// NewGRPCClient builds a client for endpointURL. Extra dial options are
// appended to the defaults.
func NewGRPCClient(endpointURL, apiKey string, timeout time.Duration, opts ...grpc.DialOption) (*GRPCClient, error) {
	if timeout <= 0 {
		timeout = DefaultCallTimeout
	}
	c := &GRPCClient{endpointURL: endpointURL, apiKey: apiKey, timeout: timeout}

	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
		grpc.WithUnaryInterceptor(c.headersInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(endpointURL, dialOpts...)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.client = portalpb.NewPortalServiceClient(conn)
	return c, nil
}

// SetTokenSource makes every later call present the token fn returns as a
// bearer credential. An empty token sends no authorization header.
func (c *GRPCClient) SetTokenSource(fn func(context.Context) string) {
	c.tokenMu.Lock()
	c.token = fn
	c.tokenMu.Unlock()
}

func (c *GRPCClient) accessToken(ctx context.Context) string {
	c.tokenMu.RLock()
	fn := c.token
	c.tokenMu.RUnlock()
	if fn == nil {
		return ""
	}
	return fn(ctx)
}

func (c *GRPCClient) headersInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	kv := []string{
		common.APIKeyHeaderName, c.apiKey,
		common.RequestIDHeaderName, uuid.NewString(),
	}
	if token := c.accessToken(ctx); token != "" {
		kv = append(kv, common.AuthorizationHeaderName, "Bearer "+token)
	}
	ctx = metadata.AppendToOutgoingContext(ctx, kv...)
	return invoker(ctx, method, req, reply, cc, opts...)
}

func (c *GRPCClient) Close() error {
	return c.conn.Close()
}

type rpcFunc func(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)

// call encodes req, invokes fn under the per-call timeout and decodes the
// reply into resp when resp is non-nil.
func (c *GRPCClient) call(ctx context.Context, fn rpcFunc, req, resp any) error {
	in, err := portalpb.Encode(req)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	out, err := fn(ctx, in)
	if err != nil {
		return err
	}
	if resp == nil {
		return nil
	}
	if err := portalpb.Decode(out, resp); err != nil {
		return fmt.Errorf("%w: %w", ErrUnexpectedResponse, err)
	}
	return nil
}

func (c *GRPCClient) CreateAccount(ctx context.Context, email, password string, metadata map[string]any) (string, error) {
	var resp portalpb.CreateAccountResponse
	err := c.call(ctx, c.client.CreateAccount, portalpb.CreateAccountRequest{
		Email:    email,
		Password: password,
		Metadata: metadata,
	}, &resp)
	if err != nil {
		return "", mapError(err)
	}
	if resp.UserID == "" {
		return "", &identity.ProviderError{Message: "account created without an id"}
	}
	return resp.UserID, nil
}

func (c *GRPCClient) SignIn(ctx context.Context, email, password string) (*models.AuthenticatedUser, error) {
	var resp portalpb.SignInResponse
	err := c.call(ctx, c.client.SignIn, portalpb.SignInRequest{Email: email, Password: password}, &resp)
	if err != nil {
		if status.Code(err) == codes.Unauthenticated {
			return nil, identity.ErrInvalidCredentials
		}
		return nil, mapError(err)
	}

	role, err := models.ParseRole(resp.Role)
	if err != nil {
		role = models.RoleOther
	}
	return &models.AuthenticatedUser{
		UserID:      resp.UserID,
		Email:       resp.Email,
		Role:        role,
		AccessToken: resp.AccessToken,
		SignedInAt:  time.Now().UTC(),
	}, nil
}

func (c *GRPCClient) Insert(ctx context.Context, table string, fields map[string]any) error {
	err := c.call(ctx, c.client.InsertRow, portalpb.InsertRowRequest{Table: table, Fields: fields}, nil)
	return mapError(err)
}

func (c *GRPCClient) Select(ctx context.Context, table string, limit int) ([]map[string]any, error) {
	var resp portalpb.SelectRowsResponse
	err := c.call(ctx, c.client.SelectRows, portalpb.SelectRowsRequest{Table: table, Limit: limit}, &resp)
	if err != nil {
		return nil, mapError(err)
	}
	return resp.Rows, nil
}

func (c *GRPCClient) Report(ctx context.Context, o models.Orphan) error {
	err := c.call(ctx, c.client.ReportOrphan, portalpb.ReportOrphanRequest{
		UserID:     o.UserID,
		Email:      o.Email,
		Reason:     o.Reason,
		DetectedAt: o.DetectedAt,
	}, nil)
	return mapError(err)
}

func (c *GRPCClient) Ping(ctx context.Context) error {
	var resp portalpb.PingResponse
	if err := c.call(ctx, c.client.Ping, portalpb.Empty{}, &resp); err != nil {
		return mapError(err)
	}
	if resp.Status != "OK" {
		return identity.ErrUnavailable
	}
	return nil
}

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrUnexpectedResponse) {
		return err
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return fmt.Errorf("%w: %s", common.ErrorUnauthorized, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded, codes.Canceled:
		return fmt.Errorf("%w: %s", identity.ErrUnavailable, st.Message())
	default:
		return &identity.ProviderError{Message: st.Message()}
	}
}
