// Package portalpb is the gRPC contract of the self-hosted portal backend.
//
// Every RPC exchanges google.protobuf.Struct messages. The typed request and
// response structs in messages.go are converted to and from Struct with
// Encode and Decode.
package portalpb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

const ServiceName = "portal.v1.PortalService"

const (
	PortalService_CreateAccount_FullMethodName = "/portal.v1.PortalService/CreateAccount"
	PortalService_SignIn_FullMethodName        = "/portal.v1.PortalService/SignIn"
	PortalService_InsertRow_FullMethodName     = "/portal.v1.PortalService/InsertRow"
	PortalService_SelectRows_FullMethodName    = "/portal.v1.PortalService/SelectRows"
	PortalService_ReportOrphan_FullMethodName  = "/portal.v1.PortalService/ReportOrphan"
	PortalService_Ping_FullMethodName          = "/portal.v1.PortalService/Ping"
)

type PortalServiceServer interface {
	CreateAccount(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SignIn(context.Context, *structpb.Struct) (*structpb.Struct, error)
	InsertRow(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SelectRows(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ReportOrphan(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Ping(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type PortalServiceClient interface {
	CreateAccount(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	SignIn(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	InsertRow(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	SelectRows(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	ReportOrphan(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	Ping(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

func RegisterPortalServiceServer(s grpc.ServiceRegistrar, srv PortalServiceServer) {
	s.RegisterService(&PortalService_ServiceDesc, srv)
}

type rpc func(PortalServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(fullMethod string, call rpc) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(PortalServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(PortalServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

var PortalService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*PortalServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CreateAccount", Handler: unaryHandler(PortalService_CreateAccount_FullMethodName, PortalServiceServer.CreateAccount)},
		{MethodName: "SignIn", Handler: unaryHandler(PortalService_SignIn_FullMethodName, PortalServiceServer.SignIn)},
		{MethodName: "InsertRow", Handler: unaryHandler(PortalService_InsertRow_FullMethodName, PortalServiceServer.InsertRow)},
		{MethodName: "SelectRows", Handler: unaryHandler(PortalService_SelectRows_FullMethodName, PortalServiceServer.SelectRows)},
		{MethodName: "ReportOrphan", Handler: unaryHandler(PortalService_ReportOrphan_FullMethodName, PortalServiceServer.ReportOrphan)},
		{MethodName: "Ping", Handler: unaryHandler(PortalService_Ping_FullMethodName, PortalServiceServer.Ping)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "portal/v1/portal.proto",
}

type portalServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewPortalServiceClient(cc grpc.ClientConnInterface) PortalServiceClient {
	return &portalServiceClient{cc: cc}
}

func (c *portalServiceClient) invoke(ctx context.Context, method string, in *structpb.Struct, opts []grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *portalServiceClient) CreateAccount(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, PortalService_CreateAccount_FullMethodName, in, opts)
}

func (c *portalServiceClient) SignIn(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, PortalService_SignIn_FullMethodName, in, opts)
}

func (c *portalServiceClient) InsertRow(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, PortalService_InsertRow_FullMethodName, in, opts)
}

func (c *portalServiceClient) SelectRows(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, PortalService_SelectRows_FullMethodName, in, opts)
}

func (c *portalServiceClient) ReportOrphan(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, PortalService_ReportOrphan_FullMethodName, in, opts)
}

func (c *portalServiceClient) Ping(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, PortalService_Ping_FullMethodName, in, opts)
}
