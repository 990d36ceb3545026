// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: interaction.proto

package interaction

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	InteractionService_SendLike_FullMethodName         = "/interaction.InteractionService/SendLike"
	InteractionService_SkipUser_FullMethodName         = "/interaction.InteractionService/SkipUser"
	InteractionService_UndoSkip_FullMethodName         = "/interaction.InteractionService/UndoSkip"
	InteractionService_ListSkippedUsers_FullMethodName = "/interaction.InteractionService/ListSkippedUsers"
	InteractionService_ListMatches_FullMethodName      = "/interaction.InteractionService/ListMatches"
)

// InteractionServiceClient is the client API for InteractionService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type InteractionServiceClient interface {
	// Records a like from actor to target; detects reciprocity and
	// promotes the pair to a match.
	SendLike(ctx context.Context, in *SendLikeRequest, opts ...grpc.CallOption) (*SendLikeResponse, error)
	// Records a directional skip (idempotent).
	SkipUser(ctx context.Context, in *SkipUserRequest, opts ...grpc.CallOption) (*SkipUserResponse, error)
	// Removes a directional skip (idempotent).
	UndoSkip(ctx context.Context, in *UndoSkipRequest, opts ...grpc.CallOption) (*UndoSkipResponse, error)
	// Lists users the actor skipped, most recent first.
	ListSkippedUsers(ctx context.Context, in *ListSkippedUsersRequest, opts ...grpc.CallOption) (*ListSkippedUsersResponse, error)
	// Lists the user's matches, newest first.
	ListMatches(ctx context.Context, in *ListMatchesRequest, opts ...grpc.CallOption) (*ListMatchesResponse, error)
}

type interactionServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewInteractionServiceClient(cc grpc.ClientConnInterface) InteractionServiceClient {
	return &interactionServiceClient{cc}
}

func (c *interactionServiceClient) SendLike(ctx context.Context, in *SendLikeRequest, opts ...grpc.CallOption) (*SendLikeResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SendLikeResponse)
	err := c.cc.Invoke(ctx, InteractionService_SendLike_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *interactionServiceClient) SkipUser(ctx context.Context, in *SkipUserRequest, opts ...grpc.CallOption) (*SkipUserResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SkipUserResponse)
	err := c.cc.Invoke(ctx, InteractionService_SkipUser_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *interactionServiceClient) UndoSkip(ctx context.Context, in *UndoSkipRequest, opts ...grpc.CallOption) (*UndoSkipResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UndoSkipResponse)
	err := c.cc.Invoke(ctx, InteractionService_UndoSkip_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *interactionServiceClient) ListSkippedUsers(ctx context.Context, in *ListSkippedUsersRequest, opts ...grpc.CallOption) (*ListSkippedUsersResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListSkippedUsersResponse)
	err := c.cc.Invoke(ctx, InteractionService_ListSkippedUsers_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *interactionServiceClient) ListMatches(ctx context.Context, in *ListMatchesRequest, opts ...grpc.CallOption) (*ListMatchesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListMatchesResponse)
	err := c.cc.Invoke(ctx, InteractionService_ListMatches_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// InteractionServiceServer is the server API for InteractionService service.
// All implementations must embed UnimplementedInteractionServiceServer
// for forward compatibility.
type InteractionServiceServer interface {
	// Records a like from actor to target; detects reciprocity and
	// promotes the pair to a match.
	SendLike(context.Context, *SendLikeRequest) (*SendLikeResponse, error)
	// Records a directional skip (idempotent).
	SkipUser(context.Context, *SkipUserRequest) (*SkipUserResponse, error)
	// Removes a directional skip (idempotent).
	UndoSkip(context.Context, *UndoSkipRequest) (*UndoSkipResponse, error)
	// Lists users the actor skipped, most recent first.
	ListSkippedUsers(context.Context, *ListSkippedUsersRequest) (*ListSkippedUsersResponse, error)
	// Lists the user's matches, newest first.
	ListMatches(context.Context, *ListMatchesRequest) (*ListMatchesResponse, error)
	mustEmbedUnimplementedInteractionServiceServer()
}

// UnimplementedInteractionServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedInteractionServiceServer struct{}

func (UnimplementedInteractionServiceServer) SendLike(context.Context, *SendLikeRequest) (*SendLikeResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SendLike not implemented")
}
func (UnimplementedInteractionServiceServer) SkipUser(context.Context, *SkipUserRequest) (*SkipUserResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SkipUser not implemented")
}
func (UnimplementedInteractionServiceServer) UndoSkip(context.Context, *UndoSkipRequest) (*UndoSkipResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UndoSkip not implemented")
}
func (UnimplementedInteractionServiceServer) ListSkippedUsers(context.Context, *ListSkippedUsersRequest) (*ListSkippedUsersResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListSkippedUsers not implemented")
}
func (UnimplementedInteractionServiceServer) ListMatches(context.Context, *ListMatchesRequest) (*ListMatchesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListMatches not implemented")
}
func (UnimplementedInteractionServiceServer) mustEmbedUnimplementedInteractionServiceServer() {}
func (UnimplementedInteractionServiceServer) testEmbeddedByValue()                            {}

// UnsafeInteractionServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to InteractionServiceServer will
// result in compilation errors.
type UnsafeInteractionServiceServer interface {
	mustEmbedUnimplementedInteractionServiceServer()
}

func RegisterInteractionServiceServer(s grpc.ServiceRegistrar, srv InteractionServiceServer) {
	// If the following call pancis, it indicates UnimplementedInteractionServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&InteractionService_ServiceDesc, srv)
}

func _InteractionService_SendLike_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SendLikeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InteractionServiceServer).SendLike(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InteractionService_SendLike_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InteractionServiceServer).SendLike(ctx, req.(*SendLikeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InteractionService_SkipUser_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SkipUserRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InteractionServiceServer).SkipUser(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InteractionService_SkipUser_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InteractionServiceServer).SkipUser(ctx, req.(*SkipUserRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InteractionService_UndoSkip_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UndoSkipRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InteractionServiceServer).UndoSkip(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InteractionService_UndoSkip_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InteractionServiceServer).UndoSkip(ctx, req.(*UndoSkipRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InteractionService_ListSkippedUsers_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListSkippedUsersRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InteractionServiceServer).ListSkippedUsers(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InteractionService_ListSkippedUsers_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InteractionServiceServer).ListSkippedUsers(ctx, req.(*ListSkippedUsersRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InteractionService_ListMatches_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListMatchesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InteractionServiceServer).ListMatches(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InteractionService_ListMatches_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InteractionServiceServer).ListMatches(ctx, req.(*ListMatchesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// InteractionService_ServiceDesc is the grpc.ServiceDesc for InteractionService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var InteractionService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "interaction.InteractionService",
	HandlerType: (*InteractionServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "SendLike",
			Handler:    _InteractionService_SendLike_Handler,
		},
		{
			MethodName: "SkipUser",
			Handler:    _InteractionService_SkipUser_Handler,
		},
		{
			MethodName: "UndoSkip",
			Handler:    _InteractionService_UndoSkip_Handler,
		},
		{
			MethodName: "ListSkippedUsers",
			Handler:    _InteractionService_ListSkippedUsers_Handler,
		},
		{
			MethodName: "ListMatches",
			Handler:    _InteractionService_ListMatches_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "interaction.proto",
}
