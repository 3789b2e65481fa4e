package grpc

import (
	"context"
	"errors"

	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/emmett/unstick/internal/modifiers"
)

const (
	ServiceName          = "unstick.v1.Modifiers"
	ReleaseAllFullMethod = "/" + ServiceName + "/ReleaseAll"
)

// ModifiersServer is the server API for the unstick.v1.Modifiers service.
// The messages are protobuf well-known types, so no generated code is needed.
type ModifiersServer interface {
	// ReleaseAll releases held modifiers and returns the backend that did it
	ReleaseAll(context.Context, *emptypb.Empty) (*wrapperspb.StringValue, error)
}

// RegisterModifiersServer registers the service on s
func RegisterModifiersServer(s grpc.ServiceRegistrar, srv ModifiersServer) {
	s.RegisterService(&modifiersServiceDesc, srv)
}

func releaseAllHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ModifiersServer).ReleaseAll(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReleaseAllFullMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ModifiersServer).ReleaseAll(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

var modifiersServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ModifiersServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ReleaseAll",
			Handler:    releaseAllHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "unstick/v1/modifiers.proto",
}

// ModifiersClient is the client API for the unstick.v1.Modifiers service
type ModifiersClient interface {
	ReleaseAll(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
}

type modifiersClient struct {
	cc grpc.ClientConnInterface
}

func NewModifiersClient(cc grpc.ClientConnInterface) ModifiersClient {
	return &modifiersClient{cc: cc}
}

func (c *modifiersClient) ReleaseAll(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	if err := c.cc.Invoke(ctx, ReleaseAllFullMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// ModifiersService implements ModifiersServer on top of a Releaser
type ModifiersService struct {
	releaser *modifiers.Releaser
}

// NewModifiersService creates a new modifiers service
func NewModifiersService(releaser *modifiers.Releaser) *ModifiersService {
	return &ModifiersService{releaser: releaser}
}

func (s *ModifiersService) ReleaseAll(ctx context.Context, _ *emptypb.Empty) (*wrapperspb.StringValue, error) {
	out, err := s.releaser.Release(ctx)
	switch {
	case err == nil:
		return wrapperspb.String(out.Tool), nil
	case errors.Is(err, context.Canceled):
		return nil, status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return nil, status.Error(codes.DeadlineExceeded, err.Error())
	default:
		log.WithError(err).Warn("ReleaseAll failed")
		return nil, status.Error(codes.Unavailable, err.Error())
	}
}
