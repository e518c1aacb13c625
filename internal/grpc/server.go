package grpc

import (
	"context"

	"bounded-cache-service/internal/core/ports"

	"github.com/containerd/errdefs"
	"github.com/containerd/errdefs/pkg/errgrpc"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "cache.v1.Cache"

// CacheServer is the server API of the cache service. Requests and
// responses are protobuf Structs:
//
//	Get  {key}                -> {value, found}
//	Set  {key, value}         -> {success}
//	Keys {page, page_size}    -> {page, page_size, total_pages, next_page, prev_page, keys}
type CacheServer interface {
	Get(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	Set(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	Keys(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

// ServiceDesc describes the cache service for grpc.Server.RegisterService.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CacheServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Get", Handler: unaryHandler("Get", CacheServer.Get)},
		{MethodName: "Set", Handler: unaryHandler("Set", CacheServer.Set)},
		{MethodName: "Keys", Handler: unaryHandler("Keys", CacheServer.Keys)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "cache/v1/cache.proto",
}

// Register registers srv on s.
func Register(s grpc.ServiceRegistrar, srv CacheServer) {
	s.RegisterService(&ServiceDesc, srv)
}

type unaryCall func(CacheServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(method string, call unaryCall) grpc.MethodHandler {
	fullMethod := "/" + ServiceName + "/" + method
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(CacheServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(CacheServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// Adapter implements CacheServer on top of the cache service.
type Adapter struct {
	service ports.CacheService
}

var _ CacheServer = (*Adapter)(nil)

// New creates a new gRPC adapter.
func New(service ports.CacheService) *Adapter {
	return &Adapter{service: service}
}

// Get retrieves a value from the cache. A missing key is not an error.
func (s *Adapter) Get(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	val, err := s.service.Get(ctx, stringField(req, "key"))
	if errdefs.IsNotFound(err) {
		return structpb.NewStruct(map[string]any{"value": "", "found": false})
	}
	if err != nil {
		return nil, errgrpc.ToGRPC(err)
	}
	return structpb.NewStruct(map[string]any{"value": val, "found": true})
}

// Set stores a value in the cache.
func (s *Adapter) Set(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	err := s.service.Set(ctx, stringField(req, "key"), stringField(req, "value"))
	if err != nil {
		return nil, errgrpc.ToGRPC(err)
	}
	return structpb.NewStruct(map[string]any{"success": true})
}

// Keys lists one page of stored keys.
func (s *Adapter) Keys(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	page := intField(req, "page", 1)
	pageSize := intField(req, "page_size", 10)

	hp, err := s.service.Keys(ctx, page, pageSize)
	if err != nil {
		return nil, errgrpc.ToGRPC(err)
	}

	keys := make([]any, len(hp.Data))
	for i, k := range hp.Data {
		keys[i] = k
	}
	resp := map[string]any{
		"page":        hp.Page,
		"page_size":   hp.PageSize,
		"total_pages": hp.TotalPages,
		"next_page":   nil,
		"prev_page":   nil,
		"keys":        keys,
	}
	if hp.NextPage != nil {
		resp["next_page"] = *hp.NextPage
	}
	if hp.PrevPage != nil {
		resp["prev_page"] = *hp.PrevPage
	}
	return structpb.NewStruct(resp)
}

func stringField(req *structpb.Struct, name string) string {
	return req.GetFields()[name].GetStringValue()
}

func intField(req *structpb.Struct, name string, def int) int {
	v, ok := req.GetFields()[name]
	if !ok {
		return def
	}
	return int(v.GetNumberValue())
}
