package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// Client calls the cache service over a gRPC connection.
type Client struct {
	cc grpc.ClientConnInterface
}

func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

// Get returns the value for key and whether it was found.
func (c *Client) Get(ctx context.Context, key string, opts ...grpc.CallOption) (string, bool, error) {
	resp, err := c.invoke(ctx, "Get", map[string]any{"key": key}, opts...)
	if err != nil {
		return "", false, err
	}
	return stringField(resp, "value"), resp.GetFields()["found"].GetBoolValue(), nil
}

func (c *Client) Set(ctx context.Context, key, value string, opts ...grpc.CallOption) error {
	_, err := c.invoke(ctx, "Set", map[string]any{"key": key, "value": value}, opts...)
	return err
}

// Keys returns one page of keys and the total number of pages.
func (c *Client) Keys(ctx context.Context, page, pageSize int, opts ...grpc.CallOption) ([]string, int, error) {
	resp, err := c.invoke(ctx, "Keys", map[string]any{"page": page, "page_size": pageSize}, opts...)
	if err != nil {
		return nil, 0, err
	}
	var keys []string
	for _, v := range resp.GetFields()["keys"].GetListValue().GetValues() {
		keys = append(keys, v.GetStringValue())
	}
	return keys, intField(resp, "total_pages", 0), nil
}

func (c *Client) invoke(ctx context.Context, method string, fields map[string]any, opts ...grpc.CallOption) (*structpb.Struct, error) {
	in, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, err
	}
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/"+method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
