package geyser

import (
	"context"
	"encoding/json"
	"sync"

	grpc_middleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpc_retry "github.com/grpc-ecosystem/go-grpc-middleware/retry"
	grpc_prometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/encoding"

	"github.com/jito-foundation/bell/belllog"
	"github.com/jito-foundation/bell/berr"
)

var log = belllog.NewSubsystemLogger("GSER")

// subscribeMethod is the upstream streaming RPC this client invokes. No
// .proto file is available for this contract, so it is called directly
// through grpc.ClientConn.NewStream rather than protoc-generated stubs.
const subscribeMethod = "/geyser.Geyser/Subscribe"

const codecName = "bell-json"

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

// jsonCodec marshals the hand-written wire structs as JSON over the gRPC
// transport in place of a generated protobuf codec.
type jsonCodec struct{}

func (jsonCodec) Marshal(v interface{}) ([]byte, error) { return json.Marshal(v) }
func (jsonCodec) Unmarshal(data []byte, v interface{}) error { return json.Unmarshal(data, v) }
func (jsonCodec) Name() string                               { return codecName }

// wireUpdate is the JSON-over-gRPC shape the upstream feed delivers;
// Update is its decoded, ergonomic counterpart.
type wireUpdate struct {
	Slot        *SlotUpdate        `json:"slot,omitempty"`
	Transaction *TransactionUpdate `json:"transaction,omitempty"`
}

// GrpcClient is the production Client implementation.
type GrpcClient struct {
	conn *grpc.ClientConn
}

// Dial opens a gRPC connection to endpoint, installing the retry and
// Prometheus client interceptors the teacher's go.mod already carries.
func Dial(endpoint string, token string) (*GrpcClient, error) {
	var perRPC grpc.DialOption
	if token != "" {
		perRPC = grpc.WithPerRPCCredentials(tokenCreds(token))
	}

	opts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(codecName)),
		grpc.WithChainStreamInterceptor(
			grpc_middleware.ChainStreamClient(
				grpc_retry.StreamClientInterceptor(grpc_retry.WithMax(3)),
				grpc_prometheus.StreamClientInterceptor,
			),
		),
	}
	if perRPC != nil {
		opts = append(opts, perRPC)
	}

	conn, err := grpc.Dial(endpoint, opts...)
	if err != nil {
		return nil, berr.New(berr.Subscription, err)
	}
	return &GrpcClient{conn: conn}, nil
}

func (c *GrpcClient) Close() error {
	return c.conn.Close()
}

// Subscribe opens the upstream stream and starts a goroutine translating
// wire updates into Update values delivered on the returned Stream.
func (c *GrpcClient) Subscribe(ctx context.Context, req SubscribeRequest) (Stream, error) {
	clientStream, err := c.conn.NewStream(ctx, &grpc.StreamDesc{
		StreamName:    "Subscribe",
		ServerStreams: true,
	}, subscribeMethod)
	if err != nil {
		return nil, berr.New(berr.Subscription, err)
	}
	if err := clientStream.SendMsg(req); err != nil {
		return nil, berr.New(berr.Subscription, err)
	}
	if err := clientStream.CloseSend(); err != nil {
		return nil, berr.New(berr.Subscription, err)
	}

	s := &grpcStream{
		stream:  clientStream,
		updates: make(chan Update, 64),
	}
	go s.pump()
	return s, nil
}

type grpcStream struct {
	stream  grpc.ClientStream
	updates chan Update

	mu  sync.Mutex
	err error
}

func (s *grpcStream) pump() {
	defer close(s.updates)
	for {
		var wu wireUpdate
		if err := s.stream.RecvMsg(&wu); err != nil {
			s.setErr(err)
			return
		}
		if wu.Slot == nil && wu.Transaction == nil {
			continue
		}
		select {
		case s.updates <- Update{Slot: wu.Slot, Transaction: wu.Transaction}:
		case <-s.stream.Context().Done():
			s.setErr(s.stream.Context().Err())
			return
		}
	}
}

func (s *grpcStream) setErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err.Error() != "EOF" {
		s.err = berr.New(berr.UpstreamStream, err)
	}
}

func (s *grpcStream) Updates() <-chan Update { return s.updates }

func (s *grpcStream) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *grpcStream) Close() error {
	return s.stream.CloseSend()
}
