package geyser

import "context"

// tokenCreds attaches a single static "x-token" header to every RPC, the
// upstream feed's entire authentication contract.
type tokenCreds string

func (t tokenCreds) GetRequestMetadata(ctx context.Context, uri ...string) (map[string]string, error) {
	return map[string]string{"x-token": string(t)}, nil
}

func (t tokenCreds) RequireTransportSecurity() bool {
	return false
}
