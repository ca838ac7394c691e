// Package berr implements the Bell's stable error taxonomy. Each Kind has a
// fixed propagation policy documented alongside the component that raises
// it: some kinds are fatal at startup, some terminate the stream consumer,
// the rest are logged and swallowed so the next transaction can be
// processed.
package berr

import (
	"errors"
	"fmt"

	goerrors "github.com/go-errors/errors"
)

// Kind identifies which part of the system produced an error and therefore
// how the caller should react to it.
type Kind int

const (
	// Io covers filesystem errors: config load, log path creation.
	Io Kind = iota
	// Config covers malformed configuration or schema mismatch.
	Config
	// TransactionParse covers unrecoverable structural failure of an
	// incoming transaction, as opposed to a per-instruction decode miss.
	TransactionParse
	// Subscription covers upstream handshake/send failure.
	Subscription
	// UpstreamStream covers a mid-stream transport error.
	UpstreamStream
	// Rpc covers RPC client failure.
	Rpc
	// Oracle covers USD-price lookup failure.
	Oracle
	// Notification covers the case where every destination failed for a
	// given action.
	Notification
	// SinkHttp covers a single-destination HTTP failure. Never surfaced
	// beyond the dispatcher.
	SinkHttp
)

func (k Kind) String() string {
	switch k {
	case Io:
		return "io"
	case Config:
		return "config"
	case TransactionParse:
		return "transaction_parse"
	case Subscription:
		return "subscription"
	case UpstreamStream:
		return "upstream_stream"
	case Rpc:
		return "rpc"
	case Oracle:
		return "oracle"
	case Notification:
		return "notification"
	case SinkHttp:
		return "sink_http"
	default:
		return "unknown"
	}
}

// Error is a Kind-tagged, stack-carrying wrapped error.
type Error struct {
	Kind  Kind
	cause *goerrors.Error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.cause.Error())
}

func (e *Error) Unwrap() error {
	return e.cause.Err
}

// StackTrace formats the captured stack trace, useful for the fatal-at-
// startup kinds where a human will read the log.
func (e *Error) StackTrace() string {
	return e.cause.ErrorStack()
}

// New wraps cause with the given Kind, capturing a stack trace at the call
// site.
func New(kind Kind, cause error) *Error {
	if cause == nil {
		return nil
	}
	return &Error{Kind: kind, cause: goerrors.Wrap(cause, 1)}
}

// Newf builds a Kind-tagged error from a format string, with no underlying
// cause.
func Newf(kind Kind, format string, args ...interface{}) *Error {
	return New(kind, fmt.Errorf(format, args...))
}

// Is reports whether err is a *Error of the given Kind.
func Is(err error, kind Kind) bool {
	var be *Error
	if errors.As(err, &be) {
		return be.Kind == kind
	}
	return false
}
