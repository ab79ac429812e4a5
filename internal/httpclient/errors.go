package httpclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
)

// Failure buckets a transport error for message selection. All three
// buckets share the network-error exit code.
type Failure int

const (
	FailTimeout Failure = iota
	FailConnection
	FailOther
)

// Classify inspects the error chain returned by the session client and
// picks the failure bucket. The whole chain is walked because wrapping
// layers (url.Error around a retry give-up) report Timeout false even
// when the underlying error was a timeout.
func Classify(err error) Failure {
	for e := err; e != nil; e = errors.Unwrap(e) {
		if netErr, ok := e.(net.Error); ok && netErr.Timeout() {
			return FailTimeout
		}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return FailTimeout
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return FailConnection
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return FailConnection
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return FailConnection
	}
	return FailOther
}

// StatusError reports a non-OK upstream response that survived the retry
// policy.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}

// DecodeError reports an upstream body that could not be parsed.
type DecodeError struct {
	cause error
}

func NewDecodeError(cause error) *DecodeError {
	return &DecodeError{cause: cause}
}

func (e *DecodeError) Error() string {
	return "invalid response body: " + e.cause.Error()
}

func (e *DecodeError) Unwrap() error {
	return e.cause
}
