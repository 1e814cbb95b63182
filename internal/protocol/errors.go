package protocol

import (
	"errors"
	"fmt"
)

// Device-level errors surfaced by Transact. None of them are retried
// internally; retry policy belongs to the caller.
var (
	// ErrMismatch means the response's correlation fields (remaining
	// packets, command class, command id) differ from the request's.
	ErrMismatch = errors.New("response does not match request")

	ErrBusy          = errors.New("device is busy")
	ErrCommandFailed = errors.New("command failed")
	ErrUnsupported   = errors.New("command not supported")
	ErrDeviceTimeout = errors.New("command timed out")
)

// TransportError reports an I/O failure talking to the control endpoint.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// InvalidPayloadError rejects a caller-supplied payload whose length
// matches none of the accepted shapes for a command. It is detected
// before any device I/O.
type InvalidPayloadError struct {
	Command  string
	Length   int
	Accepted []int
}

func (e *InvalidPayloadError) Error() string {
	return fmt.Sprintf("%s: payload of %d bytes, accepted lengths %v", e.Command, e.Length, e.Accepted)
}
