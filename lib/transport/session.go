// Copyright 2026 The git-rename-remote-branch Authors
// SPDX-License-Identifier: Apache-2.0

package transport

import (
	"errors"
	"time"
)

// ErrTimeout reports that no bytes arrived, or a write did not
// complete, before the deadline. Callers reading a message treat a
// timeout after bytes have already arrived as end-of-message: the
// protocol does not length-prefix its messages at the stream level.
var ErrTimeout = errors.New("transport deadline exceeded")

// Session is one exclusive conversation with a remote receive-pack.
// A session serves exactly one rename; it is not safe for concurrent
// use.
type Session interface {
	// ReadOutput returns bytes available on the remote's primary
	// output within timeout: ErrTimeout when nothing arrived, io.EOF
	// once the remote closed the stream.
	ReadOutput(timeout time.Duration) ([]byte, error)

	// ReadDiagnostic behaves like ReadOutput for the remote's
	// diagnostic (stderr) stream.
	ReadDiagnostic(timeout time.Duration) ([]byte, error)

	// Write sends data to the remote, returning how many bytes were
	// written. ErrTimeout reports a write that did not complete in
	// time; a short count with nil error is possible and fatal to
	// the caller.
	Write(data []byte, timeout time.Duration) (int, error)

	// CloseWrite closes the write side, signalling end-of-input to
	// the remote.
	CloseWrite() error

	// Exited reports, without blocking, whether the remote process
	// has terminated.
	Exited() bool

	// Wait blocks until the remote process is reaped and returns its
	// exit status.
	Wait() error
}
