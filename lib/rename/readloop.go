// Copyright 2026 The git-rename-remote-branch Authors
// SPDX-License-Identifier: Apache-2.0

package rename

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/spazm/git-rename-remote-branch/lib/transport"
)

// readUntilIdle accumulates bytes from read until the stream reports
// end-of-data or stays idle past a deadline. The protocol does not
// length-prefix the advertisement or the status report at the stream
// level, so idleness is the only end-of-message signal. The first
// read waits out first while the remote initializes; after that, each
// read gets the shorter idle.
func readUntilIdle(ctx context.Context, read func(time.Duration) ([]byte, error), first, idle time.Duration) ([]byte, error) {
	var message []byte
	timeout := first
	for {
		if err := ctx.Err(); err != nil {
			return message, err
		}
		chunk, err := read(timeout)
		message = append(message, chunk...)
		switch {
		case errors.Is(err, io.EOF), errors.Is(err, transport.ErrTimeout):
			return message, nil
		case err != nil:
			return message, err
		}
		timeout = idle
	}
}
