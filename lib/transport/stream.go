// Copyright 2026 The git-rename-remote-branch Authors
// SPDX-License-Identifier: Apache-2.0

package transport

import (
	"io"
	"time"
)

// stream adapts a blocking reader to timeout-bounded reads. One pump
// goroutine owns the reader and forwards chunks over a channel; it
// exits when the reader does, so a stream costs nothing after the
// remote closes its end.
type stream struct {
	chunks chan []byte
	err    error // set by the pump before chunks is closed
}

func newStream(r io.Reader) *stream {
	s := &stream{chunks: make(chan []byte)}
	go s.pump(r)
	return s
}

func (s *stream) pump(r io.Reader) {
	for {
		buffer := make([]byte, 4096)
		n, err := r.Read(buffer)
		if n > 0 {
			s.chunks <- buffer[:n]
		}
		if err != nil {
			s.err = err
			close(s.chunks)
			return
		}
	}
}

// read returns the next available chunk, ErrTimeout when none arrives
// in time, or the pump's terminal error (io.EOF after a clean close).
func (s *stream) read(timeout time.Duration) ([]byte, error) {
	select {
	case chunk, ok := <-s.chunks:
		if !ok {
			return nil, s.err
		}
		return chunk, nil
	case <-time.After(timeout):
		return nil, ErrTimeout
	}
}

type writeResult struct {
	n   int
	err error
}

// writeWithTimeout performs one write on a goroutine so a wedged pipe
// cannot block the caller past its deadline. On timeout the write may
// still land later; callers abandon the session either way.
func writeWithTimeout(w io.Writer, data []byte, timeout time.Duration) (int, error) {
	results := make(chan writeResult, 1)
	go func() {
		n, err := w.Write(data)
		results <- writeResult{n, err}
	}()
	select {
	case result := <-results:
		return result.n, result.err
	case <-time.After(timeout):
		return 0, ErrTimeout
	}
}
