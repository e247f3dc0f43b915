// Copyright 2026 The git-rename-remote-branch Authors
// SPDX-License-Identifier: Apache-2.0

package transport

import (
	"errors"
	"io"
	"testing"
	"time"
)

func TestStreamReadsChunks(t *testing.T) {
	reader, writer := io.Pipe()
	s := newStream(reader)

	go func() {
		writer.Write([]byte("hello"))
		writer.Write([]byte(" world"))
		writer.Close()
	}()

	var got []byte
	for {
		chunk, err := s.read(5 * time.Second)
		got = append(got, chunk...)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("read: %v", err)
		}
	}
	if string(got) != "hello world" {
		t.Errorf("accumulated %q, want %q", got, "hello world")
	}
}

func TestStreamTimeout(t *testing.T) {
	reader, writer := io.Pipe()
	defer writer.Close()
	s := newStream(reader)

	if _, err := s.read(10 * time.Millisecond); !errors.Is(err, ErrTimeout) {
		t.Errorf("read on idle stream: err = %v, want ErrTimeout", err)
	}
}

func TestStreamEOFAfterClose(t *testing.T) {
	reader, writer := io.Pipe()
	s := newStream(reader)
	writer.Close()

	if _, err := s.read(5 * time.Second); err != io.EOF {
		t.Errorf("read after close: err = %v, want io.EOF", err)
	}
	// EOF is sticky.
	if _, err := s.read(5 * time.Second); err != io.EOF {
		t.Errorf("second read after close: err = %v, want io.EOF", err)
	}
}

func TestWriteWithTimeout(t *testing.T) {
	reader, writer := io.Pipe()

	go io.Copy(io.Discard, reader)
	n, err := writeWithTimeout(writer, []byte("payload"), 5*time.Second)
	if err != nil || n != len("payload") {
		t.Errorf("writeWithTimeout = (%d, %v), want (%d, nil)", n, err, len("payload"))
	}
}

func TestWriteWithTimeoutExpires(t *testing.T) {
	// Nobody reads the pipe, so the write blocks until the deadline.
	_, writer := io.Pipe()
	if _, err := writeWithTimeout(writer, []byte("payload"), 10*time.Millisecond); !errors.Is(err, ErrTimeout) {
		t.Errorf("writeWithTimeout on wedged pipe: err = %v, want ErrTimeout", err)
	}
}
