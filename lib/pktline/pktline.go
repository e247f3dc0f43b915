// Copyright 2026 The git-rename-remote-branch Authors
// SPDX-License-Identifier: Apache-2.0

// Package pktline implements the length-prefixed line framing of the
// git smart transport. Each frame is a 4-digit hexadecimal length
// (counting the 4 digits themselves) followed by the payload; the
// reserved length 0000 is the flush marker terminating a message
// group.
package pktline

import (
	"errors"
	"fmt"
	"strconv"
)

// MaxFrameLen is the largest encodable frame: the length field is 4
// hex digits, so a frame including its prefix cannot exceed 65535
// bytes.
const MaxFrameLen = 0xffff

// Flush is the reserved 4-byte marker meaning "end of this message
// group". It is the encoding of the empty payload.
const Flush = "0000"

// ErrTooLong is returned by Encode when the payload does not fit in
// one frame.
var ErrTooLong = errors.New("pkt-line payload too long")

// ErrMalformed is returned by Decode when a length prefix is not
// valid hexadecimal or the buffer ends mid-frame.
var ErrMalformed = errors.New("malformed pkt-line")

// Encode frames payload as a single pkt-line. The empty payload
// encodes to the flush marker.
func Encode(payload []byte) ([]byte, error) {
	return encode(payload, 0)
}

// EncodeSideband frames payload with a leading side-band channel tag
// byte. The tag counts toward the frame length.
func EncodeSideband(channel byte, payload []byte) ([]byte, error) {
	return encode(payload, channel)
}

func encode(payload []byte, channel byte) ([]byte, error) {
	if len(payload) == 0 {
		return []byte(Flush), nil
	}
	length := len(payload) + 4
	if channel != 0 {
		length++
	}
	if length > MaxFrameLen {
		return nil, fmt.Errorf("%w: %d bytes", ErrTooLong, len(payload))
	}
	frame := make([]byte, 0, length)
	frame = fmt.Appendf(frame, "%04X", length)
	if channel != 0 {
		frame = append(frame, channel)
	}
	return append(frame, payload...), nil
}

// Decode splits buffer into the payloads of its concatenated frames.
// Flush markers are skipped without emitting a payload, as are the
// protocol-disallowed lengths 1 through 4, which lenient real-world
// servers emit for empty non-flush lines. At most one trailing
// newline is stripped from each payload.
func Decode(buffer []byte) ([]string, error) {
	var payloads []string
	for offset := 0; offset < len(buffer); {
		if len(buffer)-offset < 4 {
			return nil, fmt.Errorf("%w: %d trailing bytes at offset %d",
				ErrMalformed, len(buffer)-offset, offset)
		}
		prefix := string(buffer[offset : offset+4])
		length, err := strconv.ParseUint(prefix, 16, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: length %q at offset %d is not hexadecimal",
				ErrMalformed, prefix, offset)
		}
		if length <= 4 {
			// A flush marker, or an empty non-flush frame that the
			// protocol forbids but some servers produce. Skip both.
			offset += 4
			continue
		}
		end := offset + int(length)
		if end > len(buffer) {
			return nil, fmt.Errorf("%w: frame of %d bytes at offset %d overruns the buffer",
				ErrMalformed, length, offset)
		}
		payload := buffer[offset+4 : end]
		if n := len(payload); payload[n-1] == '\n' {
			payload = payload[:n-1]
		}
		payloads = append(payloads, string(payload))
		offset = end
	}
	return payloads, nil
}
