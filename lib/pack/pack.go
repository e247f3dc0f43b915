// Copyright 2026 The git-rename-remote-branch Authors
// SPDX-License-Identifier: Apache-2.0

// Package pack produces the fixed empty packfile the push protocol
// requires even when no object data accompanies a ref update.
package pack

import (
	"crypto/sha1"
	"encoding/binary"
)

// Version and object count declared by the pack this package builds.
const (
	version     = 2
	objectCount = 0
)

var empty = build()

// Empty returns the canonical empty packfile: a 12-byte header (PACK
// magic, version 2, zero objects, all big-endian) followed by the
// SHA-1 digest of that header. The result is 32 bytes and identical
// on every call.
func Empty() []byte {
	return append([]byte(nil), empty...)
}

func build() []byte {
	header := make([]byte, 0, 12+sha1.Size)
	header = append(header, "PACK"...)
	header = binary.BigEndian.AppendUint32(header, version)
	header = binary.BigEndian.AppendUint32(header, objectCount)
	sum := sha1.Sum(header)
	return append(header, sum[:]...)
}
