// Copyright 2026 The git-rename-remote-branch Authors
// SPDX-License-Identifier: Apache-2.0

package protocol

import (
	"fmt"

	"github.com/spazm/git-rename-remote-branch/lib/pack"
	"github.com/spazm/git-rename-remote-branch/lib/pktline"
)

// ZeroID is the all-zero object id meaning "no object": as a
// command's old value it creates the ref, as its new value it deletes
// the ref.
const ZeroID = "0000000000000000000000000000000000000000"

// Capabilities is the advisory capability list sent on the first
// command line. report-status asks the remote to send the report this
// package verifies. Side-band is deliberately not requested: the
// response is consumed as plain pkt-lines.
const Capabilities = "report-status agent=git-rename-remote-branch/2.0"

// BuildRenameCommand assembles the full push payload renaming oldRef
// to newRef: create newRef at objectID, delete oldRef, flush, then
// the empty pack appended raw. The remote applies the two updates as
// one atomic batch, and the flush must precede the pack bytes.
func BuildRenameCommand(oldRef, newRef, objectID string) ([]byte, error) {
	create, err := pktline.Encode(fmt.Appendf(nil, "%s %s %s\x00%s\n", ZeroID, objectID, newRef, Capabilities))
	if err != nil {
		return nil, fmt.Errorf("encoding create command: %w", err)
	}
	remove, err := pktline.Encode(fmt.Appendf(nil, "%s %s %s\n", objectID, ZeroID, oldRef))
	if err != nil {
		return nil, fmt.Errorf("encoding delete command: %w", err)
	}

	var payload []byte
	payload = append(payload, create...)
	payload = append(payload, remove...)
	payload = append(payload, pktline.Flush...)
	return append(payload, pack.Empty()...), nil
}
