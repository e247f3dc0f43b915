// Copyright 2026 The git-rename-remote-branch Authors
// SPDX-License-Identifier: Apache-2.0

package protocol

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spazm/git-rename-remote-branch/lib/pktline"
)

// unpackOK is the literal first line of a successful status report.
const unpackOK = "unpack ok"

var (
	// ErrUnexpectedLineCount reports a status response that does not
	// decode to exactly the unpack result plus two ref results.
	ErrUnexpectedLineCount = errors.New("status report has unexpected line count")

	// ErrUnpackFailed reports a first line other than "unpack ok".
	ErrUnpackFailed = errors.New("remote failed to unpack")

	// ErrInvalidStatusLine reports a per-ref line that is not of the
	// form "ok <ref>".
	ErrInvalidStatusLine = errors.New("invalid status line")

	// ErrIncompleteRename reports a well-formed response that does
	// not acknowledge both refs of the rename.
	ErrIncompleteRename = errors.New("remote did not acknowledge both refs")
)

// VerifyStatusReport decodes the remote's report-status response and
// confirms it acknowledges exactly the rename of oldRef to newRef.
// The order of the two per-ref lines is unspecified by the protocol
// and not assumed.
func VerifyStatusReport(raw []byte, oldRef, newRef string) error {
	lines, err := pktline.Decode(raw)
	if err != nil {
		return fmt.Errorf("decoding status report: %w", err)
	}
	if len(lines) != 3 {
		return fmt.Errorf("%w: got %d lines, want 3", ErrUnexpectedLineCount, len(lines))
	}
	if lines[0] != unpackOK {
		return fmt.Errorf("%w: %q", ErrUnpackFailed, lines[0])
	}

	acknowledged := make(map[string]bool, 2)
	for _, line := range lines[1:] {
		fields := strings.Fields(line)
		if len(fields) != 2 || !strings.EqualFold(fields[0], "ok") {
			return fmt.Errorf("%w: %q", ErrInvalidStatusLine, line)
		}
		acknowledged[fields[1]] = true
	}
	if !acknowledged[oldRef] || !acknowledged[newRef] {
		return fmt.Errorf("%w: report covers %s", ErrIncompleteRename,
			strings.Join(refNames(acknowledged), ", "))
	}
	return nil
}

func refNames(set map[string]bool) []string {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	return names
}
