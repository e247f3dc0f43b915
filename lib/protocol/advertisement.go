// Copyright 2026 The git-rename-remote-branch Authors
// SPDX-License-Identifier: Apache-2.0

package protocol

import (
	"regexp"
	"strings"

	"github.com/spazm/git-rename-remote-branch/lib/pktline"
)

// refLine matches one advertised reference: a 40-character object id,
// whitespace, then the ref name. Each advertised line arrives with
// its pkt-line length prefix still glued to the front, and the prefix
// is hexadecimal too — but it is never followed by whitespace, so the
// leftmost match whose 40 hex digits precede a separator starts at
// the object id itself.
var refLine = regexp.MustCompile(`([0-9a-f]{40})[ \t]+(\S+)`)

// ParseAdvertisement scans the remote's initial reference listing for
// wantOld and wantNew and returns their advertised object ids, empty
// when a name is not advertised. Absence is an answer, not an error.
// Unrelated and malformed lines are ignored — an advertisement
// routinely carries thousands of refs that are not ours — and
// scanning stops at a bare flush marker.
func ParseAdvertisement(raw []byte, wantOld, wantNew string) (oldID, newID string) {
	for _, line := range strings.Split(string(raw), "\n") {
		if line == pktline.Flush {
			break
		}
		// The first line carries a NUL-separated capability list.
		line, _, _ = strings.Cut(line, "\x00")
		match := refLine.FindStringSubmatch(line)
		if match == nil {
			continue
		}
		switch match[2] {
		case wantOld:
			oldID = match[1]
		case wantNew:
			newID = match[1]
		}
	}
	return oldID, newID
}
