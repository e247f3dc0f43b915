// Copyright 2026 The git-rename-remote-branch Authors
// SPDX-License-Identifier: Apache-2.0

package protocol

import (
	"errors"
	"testing"

	"github.com/spazm/git-rename-remote-branch/lib/pktline"
)

// report pkt-line frames the given payload lines, each with a
// trailing newline, followed by the closing flush marker.
func report(t *testing.T, lines ...string) []byte {
	t.Helper()
	var raw []byte
	for _, line := range lines {
		frame, err := pktline.Encode([]byte(line + "\n"))
		if err != nil {
			t.Fatalf("framing report line %q: %v", line, err)
		}
		raw = append(raw, frame...)
	}
	return append(raw, pktline.Flush...)
}

func TestVerifyStatusReportSuccess(t *testing.T) {
	raw := report(t, "unpack ok", "ok refs/heads/a", "ok refs/heads/b")
	if err := VerifyStatusReport(raw, "refs/heads/a", "refs/heads/b"); err != nil {
		t.Errorf("VerifyStatusReport: %v", err)
	}
}

// The protocol does not specify the order of the two per-ref lines.
func TestVerifyStatusReportUnorderedRefs(t *testing.T) {
	raw := report(t, "unpack ok", "ok refs/heads/b", "ok refs/heads/a")
	if err := VerifyStatusReport(raw, "refs/heads/a", "refs/heads/b"); err != nil {
		t.Errorf("VerifyStatusReport with swapped ok lines: %v", err)
	}
}

func TestVerifyStatusReportKeywordCase(t *testing.T) {
	raw := report(t, "unpack ok", "OK refs/heads/a", "Ok refs/heads/b")
	if err := VerifyStatusReport(raw, "refs/heads/a", "refs/heads/b"); err != nil {
		t.Errorf("VerifyStatusReport with mixed-case ok: %v", err)
	}
}

func TestVerifyStatusReportLineCount(t *testing.T) {
	raw := report(t, "unpack ok", "ok refs/heads/a")
	err := VerifyStatusReport(raw, "refs/heads/a", "refs/heads/b")
	if !errors.Is(err, ErrUnexpectedLineCount) {
		t.Errorf("err = %v, want ErrUnexpectedLineCount", err)
	}
}

func TestVerifyStatusReportUnpackFailed(t *testing.T) {
	raw := report(t, "unpack error: index-pack abnormal exit", "ng refs/heads/a error", "ng refs/heads/b error")
	err := VerifyStatusReport(raw, "refs/heads/a", "refs/heads/b")
	if !errors.Is(err, ErrUnpackFailed) {
		t.Errorf("err = %v, want ErrUnpackFailed", err)
	}
}

func TestVerifyStatusReportRejectedRef(t *testing.T) {
	raw := report(t, "unpack ok", "ok refs/heads/a", "ng refs/heads/b hook declined")
	err := VerifyStatusReport(raw, "refs/heads/a", "refs/heads/b")
	if !errors.Is(err, ErrInvalidStatusLine) {
		t.Errorf("err = %v, want ErrInvalidStatusLine", err)
	}
}

func TestVerifyStatusReportWrongRefs(t *testing.T) {
	raw := report(t, "unpack ok", "ok refs/heads/a", "ok refs/heads/c")
	err := VerifyStatusReport(raw, "refs/heads/a", "refs/heads/b")
	if !errors.Is(err, ErrIncompleteRename) {
		t.Errorf("err = %v, want ErrIncompleteRename", err)
	}
}

func TestVerifyStatusReportUndecodable(t *testing.T) {
	err := VerifyStatusReport([]byte("zzzz"), "refs/heads/a", "refs/heads/b")
	if !errors.Is(err, pktline.ErrMalformed) {
		t.Errorf("err = %v, want pktline.ErrMalformed", err)
	}
}
