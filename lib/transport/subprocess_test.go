// Copyright 2026 The git-rename-remote-branch Authors
// SPDX-License-Identifier: Apache-2.0

package transport

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// fakeSSH writes a shell script standing in for the ssh client and
// returns its path. The script receives the usual two arguments
// (destination, remote command) and runs body.
func fakeSSH(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fake-ssh")
	script := "#!/bin/sh\n" + body + "\n"
	if err := os.WriteFile(path, []byte(script), 0755); err != nil {
		t.Fatalf("writing fake ssh script: %v", err)
	}
	return path
}

// drain accumulates ReadOutput until EOF or a deadline.
func drain(t *testing.T, session Session) []byte {
	t.Helper()
	var got []byte
	for {
		chunk, err := session.ReadOutput(5 * time.Second)
		got = append(got, chunk...)
		if err == io.EOF {
			return got
		}
		if err != nil {
			t.Fatalf("ReadOutput: %v", err)
		}
	}
}

func TestSpawnRunsRemoteCommand(t *testing.T) {
	// The fake ssh echoes its arguments so the test can verify the
	// destination and remote command line.
	ssh := fakeSSH(t, `printf '%s|%s' "$1" "$2"`)
	remote := Remote{User: "alice", Host: "example.com", Path: "widget.git"}

	session, err := Spawn(context.Background(), ssh, remote, "git-receive-pack")
	if err != nil {
		t.Fatalf("Spawn: %v", err)
	}
	got := string(drain(t, session))
	if err := session.Wait(); err != nil {
		t.Fatalf("Wait: %v", err)
	}

	want := "alice@example.com|git-receive-pack 'widget.git'"
	if got != want {
		t.Errorf("remote invocation = %q, want %q", got, want)
	}
}

func TestSpawnEcho(t *testing.T) {
	ssh := fakeSSH(t, "cat")
	session, err := Spawn(context.Background(), ssh, Remote{Host: "h", Path: "r.git"}, "git-receive-pack")
	if err != nil {
		t.Fatalf("Spawn: %v", err)
	}

	payload := []byte("0000")
	n, err := session.Write(payload, 5*time.Second)
	if err != nil || n != len(payload) {
		t.Fatalf("Write = (%d, %v)", n, err)
	}
	if err := session.CloseWrite(); err != nil {
		t.Fatalf("CloseWrite: %v", err)
	}

	if got := drain(t, session); string(got) != "0000" {
		t.Errorf("echoed %q, want %q", got, "0000")
	}
	if err := session.Wait(); err != nil {
		t.Errorf("Wait: %v", err)
	}
	if !session.Exited() {
		t.Error("Exited() = false after Wait returned")
	}
}

func TestSpawnDiagnosticAndExit(t *testing.T) {
	ssh := fakeSSH(t, `echo "fatal: access denied" >&2; exit 4`)
	session, err := Spawn(context.Background(), ssh, Remote{Host: "h", Path: "r.git"}, "git-receive-pack")
	if err != nil {
		t.Fatalf("Spawn: %v", err)
	}

	var diagnostic []byte
	for {
		chunk, err := session.ReadDiagnostic(5 * time.Second)
		diagnostic = append(diagnostic, chunk...)
		if err != nil {
			break
		}
	}
	if !strings.Contains(string(diagnostic), "access denied") {
		t.Errorf("diagnostic = %q, want the rejection message", diagnostic)
	}

	if err := session.Wait(); err == nil {
		t.Error("Wait() = nil, want non-zero exit error")
	}
	if !session.Exited() {
		t.Error("Exited() = false after process death")
	}
}

func TestSpawnMissingBinary(t *testing.T) {
	_, err := Spawn(context.Background(), filepath.Join(t.TempDir(), "no-such-ssh"),
		Remote{Host: "h", Path: "r.git"}, "git-receive-pack")
	if err == nil {
		t.Fatal("Spawn with missing binary succeeded, want error")
	}
}
