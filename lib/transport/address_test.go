// Copyright 2026 The git-rename-remote-branch Authors
// SPDX-License-Identifier: Apache-2.0

package transport

import "testing"

func TestParseAddress(t *testing.T) {
	tests := []struct {
		addr string
		want Remote
	}{
		{"git.example.com:projects/widget", Remote{Host: "git.example.com", Path: "projects/widget.git"}},
		{"alice@git.example.com:projects/widget.git", Remote{User: "alice", Host: "git.example.com", Path: "projects/widget.git"}},
		{"host:repo", Remote{Host: "host", Path: "repo.git"}},
		{"host:/srv/git/repo.git", Remote{Host: "host", Path: "/srv/git/repo.git"}},
	}
	for _, test := range tests {
		t.Run(test.addr, func(t *testing.T) {
			got, err := ParseAddress(test.addr)
			if err != nil {
				t.Fatalf("ParseAddress(%q): %v", test.addr, err)
			}
			if got != test.want {
				t.Errorf("ParseAddress(%q) = %+v, want %+v", test.addr, got, test.want)
			}
		})
	}
}

func TestParseAddressRejects(t *testing.T) {
	addrs := []string{
		"ssh://git.example.com/repo.git",
		"https://git.example.com/repo.git",
		"no-colon-here",
		":path-only",
		"host:",
		"@host:path",
		"user@:path",
	}
	for _, addr := range addrs {
		if _, err := ParseAddress(addr); err == nil {
			t.Errorf("ParseAddress(%q) succeeded, want error", addr)
		}
	}
}

func TestRemoteUserHost(t *testing.T) {
	if got := (Remote{Host: "h"}).UserHost(); got != "h" {
		t.Errorf("UserHost = %q, want h", got)
	}
	if got := (Remote{User: "u", Host: "h"}).UserHost(); got != "u@h" {
		t.Errorf("UserHost = %q, want u@h", got)
	}
}

func TestReceiveCommand(t *testing.T) {
	remote := Remote{Host: "h", Path: "a/b.git"}
	if got := remote.receiveCommand("git-receive-pack"); got != "git-receive-pack 'a/b.git'" {
		t.Errorf("receiveCommand = %q", got)
	}
}
