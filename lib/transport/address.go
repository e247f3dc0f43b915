// Copyright 2026 The git-rename-remote-branch Authors
// SPDX-License-Identifier: Apache-2.0

package transport

import (
	"fmt"
	"strings"
)

// Remote is a repository address in git's scp-like form:
// [user@]host:path. Only this form is supported; URL-scheme remotes
// belong to transports this tool does not speak.
type Remote struct {
	User string
	Host string
	Path string
}

// ParseAddress splits addr into user, host, and repository path,
// appending ".git" to the path when absent.
func ParseAddress(addr string) (Remote, error) {
	if strings.Contains(addr, "://") {
		return Remote{}, fmt.Errorf("unsupported repository address %q: URL schemes are not supported, use [user@]host:path", addr)
	}
	hostPart, path, ok := strings.Cut(addr, ":")
	if !ok || hostPart == "" || path == "" {
		return Remote{}, fmt.Errorf("invalid repository address %q: want [user@]host:path", addr)
	}

	remote := Remote{Host: hostPart, Path: path}
	if user, host, ok := strings.Cut(hostPart, "@"); ok {
		if user == "" || host == "" {
			return Remote{}, fmt.Errorf("invalid repository address %q: empty user or host", addr)
		}
		remote.User, remote.Host = user, host
	}
	if !strings.HasSuffix(remote.Path, ".git") {
		remote.Path += ".git"
	}
	return remote, nil
}

// UserHost returns the ssh destination, user-qualified when a user
// was given.
func (r Remote) UserHost() string {
	if r.User != "" {
		return r.User + "@" + r.Host
	}
	return r.Host
}

// receiveCommand is the command line the remote shell runs. The path
// is single-quoted the way git itself quotes it.
func (r Remote) receiveCommand(receivePack string) string {
	return fmt.Sprintf("%s '%s'", receivePack, r.Path)
}
