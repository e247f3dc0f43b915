// Copyright 2026 The git-rename-remote-branch Authors
// SPDX-License-Identifier: Apache-2.0

package transport

import (
	"context"
	"fmt"
	"io"
	"net"
	"os"
	"os/user"
	"path/filepath"
	"time"

	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/agent"
	"golang.org/x/crypto/ssh/knownhosts"
)

// Native is an in-process SSH transport for environments without an
// ssh client on PATH. Authentication comes from the running
// ssh-agent; host keys are verified against the user's known_hosts
// file. There is no interactive prompting: an unknown host is an
// error, as befits a non-interactive tool.
type Native struct {
	client  *ssh.Client
	session *ssh.Session
	stdin   io.WriteCloser
	stdout  *stream
	stderr  *stream

	done    chan struct{}
	waitErr error
}

// DialNative connects to remote on the standard ssh port and starts
// receivePack on the repository path.
func DialNative(ctx context.Context, remote Remote, receivePack string) (*Native, error) {
	username := remote.User
	if username == "" {
		current, err := user.Current()
		if err != nil {
			return nil, fmt.Errorf("resolving local user: %w", err)
		}
		username = current.Username
	}

	auth, err := agentAuth()
	if err != nil {
		return nil, err
	}
	hostKeys, err := knownHostsCallback()
	if err != nil {
		return nil, err
	}
	config := &ssh.ClientConfig{
		User:            username,
		Auth:            []ssh.AuthMethod{auth},
		HostKeyCallback: hostKeys,
	}

	address := net.JoinHostPort(remote.Host, "22")
	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "tcp", address)
	if err != nil {
		return nil, fmt.Errorf("dialing %s: %w", address, err)
	}
	clientConn, channels, requests, err := ssh.NewClientConn(conn, address, config)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("ssh handshake with %s: %w", address, err)
	}
	client := ssh.NewClient(clientConn, channels, requests)

	session, err := client.NewSession()
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("opening ssh session: %w", err)
	}
	stdin, err := session.StdinPipe()
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("creating stdin pipe: %w", err)
	}
	stdout, err := session.StdoutPipe()
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("creating stdout pipe: %w", err)
	}
	stderr, err := session.StderrPipe()
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("creating stderr pipe: %w", err)
	}
	if err := session.Start(remote.receiveCommand(receivePack)); err != nil {
		client.Close()
		return nil, fmt.Errorf("starting %s on %s: %w", receivePack, remote.Host, err)
	}

	native := &Native{
		client:  client,
		session: session,
		stdin:   stdin,
		stdout:  newStream(stdout),
		stderr:  newStream(stderr),
		done:    make(chan struct{}),
	}
	go native.reap()
	return native, nil
}

// agentAuth builds an auth method backed by the running ssh-agent.
func agentAuth() (ssh.AuthMethod, error) {
	socket := os.Getenv("SSH_AUTH_SOCK")
	if socket == "" {
		return nil, fmt.Errorf("native transport needs a running ssh-agent (SSH_AUTH_SOCK is not set)")
	}
	conn, err := net.Dial("unix", socket)
	if err != nil {
		return nil, fmt.Errorf("connecting to ssh-agent: %w", err)
	}
	return ssh.PublicKeysCallback(agent.NewClient(conn).Signers), nil
}

func knownHostsCallback() (ssh.HostKeyCallback, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolving home directory: %w", err)
	}
	callback, err := knownhosts.New(filepath.Join(home, ".ssh", "known_hosts"))
	if err != nil {
		return nil, fmt.Errorf("loading known_hosts: %w", err)
	}
	return callback, nil
}

func (n *Native) reap() {
	if err := n.session.Wait(); err != nil {
		n.waitErr = fmt.Errorf("remote command: %w", err)
	}
	n.client.Close()
	close(n.done)
}

func (n *Native) ReadOutput(timeout time.Duration) ([]byte, error) {
	return n.stdout.read(timeout)
}

func (n *Native) ReadDiagnostic(timeout time.Duration) ([]byte, error) {
	return n.stderr.read(timeout)
}

func (n *Native) Write(data []byte, timeout time.Duration) (int, error) {
	return writeWithTimeout(n.stdin, data, timeout)
}

func (n *Native) CloseWrite() error {
	return n.stdin.Close()
}

// Exited reports whether the remote command has finished, without
// blocking.
func (n *Native) Exited() bool {
	select {
	case <-n.done:
		return true
	default:
		return false
	}
}

// Wait blocks until the remote command finishes and returns its exit
// status.
func (n *Native) Wait() error {
	<-n.done
	return n.waitErr
}
