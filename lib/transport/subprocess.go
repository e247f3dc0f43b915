// Copyright 2026 The git-rename-remote-branch Authors
// SPDX-License-Identifier: Apache-2.0

package transport

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"time"
)

// Subprocess drives receive-pack through the user's ssh client over
// the child's standard streams.
type Subprocess struct {
	command *exec.Cmd
	stdin   io.WriteCloser
	stdout  *stream
	stderr  *stream

	done    chan struct{}
	waitErr error
}

// Spawn starts sshBinary against remote, asking the far side to run
// receivePack on the repository path. The returned session owns the
// child for the duration of the rename; cancelling ctx kills it.
func Spawn(ctx context.Context, sshBinary string, remote Remote, receivePack string) (*Subprocess, error) {
	command := exec.CommandContext(ctx, sshBinary, remote.UserHost(), remote.receiveCommand(receivePack))

	stdin, err := command.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("creating stdin pipe: %w", err)
	}
	stdout, err := command.StdoutPipe()
	if err != nil {
		stdin.Close()
		return nil, fmt.Errorf("creating stdout pipe: %w", err)
	}
	stderr, err := command.StderrPipe()
	if err != nil {
		stdin.Close()
		return nil, fmt.Errorf("creating stderr pipe: %w", err)
	}
	if err := command.Start(); err != nil {
		stdin.Close()
		return nil, fmt.Errorf("starting %s: %w", sshBinary, err)
	}

	session := &Subprocess{
		command: command,
		stdin:   stdin,
		stdout:  newStream(stdout),
		stderr:  newStream(stderr),
		done:    make(chan struct{}),
	}
	go session.reap()
	return session, nil
}

// reap waits on the child process directly rather than through
// exec.Cmd.Wait, which would close the pipes underneath the pump
// goroutines still draining them.
func (s *Subprocess) reap() {
	state, err := s.command.Process.Wait()
	switch {
	case err != nil:
		s.waitErr = err
	case !state.Success():
		s.waitErr = fmt.Errorf("ssh: %s", state)
	}
	close(s.done)
}

func (s *Subprocess) ReadOutput(timeout time.Duration) ([]byte, error) {
	return s.stdout.read(timeout)
}

func (s *Subprocess) ReadDiagnostic(timeout time.Duration) ([]byte, error) {
	return s.stderr.read(timeout)
}

func (s *Subprocess) Write(data []byte, timeout time.Duration) (int, error) {
	return writeWithTimeout(s.stdin, data, timeout)
}

func (s *Subprocess) CloseWrite() error {
	return s.stdin.Close()
}

// Exited reports whether the child has terminated, without blocking.
func (s *Subprocess) Exited() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}

// Wait blocks until the child is reaped and returns its exit status.
func (s *Subprocess) Wait() error {
	<-s.done
	return s.waitErr
}
