// Copyright 2026 The git-rename-remote-branch Authors
// SPDX-License-Identifier: Apache-2.0

// Package rename sequences one remote branch rename over the push
// protocol: read the reference advertisement, vet the two names, send
// the update commands with an empty pack, and verify the status
// report. One Renamer run owns its transport session exclusively;
// there is no concurrent sharing and no retry.
package rename

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spazm/git-rename-remote-branch/lib/protocol"
	"github.com/spazm/git-rename-remote-branch/lib/transport"
)

// Options tunes a Renamer. Zero values select the defaults noted on
// each field.
type Options struct {
	// InitialReadTimeout is how long the first read of a message
	// waits while the remote initializes. Default 10s.
	InitialReadTimeout time.Duration

	// IdleReadTimeout bounds each read after bytes have started
	// flowing; a channel idle past it means the message is complete.
	// Default 500ms.
	IdleReadTimeout time.Duration

	// WriteTimeout bounds the single write of the command payload.
	// Default 5s.
	WriteTimeout time.Duration

	// DiagnosticGrace is the short window given to the diagnostic
	// channel when probing for an early remote rejection. Default
	// 100ms.
	DiagnosticGrace time.Duration

	// Logger receives progress and the remote's exit status.
	// Defaults to slog.Default().
	Logger *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.InitialReadTimeout <= 0 {
		o.InitialReadTimeout = 10 * time.Second
	}
	if o.IdleReadTimeout <= 0 {
		o.IdleReadTimeout = 500 * time.Millisecond
	}
	if o.WriteTimeout <= 0 {
		o.WriteTimeout = 5 * time.Second
	}
	if o.DiagnosticGrace <= 0 {
		o.DiagnosticGrace = 100 * time.Millisecond
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}

// Result reports a completed run. AlreadyRenamed marks the idempotent
// short-circuit: the old name is gone and the new name exists, so the
// rename evidently happened earlier and no command was sent.
type Result struct {
	AlreadyRenamed bool
	ObjectID       string
}

// Renamer runs renames over sessions borrowed from the caller.
type Renamer struct {
	options Options
	logger  *slog.Logger
}

// New returns a Renamer with options filled in with defaults.
func New(options Options) *Renamer {
	options = options.withDefaults()
	return &Renamer{options: options, logger: options.Logger}
}

// QualifyBranch maps a bare branch name into the branch ref
// namespace. Names already under refs/ pass through.
func QualifyBranch(name string) string {
	if strings.HasPrefix(name, "refs/") {
		return name
	}
	return "refs/heads/" + name
}

// Run renames oldBranch to newBranch over session. The session's
// write side is closed and its process reaped before Run returns
// whatever the outcome; a non-zero remote exit observed after a
// verified status report is logged, not returned.
func (r *Renamer) Run(ctx context.Context, session transport.Session, oldBranch, newBranch string) (Result, error) {
	oldRef := QualifyBranch(oldBranch)
	newRef := QualifyBranch(newBranch)
	if oldRef == newRef {
		return Result{}, fmt.Errorf("%w: %q", ErrSameName, oldBranch)
	}

	defer func() {
		session.CloseWrite()
		if err := session.Wait(); err != nil {
			r.logger.Warn("remote process exit", "error", err)
		}
	}()

	advertisement, err := readUntilIdle(ctx, session.ReadOutput,
		r.options.InitialReadTimeout, r.options.IdleReadTimeout)
	if err != nil {
		return Result{}, fmt.Errorf("reading ref advertisement: %w", err)
	}
	if len(advertisement) == 0 {
		return Result{}, r.rejectedOrTimedOut(session, "ref advertisement")
	}
	r.logger.Debug("advertisement received", "bytes", len(advertisement))

	oldID, newID := protocol.ParseAdvertisement(advertisement, oldRef, newRef)
	if oldID == "" && newID != "" {
		// The old name is gone and the new one exists: a previous
		// run already performed this rename. Report success without
		// contacting the remote further.
		r.logger.Info("rename already performed", "ref", newRef, "id", newID)
		return Result{AlreadyRenamed: true, ObjectID: newID}, nil
	}
	if oldID == "" {
		return Result{}, fmt.Errorf("%w: %s", ErrOldRefNotFound, oldRef)
	}
	if newID != "" {
		return Result{}, fmt.Errorf("%w: %s is at %s", ErrNewRefExists, newRef, newID)
	}

	// A remote that refuses the push (permissions, hooks) says so on
	// the diagnostic channel and exits before reading any commands.
	if diagnostic, _ := session.ReadDiagnostic(r.options.DiagnosticGrace); len(diagnostic) > 0 && session.Exited() {
		return Result{}, fmt.Errorf("%w: %s", ErrRemoteRejected, strings.TrimSpace(string(diagnostic)))
	}

	payload, err := protocol.BuildRenameCommand(oldRef, newRef, oldID)
	if err != nil {
		return Result{}, fmt.Errorf("building rename command: %w", err)
	}
	written, err := session.Write(payload, r.options.WriteTimeout)
	if err != nil {
		return Result{}, fmt.Errorf("sending rename command: %w", err)
	}
	if written < len(payload) {
		return Result{}, fmt.Errorf("%w: %d of %d bytes", ErrWriteIncomplete, written, len(payload))
	}
	r.logger.Debug("rename command sent", "old", oldRef, "new", newRef, "id", oldID)

	report, err := readUntilIdle(ctx, session.ReadOutput,
		r.options.InitialReadTimeout, r.options.IdleReadTimeout)
	if err != nil {
		return Result{}, fmt.Errorf("reading status report: %w", err)
	}
	if len(report) == 0 {
		return Result{}, r.rejectedOrTimedOut(session, "status report")
	}
	if err := protocol.VerifyStatusReport(report, oldRef, newRef); err != nil {
		return Result{}, err
	}

	r.logger.Info("branch renamed", "old", oldRef, "new", newRef, "id", oldID)
	return Result{ObjectID: oldID}, nil
}

// rejectedOrTimedOut classifies an empty read: diagnostic output is a
// rejection message from the remote, silence is a timeout.
func (r *Renamer) rejectedOrTimedOut(session transport.Session, phase string) error {
	if diagnostic, _ := session.ReadDiagnostic(r.options.DiagnosticGrace); len(diagnostic) > 0 {
		return fmt.Errorf("%w: %s", ErrRemoteRejected, strings.TrimSpace(string(diagnostic)))
	}
	return fmt.Errorf("%w: no %s received", ErrTransportTimeout, phase)
}
