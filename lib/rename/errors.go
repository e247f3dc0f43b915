// Copyright 2026 The git-rename-remote-branch Authors
// SPDX-License-Identifier: Apache-2.0

package rename

import "errors"

// Failure taxonomy for one rename run. Every failure is fatal: the
// exchange is never retried, because re-sending an update command
// against a remote whose state is now unknown risks corrupting the
// rename. Callers re-run discovery (re-invoke the tool) instead of
// resuming.
var (
	// ErrSameName rejects a rename whose source and destination are
	// the same ref. Caught before any network I/O.
	ErrSameName = errors.New("old and new branch names are identical")

	// ErrOldRefNotFound means the advertisement does not list the
	// branch to rename.
	ErrOldRefNotFound = errors.New("old branch not found on remote")

	// ErrNewRefExists means the destination name is already taken.
	ErrNewRefExists = errors.New("new branch already exists on remote")

	// ErrRemoteRejected carries a diagnostic-channel message observed
	// alongside an early remote exit.
	ErrRemoteRejected = errors.New("remote rejected the session")

	// ErrWriteIncomplete means the single command write landed only
	// partially. The payload is small and fixed, so a partial write
	// is not retried.
	ErrWriteIncomplete = errors.New("rename command partially written")

	// ErrTransportTimeout means no bytes arrived before the idle
	// deadline where a message was required.
	ErrTransportTimeout = errors.New("timed out waiting for remote data")
)
