// Copyright 2026 The git-rename-remote-branch Authors
// SPDX-License-Identifier: Apache-2.0

// Package transport carries push protocol bytes between the rename
// orchestrator and the remote's receive-pack. Two implementations
// exist: Subprocess spawns the user's own ssh client and talks over
// its standard streams, and Native speaks SSH in-process using the
// running ssh-agent for authentication. Both expose the same Session:
// timeout-bounded reads on the remote's output and diagnostic
// streams, a timeout-bounded write on its input, and visibility into
// whether the remote process has exited.
package transport
