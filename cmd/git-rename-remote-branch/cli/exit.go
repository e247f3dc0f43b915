// Copyright 2026 The git-rename-remote-branch Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import "fmt"

// ExitError signals a specific exit code without printing an extra
// error message: the command is expected to have already written its
// own diagnostic. main checks for the ExitCode interface on returned
// errors to distinguish "handled non-zero exit" from "unexpected
// error to display".
//
// The binary's exit code contract: 0 success (including the
// already-renamed case), 1 usage errors, 2 protocol and verification
// failures.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// ExitCode returns the exit code.
func (e *ExitError) ExitCode() int {
	return e.Code
}
