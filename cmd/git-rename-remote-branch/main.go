// Copyright 2026 The git-rename-remote-branch Authors
// SPDX-License-Identifier: Apache-2.0

// git-rename-remote-branch renames a branch on a remote repository by
// speaking the git push protocol directly over ssh, without cloning
// or fetching any object data.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := run(); err != nil {
		// Failures past the usage stage print their own diagnostic
		// and return an ExitError with the desired code; don't add a
		// redundant "error:" line for those.
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	return renameCommand().Execute(os.Args[1:])
}
