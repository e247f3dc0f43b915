// Copyright 2026 The git-rename-remote-branch Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the small command framework for the
// git-rename-remote-branch binary: flag parsing on pflag, structured
// help output, logger construction, and exit-code signalling.
package cli
