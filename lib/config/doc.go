// Copyright 2026 The git-rename-remote-branch Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration for git-rename-remote-branch.
//
// Configuration is optional: the built-in defaults work against any
// standard ssh setup. A yaml file named by GIT_RENAME_CONFIG or the
// --config flag overrides them. Two environment variables follow
// git's own conventions: GIT_SSH selects the remote-shell client and
// GIT_RENAME_VERBOSE sets the initial verbosity, both overridable by
// flags.
package config
