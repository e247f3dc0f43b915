// Copyright 2026 The git-rename-remote-branch Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/spazm/git-rename-remote-branch/lib/rename"
)

// Transport kinds accepted by Config.Transport.
const (
	TransportSubprocess = "subprocess"
	TransportNative     = "native"
)

// Config is the full configuration for one invocation. It is threaded
// explicitly into the pieces that need it rather than living in
// process-wide state, so tests can run distinct configurations
// concurrently.
type Config struct {
	// SSHBinary is the remote-shell client the subprocess transport
	// spawns.
	SSHBinary string `yaml:"ssh_binary"`

	// ReceivePack is the executable the remote shell runs on the
	// server, with the repository path as its sole argument.
	ReceivePack string `yaml:"receive_pack"`

	// Transport selects "subprocess" (spawn SSHBinary) or "native"
	// (in-process SSH with agent authentication).
	Transport string `yaml:"transport"`

	// Verbosity is the initial log verbosity: negative errors only,
	// 0 warnings, 1 info, 2 and up debug. Flags adjust it further.
	Verbosity int `yaml:"verbosity"`

	// Timeouts tune the read-until-idle loops and the command write.
	Timeouts TimeoutConfig `yaml:"timeouts"`
}

// TimeoutConfig holds durations in time.ParseDuration form. Empty
// fields fall back to the orchestrator's defaults.
type TimeoutConfig struct {
	// InitialRead is the patience for the first bytes of a message
	// while the remote initializes.
	InitialRead string `yaml:"initial_read"`

	// IdleRead bounds each read once bytes have flowed; a channel
	// idle past it means the message is complete.
	IdleRead string `yaml:"idle_read"`

	// Write bounds the single command write.
	Write string `yaml:"write"`

	// DiagnosticGrace is the probe window on the diagnostic channel
	// when checking for an early remote rejection.
	DiagnosticGrace string `yaml:"diagnostic_grace"`
}

// Default returns the built-in configuration with the GIT_SSH and
// GIT_RENAME_VERBOSE environment variables applied.
func Default() *Config {
	cfg := &Config{
		SSHBinary:   "ssh",
		ReceivePack: "git-receive-pack",
		Transport:   TransportSubprocess,
		Timeouts: TimeoutConfig{
			InitialRead:     "10s",
			IdleRead:        "500ms",
			Write:           "5s",
			DiagnosticGrace: "100ms",
		},
	}
	if ssh := os.Getenv("GIT_SSH"); ssh != "" {
		cfg.SSHBinary = ssh
	}
	if verbose := os.Getenv("GIT_RENAME_VERBOSE"); verbose != "" {
		if level, err := strconv.Atoi(verbose); err == nil {
			cfg.Verbosity = level
		}
	}
	return cfg
}

// Load returns the defaults, overridden by the file named in
// GIT_RENAME_CONFIG when set. Unlike the environment variables, a
// named config file that fails to load is an error, not a silent
// fallback.
func Load() (*Config, error) {
	path := os.Getenv("GIT_RENAME_CONFIG")
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile loads path over the defaults and validates the result.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error
	if c.SSHBinary == "" {
		errs = append(errs, fmt.Errorf("ssh_binary is required"))
	}
	if c.ReceivePack == "" {
		errs = append(errs, fmt.Errorf("receive_pack is required"))
	}
	if c.Transport != TransportSubprocess && c.Transport != TransportNative {
		errs = append(errs, fmt.Errorf("transport must be %q or %q, got %q",
			TransportSubprocess, TransportNative, c.Transport))
	}
	for name, value := range map[string]string{
		"timeouts.initial_read":     c.Timeouts.InitialRead,
		"timeouts.idle_read":        c.Timeouts.IdleRead,
		"timeouts.write":            c.Timeouts.Write,
		"timeouts.diagnostic_grace": c.Timeouts.DiagnosticGrace,
	} {
		if value == "" {
			continue
		}
		if _, err := time.ParseDuration(value); err != nil {
			errs = append(errs, fmt.Errorf("%s: %v", name, err))
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// RenameOptions converts the timeout strings into orchestrator
// options. Call Validate first; values that do not parse become zero,
// which the orchestrator replaces with its own defaults.
func (c *Config) RenameOptions() rename.Options {
	return rename.Options{
		InitialReadTimeout: parseDuration(c.Timeouts.InitialRead),
		IdleReadTimeout:    parseDuration(c.Timeouts.IdleRead),
		WriteTimeout:       parseDuration(c.Timeouts.Write),
		DiagnosticGrace:    parseDuration(c.Timeouts.DiagnosticGrace),
	}
}

func parseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0
	}
	return d
}
