// Copyright 2026 The git-rename-remote-branch Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/pflag"

	"github.com/spazm/git-rename-remote-branch/cmd/git-rename-remote-branch/cli"
	"github.com/spazm/git-rename-remote-branch/lib/config"
	"github.com/spazm/git-rename-remote-branch/lib/rename"
	"github.com/spazm/git-rename-remote-branch/lib/transport"
)

const usageLine = "git-rename-remote-branch [flags] <repository> <old_branch> <new_branch>"

// renameCommand builds the root command. Flag values bind to the
// closure so Run sees what Execute parsed.
func renameCommand() *cli.Command {
	var (
		verbose       int
		quiet         int
		receivePack   string
		transportKind string
		configPath    string
	)

	return &cli.Command{
		Name:    "git-rename-remote-branch",
		Summary: "Rename a branch on a remote repository without cloning it",
		Description: `Rename a branch on a remote repository by speaking the git push
protocol directly over ssh. No objects are transferred: the remote is
asked to create the new name at the old name's commit and delete the
old name, as one atomic update.

If the old name is already gone and the new name exists, the rename
is considered already performed and the command succeeds.`,
		Usage: usageLine,
		Examples: []cli.Example{
			{
				Description: "Rename the branch topic to feature/topic",
				Command:     "git-rename-remote-branch git.example.com:projects/widget topic feature/topic",
			},
			{
				Description: "Connect as a specific user, with debug logging",
				Command:     "git-rename-remote-branch -vv alice@git.example.com:widget.git main trunk",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("git-rename-remote-branch", pflag.ContinueOnError)
			flagSet.CountVarP(&verbose, "verbose", "v", "increase log verbosity (repeatable)")
			flagSet.CountVarP(&quiet, "quiet", "q", "decrease log verbosity (repeatable)")
			flagSet.StringVar(&receivePack, "receive-pack", "", "receive-pack executable to run on the remote")
			flagSet.StringVar(&transportKind, "transport", "", "transport to use: subprocess or native")
			flagSet.StringVar(&configPath, "config", "", "path to a yaml config file")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) != 3 {
				return fmt.Errorf("usage: %s", usageLine)
			}
			repository, oldBranch, newBranch := args[0], args[1], args[2]

			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if receivePack != "" {
				cfg.ReceivePack = receivePack
			}
			if transportKind != "" {
				cfg.Transport = transportKind
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			cfg.Verbosity += verbose - quiet

			// Usage-stage checks happen before any network I/O.
			if rename.QualifyBranch(oldBranch) == rename.QualifyBranch(newBranch) {
				return fmt.Errorf("old and new branch names are identical: %q", oldBranch)
			}
			remote, err := transport.ParseAddress(repository)
			if err != nil {
				return err
			}

			logger := cli.NewLogger(cfg.Verbosity)
			options := cfg.RenameOptions()
			options.Logger = logger

			// An interrupt cancels the context, which kills the
			// transport; the orchestrator still closes the write
			// side and reaps the process on its way out.
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			session, err := dial(ctx, cfg, remote)
			if err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				return &cli.ExitError{Code: 2}
			}

			result, err := rename.New(options).Run(ctx, session, oldBranch, newBranch)
			if err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				return &cli.ExitError{Code: 2}
			}
			if result.AlreadyRenamed {
				fmt.Printf("%s already renamed to %s (%s)\n", oldBranch, newBranch, shortID(result.ObjectID))
				return nil
			}
			fmt.Printf("renamed %s to %s (%s)\n", oldBranch, newBranch, shortID(result.ObjectID))
			return nil
		},
	}
}

// loadConfig loads the flag-named file, or falls back to the
// GIT_RENAME_CONFIG/default chain.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}

func dial(ctx context.Context, cfg *config.Config, remote transport.Remote) (transport.Session, error) {
	if cfg.Transport == config.TransportNative {
		return transport.DialNative(ctx, remote, cfg.ReceivePack)
	}
	return transport.Spawn(ctx, cfg.SSHBinary, remote, cfg.ReceivePack)
}

func shortID(objectID string) string {
	if len(objectID) > 8 {
		return objectID[:8]
	}
	return objectID
}
