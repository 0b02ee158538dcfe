// Copyright (c) conch-sh 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main contains the conch command-line interface (CLI).
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/conch-sh/conch"
	"github.com/conch-sh/conch/cmd/conch/run"
	"github.com/conch-sh/conch/internal/ctxlog"
)

var rootCmd = &cli.Command{
	Commands: []*cli.Command{
		run.RunCmd,
		versionCmd,
	},
	Writer:    os.Stdout,
	ErrWriter: os.Stderr,
	Name:      "conch",
	Description: `Conch composes commands into pipelines, sequences and parallel
batches, mirroring the shell |, &&, || and ; operators as typed objects.
Workflows are defined in YAML and run as a single command tree.`,
	Usage:                 "conch run workflow.yaml",
	EnableShellCompletion: true,
}

var versionCmd = &cli.Command{
	Name:        "version",
	Description: "Print version information.",
	Action: func(_ context.Context, cmd *cli.Command) error {
		fmt.Fprintf(cmd.Writer, "conch %s (%s)\n", conch.Version, conch.Commit)
		return nil
	},
}

func main() {
	ctx := ctxlog.New(context.Background(), nil)

	if err := rootCmd.Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
