// Copyright (c) conch-sh 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package run implements the subcommand that runs a workflow file.
package run

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/conch-sh/conch/command"
	"github.com/conch-sh/conch/workflow"
)

const (
	fileArg     = "file"
	outputFlag  = "output"
	successFlag = "success-details"
)

// RunCmd is the command that runs a workflow defined in a YAML file.
var RunCmd = &cli.Command{
	Name:        "run",
	Description: "Run a workflow defined in a YAML file.",
	Arguments: []cli.Argument{
		&cli.StringArg{
			Name:      fileArg,
			UsageText: "YAMLFILE",
			Config: cli.StringConfig{
				TrimSpace: true,
			},
		},
	},
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:        outputFlag,
			Aliases:     []string{"o"},
			Usage:       "Include each command's output value in the result tree",
			Value:       false,
			DefaultText: "false",
		},
		&cli.BoolFlag{
			Name:        successFlag,
			Aliases:     []string{"success"},
			Usage:       "Show detail lines for successful commands",
			Value:       false,
			DefaultText: "false",
		},
	},
	Action: actionFunc,
}

func actionFunc(_ context.Context, cmd *cli.Command) error {
	fileName := cmd.StringArg(fileArg)
	if fileName == "" {
		return cli.Exit("please provide a workflow YAML file to run", 1)
	}

	data, err := os.ReadFile(fileName)
	if err != nil {
		return cli.Exit(fmt.Sprintf("failed to read file %s: %s", fileName, err.Error()), 1)
	}

	wf, err := workflow.FromYAML(data)
	if err != nil {
		return cli.Exit(fmt.Sprintf("failed to build workflow from %s: %s", fileName, err.Error()), 1)
	}

	res, err := command.Run(wf, nil)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	opts := command.DefaultOutputOptions()
	opts.ShowOutput = cmd.Bool(outputFlag)
	opts.ShowSuccessDetails = cmd.Bool(successFlag)

	if err := command.WriteResult(cmd.Writer, res, opts); err != nil {
		return cli.Exit("failed to write results: "+err.Error(), 1)
	}

	if !res.Succeeded || res.Results.HasFailure() {
		return cli.Exit("", 1)
	}

	return nil
}
