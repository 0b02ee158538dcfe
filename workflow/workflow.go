// Copyright (c) conch-sh 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package workflow builds command trees from YAML definitions. A definition
// is a tree of nodes, each naming one command type: pipe, serial, parallel,
// exec or find.
package workflow

import (
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/hashicorp/go-multierror"

	"github.com/conch-sh/conch/command"
	"github.com/conch-sh/conch/fsutil"
	"github.com/conch-sh/conch/proc"
)

var (
	// ErrYamlUnmarshal is returned when the definition cannot be parsed.
	ErrYamlUnmarshal = errors.New("failed to unmarshal YAML")
	// ErrUnknownType is returned for an unrecognized node type.
	ErrUnknownType = errors.New("unknown command type")
	// ErrInvalidDefinition is returned when a node is missing required fields.
	ErrInvalidDefinition = errors.New("invalid command definition")
)

// Node is one element of a workflow definition.
type Node struct {
	Type           string `yaml:"type"`
	Label          string `yaml:"label,omitempty"`
	CollectResults *bool  `yaml:"collect_results,omitempty"`

	// Composite fields.
	Operator string `yaml:"operator,omitempty"` // serial only
	PoolSize int    `yaml:"pool_size,omitempty"` // parallel only
	Commands []Node `yaml:"commands,omitempty"`

	// Exec leaf fields.
	Path    string            `yaml:"path,omitempty"`
	Args    []string          `yaml:"args,omitempty"`
	Cwd     string            `yaml:"cwd,omitempty"`
	Env     map[string]string `yaml:"env,omitempty"`
	Timeout string            `yaml:"timeout,omitempty"`

	// Find leaf fields.
	Root      string   `yaml:"root,omitempty"`
	Include   []string `yaml:"include,omitempty"`
	Exclude   []string `yaml:"exclude,omitempty"`
	Recursive *bool    `yaml:"recursive,omitempty"`
}

// Definition is the top-level workflow document.
type Definition struct {
	Name    string `yaml:"name"`
	Command Node   `yaml:"command"`
}

// FromYAML parses a workflow document and builds its command tree.
func FromYAML(data []byte) (command.Command, error) {
	def := new(Definition)
	if err := yaml.Unmarshal(data, def); err != nil {
		return nil, errors.Join(ErrYamlUnmarshal, err)
	}

	return Build(def.Command)
}

// Build constructs the command described by a node, recursively building its
// children.
func Build(node Node) (command.Command, error) {
	switch node.Type {
	case "pipe":
		children, err := buildChildren(node)
		if err != nil {
			return nil, err
		}

		return command.NewPipe(children, node.options()...)

	case "serial":
		operator := command.And

		if node.Operator != "" {
			var err error
			if operator, err = command.ParseOperator(node.Operator); err != nil {
				return nil, err
			}
		}

		children, err := buildChildren(node)
		if err != nil {
			return nil, err
		}

		return command.NewSequential(children, operator, node.options()...)

	case "parallel":
		children, err := buildChildren(node)
		if err != nil {
			return nil, err
		}

		return command.NewParallel(children, node.options()...)

	case "exec":
		return node.buildExec()

	case "find":
		return node.buildFind()

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, node.Type)
	}
}

func buildChildren(node Node) ([]command.Command, error) {
	var merr *multierror.Error

	children := make([]command.Command, 0, len(node.Commands))

	for i, child := range node.Commands {
		built, err := Build(child)
		if err != nil {
			merr = multierror.Append(merr, fmt.Errorf("command %d: %w", i, err))
			continue
		}

		children = append(children, built)
	}

	if err := merr.ErrorOrNil(); err != nil {
		return nil, err
	}

	return children, nil
}

func (n Node) options() []command.Option {
	var opts []command.Option

	if n.Label != "" {
		opts = append(opts, command.WithLabel(n.Label))
	}

	if n.CollectResults != nil && !*n.CollectResults {
		opts = append(opts, command.WithoutResults())
	}

	if n.PoolSize > 0 {
		opts = append(opts, command.WithPoolSize(n.PoolSize))
	}

	return opts
}

func (n Node) buildExec() (command.Command, error) {
	if n.Path == "" {
		return nil, fmt.Errorf("%w: exec requires a path", ErrInvalidDefinition)
	}

	cmd := proc.New(n.Path, n.Args...)
	cmd.Label = n.Label
	cmd.Cwd = n.Cwd
	cmd.Env = n.Env

	if n.Timeout != "" {
		timeout, err := time.ParseDuration(n.Timeout)
		if err != nil {
			return nil, fmt.Errorf("%w: bad timeout %q: %v", ErrInvalidDefinition, n.Timeout, err)
		}

		cmd.Timeout = timeout
	}

	return cmd, nil
}

func (n Node) buildFind() (command.Command, error) {
	if n.Root == "" {
		return nil, fmt.Errorf("%w: find requires a root", ErrInvalidDefinition)
	}

	find := fsutil.NewFind(n.Root)
	find.Label = n.Label
	find.Include = n.Include
	find.Exclude = n.Exclude

	if n.Recursive != nil {
		find.Recursive = *n.Recursive
	}

	return find, nil
}
