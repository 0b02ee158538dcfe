// Copyright (c) conch-sh 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package workflow

import (
	"runtime"
	"testing"

	"github.com/prashantv/gostub"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conch-sh/conch/command"
	"github.com/conch-sh/conch/fsutil"
)

func TestFromYAMLBuildsNestedTree(t *testing.T) {
	doc := []byte(`
name: release
command:
  type: serial
  label: release
  operator: and
  commands:
    - type: exec
      label: build
      path: /bin/true
    - type: parallel
      label: checks
      pool_size: 2
      commands:
        - type: exec
          path: /bin/true
        - type: find
          root: .
          include: ["*.go"]
`)

	cmd, err := FromYAML(doc)
	require.NoError(t, err)
	require.NotNil(t, cmd)

	_, ok := cmd.(*command.Sequential)
	assert.True(t, ok)
}

func TestFromYAMLBadDocument(t *testing.T) {
	_, err := FromYAML([]byte("\t not yaml: ["))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrYamlUnmarshal)
}

func TestBuildUnknownType(t *testing.T) {
	_, err := Build(Node{Type: "teleport"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownType)
	assert.Contains(t, err.Error(), "teleport")
}

func TestBuildUnknownOperator(t *testing.T) {
	_, err := Build(Node{
		Type:     "serial",
		Operator: "nand",
		Commands: []Node{{Type: "exec", Path: "/bin/true"}},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, command.ErrUnknownOperator)
}

func TestBuildAggregatesChildErrors(t *testing.T) {
	_, err := Build(Node{
		Type: "pipe",
		Commands: []Node{
			{Type: "bogus"},
			{Type: "exec"}, // missing path
		},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownType)
	assert.ErrorIs(t, err, ErrInvalidDefinition)
	assert.Contains(t, err.Error(), "command 0")
	assert.Contains(t, err.Error(), "command 1")
}

func TestBuildExecValidation(t *testing.T) {
	_, err := Build(Node{Type: "exec"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDefinition)

	_, err = Build(Node{Type: "exec", Path: "/bin/true", Timeout: "soon"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDefinition)
}

func TestBuildFindValidation(t *testing.T) {
	_, err := Build(Node{Type: "find"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDefinition)
}

func TestBuildEmptyComposite(t *testing.T) {
	_, err := Build(Node{Type: "parallel"})
	require.Error(t, err)
	assert.ErrorIs(t, err, command.ErrInvalidArgument)
}

func TestRunFindWorkflowOnStubbedFs(t *testing.T) {
	memFs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(memFs, "src/a.go", []byte("x"), 0o644))
	require.NoError(t, afero.WriteFile(memFs, "src/b.txt", []byte("x"), 0o644))

	stub := gostub.Stub(&fsutil.FsFactory, func() afero.Fs { return memFs })
	defer stub.Reset()

	doc := []byte(`
name: sources
command:
  type: find
  root: src
  include: ["*.go"]
`)

	cmd, err := FromYAML(doc)
	require.NoError(t, err)

	res, err := command.Run(cmd, nil)
	require.NoError(t, err)

	assert.True(t, res.Succeeded)
	assert.Equal(t, []string{"src/a.go"}, res.Output)
}

func TestRunExecWorkflow(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("test depends on POSIX shell utilities")
	}

	doc := []byte(`
name: hello
command:
  type: pipe
  label: hello pipe
  commands:
    - type: exec
      path: /bin/echo
      args: ["hello workflow"]
    - type: exec
      path: /bin/cat
      timeout: 30s
`)

	cmd, err := FromYAML(doc)
	require.NoError(t, err)

	res, err := command.Run(cmd, nil)
	require.NoError(t, err)

	require.True(t, res.Succeeded)
	assert.Contains(t, res.Output.(string), "hello workflow")
}
