// Copyright (c) conch-sh 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package proc provides a Command leaf that invokes an external OS process,
// capturing stdout, stderr and the exit code, with an optional timeout.
package proc

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/conch-sh/conch/command"
	"github.com/conch-sh/conch/internal/ctxlog"
)

// maxCaptureSize caps stdout and stderr capture.
const maxCaptureSize = 8 * 1024 * 1024 // 8MB

var (
	// ErrTimeout is wrapped into the result error when the process exceeded
	// its timeout.
	ErrTimeout = errors.New("process timed out")
	// ErrNotFound is wrapped into the result error when the executable could
	// not be found.
	ErrNotFound = errors.New("executable not found")
	// ErrBufferOverflow is returned when captured output exceeds the max size.
	ErrBufferOverflow = fmt.Errorf("output exceeds max capture size of %d bytes", maxCaptureSize)
)

// Info carries the raw details of one process execution. It is attached to
// the result as metadata.
type Info struct {
	ExitCode int           // Exit code, -1 if the process never ran to completion
	Pid      int           // Process ID, 0 if the process never started
	Stdout   string        // Captured standard output
	Stderr   string        // Captured standard error
	Duration time.Duration // Wall-clock execution time
}

var _ command.Command = (*Command)(nil)

// Command invokes an external program. The result output is the captured
// standard output text; the exit code and captured streams travel in the
// metadata. A string input is fed to the process as standard input, which is
// what makes process commands usable as pipeline stages.
type Command struct {
	command.ResultHolder

	Label            string            // Optional display name
	Path             string            // The executable to run; looked up on PATH when not absolute
	Args             []string          // Arguments, not including the executable name
	Cwd              string            // Working directory; empty means the caller's
	Env              map[string]string // Extra environment variables
	InheritEnv       bool              // Whether Env is merged over the current environment
	Timeout          time.Duration     // Zero means no timeout
	SuccessExitCodes []int             // Exit codes treated as success; defaults to {0}

	mu       sync.Mutex
	timedOut bool
	notFound bool
}

// New creates a process command that inherits the current environment.
func New(path string, args ...string) *Command {
	return &Command{
		Path:       path,
		Args:       args,
		InheritEnv: true,
	}
}

// TimedOut reports whether the last run failed because the timeout expired.
func (c *Command) TimedOut() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.timedOut
}

// NotFound reports whether the last run failed because the executable could
// not be found.
func (c *Command) NotFound() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.notFound
}

func (c *Command) setFlags(timedOut, notFound bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.timedOut = timedOut
	c.notFound = notFound
}

// Run implements the command.Command interface.
func (c *Command) Run(input any) (*command.Result, error) {
	return c.RunContext(context.Background(), input)
}

// RunContext implements the command.Command interface.
func (c *Command) RunContext(ctx context.Context, input any) (*command.Result, error) {
	logger := ctxlog.Logger(ctx).
		With("commandType", "proc").
		With("path", c.Path)

	c.setFlags(false, false)

	if c.Timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, c.Path, c.Args...)
	cmd.Dir = c.Cwd
	cmd.Env = c.environ()

	if s, ok := input.(string); ok && s != "" {
		cmd.Stdin = strings.NewReader(s)
	}

	stdout := &cappedBuffer{max: maxCaptureSize}
	stderr := &cappedBuffer{max: maxCaptureSize}
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	logger.Debug("starting process", "args", c.Args, "cwd", c.Cwd)

	start := time.Now()
	runErr := cmd.Run()

	info := &Info{
		ExitCode: -1,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: time.Since(start),
	}

	if cmd.Process != nil {
		info.Pid = cmd.Process.Pid
	}

	if cmd.ProcessState != nil {
		info.ExitCode = cmd.ProcessState.ExitCode()
	}

	logger.Debug("process finished", "exitCode", info.ExitCode, "duration", info.Duration)

	res := &command.Result{
		Label:    c.label(),
		Metadata: info,
	}

	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		c.setFlags(true, false)
		res.Err = fmt.Errorf("%w: %s", ErrTimeout, c.Path)

	case runErr != nil && (errors.Is(runErr, exec.ErrNotFound) || errors.Is(runErr, fs.ErrNotExist)):
		c.setFlags(false, true)
		res.Err = fmt.Errorf("%w: %s", ErrNotFound, c.Path)

	case runErr != nil && !isExitError(runErr):
		res.Err = runErr

	case !c.exitOK(info.ExitCode):
		res.Err = runErr
		res.Message = fmt.Sprintf("process exited with code %d", info.ExitCode)

	case stdout.overflowed || stderr.overflowed:
		res.Err = ErrBufferOverflow

	default:
		res.Succeeded = true
		res.Output = info.Stdout
	}

	if !res.Succeeded && res.Message == "" && res.Err != nil {
		res.Message = res.Err.Error()
	}

	return res, nil
}

func (c *Command) label() string {
	if c.Label != "" {
		return c.Label
	}

	return c.Path
}

func (c *Command) exitOK(code int) bool {
	codes := c.SuccessExitCodes
	if len(codes) == 0 {
		codes = []int{0}
	}

	for _, ok := range codes {
		if code == ok {
			return true
		}
	}

	return false
}

func (c *Command) environ() []string {
	// A non-nil empty slice keeps os/exec from falling back to the parent
	// environment when inheritance is off.
	env := []string{}
	if c.InheritEnv {
		env = os.Environ()
	}

	for k, v := range c.Env {
		env = append(env, fmt.Sprintf("%s=%s", k, v))
	}

	return env
}

func isExitError(err error) bool {
	var exitErr *exec.ExitError

	return errors.As(err, &exitErr)
}
