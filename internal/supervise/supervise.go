// SPDX-License-Identifier: MPL-2.0

// Package supervise spawns the composed runtime invocation and applies the
// I/O inheritance policy of the execution context. Interactive launches
// block until the child exits and propagate its exit code; headless
// launches release the child immediately and report success once the spawn
// itself succeeded.
package supervise

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"jarrun/internal/compose"
	"jarrun/internal/console"
)

// ErrSpawnFailure is the sentinel error wrapped by SpawnError.
var ErrSpawnFailure = errors.New("spawn failure")

type (
	// SpawnError is returned when the runtime process could not be
	// created. It carries the attempted command so the failure report can
	// show exactly what was run.
	SpawnError struct {
		Path string
		Args []string
		Err  error
	}

	// Result is the completion contract handed back to the OS caller.
	Result struct {
		ExitCode int
	}

	// Supervisor runs composed invocations. The zero value inherits the
	// process's standard streams; tests can redirect them.
	Supervisor struct {
		Stdin  *os.File
		Stdout *os.File
		Stderr *os.File
	}
)

// Error implements the error interface.
func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to spawn %s %s: %v", e.Path, strings.Join(e.Args, " "), e.Err)
}

// Unwrap returns ErrSpawnFailure so callers can use errors.Is.
func (e *SpawnError) Unwrap() error { return ErrSpawnFailure }

// Run spawns the invocation according to the execution context.
//
// Interactive: the child inherits the caller's standard streams, Run blocks
// until it terminates, and the child's exit code is returned unchanged.
//
// Headless: the child is started detached, all handles to it are released
// immediately, and the result is a fixed success code; whatever the child
// does later is its own business.
func (s *Supervisor) Run(ctx context.Context, inv compose.Invocation, cc console.Context) (Result, error) {
	if cc.HasConsole {
		return s.runAttached(ctx, inv)
	}
	return s.runDetached(inv)
}

func (s *Supervisor) runAttached(ctx context.Context, inv compose.Invocation) (Result, error) {
	cmd := exec.CommandContext(ctx, inv.RuntimePath, inv.Args...)
	cmd.Stdin = s.stdin()
	cmd.Stdout = s.stdout()
	cmd.Stderr = s.stderr()

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return Result{ExitCode: exitErr.ExitCode()}, nil
		}
		return Result{ExitCode: 1}, &SpawnError{Path: inv.RuntimePath, Args: inv.Args, Err: err}
	}
	return Result{}, nil
}

func (s *Supervisor) runDetached(inv compose.Invocation) (Result, error) {
	// No CommandContext here: the child must outlive the launcher.
	cmd := exec.Command(inv.RuntimePath, inv.Args...)

	if err := cmd.Start(); err != nil {
		return Result{ExitCode: 1}, &SpawnError{Path: inv.RuntimePath, Args: inv.Args, Err: err}
	}
	if err := cmd.Process.Release(); err != nil {
		// The child is already running; a release failure only leaks a
		// handle until the launcher exits moments later.
		return Result{}, nil
	}
	return Result{}, nil
}

func (s *Supervisor) stdin() *os.File {
	if s.Stdin != nil {
		return s.Stdin
	}
	return os.Stdin
}

func (s *Supervisor) stdout() *os.File {
	if s.Stdout != nil {
		return s.Stdout
	}
	return os.Stdout
}

func (s *Supervisor) stderr() *os.File {
	if s.Stderr != nil {
		return s.Stderr
	}
	return os.Stderr
}
