package runner

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/kballard/go-shellquote"
)

// ExitError reports a command that ran to completion with a non-zero
// exit status.
type ExitError struct {
	Command string // the command line as shown to the user
	Code    int    // the child's exit status
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("command %q exited with status %d", e.Command, e.Code)
}

// Options configures a single Run invocation.
type Options struct {
	// Dir is the child's working directory. Empty means the caller's
	// current directory.
	Dir string

	// Env is the child's environment. Nil inherits the caller's.
	Env []string

	// Stdin, Stdout, and Stderr default to the process's own streams,
	// so the child writes straight to the controlling terminal. Tests
	// inject buffers here.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Shell runs the command line through the system shell (/bin/sh -c,
	// or cmd /C on Windows) after quoting each argument.
	Shell bool
}

// Run spawns name with args and blocks until the child exits. A zero exit
// status returns nil; a non-zero status returns *ExitError with the code.
// Failures that never produce an exit status (executable not found,
// context canceled before start) are returned as wrapped spawn errors.
// Exactly one spawn per call: no retries, no timeout beyond ctx.
func Run(ctx context.Context, name string, args []string, opts Options) error {
	display := strings.Join(append([]string{name}, args...), " ")

	var cmd *exec.Cmd
	if opts.Shell {
		line := shellquote.Join(append([]string{name}, args...)...)
		if runtime.GOOS == "windows" {
			cmd = exec.CommandContext(ctx, "cmd", "/C", line)
		} else {
			cmd = exec.CommandContext(ctx, "/bin/sh", "-c", line)
		}
	} else {
		cmd = exec.CommandContext(ctx, name, args...)
	}

	cmd.Dir = opts.Dir
	cmd.Env = opts.Env

	cmd.Stdin = opts.Stdin
	if cmd.Stdin == nil {
		cmd.Stdin = os.Stdin
	}
	cmd.Stdout = opts.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = opts.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	err := cmd.Run()
	if err == nil {
		return nil
	}
	if exitErr, ok := err.(*exec.ExitError); ok {
		return &ExitError{Command: display, Code: exitErr.ExitCode()}
	}
	return fmt.Errorf("spawning %q: %w", display, err)
}
