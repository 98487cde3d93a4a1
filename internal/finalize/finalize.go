package finalize

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sprout-labs/sprout/internal/i18n"
	"github.com/sprout-labs/sprout/internal/manifest"
	"github.com/sprout-labs/sprout/internal/runner"
)

// InstallError reports a failed dependency installation. It aborts the
// whole finalize run; the caller decides the process exit.
type InstallError struct {
	Installer string
	Code      int
	err       error
}

func (e *InstallError) Error() string {
	return fmt.Sprintf("%s install failed with exit status %d", e.Installer, e.Code)
}

func (e *InstallError) Unwrap() error { return e.err }

// RunFunc spawns one external command. It matches runner.Run so tests can
// substitute a fake.
type RunFunc func(ctx context.Context, name string, args []string, opts runner.Options) error

// Finalizer drives the post-scaffold stages. The zero value writes to
// stdout, spawns real processes, and prints without color.
type Finalizer struct {
	// Out receives status lines, diagnostics, and the final banner.
	// Defaults to os.Stdout.
	Out io.Writer

	// Run spawns external commands. Defaults to runner.Run.
	Run RunFunc

	// Highlight and Command colorize the banner's header and command
	// block. Nil means no color.
	Highlight Colorizer
	Command   Colorizer
}

func (f *Finalizer) out() io.Writer {
	if f.Out != nil {
		return f.Out
	}
	return os.Stdout
}

func (f *Finalizer) runFunc() RunFunc {
	if f.Run != nil {
		return f.Run
	}
	return runner.Run
}

// Finalize runs the four stages in order: sort, install, lint-fix,
// report. It returns *InstallError when the install stage fails; the
// banner is skipped in that case and the caller is expected to end the
// process with a non-zero status. Any other stage error is printed once
// with an "Error:" prefix and the banner still prints.
func (f *Finalizer) Finalize(ctx context.Context, projectDir string, opts Options) error {
	out := f.out()

	err := f.runStages(ctx, projectDir, opts)

	var installErr *InstallError
	if errors.As(err, &installErr) {
		// Diagnostics were already printed by the install stage.
		return err
	}
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
	}

	fmt.Fprintln(out, FinalMessage(opts, f.Highlight, f.Command))
	return nil
}

// runStages covers stages 1-3. The report stage lives in Finalize so it
// runs even when a stage here fails for any reason other than a failed
// install.
func (f *Finalizer) runStages(ctx context.Context, projectDir string, opts Options) error {
	// Stage 1: sort the manifest's dependency blocks. Touches the file
	// before any subprocess is spawned.
	if _, err := manifest.SortDependencies(filepath.Join(projectDir, "package.json")); err != nil {
		return err
	}

	if opts.AutoInstall == "" {
		return nil
	}

	// Stage 2: install dependencies.
	f.printStep(i18n.T("InstallingDependencies", nil,
		"Installing project dependencies ..."))

	runOpts := runner.Options{Dir: projectDir, Shell: true, Stdout: f.Out, Stderr: f.Out}
	if err := f.runFunc()(ctx, opts.AutoInstall, []string{"install"}, runOpts); err != nil {
		code := exitCode(err)
		out := f.out()
		fmt.Fprintln(out, i18n.T("InstallFailed",
			map[string]any{"Code": code},
			fmt.Sprintf("Dependency installation FAILED (exit status %d).", code)))
		fmt.Fprintln(out, i18n.T("InstallTryAgain",
			map[string]any{"Installer": opts.AutoInstall},
			fmt.Sprintf("Fix the reported errors, run '%s install' yourself, and try again later.", opts.AutoInstall)))
		return &InstallError{Installer: opts.AutoInstall, Code: code, err: err}
	}

	// Stage 3: lint auto-fix, only for a recognized preset and only after
	// a successful install. Failure here is reported but never fatal.
	if !opts.Lint || !LintConfigRecognized(opts.LintConfig) {
		return nil
	}

	f.printStep(i18n.T("RunningLintFix", nil,
		"Running lint --fix to comply with the chosen preset rules ..."))

	args := lintFixArgs(opts.AutoInstall)
	if err := f.runFunc()(ctx, opts.AutoInstall, args, runOpts); err != nil {
		display := opts.AutoInstall + " " + strings.Join(args, " ")
		fmt.Fprintln(f.out(), i18n.T("LintFixFailed",
			map[string]any{"Command": display},
			fmt.Sprintf("Lint auto-fix failed; run '%s' manually.", display)))
	}
	return nil
}

// printStep writes the starred status header that precedes a subprocess.
func (f *Finalizer) printStep(msg string) {
	fmt.Fprintf(f.out(), "\n\n# %s\n# ========================\n\n", colorize(f.Highlight, msg))
}

// exitCode extracts the child's exit status from a runner error. Spawn
// failures that never produced a status count as 1.
func exitCode(err error) int {
	var exitErr *runner.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return 1
}
