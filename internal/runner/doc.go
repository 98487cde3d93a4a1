// Package runner spawns external executables (the dependency installer,
// the lint tool) with inherited standard streams and reports non-zero
// exits as a typed ExitError carrying the numeric exit code. Process-exit
// decisions belong to callers; the runner never terminates the host.
package runner
