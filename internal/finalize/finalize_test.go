package finalize

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sprout-labs/sprout/internal/runner"
)

// fakeRunner records spawned commands and fails with the configured exit
// code keyed by the first argument ("install", "run").
type fakeRunner struct {
	calls []string
	fail  map[string]int
}

func (f *fakeRunner) run(_ context.Context, name string, args []string, _ runner.Options) error {
	display := name + " " + strings.Join(args, " ")
	f.calls = append(f.calls, display)
	if code, ok := f.fail[args[0]]; ok {
		return &runner.ExitError{Command: display, Code: code}
	}
	return nil
}

// newProject creates a project dir holding an unsorted package.json.
func newProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	content := `{
  "name": "my-app",
  "version": "1.0.0",
  "dependencies": {
    "vue": "^2.5.2",
    "axios": "^0.18.0"
  }
}
`
	if err := os.WriteFile(filepath.Join(dir, "package.json"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestFinalizeHappyPath(t *testing.T) {
	dir := newProject(t)
	fake := &fakeRunner{}
	var out bytes.Buffer
	f := &Finalizer{Out: &out, Run: fake.run}

	opts := Options{
		DestDirName: "my-app",
		AutoInstall: "npm",
		LintConfig:  "standard",
		Lint:        true,
	}
	if err := f.Finalize(context.Background(), dir, opts); err != nil {
		t.Fatalf("Finalize() error: %v", err)
	}

	// Exactly two spawns: install, then the npm-shaped lint fix.
	want := []string{"npm install", "npm run lint -- --fix"}
	if len(fake.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", fake.calls, want)
	}
	for i := range want {
		if fake.calls[i] != want[i] {
			t.Errorf("calls[%d] = %q, want %q", i, fake.calls[i], want[i])
		}
	}

	text := out.String()
	if strings.Contains(text, "FAILED") || strings.Contains(text, "Error:") {
		t.Errorf("unexpected failure diagnostics:\n%s", text)
	}
	if !strings.Contains(text, "Project scaffolding finished!") {
		t.Errorf("final banner missing:\n%s", text)
	}
	// Installer ran, so no manual reminders.
	if strings.Contains(text, "npm install (or if using yarn") {
		t.Errorf("manual install reminder should be absent:\n%s", text)
	}
	if strings.Contains(text, "lint -- --fix (or for yarn") {
		t.Errorf("manual lint reminder should be absent:\n%s", text)
	}

	// The manifest got sorted on the way.
	data, _ := os.ReadFile(filepath.Join(dir, "package.json"))
	if !strings.Contains(string(data), "\"axios\": \"^0.18.0\",\n    \"vue\": \"^2.5.2\"") {
		t.Errorf("dependencies not sorted:\n%s", data)
	}
}

func TestFinalizeInstallFailureIsFatal(t *testing.T) {
	dir := newProject(t)
	fake := &fakeRunner{fail: map[string]int{"install": 2}}
	var out bytes.Buffer
	f := &Finalizer{Out: &out, Run: fake.run}

	opts := Options{AutoInstall: "npm", LintConfig: "standard", Lint: true}
	err := f.Finalize(context.Background(), dir, opts)

	var installErr *InstallError
	if !errors.As(err, &installErr) {
		t.Fatalf("Finalize() error = %v, want *InstallError", err)
	}
	if installErr.Code != 2 {
		t.Errorf("Code = %d, want 2", installErr.Code)
	}
	if installErr.Installer != "npm" {
		t.Errorf("Installer = %q, want npm", installErr.Installer)
	}

	// Only the install spawn; lint never ran.
	if len(fake.calls) != 1 {
		t.Fatalf("calls = %v, want just the install", fake.calls)
	}

	text := out.String()
	if !strings.Contains(text, "FAILED (exit status 2)") {
		t.Errorf("install-failure diagnostic missing:\n%s", text)
	}
	if !strings.Contains(text, "try again later") {
		t.Errorf("retry diagnostic missing:\n%s", text)
	}
	// The final report is skipped on install failure.
	if strings.Contains(text, "Project scaffolding finished!") {
		t.Errorf("final banner should be skipped:\n%s", text)
	}
}

func TestFinalizeWithoutInstaller(t *testing.T) {
	dir := newProject(t)
	fake := &fakeRunner{}
	var out bytes.Buffer
	f := &Finalizer{Out: &out, Run: fake.run}

	opts := Options{
		DestDirName: "my-app",
		AutoInstall: "",
		LintConfig:  "airbnb",
		Lint:        true,
	}
	if err := f.Finalize(context.Background(), dir, opts); err != nil {
		t.Fatalf("Finalize() error: %v", err)
	}

	if len(fake.calls) != 0 {
		t.Errorf("no commands should be spawned, got %v", fake.calls)
	}

	text := out.String()
	if !strings.Contains(text, "npm install (or if using yarn: yarn)") {
		t.Errorf("manual install reminder missing:\n%s", text)
	}
	if !strings.Contains(text, "npm run lint -- --fix (or for yarn: yarn run lint --fix)") {
		t.Errorf("manual lint reminder missing:\n%s", text)
	}
	if !strings.Contains(text, "cd my-app") {
		t.Errorf("cd instruction missing:\n%s", text)
	}
}

func TestFinalizeLintFailureIsNotFatal(t *testing.T) {
	dir := newProject(t)
	fake := &fakeRunner{fail: map[string]int{"run": 1}}
	var out bytes.Buffer
	f := &Finalizer{Out: &out, Run: fake.run}

	opts := Options{AutoInstall: "yarn", LintConfig: "prettier", Lint: true}
	if err := f.Finalize(context.Background(), dir, opts); err != nil {
		t.Fatalf("Finalize() error: %v", err)
	}

	// yarn forwards --fix without the npm "--" separator.
	want := []string{"yarn install", "yarn run lint --fix"}
	if len(fake.calls) != 2 || fake.calls[1] != want[1] {
		t.Fatalf("calls = %v, want %v", fake.calls, want)
	}

	text := out.String()
	if !strings.Contains(text, "Lint auto-fix failed") {
		t.Errorf("lint diagnostic missing:\n%s", text)
	}
	if !strings.Contains(text, "Project scaffolding finished!") {
		t.Errorf("final banner missing after lint failure:\n%s", text)
	}
}

func TestFinalizeSkipsLintForUnrecognizedPreset(t *testing.T) {
	dir := newProject(t)
	fake := &fakeRunner{}
	f := &Finalizer{Out: &bytes.Buffer{}, Run: fake.run}

	opts := Options{AutoInstall: "npm", LintConfig: "webpack", Lint: true}
	if err := f.Finalize(context.Background(), dir, opts); err != nil {
		t.Fatalf("Finalize() error: %v", err)
	}
	if len(fake.calls) != 1 || fake.calls[0] != "npm install" {
		t.Errorf("calls = %v, want only the install", fake.calls)
	}
}

func TestFinalizeSortErrorStillPrintsBanner(t *testing.T) {
	// No package.json at all: stage 1 fails, the error is reported once,
	// no subprocess runs, and the banner still prints.
	dir := t.TempDir()
	fake := &fakeRunner{}
	var out bytes.Buffer
	f := &Finalizer{Out: &out, Run: fake.run}

	opts := Options{AutoInstall: "npm", DestDirName: "my-app"}
	if err := f.Finalize(context.Background(), dir, opts); err != nil {
		t.Fatalf("Finalize() error: %v", err)
	}

	if len(fake.calls) != 0 {
		t.Errorf("no commands should run after a sort failure, got %v", fake.calls)
	}
	text := out.String()
	if !strings.Contains(text, "Error:") {
		t.Errorf("generic error line missing:\n%s", text)
	}
	if !strings.Contains(text, "Project scaffolding finished!") {
		t.Errorf("final banner missing:\n%s", text)
	}
}
