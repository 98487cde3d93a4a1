package cli

import (
	"strings"
	"testing"
)

func TestValidateName(t *testing.T) {
	valid := []string{"my-app", "app2", "0day", "a.b_c-d", "x"}
	for _, name := range valid {
		if err := validateName(name); err != nil {
			t.Errorf("validateName(%q) = %v, want nil", name, err)
		}
	}

	invalid := []string{"", "My-App", "-app", ".hidden", "_x", "app name", "app/sub", strings.Repeat("a", 215)}
	for _, name := range invalid {
		if err := validateName(name); err == nil {
			t.Errorf("validateName(%q) = nil, want error", name)
		}
	}
}

func TestDefaultAnswers(t *testing.T) {
	t.Run("no-install wins over installer flag", func(t *testing.T) {
		createInstaller = "yarn"
		createNoInstall = true
		defer func() { createInstaller = ""; createNoInstall = false }()

		a := defaultAnswers()
		if a.Installer != "" {
			t.Errorf("Installer = %q, want empty with --no-install", a.Installer)
		}
	})

	t.Run("lint flag enables lint", func(t *testing.T) {
		createLint = "standard"
		defer func() { createLint = "" }()

		a := defaultAnswers()
		if !a.Lint || a.LintConfig != "standard" {
			t.Errorf("got Lint=%v LintConfig=%q, want lint enabled with the standard preset", a.Lint, a.LintConfig)
		}
	})
}
