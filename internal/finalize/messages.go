package finalize

import (
	"strings"

	"github.com/sprout-labs/sprout/internal/branding"
	"github.com/sprout-labs/sprout/internal/i18n"
)

// Colorizer wraps a string in terminal color codes. Callers supply their
// own (fatih/color at the CLI edge); nil means plain text.
type Colorizer func(string) string

func colorize(c Colorizer, s string) string {
	if c == nil {
		return s
	}
	return c(s)
}

// InstallInstruction returns the manual-install reminder, or "" when an
// installer already ran.
func InstallInstruction(opts Options) string {
	if opts.AutoInstall != "" {
		return ""
	}
	return i18n.T("ManualInstall", nil, "npm install (or if using yarn: yarn)")
}

// LintInstruction returns the manual lint-fix reminder. It applies only
// when no installer ran, linting was selected, and the preset is one the
// lint-fix pass recognizes.
func LintInstruction(opts Options) string {
	if opts.AutoInstall != "" || !opts.Lint || !LintConfigRecognized(opts.LintConfig) {
		return ""
	}
	return i18n.T("ManualLintFix", nil, "npm run lint -- --fix (or for yarn: yarn run lint --fix)")
}

// FinalMessage assembles the closing banner: the header, the remaining
// manual steps (cd, install, lint-fix, dev server), and the static
// documentation and support links. highlight colors the header, command
// colors the step lines.
func FinalMessage(opts Options, highlight, command Colorizer) string {
	var steps []string
	if !opts.InPlace {
		steps = append(steps, "cd "+opts.DestDirName)
	}
	if s := InstallInstruction(opts); s != "" {
		steps = append(steps, s)
	}
	if s := LintInstruction(opts); s != "" {
		steps = append(steps, s)
	}
	steps = append(steps, "npm run dev")

	var b strings.Builder
	b.WriteString("\n# ")
	b.WriteString(colorize(highlight, i18n.T("ScaffoldingFinished", nil, "Project scaffolding finished!")))
	b.WriteString("\n# ========================\n\n")
	b.WriteString(i18n.T("ToGetStarted", nil, "To get started:"))
	b.WriteString("\n\n")
	for _, step := range steps {
		b.WriteString("  ")
		b.WriteString(colorize(command, step))
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	b.WriteString(i18n.T("DocsLine",
		map[string]any{"URL": branding.DocsURL()},
		"Documentation can be found at "+branding.DocsURL()))
	b.WriteByte('\n')
	b.WriteString(i18n.T("StarLine",
		map[string]any{"Name": branding.DisplayName(), "URL": branding.RepoURL()},
		"Enjoying "+branding.DisplayName()+"? Star it at "+branding.RepoURL()))
	b.WriteByte('\n')
	b.WriteString(i18n.T("DonateLine",
		map[string]any{"URL": branding.DonateURL()},
		"Support ongoing development at "+branding.DonateURL()))
	b.WriteByte('\n')
	return b.String()
}
