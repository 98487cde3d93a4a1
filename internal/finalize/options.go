package finalize

// DefaultInstaller is the installer whose run-script invocation needs the
// extra "--" to forward flags to the underlying tool.
const DefaultInstaller = "npm"

// RecognizedLintConfigs are the lint presets the auto-fix pass knows how
// to drive. Anything else skips the lint stage.
var RecognizedLintConfigs = []string{"prettier", "standard", "airbnb"}

// Options are the questionnaire's answers. The struct is treated as
// immutable for the duration of a Finalize run.
type Options struct {
	// InPlace generates into the current directory instead of DestDirName.
	InPlace bool

	// DestDirName is the project subdirectory named in the banner's
	// cd instruction. Ignored when InPlace is set.
	DestDirName string

	// AutoInstall names the installer executable ("npm", "yarn", ...).
	// Empty skips the install stage entirely.
	AutoInstall string

	// LintConfig is the selected lint preset.
	LintConfig string

	// Lint reports whether linting was selected at all.
	Lint bool
}

// LintConfigRecognized reports whether name is a preset the lint-fix
// stage supports.
func LintConfigRecognized(name string) bool {
	for _, c := range RecognizedLintConfigs {
		if c == name {
			return true
		}
	}
	return false
}

// lintFixArgs returns the run-script arguments for the lint auto-fix
// pass. npm needs "--" to forward --fix to the lint tool; yarn and pnpm
// forward extra arguments as-is.
func lintFixArgs(installer string) []string {
	if installer == DefaultInstaller {
		return []string{"run", "lint", "--", "--fix"}
	}
	return []string{"run", "lint", "--fix"}
}
