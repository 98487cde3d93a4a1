package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/sprout-labs/sprout/internal/config"
	"github.com/sprout-labs/sprout/internal/finalize"
	"github.com/sprout-labs/sprout/internal/scaffold"
)

var namePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9._-]*$`)

var (
	createTemplate  string
	createYes       bool
	createNoInstall bool
	createInstaller string
	createLint      string
)

var createCmd = &cobra.Command{
	Use:   "create <app-name>",
	Short: "Scaffold a new project and finalize it",
	Long: `Create a new project from a built-in template, sort its package.json,
install dependencies, run the lint auto-fix pass, and print what is left
to do by hand. Use "." as the app name to generate into the current
directory.

Examples:
  sprout create my-app
  sprout create my-app --template webapp --lint standard
  sprout create . --yes --no-install`,
	Args: cobra.ExactArgs(1),
	RunE: runCreate,
}

func init() {
	createCmd.Flags().StringVarP(&createTemplate, "template", "t", "webapp", "Template set to scaffold from")
	createCmd.Flags().BoolVarP(&createYes, "yes", "y", false, "Skip the questionnaire and take defaults")
	createCmd.Flags().BoolVar(&createNoInstall, "no-install", false, "Skip dependency installation")
	createCmd.Flags().StringVar(&createInstaller, "installer", "", "Installer executable (npm, yarn, pnpm)")
	createCmd.Flags().StringVar(&createLint, "lint", "", "Lint preset (prettier, standard, airbnb)")
	rootCmd.AddCommand(createCmd)
}

func runCreate(cmd *cobra.Command, args []string) error {
	appName := args[0]
	inPlace := appName == "."

	if inPlace {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("resolving current directory: %w", err)
		}
		appName = filepath.Base(wd)
	}
	if err := validateName(appName); err != nil {
		return err
	}

	// Collect the remaining answers interactively unless --yes is set.
	defaults := defaultAnswers()
	answers := defaults
	if !createYes {
		var err error
		answers, err = askQuestions(appName, defaults)
		if err != nil {
			return fmt.Errorf("questionnaire: %w", err)
		}
	}

	outDir := appName
	if inPlace {
		outDir = "."
	}

	data := scaffold.NewTemplateData(appName, answers.Description, answers.Author, answers.Lint, answers.LintConfig)
	result, err := scaffold.Generate(createTemplate, data, outDir, inPlace)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created %s from the %q template:\n", appName, createTemplate)
	for _, f := range result.Files {
		fmt.Fprintf(out, "  ✓ %s\n", f)
	}
	for _, w := range result.Warnings {
		fmt.Fprintf(out, "  ⚠️  %s\n", w)
	}

	opts := finalize.Options{
		InPlace:     inPlace,
		DestDirName: appName,
		AutoInstall: answers.Installer,
		LintConfig:  answers.LintConfig,
		Lint:        answers.Lint,
	}

	f := &finalize.Finalizer{
		Out:       out,
		Highlight: sprintWith(color.New(color.FgGreen)),
		Command:   sprintWith(color.New(color.FgYellow)),
	}
	// An install failure surfaces here; main ends the process with
	// status 1. Everything else was already reported by the finalizer.
	return f.Finalize(cmd.Context(), result.OutputDir, opts)
}

// defaultAnswers derives the questionnaire defaults from user config and
// create flags, so --yes runs never block on a TTY.
func defaultAnswers() answers {
	installer := createInstaller
	if installer == "" {
		installer = config.Get(config.KeyInstaller)
	}
	if createNoInstall {
		installer = ""
	}
	lintConfig := createLint
	if lintConfig == "" {
		lintConfig = config.Get(config.KeyLint)
	}
	return answers{
		Installer:  installer,
		Lint:       lintConfig != "",
		LintConfig: lintConfig,
	}
}

func validateName(name string) error {
	if !namePattern.MatchString(name) {
		return fmt.Errorf("invalid project name %q: must start with a lowercase letter or digit and contain only lowercase letters, digits, '.', '_', and '-'", name)
	}
	if len(name) > 214 {
		return fmt.Errorf("invalid project name %q: longer than 214 characters", name)
	}
	return nil
}

// sprintWith adapts a color to the finalize.Colorizer shape. Color output
// is automatically disabled when stdout is not a terminal.
func sprintWith(c *color.Color) finalize.Colorizer {
	f := c.SprintFunc()
	return func(s string) string { return f(s) }
}
