package cli

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/sprout-labs/sprout/internal/finalize"
)

// answers holds everything the questionnaire collects. It feeds both the
// scaffold template data and the finalize options.
type answers struct {
	Description string
	Author      string
	Lint        bool
	LintConfig  string
	Installer   string // "" means the user installs by hand
}

const installByHand = "no, I will handle that myself"

// askQuestions walks the user through the project questionnaire. defaults
// come from config and flags so every prompt has a sensible preset.
func askQuestions(appName string, defaults answers) (answers, error) {
	ans := defaults

	err := survey.AskOne(&survey.Input{
		Message: "Project description",
		Default: fmt.Sprintf("A %s project", appName),
		Help:    "Shown in package.json and the generated README",
	}, &ans.Description)
	if err != nil {
		return ans, err
	}

	if err := survey.AskOne(&survey.Input{
		Message: "Author",
		Default: defaults.Author,
	}, &ans.Author); err != nil {
		return ans, err
	}

	if err := survey.AskOne(&survey.Confirm{
		Message: "Use a linter?",
		Default: defaults.Lint,
	}, &ans.Lint); err != nil {
		return ans, err
	}

	if ans.Lint {
		lintDefault := defaults.LintConfig
		if !finalize.LintConfigRecognized(lintDefault) {
			lintDefault = "standard"
		}
		if err := survey.AskOne(&survey.Select{
			Message: "Pick a lint preset",
			Options: finalize.RecognizedLintConfigs,
			Default: lintDefault,
			Help:    "The preset the lint auto-fix pass will enforce",
		}, &ans.LintConfig); err != nil {
			return ans, err
		}
	} else {
		ans.LintConfig = ""
	}

	installerDefault := defaults.Installer
	if installerDefault == "" {
		installerDefault = installByHand
	}
	var choice string
	if err := survey.AskOne(&survey.Select{
		Message: "Should we run the dependency install for you after the project has been created?",
		Options: []string{"npm", "yarn", "pnpm", installByHand},
		Default: installerDefault,
	}, &choice); err != nil {
		return ans, err
	}
	if choice == installByHand {
		ans.Installer = ""
	} else {
		ans.Installer = choice
	}

	return ans, nil
}
