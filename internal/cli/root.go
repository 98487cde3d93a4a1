package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/sprout-labs/sprout/internal/branding"
	"github.com/sprout-labs/sprout/internal/config"
	"github.com/sprout-labs/sprout/internal/i18n"
	"github.com/sprout-labs/sprout/internal/updater"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` scaffolds JavaScript web-application projects from built-in
templates, then finalizes them: sorts the package.json dependency blocks,
installs dependencies with your chosen installer, runs a lint auto-fix
pass, and prints the remaining manual steps.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()

		// Boot hook: wire the translation bundle into the app before any
		// user-facing output is produced.
		if err := i18n.Init(config.Get(config.KeyLocale)); err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		}

		// Skip the update banner for commands that manage their own output.
		if cmd.Name() == "version" || cmd.Name() == "config" {
			return
		}

		// Non-blocking banner from the cached version check.
		u := updater.New(buildVersion)
		u.CheckAndPrintBanner(os.Stderr, config.Dir())
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
