package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/sprout-labs/sprout/internal/scaffold"
)

func init() {
	rootCmd.AddCommand(templatesCmd)
}

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the built-in template sets",
	RunE: func(cmd *cobra.Command, args []string) error {
		sets, err := scaffold.List()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, s := range sets {
			fmt.Fprintf(out, "%s\t(%d files)\n", s.Name, s.Files)
		}
		return nil
	},
}
