package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sblr80595/financialreporting-sub000/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "tbcheck",
		Short:   "Trial balance categorization and statutory validation",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newValidateCommand())
	rootCmd.AddCommand(newCategorizeCommand())
	rootCmd.AddCommand(newImpactCommand())

	return rootCmd
}
