package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/diewo77/cartoes/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "cartoes",
		Short:   "Family credit card expense form",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newServeCommand())
	rootCmd.AddCommand(newAddCommand())
	rootCmd.AddCommand(newWordsCommand())
	rootCmd.AddCommand(newMigrateCommand())

	return rootCmd
}
