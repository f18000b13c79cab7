package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/diewo77/cartoes/internal/money"
)

func newWordsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "words <amount>",
		Short: "Print an amount in Brazilian Portuguese words",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := money.ParseAmount(args[0])
			if err != nil {
				return fmt.Errorf("parsing amount: %w", err)
			}
			words, err := money.Words(amount)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "R$ %s\n%s\n", money.FormatBRL(amount), money.Capitalize(words))
			return nil
		},
	}
}
