package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/diewo77/cartoes/internal/config"
	"github.com/diewo77/cartoes/internal/db"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the local ledger_rows table and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			conn, err := db.Open(cfg.Database)
			if err != nil {
				return err
			}
			if sqlDB, err := conn.DB(); err == nil {
				defer sqlDB.Close()
			}
			if err := db.Migrate(conn); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Migrations completed (%s)\n", cfg.Database.Driver)
			return nil
		},
	}
}
