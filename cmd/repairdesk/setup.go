// Setup command for the repairdesk CLI: bootstraps the remote schema.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mistry-labs/repairdesk/internal/postgres"
	"github.com/mistry-labs/repairdesk/pkg/types"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Create the database tables on the configured Postgres store",
	RunE: func(cmd *cobra.Command, args []string) error {
		if loadedConfig.backend != types.BackendPostgres {
			return fmt.Errorf("setup: no postgres store configured (the local mirror needs no setup)")
		}
		if loadedConfig.databaseURL == "" {
			return fmt.Errorf("setup: %w", types.ErrDatabaseURLMissing)
		}

		client, err := postgres.Open(loadedConfig.databaseURL)
		if err != nil {
			return err
		}
		defer client.Close()

		if err := client.Setup(); err != nil {
			return err
		}
		fmt.Println("database schema created")
		return nil
	},
}
