// Export command for the repairdesk CLI: writes the full snapshot as JSON.
package main

import (
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the full application state as JSON to stdout",
	Long: `Write the full application state (customers, repair jobs, logo) as
indented JSON to stdout. Useful as a backup or for moving records between
the local mirror and a remote store.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := fetchState()
		if err != nil {
			return err
		}
		warnIfTablesMissing(state)
		return printJSON(state)
	},
}
