// Root command for the repairdesk CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mistry-labs/repairdesk/internal/paths"
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
)

// loadedConfig holds the merged configuration, set by PersistentPreRunE so
// all subcommands can use it.
var loadedConfig appConfig

var rootCmd = &cobra.Command{
	Use:           "repairdesk",
	Short:         "RepairDesk tracks customers and repair tickets for a repair shop",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := paths.ResolveConfigDir(flagConfigDir)
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		loadedConfig = cfg
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory for the local mirror (default: platform data dir)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(customerCmd)
	rootCmd.AddCommand(jobCmd)
	rootCmd.AddCommand(billCmd)
	rootCmd.AddCommand(logoCmd)
	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDataDir returns the data directory following the precedence chain:
// --data-dir flag > config.yaml data_dir > env > platform default.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, loadedConfig.dataDir)
}
