// Logo command for the repairdesk CLI.
package main

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var logoCmd = &cobra.Command{
	Use:   "logo",
	Short: "Manage the shop logo printed on bills",
}

var logoSetCmd = &cobra.Command{
	Use:   "set <image-file|data-uri>",
	Short: "Store the shop logo",
	Long: `Store the shop logo. The argument is either an image file, which is
encoded as a data URI, or an already-encoded data URI.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dataURI := args[0]
		if !strings.HasPrefix(dataURI, "data:") {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading logo file: %w", err)
			}
			mime := http.DetectContentType(data)
			dataURI = "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
		}

		store, closeStore, err := openStore()
		if err != nil {
			return err
		}
		defer closeStore()

		if err := store.SaveLogo(dataURI); err != nil {
			return err
		}
		fmt.Println("logo saved")
		return nil
	},
}

func init() {
	logoCmd.AddCommand(logoSetCmd)
}
