// Package main provides the repairdesk CLI, a record-keeping tool for a
// device-repair shop: customers, repair tickets, and printable bills, backed
// by a remote Postgres store or a local mirror file.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
