// Bill rendering for the repairdesk CLI.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

const billWidth = 46

var billCmd = &cobra.Command{
	Use:   "bill <job-id>",
	Short: "Render the printable bill for a repair job",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := fetchState()
		if err != nil {
			return err
		}
		warnIfTablesMissing(state)

		job, err := findRepair(state, args[0])
		if err != nil {
			return err
		}
		customer, err := findCustomer(state, job.CustomerID)
		if err != nil {
			return err
		}

		rule := strings.Repeat("=", billWidth)
		thin := strings.Repeat("-", billWidth)

		fmt.Println(rule)
		fmt.Println(center(loadedConfig.shopName))
		fmt.Println(center("REPAIR BILL"))
		fmt.Println(rule)
		fmt.Printf("Bill no:   %s\n", job.ID)
		fmt.Printf("Date:      %s\n", job.ReceivedDate.Format("02 Jan 2006"))
		if job.DeliveryDate != nil {
			fmt.Printf("Delivered: %s\n", job.DeliveryDate.Format("02 Jan 2006"))
		}
		fmt.Println(thin)
		fmt.Printf("Customer:  %s\n", customer.Name)
		fmt.Printf("Phone:     %s\n", customer.Phone)
		fmt.Printf("Item:      %s\n", job.MaterialDetails)
		fmt.Println(thin)
		for _, s := range job.Services {
			fmt.Printf("%-36s %9.2f\n", s.Problem, s.Cost)
		}
		fmt.Println(thin)
		fmt.Printf("%-36s %9.2f\n", "TOTAL", job.BillableTotal())
		fmt.Println(rule)
		fmt.Println(job.EffectiveBillNote())
		return nil
	},
}

// center pads s to the middle of the bill width.
func center(s string) string {
	if len(s) >= billWidth {
		return s
	}
	pad := (billWidth - len(s)) / 2
	return strings.Repeat(" ", pad) + s
}
