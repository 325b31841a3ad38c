// Customer commands for the repairdesk CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mistry-labs/repairdesk/pkg/types"
)

var customerCmd = &cobra.Command{
	Use:   "customer",
	Short: "Manage customers",
}

var (
	customerName     string
	customerPhone    string
	customerAltPhone string
	customerEmail    string
	customerAddress  string
)

var customerAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new customer",
	RunE: func(cmd *cobra.Command, args []string) error {
		if customerName == "" || customerPhone == "" {
			return fmt.Errorf("customer add: --name and --phone are required")
		}

		store, closeStore, err := openStore()
		if err != nil {
			return err
		}
		defer closeStore()

		created, err := store.AddCustomer(types.Customer{
			Name:     customerName,
			Phone:    customerPhone,
			AltPhone: customerAltPhone,
			Email:    customerEmail,
			Address:  customerAddress,
		})
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(created)
		}
		fmt.Printf("added customer %s (%s)\n", created.ID, created.Name)
		return nil
	},
}

var customerListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all customers",
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := fetchState()
		if err != nil {
			return err
		}
		warnIfTablesMissing(state)

		if flagJSON {
			return printJSON(state.Customers)
		}
		if len(state.Customers) == 0 {
			fmt.Println("no customers")
			return nil
		}
		for _, c := range state.Customers {
			fmt.Printf("%s  %-24s  %s\n", c.ID, c.Name, c.Phone)
		}
		return nil
	},
}

var customerShowCmd = &cobra.Command{
	Use:   "show <customer-id>",
	Short: "Show one customer and their repair jobs",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := fetchState()
		if err != nil {
			return err
		}
		warnIfTablesMissing(state)

		c, err := findCustomer(state, args[0])
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(c)
		}

		fmt.Printf("%s  %s\n", c.ID, c.Name)
		fmt.Printf("  phone:   %s\n", c.Phone)
		if c.AltPhone != "" {
			fmt.Printf("  alt:     %s\n", c.AltPhone)
		}
		if c.Email != "" {
			fmt.Printf("  email:   %s\n", c.Email)
		}
		if c.Address != "" {
			fmt.Printf("  address: %s\n", c.Address)
		}
		fmt.Printf("  since:   %s\n", c.CreatedAt.Format("2006-01-02"))
		for _, j := range state.Repairs {
			if j.CustomerID == c.ID {
				fmt.Printf("  job %s  %-14s  %s\n", j.ID, j.Status, j.MaterialDetails)
			}
		}
		return nil
	},
}

var customerUpdateCmd = &cobra.Command{
	Use:   "update <customer-id>",
	Short: "Update customer fields",
	Long: `Update customer fields. Only flags given on the command line are
changed; passing an empty value clears the field. Fields left out are
untouched.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var patch types.CustomerPatch
		if cmd.Flags().Changed("name") {
			patch.Name = types.Set(customerName)
		}
		if cmd.Flags().Changed("phone") {
			patch.Phone = types.Set(customerPhone)
		}
		if cmd.Flags().Changed("alt-phone") {
			patch.AltPhone = types.Set(customerAltPhone)
		}
		if cmd.Flags().Changed("email") {
			patch.Email = types.Set(customerEmail)
		}
		if cmd.Flags().Changed("address") {
			patch.Address = types.Set(customerAddress)
		}

		store, closeStore, err := openStore()
		if err != nil {
			return err
		}
		defer closeStore()

		if err := store.UpdateCustomer(args[0], patch); err != nil {
			return err
		}
		fmt.Printf("updated customer %s\n", args[0])
		return nil
	},
}

var customerDeleteCmd = &cobra.Command{
	Use:   "delete <customer-id>",
	Short: "Delete a customer and all their repair jobs",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, closeStore, err := openStore()
		if err != nil {
			return err
		}
		defer closeStore()

		if err := store.DeleteCustomer(args[0]); err != nil {
			return err
		}
		fmt.Printf("deleted customer %s and their repair jobs\n", args[0])
		return nil
	},
}

func init() {
	for _, cmd := range []*cobra.Command{customerAddCmd, customerUpdateCmd} {
		cmd.Flags().StringVar(&customerName, "name", "", "customer name")
		cmd.Flags().StringVar(&customerPhone, "phone", "", "primary phone number")
		cmd.Flags().StringVar(&customerAltPhone, "alt-phone", "", "alternate phone number")
		cmd.Flags().StringVar(&customerEmail, "email", "", "email address")
		cmd.Flags().StringVar(&customerAddress, "address", "", "postal address")
	}

	customerCmd.AddCommand(customerAddCmd)
	customerCmd.AddCommand(customerListCmd)
	customerCmd.AddCommand(customerShowCmd)
	customerCmd.AddCommand(customerUpdateCmd)
	customerCmd.AddCommand(customerDeleteCmd)
}
