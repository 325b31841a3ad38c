// Repair job commands for the repairdesk CLI.
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mistry-labs/repairdesk/pkg/types"
)

var jobCmd = &cobra.Command{
	Use:   "job",
	Short: "Manage repair jobs",
}

var (
	jobCustomer        string
	jobMaterial        string
	jobServices        []string
	jobEstimated       string
	jobStatus          string
	jobNotes           string
	jobBillNote        string
	jobActualCost      float64
	jobClearActualCost bool
	jobDeliveredOn     string
)

var jobAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Open a new repair job",
	RunE: func(cmd *cobra.Command, args []string) error {
		if jobCustomer == "" || jobMaterial == "" {
			return fmt.Errorf("job add: --customer and --material are required")
		}
		if jobStatus != "" && !types.ValidStatus(jobStatus) {
			return fmt.Errorf("invalid status %q (valid: %s)", jobStatus, statusList())
		}
		services, err := parseServices(jobServices)
		if err != nil {
			return err
		}

		store, closeStore, err := openStore()
		if err != nil {
			return err
		}
		defer closeStore()

		job := types.RepairJob{
			CustomerID:      jobCustomer,
			MaterialDetails: jobMaterial,
			Services:        services,
			EstimatedTime:   jobEstimated,
			Status:          jobStatus,
			Notes:           jobNotes,
			BillNote:        jobBillNote,
		}
		if cmd.Flags().Changed("actual-cost") {
			job.ActualTotalCost = &jobActualCost
		}

		created, err := store.AddRepairJob(job)
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(created)
		}
		fmt.Printf("opened job %s for customer %s\n", created.ID, created.CustomerID)
		return nil
	},
}

var jobListCmd = &cobra.Command{
	Use:   "list",
	Short: "List repair jobs",
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := fetchState()
		if err != nil {
			return err
		}
		warnIfTablesMissing(state)

		jobs := state.Repairs
		if jobStatus != "" {
			if !types.ValidStatus(jobStatus) {
				return fmt.Errorf("invalid status %q (valid: %s)", jobStatus, statusList())
			}
			filtered := jobs[:0:0]
			for _, j := range jobs {
				if j.Status == jobStatus {
					filtered = append(filtered, j)
				}
			}
			jobs = filtered
		}

		if flagJSON {
			return printJSON(jobs)
		}
		if len(jobs) == 0 {
			fmt.Println("no repair jobs")
			return nil
		}
		for _, j := range jobs {
			fmt.Printf("%s  %s  %-14s  %8.2f  %s\n",
				j.ID, j.CustomerID, j.Status, j.BillableTotal(), j.MaterialDetails)
		}
		return nil
	},
}

var jobShowCmd = &cobra.Command{
	Use:   "show <job-id>",
	Short: "Show one repair job",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := fetchState()
		if err != nil {
			return err
		}
		warnIfTablesMissing(state)

		j, err := findRepair(state, args[0])
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(j)
		}

		fmt.Printf("%s  %s\n", j.ID, j.MaterialDetails)
		fmt.Printf("  customer:  %s\n", j.CustomerID)
		fmt.Printf("  status:    %s\n", j.Status)
		fmt.Printf("  received:  %s\n", j.ReceivedDate.Format("2006-01-02"))
		if j.DeliveryDate != nil {
			fmt.Printf("  delivered: %s\n", j.DeliveryDate.Format("2006-01-02"))
		}
		if j.EstimatedTime != "" {
			fmt.Printf("  estimate:  %s\n", j.EstimatedTime)
		}
		for _, s := range j.Services {
			fmt.Printf("  - %-32s %8.2f\n", s.Problem, s.Cost)
		}
		fmt.Printf("  total:     %.2f\n", j.BillableTotal())
		if j.Notes != "" {
			fmt.Printf("  notes:     %s\n", j.Notes)
		}
		return nil
	},
}

var jobUpdateCmd = &cobra.Command{
	Use:   "update <job-id>",
	Short: "Update repair job fields",
	Long: `Update repair job fields. Only flags given on the command line are
changed; passing an empty value clears the field. Setting --status Delivered
stamps the delivery date unless --delivered-on is given. Repeating --service
replaces the whole service list.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var patch types.RepairJobPatch

		if cmd.Flags().Changed("material") {
			patch.MaterialDetails = types.Set(jobMaterial)
		}
		if cmd.Flags().Changed("service") {
			services, err := parseServices(jobServices)
			if err != nil {
				return err
			}
			patch.Services = types.Set(services)
		}
		if cmd.Flags().Changed("estimated") {
			patch.EstimatedTime = types.Set(jobEstimated)
		}
		if cmd.Flags().Changed("notes") {
			patch.Notes = types.Set(jobNotes)
		}
		if cmd.Flags().Changed("bill-note") {
			patch.BillNote = types.Set(jobBillNote)
		}
		if cmd.Flags().Changed("actual-cost") {
			patch.ActualTotalCost = types.Set(&jobActualCost)
		}
		if jobClearActualCost {
			patch.ActualTotalCost = types.Set[*float64](nil)
		}
		if cmd.Flags().Changed("delivered-on") {
			t, err := time.Parse("2006-01-02", jobDeliveredOn)
			if err != nil {
				return fmt.Errorf("invalid --delivered-on date: %w", err)
			}
			patch.DeliveryDate = types.Set(&t)
		}
		if cmd.Flags().Changed("status") {
			if !types.ValidStatus(jobStatus) {
				return fmt.Errorf("invalid status %q (valid: %s)", jobStatus, statusList())
			}
			patch.Status = types.Set(jobStatus)
			// Reaching Delivered stamps the delivery date.
			if jobStatus == types.StatusDelivered && !patch.DeliveryDate.IsSet() {
				now := time.Now().UTC()
				patch.DeliveryDate = types.Set(&now)
			}
		}

		store, closeStore, err := openStore()
		if err != nil {
			return err
		}
		defer closeStore()

		if err := store.UpdateRepairJob(args[0], patch); err != nil {
			return err
		}
		fmt.Printf("updated job %s\n", args[0])
		return nil
	},
}

var jobDeleteCmd = &cobra.Command{
	Use:   "delete <job-id>",
	Short: "Delete a repair job",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, closeStore, err := openStore()
		if err != nil {
			return err
		}
		defer closeStore()

		if err := store.DeleteRepairJob(args[0]); err != nil {
			return err
		}
		fmt.Printf("deleted job %s\n", args[0])
		return nil
	},
}

// statusList returns the valid status labels for error messages.
func statusList() string {
	return strings.Join([]string{
		types.StatusPending, types.StatusDiagnosing, types.StatusInProgress,
		types.StatusAwaitingParts, types.StatusCompleted, types.StatusDelivered,
		types.StatusCancelled,
	}, ", ")
}

func init() {
	for _, cmd := range []*cobra.Command{jobAddCmd, jobUpdateCmd} {
		cmd.Flags().StringVar(&jobMaterial, "material", "", "device or item description")
		cmd.Flags().StringArrayVar(&jobServices, "service", nil, `service line as "problem:cost" (repeatable)`)
		cmd.Flags().StringVar(&jobEstimated, "estimated", "", "estimated repair time")
		cmd.Flags().StringVar(&jobStatus, "status", "", "repair status")
		cmd.Flags().StringVar(&jobNotes, "notes", "", "internal notes")
		cmd.Flags().StringVar(&jobBillNote, "bill-note", "", "note printed on the bill")
		cmd.Flags().Float64Var(&jobActualCost, "actual-cost", 0, "final total, overrides the service sum")
	}
	jobAddCmd.Flags().StringVar(&jobCustomer, "customer", "", "customer ID the job belongs to")
	jobUpdateCmd.Flags().BoolVar(&jobClearActualCost, "clear-actual-cost", false, "remove the final total override")
	jobUpdateCmd.Flags().StringVar(&jobDeliveredOn, "delivered-on", "", "delivery date (YYYY-MM-DD)")
	jobListCmd.Flags().StringVar(&jobStatus, "status", "", "only list jobs with this status")

	jobCmd.AddCommand(jobAddCmd)
	jobCmd.AddCommand(jobListCmd)
	jobCmd.AddCommand(jobShowCmd)
	jobCmd.AddCommand(jobUpdateCmd)
	jobCmd.AddCommand(jobDeleteCmd)
}
