package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend <vehicle-id>",
	Short: "Print the renewal advisory for a vehicle",
	Args:  cobra.ExactArgs(1),
	RunE:  runRecommend,
}

func init() {
	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid vehicle id: %s", args[0])
	}
	svc, err := offlineFleet()
	if err != nil {
		return err
	}
	rec, err := svc.Recommend(id)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "level:  %s\n", rec.Level)
	fmt.Fprintf(out, "reason: %s\n", rec.Reason)
	m := rec.Metrics
	fmt.Fprintf(out, "age: %d years, total spend: %.2f, avg/year: %.2f, last 12 months: %.2f, ratio: %.2f\n",
		m.AgeYears, m.TotalCost, m.AvgAnnualCost, m.Last12MonthsCost, m.CostRatio)
	return nil
}
