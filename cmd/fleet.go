package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/autolytix/fleetcare/config"
	"github.com/autolytix/fleetcare/core/fleet"
	"github.com/autolytix/fleetcare/core/recommend"
	"github.com/autolytix/fleetcare/infra/store"
)

var fleetCmd = &cobra.Command{
	Use:   "fleet",
	Short: "Fleet related commands",
}

var fleetLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List registered vehicles",
	RunE:  runFleetLs,
}

var fleetStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the derived maintenance status of every vehicle",
	RunE:  runFleetStatus,
}

func init() {
	fleetCmd.AddCommand(fleetLsCmd)
	fleetCmd.AddCommand(fleetStatusCmd)
	rootCmd.AddCommand(fleetCmd)
}

// offlineFleet builds a fleet service straight from the snapshot on disk,
// without the API server or any sinks.
func offlineFleet() (*fleet.Service, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	svc := fleet.New(
		fleet.NewMemoryVehicles(),
		fleet.NewMemoryMaintenance(),
		fleet.NewMemoryCalendar(),
		store.NewFileStore(cfg.Storage.Dir),
		recommend.NewEngine(cfg.Recommend),
		nil, nil, nil,
	)
	if err := svc.Load(); err != nil {
		return nil, err
	}
	return svc, nil
}

func runFleetLs(cmd *cobra.Command, args []string) error {
	svc, err := offlineFleet()
	if err != nil {
		return err
	}
	for _, v := range svc.Vehicles() {
		fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%d\t%s\n", v.ID, v.Plate, v.Model, v.Year, v.Category)
	}
	return nil
}

func runFleetStatus(cmd *cobra.Command, args []string) error {
	svc, err := offlineFleet()
	if err != nil {
		return err
	}
	for _, v := range svc.Vehicles() {
		fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\n", v.ID, v.Plate, v.StatusText)
	}
	return nil
}
