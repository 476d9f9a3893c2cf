package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"fleetdesk/internal/models"
	"fleetdesk/internal/settings"
)

var driversCmd = &cobra.Command{
	Use:     "drivers",
	Aliases: []string{"driver"},
	Short:   "List and edit drivers",
}

var driverFlags struct {
	name, phone, license, status, pin string
	showPIN                           []uint
}

func init() {
	for _, c := range []*cobra.Command{driversAddCmd, driversEditCmd} {
		c.Flags().StringVar(&driverFlags.name, "name", "", "driver name")
		c.Flags().StringVar(&driverFlags.phone, "phone", "", "phone number")
		c.Flags().StringVar(&driverFlags.license, "license", "", "license number, also the portal login id")
		c.Flags().StringVar(&driverFlags.status, "status", string(models.StatusAvailable), "available, busy or offline")
		c.Flags().StringVar(&driverFlags.pin, "pin", models.DefaultPIN, "portal PIN, 4 to 6 digits")
	}
	_ = driversAddCmd.MarkFlagRequired("name")
	_ = driversAddCmd.MarkFlagRequired("license")

	driversListCmd.Flags().UintSliceVar(&driverFlags.showPIN, "show-pin", nil, "reveal the PIN of these driver ids")

	driversCmd.AddCommand(driversListCmd, driversAddCmd, driversEditCmd, driversDeleteCmd)
}

func driversView(cmd *cobra.Command) *settings.DriversView {
	return settings.NewDriversView(remote(), confirmer(cmd))
}

var driversListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show drivers; PINs are masked unless --show-pin is given",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		view := driversView(cmd)
		if _, err := view.Load(cmd.Context()); err != nil {
			return err
		}
		for _, id := range uniqueIDs(driverFlags.showPIN) {
			if _, err := view.TogglePIN(id); err != nil {
				return err
			}
		}
		fmt.Fprintln(cmd.OutOrStdout(), driversTable(view.Rows()))
		return nil
	},
}

var driversAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a driver",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		view := driversView(cmd)
		form := view.NewForm()
		form.Name = driverFlags.name
		form.Phone = driverFlags.phone
		form.LicenseNumber = driverFlags.license
		form.Status = models.DriverStatus(driverFlags.status)
		form.PIN = driverFlags.pin

		d, err := view.Submit(cmd.Context(), form)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created driver %d (%s)\n", d.ID, d.Name)
		return nil
	},
}

var driversEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Change a driver; only the given flags are updated",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		view := driversView(cmd)
		if _, err := view.Load(cmd.Context()); err != nil {
			return err
		}
		form, err := view.EditForm(id)
		if err != nil {
			return err
		}

		flags := cmd.Flags()
		if flags.Changed("name") {
			form.Name = driverFlags.name
		}
		if flags.Changed("phone") {
			form.Phone = driverFlags.phone
		}
		if flags.Changed("license") {
			form.LicenseNumber = driverFlags.license
		}
		if flags.Changed("status") {
			form.Status = models.DriverStatus(driverFlags.status)
		}
		if flags.Changed("pin") {
			form.PIN = driverFlags.pin
		}

		d, err := view.Submit(cmd.Context(), form)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Updated driver %d (%s)\n", d.ID, d.Name)
		return nil
	},
}

var driversDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a driver",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		view := driversView(cmd)
		if _, err := view.Load(cmd.Context()); err != nil {
			return err
		}
		deleted, err := view.Delete(cmd.Context(), id)
		if err != nil {
			return err
		}
		if deleted {
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted driver %d\n", id)
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "Nothing deleted")
		}
		return nil
	},
}

// uniqueIDs sorts ids and drops repeats so each PIN is toggled once.
func uniqueIDs(ids []uint) []uint {
	out := slices.Clone(ids)
	slices.Sort(out)
	return slices.Compact(out)
}
