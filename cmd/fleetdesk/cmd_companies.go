package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"fleetdesk/internal/settings"
)

var companiesCmd = &cobra.Command{
	Use:     "companies",
	Aliases: []string{"company"},
	Short:   "List and edit companies",
}

var companyFlags struct {
	name, address, phone, color string
}

func init() {
	for _, c := range []*cobra.Command{companiesAddCmd, companiesEditCmd} {
		c.Flags().StringVar(&companyFlags.name, "name", "", "company name")
		c.Flags().StringVar(&companyFlags.address, "address", "", "street address")
		c.Flags().StringVar(&companyFlags.phone, "phone", "", "phone number")
		c.Flags().StringVar(&companyFlags.color, "color", settings.DefaultColor,
			"display color ("+strings.Join(settings.ColorNames(), ", ")+")")
	}
	_ = companiesAddCmd.MarkFlagRequired("name")

	companiesCmd.AddCommand(companiesListCmd, companiesAddCmd, companiesEditCmd, companiesDeleteCmd, companiesPruneCmd)
}

func companiesView(cmd *cobra.Command) *settings.CompaniesView {
	return settings.NewCompaniesView(remote(), companyColors(), confirmer(cmd))
}

var companiesListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show companies with their local colors",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		view := companiesView(cmd)
		rows, err := view.Load(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), companiesTable(rows))

		stale, err := view.Stale()
		if err != nil {
			return err
		}
		if len(stale) > 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "%d local color(s) belong to deleted companies; run `fleetdesk companies prune`\n", len(stale))
		}
		return nil
	},
}

var companiesAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a company",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		view := companiesView(cmd)
		form := view.NewForm()
		form.Name = companyFlags.name
		form.Address = companyFlags.address
		form.Phone = companyFlags.phone
		form.Color = companyFlags.color

		row, err := view.Submit(cmd.Context(), form)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created company %d (%s)\n", row.ID, row.Name)
		return nil
	},
}

var companiesEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Change a company; only the given flags are updated",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		view := companiesView(cmd)
		if _, err := view.Load(cmd.Context()); err != nil {
			return err
		}
		form, err := view.EditForm(id)
		if err != nil {
			return err
		}

		flags := cmd.Flags()
		if flags.Changed("name") {
			form.Name = companyFlags.name
		}
		if flags.Changed("address") {
			form.Address = companyFlags.address
		}
		if flags.Changed("phone") {
			form.Phone = companyFlags.phone
		}
		if flags.Changed("color") {
			form.Color = companyFlags.color
		}

		row, err := view.Submit(cmd.Context(), form)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Updated company %d (%s, %s)\n", row.ID, row.Name, row.Color)
		return nil
	},
}

var companiesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a company and its local color",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		view := companiesView(cmd)
		if _, err := view.Load(cmd.Context()); err != nil {
			return err
		}
		deleted, err := view.Delete(cmd.Context(), id)
		if err != nil {
			return err
		}
		if deleted {
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted company %d\n", id)
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "Nothing deleted")
		}
		return nil
	},
}

var companiesPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Drop local colors of companies deleted elsewhere",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		pruned, err := companiesView(cmd).Prune(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %d stale color(s)\n", len(pruned))
		return nil
	},
}
