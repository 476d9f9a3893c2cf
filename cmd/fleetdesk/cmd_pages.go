package main

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"fleetdesk/internal/pages"
)

var aboutCmd = pageCommand("about", "About fleetdesk")
var privacyCmd = pageCommand("privacy", "What fleetdesk stores and where")

func pageCommand(name, short string) *cobra.Command {
	return &cobra.Command{
		Use:   name,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			md, err := pages.Markdown(name)
			if err != nil {
				return err
			}
			out, err := glamour.Render(md, "dark")
			if err != nil {
				// plain markdown is still readable
				out = md
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
}
