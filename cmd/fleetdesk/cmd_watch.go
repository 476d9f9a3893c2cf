package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"fleetdesk/internal/models"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Follow server changes and drop local colors of deleted companies",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		colors := companyColors()
		fmt.Fprintf(cmd.ErrOrStderr(), "watching %s (Ctrl-C to stop)\n", serverURL)

		err := remote().Watch(cmd.Context(), func(ev models.Event) error {
			fmt.Fprintf(cmd.OutOrStdout(), "%s #%d\n", ev.Type, ev.ID)
			if ev.Entity == models.EntityCompany && ev.Type == models.EntityCompany+"."+models.ActionDeleted {
				if err := colors.Delete(ev.ID); err != nil {
					logrus.WithError(err).WithField("company_id", ev.ID).Warn("could not drop local color")
				}
			}
			return nil
		})
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	},
}
