// Command fleetdesk is the settings client: it manages companies and
// drivers on a fleetdesk server and keeps company colors in a local
// preferences file.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"fleetdesk/internal/client"
	"fleetdesk/internal/logger"
	"fleetdesk/internal/prefs"
	"fleetdesk/internal/settings"
)

var (
	serverURL string
	prefsPath string
	assumeYes bool
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "fleetdesk",
	Short: "Manage companies, drivers and local display preferences",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := "warn"
		if verbose {
			level = "debug"
		}
		logger.Setup("", level)
	},
	SilenceUsage: true,
}

func init() {
	_ = godotenv.Load(".env")

	rootCmd.PersistentFlags().StringVar(&serverURL, "server",
		cast.ToString(envOr("FLEETDESK_SERVER", "http://localhost:8080")), "fleetdesk server base URL")
	rootCmd.PersistentFlags().StringVar(&prefsPath, "prefs",
		cast.ToString(envOr("FLEETDESK_PREFS", defaultPrefsPath())), "local preferences file")
	rootCmd.PersistentFlags().BoolVarP(&assumeYes, "yes", "y", false, "skip delete confirmations")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging to stderr")

	rootCmd.AddCommand(companiesCmd, driversCmd, contactCmd, aboutCmd, privacyCmd, watchCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logrus.WithError(err).Debug("command failed")
		stop()
		os.Exit(1)
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func defaultPrefsPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "fleetdesk-preferences.json"
	}
	return filepath.Join(dir, "fleetdesk", "preferences.json")
}

func remote() *client.Client {
	return client.New(serverURL)
}

func companyColors() *prefs.CompanyColors {
	return prefs.NewCompanyColors(prefs.NewFileStorage(prefsPath))
}

func confirmer(cmd *cobra.Command) settings.Confirmer {
	if assumeYes {
		return settings.AlwaysConfirm
	}
	return promptConfirm{in: cmd.InOrStdin(), out: cmd.OutOrStdout()}
}

func parseID(arg string) (uint, error) {
	id, err := cast.ToUintE(arg)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}
